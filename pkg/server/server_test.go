// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithName("test-server"), WithHandler(routes))
	if s == nil {
		t.Fatal("expected server instance, got nil")
		return
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}

	if s.config.Name != "test-server" {
		t.Errorf("expected name test-server, got %s", s.config.Name)
	}

	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}

	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()

	s.handleReady(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d before SetReady, got %d", http.StatusServiceUnavailable, w.Code)
	}

	s.SetReady(true)
	w = httptest.NewRecorder()
	s.handleReady(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d after SetReady, got %d", http.StatusOK, w.Code)
	}
}

func TestDefaultRouteListsHandlers(t *testing.T) {
	s := New(
		WithName("omx-store-server"),
		WithVersion("v0.1.0"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/platform/roles": func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s.handleDefault(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		Name   string   `json:"name"`
		Routes []string `json:"routes"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Name != "omx-store-server" {
		t.Errorf("expected name omx-store-server, got %s", resp.Name)
	}

	found := false
	for _, route := range resp.Routes {
		if route == "GET /v1/platform/roles" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected registered route in listing, got %v", resp.Routes)
	}
}

func TestWithPortIgnoresInvalid(t *testing.T) {
	cfg := NewConfig()
	WithPort(-1)(cfg)
	if cfg.Port != 8080 {
		t.Errorf("expected default port to be kept, got %d", cfg.Port)
	}

	WithPort(9090)(cfg)
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
}
