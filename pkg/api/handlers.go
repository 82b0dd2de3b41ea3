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

package api

import (
	"fmt"
	"net/http"

	"github.com/NVIDIA/omx-store/pkg/defaults"
	omxerrors "github.com/NVIDIA/omx-store/pkg/errors"
	"github.com/NVIDIA/omx-store/pkg/serializer"
	"github.com/NVIDIA/omx-store/pkg/server"
	"github.com/NVIDIA/omx-store/pkg/store"
)

// Handler serves the registry query API over the loaded store instances.
type Handler struct {
	instances map[string]*store.Store
}

// NewHandler creates a Handler over the given instances.
func NewHandler(instances map[string]*store.Store) *Handler {
	return &Handler{instances: instances}
}

// Routes returns the route map to register with the server.
// The {instance} segment selects the deployment ("platform" or "vendor").
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/{instance}/attributes":       h.HandleAttributes,
		"/v1/{instance}/roles":            h.HandleRoles,
		"/v1/{instance}/prefix":           h.HandlePrefix,
		"/v1/{instance}/providers/{name}": h.HandleProvider,
	}
}

// AttributesResponse is the response body for the attributes endpoint.
type AttributesResponse struct {
	Instance   string            `json:"instance"`
	Attributes []store.Attribute `json:"attributes"`
}

// RolesResponse is the response body for the roles endpoint.
type RolesResponse struct {
	Instance string           `json:"instance"`
	Prefix   string           `json:"prefix"`
	Roles    []store.RoleInfo `json:"roles"`
}

// PrefixResponse is the response body for the prefix endpoint.
type PrefixResponse struct {
	Instance string `json:"instance"`
	Prefix   string `json:"prefix"`
}

// ProviderResponse is the response body for a resolved provider.
type ProviderResponse struct {
	Instance string `json:"instance"`
	Name     string `json:"name"`
}

// resolveInstance returns the store selected by the request path, writing
// the error response itself when the request cannot be served.
func (h *Handler) resolveInstance(w http.ResponseWriter, r *http.Request) *store.Store {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, omxerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return nil
	}

	name := r.PathValue("instance")
	st, ok := h.instances[name]
	if !ok {
		server.WriteError(w, r, http.StatusNotFound, omxerrors.ErrCodeNotFound,
			"Unknown store instance", false, map[string]any{"instance": name})
		return nil
	}
	return st
}

// setCacheHeaders marks query responses cacheable; the registry is immutable
// for the process lifetime.
func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d", int(defaults.QueryCacheMaxAge.Seconds())))
}

// HandleAttributes serves GET /v1/{instance}/attributes.
func (h *Handler) HandleAttributes(w http.ResponseWriter, r *http.Request) {
	st := h.resolveInstance(w, r)
	if st == nil {
		return
	}

	attrs, err := st.ServiceAttributes()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to read service attributes", nil)
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, AttributesResponse{
		Instance:   st.Name(),
		Attributes: attrs,
	})
}

// HandleRoles serves GET /v1/{instance}/roles.
func (h *Handler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	st := h.resolveInstance(w, r)
	if st == nil {
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, RolesResponse{
		Instance: st.Name(),
		Prefix:   st.NodePrefix(),
		Roles:    st.Roles(),
	})
}

// HandlePrefix serves GET /v1/{instance}/prefix.
func (h *Handler) HandlePrefix(w http.ResponseWriter, r *http.Request) {
	st := h.resolveInstance(w, r)
	if st == nil {
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, PrefixResponse{
		Instance: st.Name(),
		Prefix:   st.NodePrefix(),
	})
}

// HandleProvider serves GET /v1/{instance}/providers/{name}.
// An unregistered provider name yields 404 with a NOT_FOUND body: absence is
// a normal outcome, kept distinguishable from internal faults (5xx).
func (h *Handler) HandleProvider(w http.ResponseWriter, r *http.Request) {
	st := h.resolveInstance(w, r)
	if st == nil {
		return
	}

	name := r.PathValue("name")
	handle, ok := st.GetOmx(name)
	if !ok {
		server.WriteError(w, r, http.StatusNotFound, omxerrors.ErrCodeNotFound,
			"Provider not registered", false, map[string]any{
				"instance": st.Name(),
				"name":     name,
			})
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, ProviderResponse{
		Instance: st.Name(),
		Name:     handle.Name(),
	})
}
