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

package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	lookupResultFound    = "found"
	lookupResultNotFound = "not_found"
)

var (
	// Provider resolution metrics
	providerLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "omx_store_provider_lookups_total",
			Help: "Total number of provider directory lookups by result",
		},
		[]string{"instance", "result"},
	)

	// Catalog size gauges, set once at construction
	storeRoles = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "omx_store_roles",
			Help: "Number of codec roles registered in the store instance",
		},
		[]string{"instance"},
	)

	storeServiceAttributes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "omx_store_service_attributes",
			Help: "Number of service attributes configured on the store instance",
		},
		[]string{"instance"},
	)
)
