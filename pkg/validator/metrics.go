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

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_validation_runs_total",
			Help: "Total number of validation runs by outcome",
		},
		[]string{"status"}, // pass, warn, fail or canceled
	)

	validationItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_validation_items_total",
			Help: "Total number of diagnostics produced by severity",
		},
		[]string{"severity"},
	)

	validatorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_validator_duration_seconds",
			Help:    "Time taken by individual service validators",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"service"},
	)
)
