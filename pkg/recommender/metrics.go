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

package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendGenerateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_recommend_duration_seconds",
			Help:    "Time taken to run all service recommenders for a snapshot",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	recommendGenerateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_recommend_total",
			Help: "Total number of recommendation runs",
		},
		[]string{"status"}, // success or canceled
	)

	recommendChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_recommend_changes_total",
			Help: "Total number of properties added or changed by recommenders",
		},
	)
)
