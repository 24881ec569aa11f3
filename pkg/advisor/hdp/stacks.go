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

package hdp

import (
	"github.com/NVIDIA/stack-advisor/pkg/advisor"
)

// Stack identifiers.
const (
	StackHDP21 = "HDP-2.1"
	StackHDP22 = "HDP-2.2"
)

// HDP21 is the base release. It defines no HDFS rules of its own.
func HDP21() *advisor.RuleSet {
	return advisor.NewRuleSet(StackHDP21, "")
}

// HDP22 adds the HDFS recommender and the secure datanode port validator.
func HDP22() *advisor.RuleSet {
	return advisor.NewRuleSet(StackHDP22, StackHDP21).
		WithRecommender("HDFS", RecommendHDFSConfigurations).
		WithValidator("HDFS", HDFSSite, ValidateHDFSConfigurations)
}

func init() {
	advisor.MustRegister(HDP21())
	advisor.MustRegister(HDP22())
}
