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

// Package advisor composes per-stack rule sets and keeps the registry of known stacks.
//
// A RuleSet maps service names to a recommend function and to a validator bound
// to a configuration namespace. Releases build on each other: a child names its
// parent and Resolve merges the chain root first with Extend, so a child
// replaces or adds services while inheriting the rest.
//
//	base := advisor.NewRuleSet("HDP-2.1", "")
//	hdp22 := advisor.NewRuleSet("HDP-2.2", "HDP-2.1").
//	    WithRecommender("HDFS", hdp.RecommendHDFSConfigurations).
//	    WithValidator("HDFS", "hdfs-site", hdp.ValidateHDFSConfigurations)
//	advisor.MustRegister(base)
//	advisor.MustRegister(hdp22)
//
//	rules, err := advisor.Resolve("HDP-2.2")
//	validators := rules.ConfigurationValidators()
//
// Stack packages register from init(); hosts import them for side effects:
//
//	import _ "github.com/NVIDIA/stack-advisor/pkg/advisor/hdp"
//
// Service names are normalized to upper case. Stack identifiers are parsed with
// version.ParseStackID, so "hdp-2.2" and "HDP-2.2" refer to the same release.
package advisor
