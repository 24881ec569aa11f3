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

// Package validator evaluates service validators against a configuration snapshot.
//
// # Overview
//
// Each stack rule set registers one validator per service, bound to the
// configuration namespace it inspects (for example HDFS is bound to hdfs-site).
// The Validator walks those entries, runs the ones whose service is installed
// and whose namespace is present, and collects the diagnostics into a
// ValidationResult.
//
// Rules report, they never enforce: diagnostics are returned as data and a
// misconfigured cluster is never an error. Go errors are reserved for a nil
// snapshot or a canceled context.
//
// # Diagnostics
//
// Rule code builds findings with WarnItem and ErrorItem, attaches them to a
// property with PropertyItem, and converts the list with ToProblems:
//
//	items := []validator.PropertyItem{
//	    {Property: "dfs.http.policy", Finding: validator.WarnItem("Invalid property value: FOO")},
//	}
//	return validator.ToProblems(items, "hdfs-site")
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version))
//	result, err := v.Validate(ctx, "HDP-2.2", rules.ConfigurationValidators(), snap)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//
// # Status
//
// The summary status is "fail" when any ERROR item exists, "warn" when only
// WARN items exist, and "pass" otherwise.
package validator
