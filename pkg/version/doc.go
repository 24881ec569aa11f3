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

// Package version parses and orders stack identifiers such as "HDP-2.2".
//
// A stack identifier is a distribution name and a dotted version joined by a
// dash. The advisor registry keys rule sets by identifier and uses Compare to
// list them in release order:
//
//	id, err := version.ParseStackID("HDP-2.2")
//	// id.Name == "HDP", id.Version.String() == "2.2"
//
// Versions carry one to three numeric components. Comparison only considers
// the components both sides specify, so "2" matches any "2.x".
package version
