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

// Package hdp provides the HDP stack rule sets.
//
// HDP-2.1 is the root release. HDP-2.2 builds on it and adds HDFS rules:
//
//   - RecommendHDFSConfigurations ensures hdfs-site exists and sets
//     dfs.http.policy to HTTP_ONLY when it is not set.
//   - ValidateHDFSConfigurations checks secure datanode setups. When core-site
//     enables kerberos authentication and authorization and wire encryption is
//     off, datanode ports must be privileged (below 1024) unless
//     dfs.http.policy is HTTPS_ONLY, in which case they must not be.
//     dfs.data.transfer.protection is only valid under HTTPS_ONLY.
//
// Importing the package registers both releases with the advisor registry.
package hdp
