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

// Package configuration holds the cluster configuration model the advisor evaluates.
//
// A cluster configuration is a set of namespaces ("hdfs-site", "core-site", ...),
// each a flat map of string properties. A property that is absent is different
// from one set to the empty string, and rule code is expected to treat absence
// as "use the documented default":
//
//	hdfs := snap.Configurations.Site("hdfs-site")
//	policy := hdfs.GetOrDefault("dfs.http.policy", "HTTP_ONLY")
//
// Site never returns nil, so a missing namespace reads the same as an empty one.
//
// # Snapshot
//
// Snapshot bundles the configurations with the stack identifier and the list of
// services installed on the cluster:
//
//	kind: ConfigSnapshot
//	apiVersion: advisor.nvidia.com/v1
//	stack: HDP-2.2
//	services: [HDFS, YARN]
//	configurations:
//	  hdfs-site:
//	    dfs.http.policy: HTTPS_ONLY
//	  core-site:
//	    hadoop.security.authentication: kerberos
//
// # Hadoop site files
//
// LoadSiteFile and ParseSiteXML read the <configuration><property> XML format used
// by Hadoop *-site.xml files, so a snapshot can be assembled from a live conf dir.
//
// # Ports
//
// GetPort extracts the port from a "host:port" or "scheme://host:port" address and
// IsSecurePort reports whether the port is privileged (below 1024).
package configuration
