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

// Package api serves the stack advisor over HTTP.
//
// It configures pkg/server with the advisor routes:
//
//	POST /v1/validate   validate a snapshot against a stack
//	POST /v1/recommend  recommend default properties for a snapshot
//	GET  /v1/stacks     list registered stacks (?stack=HDP-2.2 for one)
//
// plus the /health, /ready and /metrics endpoints pkg/server provides.
//
// Request body for the POST endpoints:
//
//	{
//	  "stack": "HDP-2.2",
//	  "services": ["HDFS"],
//	  "snapshot": {
//	    "kind": "ConfigSnapshot",
//	    "configurations": {
//	      "hdfs-site": {"dfs.http.policy": "HTTPS_ONLY"},
//	      "core-site": {"hadoop.security.authentication": "kerberos"}
//	    }
//	  }
//	}
//
// stack is optional when the snapshot names one. Bodies are checked with
// go-playground/validator before any rule runs; failures are returned as
// INVALID_REQUEST errors listing the offending fields.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/stack-advisor/pkg/api.buildVersion=1.0.0'"
package api
