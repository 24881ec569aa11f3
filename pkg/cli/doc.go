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


// Package cli implements the advisorctl command line.
//
// Commands:
//
//	validate   run the validators of a stack and report diagnostics
//	recommend  run the recommenders of a stack and report changed properties
//	snapshot   assemble a snapshot from site files and store it
//	stacks     list registered stacks
//
// Inputs are a snapshot document (--snapshot: file, "-", http(s) URL or
// cm://namespace/name) and/or Hadoop site files (--site namespace=path).
// Output goes to stdout, a file or a ConfigMap (--output) as yaml, json or
// table (--format).
//
// Most flags can also be set through ADVISOR_* environment variables, for
// example ADVISOR_STACK=HDP-2.2. The log level comes from --log-level or LOG_LEVEL.
//
// validate exits non-zero when --fail-on-error (default) or --fail-on-warn
// thresholds are breached, which makes it usable as a CI gate.
package cli
