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

// Package header provides the common header shared by advisor documents.
//
// Every document the advisor reads or writes (configuration snapshots,
// recommendations and validation results) starts with a Header that
// identifies its Kind and APIVersion and carries free-form string metadata:
//
//	kind: ValidationResult
//	apiVersion: advisor.nvidia.com/v1
//	metadata:
//	  timestamp: "2026-01-12T10:30:00Z"
//	  version: v0.3.0
//
// Producers call Init to stamp the kind, schema version, creation timestamp
// and tool version in one step:
//
//	var res validator.ValidationResult
//	res.Init(header.KindValidationResult, validator.APIVersion, version)
//
// Consumers should check Kind.IsValid and the APIVersion before relying on
// the rest of the document.
package header
