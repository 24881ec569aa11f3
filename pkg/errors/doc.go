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

// Package errors provides structured error types for host plumbing around the
// advisor: loading snapshots, resolving stacks and serving API requests.
//
// Validation findings are never returned as Go errors; they are data
// (see package validator). Errors here describe failures to run a rule set
// at all.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "stack not registered",
//	    cause,
//	    map[string]any{
//	        "stack": "HDP-9.9",
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // render 404
//	}
package errors
