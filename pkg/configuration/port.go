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

package configuration

import (
	"fmt"
	"regexp"
	"strconv"
)

// PrivilegedPortLimit is the first non-privileged port.
const PrivilegedPortLimit = 1024

// optional http(s) scheme, host or [ipv6], then a 1-5 digit port ending the
// address or followed by a path
var addressPattern = regexp.MustCompile(`(?:https?://)?(?:\[[0-9A-Fa-f:.]*\]|[\w.\-]*):(\d{1,5})(?:/|$)`)

// GetPort extracts the port from an address such as "0.0.0.0:1019" or
// "https://dn1.example.com:50475". An address without a port is an error.
func GetPort(address string) (int, error) {
	m := addressPattern.FindStringSubmatch(address)
	if m == nil {
		return 0, fmt.Errorf("no port in address %q", address)
	}
	port, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid port in address %q: %w", address, err)
	}
	return port, nil
}

// IsSecurePort reports whether port is privileged, i.e. needs root to bind.
func IsSecurePort(port int) bool {
	return port < PrivilegedPortLimit
}
