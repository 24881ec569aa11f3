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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrInvalidStackID    = errors.New("stack identifier must be NAME-VERSION")
)

// Version is a dotted release number with one to three significant components.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision indicates how many components are significant (1, 2, or 3)
	Precision int `json:"precision" yaml:"precision"`
}

// String returns the Version respecting its precision.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// ParseVersion parses "2", "2.2" or "2.2.0", with an optional "v" prefix.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	var v Version
	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		// Atoi accepts a sign; release numbers never carry one.
		if part[0] == '-' || part[0] == '+' {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Compare returns -1, 0 or 1 comparing v to other up to the lower precision of the two.
func (v Version) Compare(other Version) int {
	precision := min(v.Precision, other.Precision)

	pairs := [][2]int{{v.Major, other.Major}, {v.Minor, other.Minor}, {v.Patch, other.Patch}}
	for i := 0; i < precision && i < len(pairs); i++ {
		switch {
		case pairs[i][0] < pairs[i][1]:
			return -1
		case pairs[i][0] > pairs[i][1]:
			return 1
		}
	}
	return 0
}

// IsValid returns true if all components are non-negative and precision is 1, 2, or 3.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	return v.Precision >= 1 && v.Precision <= 3
}

// StackID identifies a distribution release, e.g. HDP-2.2.
type StackID struct {
	Name    string  `json:"name" yaml:"name"`
	Version Version `json:"version" yaml:"version"`
}

// String renders the identifier as NAME-VERSION.
func (id StackID) String() string {
	return id.Name + "-" + id.Version.String()
}

// ParseStackID splits "HDP-2.2" at the last dash into name and version.
// The name is upper-cased so "hdp-2.2" and "HDP-2.2" resolve to the same stack.
func ParseStackID(s string) (StackID, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, "-")
	if i <= 0 || i == len(s)-1 {
		return StackID{}, fmt.Errorf("%w: %q", ErrInvalidStackID, s)
	}

	v, err := ParseVersion(s[i+1:])
	if err != nil {
		return StackID{}, fmt.Errorf("%w: %q: %w", ErrInvalidStackID, s, err)
	}

	return StackID{Name: strings.ToUpper(s[:i]), Version: v}, nil
}

// NewStackID builds an identifier from a separate name and version string,
// the form the host orchestrator passes (stack_name, stack_version).
func NewStackID(name, ver string) (StackID, error) {
	return ParseStackID(name + "-" + ver)
}

// CompareStackIDs orders identifiers by name, then by version.
func CompareStackIDs(a, b StackID) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := a.Version.Compare(b.Version); c != 0 {
		return c
	}
	// "2" and "2.0" compare equal above; keep a stable order by precision.
	return a.Version.Precision - b.Version.Precision
}
