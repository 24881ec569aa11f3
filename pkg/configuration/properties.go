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
	"maps"
	"slices"
)

// Properties is a single configuration namespace such as hdfs-site.
type Properties map[string]string

// Get returns the value for key and whether it was present.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// GetOrDefault returns the value for key, or def when the key is absent.
// A key set to the empty string is returned as is.
func (p Properties) GetOrDefault(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the property names in sorted order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Clone returns a copy of p. Cloning nil yields an empty, non-nil map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	maps.Copy(out, p)
	return out
}

// Configurations maps namespace names to their properties.
type Configurations map[string]Properties

// Site returns the properties of the named namespace.
// A missing namespace yields an empty map, never nil.
func (c Configurations) Site(name string) Properties {
	if p, ok := c[name]; ok && p != nil {
		return p
	}
	return Properties{}
}

// HasSite reports whether the named namespace is present.
func (c Configurations) HasSite(name string) bool {
	_, ok := c[name]
	return ok
}

// Names returns the namespace names in sorted order.
func (c Configurations) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// Clone returns a deep copy of c.
func (c Configurations) Clone() Configurations {
	out := make(Configurations, len(c))
	for name, props := range c {
		out[name] = props.Clone()
	}
	return out
}

// Ensure returns the named namespace, creating it when missing.
func (c Configurations) Ensure(name string) Properties {
	p, ok := c[name]
	if !ok || p == nil {
		p = Properties{}
		c[name] = p
	}
	return p
}

// Merge overlays other onto c namespace by namespace; values from other win.
func (c Configurations) Merge(other Configurations) {
	for name, props := range other {
		maps.Copy(c.Ensure(name), props)
	}
}
