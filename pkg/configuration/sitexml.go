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
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type siteXML struct {
	XMLName    xml.Name       `xml:"configuration"`
	Properties []siteProperty `xml:"property"`
}

type siteProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// ParseSiteXML reads a Hadoop site document. Later duplicates win, matching
// how Hadoop itself resolves them. Properties without a name are skipped.
func ParseSiteXML(r io.Reader) (Properties, error) {
	var doc siteXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode site xml: %w", err)
	}

	props := make(Properties, len(doc.Properties))
	for _, p := range doc.Properties {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		props[name] = strings.TrimSpace(p.Value)
	}
	return props, nil
}

// LoadSiteFile reads a Hadoop site file from disk.
func LoadSiteFile(path string) (Properties, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open site file %s: %w", path, err)
	}
	defer f.Close()

	props, err := ParseSiteXML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

// SiteNameFromPath derives the namespace from a file name,
// e.g. /etc/hadoop/conf/hdfs-site.xml becomes hdfs-site.
func SiteNameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ParseSiteArg parses a "namespace=path" argument. A bare path derives the
// namespace from the file name. Text before "=" that contains a path
// separator is part of a bare path, not a namespace.
func ParseSiteArg(arg string) (name, path string, err error) {
	name, path, found := strings.Cut(arg, "=")
	if found && strings.ContainsAny(name, `/\`) {
		found = false
	}
	if !found {
		path = arg
		name = SiteNameFromPath(arg)
	}
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if name == "" || path == "" {
		return "", "", fmt.Errorf("invalid site argument %q, expected namespace=path", arg)
	}
	return name, path, nil
}
