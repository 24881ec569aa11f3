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
	"testing"

	"github.com/NVIDIA/stack-advisor/pkg/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewSnapshot(t *testing.T) {
	s := NewSnapshot("v0.3.0",
		WithStack("HDP-2.2"),
		WithServices("HDFS", "YARN"),
		WithSite("hdfs-site", Properties{"dfs.http.policy": "HTTPS_ONLY"}),
	)

	assert.Equal(t, header.KindConfigSnapshot, s.Kind)
	assert.Equal(t, APIVersion, s.APIVersion)
	assert.Equal(t, "v0.3.0", s.Metadata["version"])
	assert.Equal(t, "HDP-2.2", s.Stack)
	assert.Equal(t, "HTTPS_ONLY", s.Configurations.Site("hdfs-site")["dfs.http.policy"])
}

func TestSnapshotHasService(t *testing.T) {
	s := NewSnapshot("", WithServices("HDFS", "YARN"))
	assert.True(t, s.HasService("hdfs"))
	assert.False(t, s.HasService("HBASE"))

	empty := NewSnapshot("")
	assert.True(t, empty.HasService("HBASE"), "empty service list admits every service")
}

func TestSnapshotYAML(t *testing.T) {
	doc := `
kind: ConfigSnapshot
apiVersion: advisor.nvidia.com/v1
stack: HDP-2.2
services: [HDFS]
configurations:
  hdfs-site:
    dfs.http.policy: HTTPS_ONLY
    dfs.datanode.address: "0.0.0.0:1019"
  core-site:
    hadoop.security.authentication: kerberos
    hadoop.security.authorization: "true"
`
	var s Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(doc), &s))

	assert.Equal(t, header.KindConfigSnapshot, s.Kind)
	assert.Equal(t, "HDP-2.2", s.Stack)
	assert.Equal(t, []string{"HDFS"}, s.Services)
	assert.Equal(t, "0.0.0.0:1019", s.Configurations.Site("hdfs-site")["dfs.datanode.address"])
	assert.Equal(t, "true", s.Configurations.Site("core-site")["hadoop.security.authorization"])
}
