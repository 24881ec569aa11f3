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

package hdp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/stack-advisor/pkg/advisor"
	"github.com/NVIDIA/stack-advisor/pkg/configuration"
	"github.com/NVIDIA/stack-advisor/pkg/recommender"
	"github.com/NVIDIA/stack-advisor/pkg/validator"
)

func TestStacksRegistered(t *testing.T) {
	stacks := advisor.List()
	assert.Contains(t, stacks, StackHDP21)
	assert.Contains(t, stacks, StackHDP22)
}

func TestHDP22Resolve(t *testing.T) {
	rules, err := advisor.Resolve(StackHDP22)
	require.NoError(t, err)

	assert.Equal(t, []string{StackHDP21, StackHDP22}, rules.Lineage)

	validators := rules.ConfigurationValidators()
	require.Contains(t, validators, "HDFS")
	assert.Equal(t, HDFSSite, validators["HDFS"].Namespace)
	assert.Contains(t, rules.ConfigurationRecommenders(), "HDFS")
}

func TestHDP21HasNoHDFSRules(t *testing.T) {
	rules, err := advisor.Resolve(StackHDP21)
	require.NoError(t, err)
	assert.Empty(t, rules.ConfigurationValidators())
	assert.Empty(t, rules.ConfigurationRecommenders())
}

func TestHDP22EndToEnd(t *testing.T) {
	rules, err := advisor.Resolve("hdp-2.2")
	require.NoError(t, err)

	snap := configuration.NewSnapshot("test",
		configuration.WithStack(StackHDP22),
		configuration.WithServices("HDFS"),
		configuration.WithSite(HDFSSite, configuration.Properties{
			PropHTTPPolicy:          HTTPOnly,
			PropDatanodeAddress:     "0.0.0.0:50010",
			PropDatanodeHTTPAddress: "0.0.0.0:50075",
		}),
		configuration.WithSite(CoreSite, configuration.Properties{
			PropSecurityAuthentication: "kerberos",
			PropSecurityAuthorization:  "true",
		}),
	)

	res, err := validator.New().Validate(context.Background(), rules.Stack, rules.ConfigurationValidators(), snap)
	require.NoError(t, err)
	assert.Equal(t, validator.ValidationStatusWarn, res.Summary.Status)
	assert.Equal(t, 2, res.Summary.Warnings)
	assert.Equal(t, []string{"HDFS"}, res.Summary.Services)

	rec, err := recommender.New().Recommend(context.Background(), rules.Stack, rules.ConfigurationRecommenders(), snap)
	require.NoError(t, err)
	assert.Empty(t, rec.Changes, "policy already set")
}
