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

// Package recommender runs the service recommenders of a stack rule set.
//
// A recommend function receives a working copy of the cluster configurations
// and fills in derived defaults, e.g. the HDFS recommender guarantees that the
// hdfs-site namespace exists and that dfs.http.policy is set. Recommenders
// never overwrite a value the operator already set.
//
// The ConfigurationRecommender clones the snapshot, runs each installed
// service's recommender in name order and reports the resulting configurations
// together with a list of Changes:
//
//	r := recommender.New(recommender.WithVersion(version))
//	rec, err := r.Recommend(ctx, "HDP-2.2", rules.ConfigurationRecommenders(), snap)
//	if err != nil {
//	    return err
//	}
//	for _, c := range rec.Changes {
//	    fmt.Printf("%s/%s = %s\n", c.Namespace, c.Property, c.Value)
//	}
//
// The input snapshot is left untouched.
package recommender
