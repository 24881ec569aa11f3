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

// Package k8s groups the Kubernetes integration of the advisor.
//
// The client sub-package builds and caches the clientset used to read
// snapshots from, and write results to, ConfigMaps (cm://namespace/name):
//
//	import "github.com/NVIDIA/stack-advisor/pkg/k8s/client"
//
//	clientset, _, err := client.GetKubeClient()
//
// The kubeconfig is taken from an explicit path, then KUBECONFIG, then
// ~/.kube/config, falling back to the in-cluster configuration.
package k8s
