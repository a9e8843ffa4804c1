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

// Package client provides the shared Kubernetes client used by winkit's
// ConfigMap output (cm://namespace/name destinations).
//
// GetKubeClient initializes a single client with sync.Once and returns it on
// every call:
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	slog.Info("configmap operation", "auth_method", client.AuthMethod(config))
//
// BuildKubeClient bypasses the cache and accepts an explicit kubeconfig path.
// Discovery order for an empty path:
//
//  1. KUBECONFIG environment variable
//  2. ~/.kube/config, when it exists
//  3. in-cluster service account
package client
