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

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// EnvKubeconfig is the environment variable consulted for the kubeconfig path.
const EnvKubeconfig = "KUBECONFIG"

// Interface is an alias for kubernetes.Interface so callers can inject
// fake.NewSimpleClientset() in tests.
type Interface = kubernetes.Interface

var (
	clientOnce   sync.Once
	cachedClient Interface
	cachedConfig *rest.Config
	clientErr    error
)

// GetKubeClient returns a process-wide Kubernetes client, creating it on first call.
// Configuration is discovered from KUBECONFIG, ~/.kube/config or the in-cluster
// service account, in that order.
func GetKubeClient() (Interface, *rest.Config, error) {
	clientOnce.Do(func() {
		cachedClient, cachedConfig, clientErr = BuildKubeClient("")
	})
	return cachedClient, cachedConfig, clientErr
}

// BuildKubeClient creates a new, uncached client from the given kubeconfig.
// An empty path uses the same discovery as GetKubeClient.
func BuildKubeClient(kubeconfig string) (Interface, *rest.Config, error) {
	var (
		config *rest.Config
		err    error
	)

	kubeconfig = ResolveKubeconfig(kubeconfig)
	if kubeconfig == "" {
		// avoids client-go's "Neither --kubeconfig nor --master" warning
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
		}
	}

	cs, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return cs, config, nil
}

// ResolveKubeconfig returns the kubeconfig path that BuildKubeClient would use.
// An empty result means in-cluster configuration.
func ResolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv(EnvKubeconfig); env != "" {
		return env
	}
	home := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}

// AuthMethod describes how config authenticates, for audit logging.
func AuthMethod(config *rest.Config) string {
	switch {
	case config == nil:
		return "none"
	case config.AuthProvider != nil:
		return config.AuthProvider.Name
	case config.ExecProvider != nil:
		return "exec"
	case config.BearerToken != "" || config.BearerTokenFile != "":
		return "bearer-token"
	case config.CertData != nil || config.CertFile != "":
		return "cert"
	default:
		return "default"
	}
}
