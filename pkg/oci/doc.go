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

// Package oci packages generated projects as OCI artifacts and pushes them to
// container registries using ORAS.
//
// A project directory becomes a single reproducible gzip layer in an OCI 1.1
// manifest with ArtifactType. Packaging writes an OCI image layout on disk,
// pushing copies the tagged manifest from that layout to a remote repository:
//
//	pkg, err := oci.Package(ctx, oci.PackageOptions{
//	    SourceDir:  "./my-tool",
//	    OutputDir:  "/tmp/out",
//	    Registry:   "ghcr.io",
//	    Repository: "acme/my-tool",
//	    Tag:        "0.1.0",
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := oci.PushFromStore(ctx, pkg.StorePath, oci.PushOptions{
//	    Registry:   "ghcr.io",
//	    Repository: "acme/my-tool",
//	    Tag:        "0.1.0",
//	})
//
// Publish combines both steps for an oci:// target parsed by ParseOutputTarget.
//
// Registry credentials are read from the Docker configuration
// (~/.docker/config.json) through the ORAS credentials package.
package oci
