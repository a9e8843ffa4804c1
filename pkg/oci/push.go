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

package oci

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/distribution/reference"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	ocilayout "oras.land/oras-go/v2/content/oci"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/winkit-dev/winkit/pkg/defaults"
	apperrors "github.com/winkit-dev/winkit/pkg/errors"
)

// ArtifactType is the media type for winkit project artifacts.
const ArtifactType = "application/vnd.winkit.project.v1"

// LayoutDirName is the directory under PackageOptions.OutputDir holding the OCI layout.
const LayoutDirName = "oci-layout"

// PackageOptions configures local OCI packaging.
type PackageOptions struct {
	// SourceDir is the directory to package. It becomes a single gzip layer.
	SourceDir string
	// OutputDir is where the OCI image layout is created. Must not be inside SourceDir.
	OutputDir string
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "acme/my-tool").
	Repository string
	// Tag is the image tag (e.g., "v1.0.0", "latest").
	Tag string
	// Annotations are added to the manifest.
	Annotations map[string]string
	// ReproducibleTimestamp sets a fixed org.opencontainers.image.created value.
	ReproducibleTimestamp string
}

// PackageResult is the result of local packaging.
type PackageResult struct {
	// Digest is the manifest digest.
	Digest string
	// Reference is the image reference (registry/repository:tag).
	Reference string
	// StorePath is the OCI image layout directory.
	StorePath string
}

// PushOptions configures pushing an OCI layout to a registry.
type PushOptions struct {
	Registry   string
	Repository string
	Tag        string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult contains the result of a successful OCI push.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed artifact.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// ValidateRegistryReference checks that registry and repository form a valid
// image name. A http:// or https:// prefix on registry is ignored.
func ValidateRegistryReference(registry, repository string) error {
	name := fmt.Sprintf("%s/%s", stripProtocol(registry), repository)
	if _, err := reference.ParseNormalizedNamed(name); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid registry reference '%s'", name), err)
	}
	return nil
}

func imageReference(registry, repository, tag string) (string, error) {
	if tag == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "tag is required for OCI artifacts")
	}
	if err := ValidateRegistryReference(registry, repository); err != nil {
		return "", err
	}
	ref := fmt.Sprintf("%s/%s:%s", stripProtocol(registry), repository, tag)
	if _, err := reference.ParseNormalizedNamed(ref); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid image reference '%s'", ref), err)
	}
	return ref, nil
}

// Package packs SourceDir into an OCI artifact stored as an OCI image layout
// under OutputDir. Nothing is sent to a registry.
func Package(ctx context.Context, opts PackageOptions) (*PackageResult, error) {
	if opts.SourceDir == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "source directory is required")
	}
	if opts.OutputDir == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "output directory is required")
	}

	refString, err := imageReference(opts.Registry, opts.Repository, opts.Tag)
	if err != nil {
		return nil, err
	}

	absSource, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve source directory", err)
	}
	info, err := os.Stat(absSource)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, "source directory not found", err)
	}
	if !info.IsDir() {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("source '%s' is not a directory", opts.SourceDir))
	}

	absOutput, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve output directory", err)
	}
	if rel, relErr := filepath.Rel(absSource, absOutput); relErr == nil && !strings.HasPrefix(rel, "..") {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "output directory must not be inside the source directory")
	}

	fs, err := file.New(absSource)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()

	// deterministic tars so equal trees produce equal digests
	fs.TarReproducible = true

	layerDesc, err := fs.Add(ctx, filepath.Base(absSource), ociv1.MediaTypeImageLayerGzip, absSource)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to add source directory to store", err)
	}

	annotations := make(map[string]string, len(opts.Annotations)+1)
	for k, v := range opts.Annotations {
		annotations[k] = v
	}
	if opts.ReproducibleTimestamp != "" {
		annotations[ociv1.AnnotationCreated] = opts.ReproducibleTimestamp
	} else if _, ok := annotations[ociv1.AnnotationCreated]; !ok {
		annotations[ociv1.AnnotationCreated] = time.Now().UTC().Format(time.RFC3339)
	}

	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layerDesc},
		ManifestAnnotations: annotations,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}

	if tagErr := fs.Tag(ctx, manifestDesc, opts.Tag); tagErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in file store", tagErr)
	}

	storePath := filepath.Join(absOutput, LayoutDirName)
	store, err := ocilayout.New(storePath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create OCI layout", err)
	}

	desc, err := oras.Copy(ctx, fs, opts.Tag, store, opts.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to copy artifact to OCI layout", err)
	}

	return &PackageResult{
		Digest:    desc.Digest.String(),
		Reference: refString,
		StorePath: storePath,
	}, nil
}

// PushFromStore pushes the tagged artifact from an OCI image layout to a remote registry.
func PushFromStore(ctx context.Context, storePath string, opts PushOptions) (*PushResult, error) {
	refString, err := imageReference(opts.Registry, opts.Repository, opts.Tag)
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(filepath.Join(storePath, "index.json")); statErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound,
			fmt.Sprintf("no OCI layout at '%s'", storePath), statErr)
	}

	store, err := ocilayout.New(storePath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to open OCI layout", err)
	}

	registryHost := stripProtocol(opts.Registry)
	repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", registryHost, opts.Repository))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	desc, err := oras.Copy(ctx, store, opts.Tag, repo, opts.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push artifact to registry", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: refString,
	}, nil
}

// stripProtocol removes http:// or https:// prefix from a registry URL.
func stripProtocol(registry string) string {
	registry = strings.TrimPrefix(registry, "https://")
	registry = strings.TrimPrefix(registry, "http://")
	return registry
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
