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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/winkit-dev/winkit/pkg/errors"
)

// URIScheme is the URI scheme for OCI registry targets (e.g., "oci://ghcr.io/org/repo:tag").
const URIScheme = "oci://"

// Reference represents a parsed output target, which can be either an OCI registry
// reference or a local directory path.
type Reference struct {
	// IsOCI indicates whether this is an OCI registry reference (true) or local path (false).
	IsOCI bool
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "acme/my-tool").
	Repository string
	// Tag is the image tag. Empty means the caller applies a default.
	Tag string
	// LocalPath is the local directory path for non-OCI output.
	LocalPath string
}

// ParseOutputTarget parses an output target string to detect an OCI URI or a
// local directory. If no tag is specified in an OCI URI, Tag is empty.
func ParseOutputTarget(target string) (*Reference, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return &Reference{
			IsOCI:     false,
			LocalPath: target,
		}, nil
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}

	registry := reference.Domain(ref)
	repository := reference.Path(ref)

	var tag string
	if tagged, ok := ref.(reference.Tagged); ok {
		tag = tagged.Tag()
	}

	if err := ValidateRegistryReference(registry, repository); err != nil {
		return nil, err
	}

	return &Reference{
		IsOCI:      true,
		Registry:   registry,
		Repository: repository,
		Tag:        tag,
	}, nil
}

// String returns the full reference string, "oci://registry/repository[:tag]"
// for OCI references and the path for local ones.
func (r *Reference) String() string {
	if !r.IsOCI {
		return r.LocalPath
	}
	return URIScheme + r.ImageReference()
}

// ImageReference returns the Docker-style image reference (without oci:// scheme).
// Returns empty string for non-OCI references.
func (r *Reference) ImageReference() string {
	if !r.IsOCI {
		return ""
	}
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with the specified tag.
// Non-OCI references are returned unchanged.
func (r *Reference) WithTag(tag string) *Reference {
	if !r.IsOCI {
		return r
	}
	c := *r
	c.Tag = tag
	return &c
}

// PublishConfig configures the package and push workflow for a generated project.
type PublishConfig struct {
	// SourceDir is the project directory to publish.
	SourceDir string
	// OutputDir holds the intermediate OCI layout. A temporary directory is
	// used and removed afterwards when empty.
	OutputDir string
	// Reference is the parsed registry target. Its Tag must be set.
	Reference *Reference
	// Version is recorded in the org.opencontainers.image.version annotation.
	Version string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
	// Annotations replace the default manifest annotations when set.
	Annotations map[string]string
}

// PublishResult contains the result of a successful publish.
// StorePath is empty when the layout lived in a temporary directory.
type PublishResult struct {
	Digest    string
	Reference string
	StorePath string
}

// DefaultAnnotations returns the manifest annotations recorded for a project.
func DefaultAnnotations(title, version string) map[string]string {
	a := map[string]string{
		"org.opencontainers.image.title":  title,
		"org.opencontainers.image.vendor": "winkit",
	}
	if version != "" {
		a["org.opencontainers.image.version"] = version
	}
	return a
}

// Publish packages a directory as an OCI artifact and pushes it to a registry.
func Publish(ctx context.Context, cfg PublishConfig) (*PublishResult, error) {
	if cfg.Reference == nil || !cfg.Reference.IsOCI {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required to publish")
	}
	if cfg.Reference.Tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "tag is required to publish")
	}

	absSourceDir, err := filepath.Abs(cfg.SourceDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve source directory", err)
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		tmp, tmpErr := os.MkdirTemp("", "winkit-oci-*")
		if tmpErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create temporary directory", tmpErr)
		}
		defer os.RemoveAll(tmp)
		outputDir = tmp
	}

	annotations := cfg.Annotations
	if annotations == nil {
		annotations = DefaultAnnotations(filepath.Base(absSourceDir), cfg.Version)
	}

	slog.Info("packaging project as OCI artifact",
		"source", absSourceDir,
		"reference", cfg.Reference.ImageReference(),
	)

	pkg, err := Package(ctx, PackageOptions{
		SourceDir:   absSourceDir,
		OutputDir:   outputDir,
		Registry:    cfg.Reference.Registry,
		Repository:  cfg.Reference.Repository,
		Tag:         cfg.Reference.Tag,
		Annotations: annotations,
	})
	if err != nil {
		return nil, err
	}

	pushed, err := PushFromStore(ctx, pkg.StorePath, PushOptions{
		Registry:    cfg.Reference.Registry,
		Repository:  cfg.Reference.Repository,
		Tag:         cfg.Reference.Tag,
		PlainHTTP:   cfg.PlainHTTP,
		InsecureTLS: cfg.InsecureTLS,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("OCI artifact pushed",
		"reference", pushed.Reference,
		"digest", pushed.Digest,
	)

	res := &PublishResult{
		Digest:    pushed.Digest,
		Reference: pushed.Reference,
	}
	if cfg.OutputDir != "" {
		res.StorePath = pkg.StorePath
	}
	return res, nil
}
