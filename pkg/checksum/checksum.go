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

package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ChecksumFileName is the standard name for checksum files.
const ChecksumFileName = "checksums.txt"

// SumFile returns the hex encoded SHA256 of the file at path.
func SumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for checksum: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read %s for checksum: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// GenerateChecksums writes checksums.txt into dir with one
// "<sha256>  <path relative to dir>" line per file, sorted by path, and
// returns the checksum file path.
func GenerateChecksums(ctx context.Context, dir string, files []string) (string, error) {
	lines := make([]string, 0, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		sum, err := SumFile(file)
		if err != nil {
			return "", err
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			rel = file
		}
		lines = append(lines, fmt.Sprintf("%s  %s", sum, filepath.ToSlash(rel)))
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i][66:] < lines[j][66:]
	})

	path := GetChecksumFilePath(dir)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // shipped with the generated project
		return "", fmt.Errorf("failed to write checksums: %w", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(lines),
		"path", path,
	)

	return path, nil
}

// GetChecksumFilePath returns the full path to the checksums.txt file in dir.
func GetChecksumFilePath(dir string) string {
	return filepath.Join(dir, ChecksumFileName)
}
