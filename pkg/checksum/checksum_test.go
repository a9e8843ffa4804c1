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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateChecksums(t *testing.T) {
	t.Parallel()

	t.Run("generates sorted checksums for files", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		fileB := filepath.Join(tmpDir, "src", "b.py")
		fileA := filepath.Join(tmpDir, "a.txt")
		if err := os.MkdirAll(filepath.Dir(fileB), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fileB, []byte("content2"), 0o644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		if err := os.WriteFile(fileA, []byte("hello"), 0o644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		path, err := GenerateChecksums(context.Background(), tmpDir, []string{fileB, fileA})
		if err != nil {
			t.Fatalf("GenerateChecksums() error = %v", err)
		}
		if path != GetChecksumFilePath(tmpDir) {
			t.Errorf("path = %s, want %s", path, GetChecksumFilePath(tmpDir))
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read checksums.txt: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		// sha256("hello")
		want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824  a.txt"
		if lines[0] != want {
			t.Errorf("first line = %q, want %q", lines[0], want)
		}
		if !strings.HasSuffix(lines[1], "  src/b.py") {
			t.Errorf("second line should reference src/b.py: %s", lines[1])
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		_, err := GenerateChecksums(context.Background(), tmpDir, []string{filepath.Join(tmpDir, "nope")})
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		file := filepath.Join(tmpDir, "a.txt")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := GenerateChecksums(ctx, tmpDir, []string{file}); err == nil {
			t.Error("expected error for cancelled context")
		}
		if _, err := os.Stat(GetChecksumFilePath(tmpDir)); !os.IsNotExist(err) {
			t.Error("checksums.txt should not be written after cancellation")
		}
	})

	t.Run("empty file list", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		path, err := GenerateChecksums(context.Background(), tmpDir, nil)
		if err != nil {
			t.Fatalf("GenerateChecksums() error = %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "\n" {
			t.Errorf("expected single newline, got %q", data)
		}
	})
}

func TestSumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := SumFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// sha256 of the empty input
	if got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("SumFile() = %s", got)
	}
}
