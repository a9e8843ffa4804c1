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

package versioninfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/winkit-dev/winkit/pkg/errors"
)

// DefaultVariable is the assignment searched for when none is given.
const DefaultVariable = "__version__"

// maxLineBytes bounds a single scanned source line.
const maxLineBytes = 1 << 20

// versionPattern matches a quoted three-part version assigned to variable,
// e.g. __version__ = "2020.3.27".
func versionPattern(variable string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(variable) +
		`\s*=\s*('|")(?P<version>[^.]+\.[^.]+\.[^.]+)('|")`)
}

// ExtractVersion returns the version assigned to variable on the first
// matching line of r. An empty variable means DefaultVariable.
// When no line matches the error has code NOT_FOUND.
func ExtractVersion(r io.Reader, variable string) (string, error) {
	return extract(r, variable, "input")
}

// ExtractVersionFromFile is ExtractVersion over the file at path.
func ExtractVersionFromFile(path, variable string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("failed to read '%s'", path), err,
			map[string]any{"path": path})
	}
	defer f.Close()

	return extract(f, variable, path)
}

func extract(r io.Reader, variable, source string) (string, error) {
	if variable == "" {
		variable = DefaultVariable
	}
	re := versionPattern(variable)
	idx := re.SubexpIndex("version")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if m := re.FindStringSubmatch(scanner.Text()); m != nil {
			return m[idx], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("failed to read '%s'", source), err,
			map[string]any{"path": source})
	}

	return "", errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("could not get '%s' from '%s'", variable, source),
		map[string]any{"path": source, "variable": variable})
}
