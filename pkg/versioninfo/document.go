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
	"time"

	"github.com/winkit-dev/winkit/pkg/header"
	"github.com/winkit-dev/winkit/pkg/version"
)

// Entry is the normalized form of one version string.
type Entry struct {
	Input      string                   `json:"input" yaml:"input"`
	Display    string                   `json:"display" yaml:"display"`
	Tuple      string                   `json:"tuple" yaml:"tuple"`
	Components [version.MaxSegments]int `json:"components" yaml:"components,flow"`
}

// NewEntry normalizes s.
func NewEntry(s string) Entry {
	v := version.Normalize(s)
	return Entry{
		Input:      s,
		Display:    v.String(),
		Tuple:      v.Tuple(),
		Components: v.Components(),
	}
}

// Document lists normalized versions under a VersionInfo header.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Versions []Entry `json:"versions" yaml:"versions"`
}

// NewDocument normalizes every input into a Document stamped with now.
// toolVersion is recorded as the document's version metadata.
func NewDocument(toolVersion string, now time.Time, inputs ...string) *Document {
	d := &Document{Versions: make([]Entry, 0, len(inputs))}
	d.InitAt(header.KindVersionInfo, header.APIVersion, toolVersion, now)
	for _, in := range inputs {
		d.Versions = append(d.Versions, NewEntry(in))
	}
	return d
}
