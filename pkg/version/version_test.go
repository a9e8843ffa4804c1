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

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantDisplay string
		wantTuple   string
		want        Version
	}{
		{
			name:        "major only",
			input:       "1",
			wantDisplay: "1.0.0",
			wantTuple:   "(1, 0, 0, 0)",
			want:        Version{Major: 1},
		},
		{
			name:        "major.minor",
			input:       "1.2",
			wantDisplay: "1.2.0",
			wantTuple:   "(1, 2, 0, 0)",
			want:        Version{Major: 1, Minor: 2},
		},
		{
			name:        "major.minor.patch",
			input:       "1.2.3",
			wantDisplay: "1.2.3",
			wantTuple:   "(1, 2, 3, 0)",
			want:        Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:        "build only in tuple",
			input:       "1.2.3.4",
			wantDisplay: "1.2.3",
			wantTuple:   "(1, 2, 3, 4)",
			want:        Version{Major: 1, Minor: 2, Patch: 3, Build: 4},
		},
		{
			name:        "empty middle segment",
			input:       "1..3.4",
			wantDisplay: "1.0.3",
			wantTuple:   "(1, 0, 3, 4)",
			want:        Version{Major: 1, Patch: 3, Build: 4},
		},
		{
			name:        "pre-release tag stripped",
			input:       "1.2.dev3",
			wantDisplay: "1.2.3",
			wantTuple:   "(1, 2, 3, 0)",
			want:        Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:        "extra segments discarded",
			input:       "1.2.3.4.5.6",
			wantDisplay: "1.2.3",
			wantTuple:   "(1, 2, 3, 4)",
			want:        Version{Major: 1, Minor: 2, Patch: 3, Build: 4},
		},
		{
			name:        "empty string",
			input:       "",
			wantDisplay: "0.0.0",
			wantTuple:   "(0, 0, 0, 0)",
			want:        Version{},
		},
		{
			name:        "only dots",
			input:       "...",
			wantDisplay: "0.0.0",
			wantTuple:   "(0, 0, 0, 0)",
			want:        Version{},
		},
		{
			name:        "v prefix",
			input:       "v2.0.1",
			wantDisplay: "2.0.1",
			wantTuple:   "(2, 0, 1, 0)",
			want:        Version{Major: 2, Patch: 1},
		},
		{
			name:        "negative sign dropped",
			input:       "1.-2.3",
			wantDisplay: "1.2.3",
			wantTuple:   "(1, 2, 3, 0)",
			want:        Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:        "calendar version with time build",
			input:       "2020.3.27.1530",
			wantDisplay: "2020.3.27",
			wantTuple:   "(2020, 3, 27, 1530)",
			want:        Version{Major: 2020, Minor: 3, Patch: 27, Build: 1530},
		},
		{
			name:        "leading zeros",
			input:       "01.002.0915",
			wantDisplay: "1.2.915",
			wantTuple:   "(1, 2, 915, 0)",
			want:        Version{Major: 1, Minor: 2, Patch: 915},
		},
		{
			name:        "digits scattered in segment",
			input:       "1.2.3rc1",
			wantDisplay: "1.2.31",
			wantTuple:   "(1, 2, 31, 0)",
			want:        Version{Major: 1, Minor: 2, Patch: 31},
		},
		{
			name:        "non-ascii digits ignored",
			input:       "1.٣.3",
			wantDisplay: "1.0.3",
			wantTuple:   "(1, 0, 3, 0)",
			want:        Version{Major: 1, Patch: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDisplay, got.String())
			assert.Equal(t, tt.wantTuple, got.Tuple())
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"1", "1.2", "1.2.3", "1.2.3.4", "1..3.4", "1.2.dev3", "", "abc"}
	for _, in := range inputs {
		display := Normalize(in).String()
		if again := Normalize(display).String(); again != display {
			t.Errorf("Normalize(%q) = %q, re-normalized to %q", in, display, again)
		}
	}
}

func TestNormalizeIgnoresSegmentsAfterFourth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Normalize("1.2.3.4"), Normalize("1.2.3.4.5"))
	assert.Equal(t, Normalize("1.2.3.4"), Normalize("1.2.3.4.x.y.z"))
}

func TestNormalizeSaturatesOverflow(t *testing.T) {
	t.Parallel()

	v := Normalize("99999999999999999999999999.1")
	assert.True(t, v.IsValid())
	assert.Equal(t, 1, v.Minor)
	assert.Positive(t, v.Major)
}

func TestNewVersion(t *testing.T) {
	t.Parallel()

	v := NewVersion(1, 2, 3, 4)
	assert.Equal(t, "1.2.3", v.String())
	assert.Equal(t, "(1, 2, 3, 4)", v.Tuple())
	assert.Equal(t, [MaxSegments]int{1, 2, 3, 4}, v.Components())

	clamped := NewVersion(-1, 2, -3, -4)
	assert.Equal(t, Version{Minor: 2}, clamped)
	assert.True(t, clamped.IsValid())
}

func TestWithBuild(t *testing.T) {
	t.Parallel()

	v := NewVersion(1, 2, 3, 0)
	got := v.WithBuild(915)

	assert.Equal(t, 915, got.Build)
	assert.Equal(t, 0, v.Build, "original must not change")
	assert.Equal(t, 0, v.WithBuild(-5).Build)
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Version
		want int
	}{
		{"equal", NewVersion(1, 2, 3, 4), NewVersion(1, 2, 3, 4), 0},
		{"major less", NewVersion(1, 9, 9, 9), NewVersion(2, 0, 0, 0), -1},
		{"minor greater", NewVersion(1, 3, 0, 0), NewVersion(1, 2, 9, 9), 1},
		{"patch less", NewVersion(1, 2, 2, 9), NewVersion(1, 2, 3, 0), -1},
		{"build decides", NewVersion(1, 2, 3, 5), NewVersion(1, 2, 3, 4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want == 0, tt.a.Equals(tt.b))
		})
	}
}
