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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxSegments is the number of dotted segments considered by Normalize.
// Anything after the fourth segment is discarded.
const MaxSegments = 4

// Version is a normalized four component version as used by binary
// metadata blocks such as the Windows FIXEDFILEINFO structure.
// All components are non-negative.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
	Build int `json:"build" yaml:"build"`
}

// NewVersion creates a new Version from its components.
// Negative components are clamped to zero.
func NewVersion(major, minor, patch, build int) Version {
	return Version{
		Major: max(major, 0),
		Minor: max(minor, 0),
		Patch: max(patch, 0),
		Build: max(build, 0),
	}
}

// Normalize converts an arbitrary dotted version string into a Version.
//
// The input is split on '.', only the first four segments are kept and every
// character that is not an ASCII digit is removed from each segment. Empty
// segments become zero and missing trailing segments are zero-filled:
//
//	"1"        -> 1.0.0    (1, 0, 0, 0)
//	"1.2.3.4"  -> 1.2.3    (1, 2, 3, 4)
//	"1..3.4"   -> 1.0.3    (1, 0, 3, 4)
//	"1.2.dev3" -> 1.2.3    (1, 2, 3, 0)
//
// Normalize never fails; unparseable input degrades to zero components.
func Normalize(s string) Version {
	var c [MaxSegments]int
	for i, seg := range strings.SplitN(s, ".", MaxSegments+1) {
		if i == MaxSegments {
			break
		}
		c[i] = digits(seg)
	}
	return Version{Major: c[0], Minor: c[1], Patch: c[2], Build: c[3]}
}

// digits parses the decimal value of the ASCII digits in seg, ignoring every
// other character. Values that do not fit in an int saturate at math.MaxInt.
func digits(seg string) int {
	n := 0
	for i := 0; i < len(seg); i++ {
		ch := seg[i]
		if ch < '0' || ch > '9' {
			continue
		}
		d := int(ch - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	return n
}

// String returns the display form of the version: "Major.Minor.Patch".
// The build component is never part of the display string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tuple returns the four component tuple text, e.g. "(1, 2, 3, 4)".
func (v Version) Tuple() string {
	c := v.Components()
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Components returns all four components in order.
func (v Version) Components() [MaxSegments]int {
	return [MaxSegments]int{v.Major, v.Minor, v.Patch, v.Build}
}

// WithBuild returns a copy of v with the build component replaced.
func (v Version) WithBuild(build int) Version {
	v.Build = max(build, 0)
	return v
}

// Equals returns true if all four components match.
func (v Version) Equals(other Version) bool {
	return v == other
}

// Compare returns an integer comparing two versions component by component:
// -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	a, b := v.Components(), other.Components()
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// IsValid returns true if no component is negative.
// Versions produced by Normalize and NewVersion are always valid.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0 && v.Build >= 0
}
