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
)

func BenchmarkNormalize(b *testing.B) {
	tests := []string{
		"1",
		"1.2",
		"1.2.3",
		"1.2.3.4",
		"1..3.4",
		"1.2.dev3",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_ = Normalize(input)
	}
}

func BenchmarkNormalizeMajorOnly(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Normalize("1")
	}
}

func BenchmarkNormalizeFull(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Normalize("1.2.3.4")
	}
}

func BenchmarkNormalizeLong(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Normalize("2020.3.27.1530.extra.segments.that.are.dropped")
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := NewVersion(1, 2, 3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkVersionTuple(b *testing.B) {
	v := NewVersion(1, 2, 3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Tuple()
	}
}

func BenchmarkVersionCompare(b *testing.B) {
	v1 := NewVersion(1, 2, 3, 4)
	v2 := NewVersion(1, 2, 3, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}
