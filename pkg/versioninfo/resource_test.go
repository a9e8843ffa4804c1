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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func fixedClock(hour, minute int) *testingclock.FakePassiveClock {
	return testingclock.NewFakePassiveClock(time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC))
}

func TestNewResource(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want Resource
	}{
		{
			name: "full version",
			opts: Options{Product: "my_app", Version: "1.2.3", Company: "Acme", CopyrightYears: "2024", Clock: fixedClock(9, 15)},
			want: Resource{
				Product:             "my_app",
				Company:             "Acme",
				CopyrightYears:      "2024",
				ProductVersion:      "1.2.3",
				ProductVersionTuple: "(1, 2, 3, 0)",
				FileVersion:         "1.2.3.0915",
				FileVersionTuple:    "(1, 2, 3, 915)",
			},
		},
		{
			name: "dev version is cleaned",
			opts: Options{Product: " tool ", Version: "2020.3.dev27", Company: " Acme ", CopyrightYears: " 2020 ", Clock: fixedClock(23, 59)},
			want: Resource{
				Product:             "tool",
				Company:             "Acme",
				CopyrightYears:      "2020",
				ProductVersion:      "2020.3.27",
				ProductVersionTuple: "(2020, 3, 27, 0)",
				FileVersion:         "2020.3.27.2359",
				FileVersionTuple:    "(2020, 3, 27, 2359)",
			},
		},
		{
			name: "midnight drops leading zeros in tuple",
			opts: Options{Product: "x", Version: "1", Company: "c", CopyrightYears: "y", Clock: fixedClock(0, 0)},
			want: Resource{
				Product:             "x",
				Company:             "c",
				CopyrightYears:      "y",
				ProductVersion:      "1.0.0",
				ProductVersionTuple: "(1, 0, 0, 0)",
				FileVersion:         "1.0.0.0000",
				FileVersionTuple:    "(1, 0, 0, 0)",
			},
		},
		{
			name: "defaults",
			opts: Options{Product: "x", Version: "1.2", Clock: fixedClock(10, 5)},
			want: Resource{
				Product:             "x",
				Company:             DefaultCompany,
				CopyrightYears:      "2020-2025",
				ProductVersion:      "1.2.0",
				ProductVersionTuple: "(1, 2, 0, 0)",
				FileVersion:         "1.2.0.1005",
				FileVersionTuple:    "(1, 2, 0, 1005)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewResource(tt.opts))
		})
	}
}

func TestRender(t *testing.T) {
	out, err := Render(Options{
		Product:        "my_app",
		Version:        "1.2.3.4",
		Company:        "My Company",
		CopyrightYears: "2020-2025",
		Clock:          fixedClock(9, 15),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# UTF-8\n#\n"))
	assert.True(t, strings.HasSuffix(out, "  ]\n)\n"))

	for _, want := range []string{
		"    filevers=(1, 2, 3, 915),\n",
		"    prodvers=(1, 2, 3, 4),\n",
		"[StringStruct(u'CompanyName', u'My Company'),",
		"StringStruct(u'FileDescription', u'my_app'),",
		"StringStruct(u'FileVersion', u'1.2.3.0915'),",
		"StringStruct(u'InternalName', u'my_app'),",
		"StringStruct(u'LegalCopyright', u'Copyright © 2020-2025 My Company'),",
		"StringStruct(u'OriginalFilename', u'my_app.exe'),",
		"StringStruct(u'ProductName', u'my_app'),",
		"StringStruct(u'ProductVersion', u'1.2.3')])",
		"VarFileInfo([VarStruct(u'Translation', [0, 1200])])",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "{{")
}

func TestRender_NilClockUsesWallClock(t *testing.T) {
	out, err := Render(Options{Product: "p", Version: "1.0.0"})
	require.NoError(t, err)
	assert.Contains(t, out, "prodvers=(1, 0, 0, 0)")
	assert.Contains(t, out, "Copyright © 2020-")
}

func TestDefaultCopyrightYears(t *testing.T) {
	assert.Equal(t, "2020-2025", DefaultCopyrightYears(fixedClock(0, 0)))
	assert.True(t, strings.HasPrefix(DefaultCopyrightYears(nil), "2020-"))
}

func TestProductName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"my_app.py", "my_app"},
		{"src/my_app.py", "my_app"},
		{"/abs/path/tool.tar.gz", "tool.tar"},
		{"noext", "noext"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductName(tt.path))
		})
	}
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC)
	doc := NewDocument("1.0.0", now, "1..3.4", "1.2.dev3")

	assert.Equal(t, "VersionInfo", doc.Kind.String())
	assert.Equal(t, "1.0.0", doc.Metadata["version"])
	require.Len(t, doc.Versions, 2)
	assert.Equal(t, Entry{Input: "1..3.4", Display: "1.0.3", Tuple: "(1, 0, 3, 4)", Components: [4]int{1, 0, 3, 4}}, doc.Versions[0])
	assert.Equal(t, "1.2.3", doc.Versions[1].Display)
	assert.Equal(t, "(1, 2, 3, 0)", doc.Versions[1].Tuple)
}
