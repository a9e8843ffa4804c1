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

package jinja

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunday, 1 June 2025
var testNow = time.Date(2025, time.June, 1, 14, 5, 9, 0, time.UTC)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{DefaultDateFormat, "2025.6.1"},
		{"YYYY-MM-DD HH:mm:ss", "2025-06-01 14:05:09"},
		{"YY", "25"},
		{"MMMM MMM", "June Jun"},
		{"DDDD DDD", "152 152"},
		{"dddd ddd d", "Sunday Sun 7"},
		{"hh:mm A", "02:05 PM"},
		{"h a", "2 pm"},
		{"ZZ Z", "+00:00 +0000"},
		{"[Built on] D MMM", "Built on 1 Jun"},
		{"X", "1748786709"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(testNow, tt.format))
		})
	}
}

func TestHour12(t *testing.T) {
	assert.Equal(t, 12, hour12(0))
	assert.Equal(t, 11, hour12(11))
	assert.Equal(t, 12, hour12(12))
	assert.Equal(t, 1, hour12(13))
}

func TestLoadTimezone(t *testing.T) {
	loc, err := LoadTimezone("local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	for _, tz := range []string{"utc", "UTC", ""} {
		loc, err = LoadTimezone(tz)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, loc)
	}

	loc, err = LoadTimezone("+02:00")
	require.NoError(t, err)
	_, off := testNow.In(loc).Zone()
	assert.Equal(t, 2*3600, off)

	loc, err = LoadTimezone("-0530")
	require.NoError(t, err)
	_, off = testNow.In(loc).Zone()
	assert.Equal(t, -(5*3600 + 30*60), off)

	_, err = LoadTimezone("Mars/Olympus")
	assert.Error(t, err)
}

func TestArrowNow(t *testing.T) {
	got, err := ArrowNow(testNow, "utc")
	require.NoError(t, err)
	assert.Equal(t, "2025.6.1", got)

	got, err = ArrowNow(testNow, "+02:00", "HH:mm ZZ")
	require.NoError(t, err)
	assert.Equal(t, "16:05 +02:00", got)

	got, err = ArrowNow(testNow, "Europe/Berlin", "HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "16:05", got)

	_, err = ArrowNow(testNow, "nowhere")
	assert.Error(t, err)
}

func TestShift(t *testing.T) {
	endOfMarch := time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    time.Time
		op      string
		offset  string
		want    time.Time
		wantErr bool
	}{
		{name: "add day", from: testNow, op: "+", offset: "days=1", want: testNow.AddDate(0, 0, 1)},
		{name: "subtract weeks", from: testNow, op: "-", offset: "weeks=2", want: testNow.AddDate(0, 0, -14)},
		{name: "fractional day", from: testNow, op: "+", offset: "days=0.5", want: testNow.Add(12 * time.Hour)},
		{name: "multiple units", from: testNow, op: "+", offset: "years=1, months=2, hours=1", want: time.Date(2026, time.August, 1, 15, 5, 9, 0, time.UTC)},
		{name: "month clamps to last day", from: endOfMarch, op: "-", offset: "months=1", want: time.Date(2025, time.February, 28, 10, 0, 0, 0, time.UTC)},
		{name: "quarter", from: endOfMarch, op: "+", offset: "quarters=1", want: time.Date(2025, time.June, 30, 10, 0, 0, 0, time.UTC)},
		{name: "back over year", from: testNow, op: "-", offset: "months=6", want: time.Date(2024, time.December, 1, 14, 5, 9, 0, time.UTC)},
		{name: "seconds and minutes", from: testNow, op: "+", offset: "minutes=1,seconds=30", want: testNow.Add(90 * time.Second)},
		{name: "fractional month", from: testNow, op: "+", offset: "months=1.5", wantErr: true},
		{name: "bad operator", from: testNow, op: "*", offset: "days=1", wantErr: true},
		{name: "unknown unit", from: testNow, op: "+", offset: "fortnights=1", wantErr: true},
		{name: "missing value", from: testNow, op: "+", offset: "days", wantErr: true},
		{name: "non numeric", from: testNow, op: "+", offset: "days=one", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shift(tt.from, tt.op, tt.offset)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestShiftKeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// DST starts on 30 March 2025 in Berlin
	before := time.Date(2025, time.March, 29, 12, 0, 0, 0, loc)
	got, err := Shift(before, "+", "days=1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, 30, got.Day())
}

func TestArrowShift(t *testing.T) {
	got, err := ArrowShift(testNow, "utc", "+", "days=1", "YYYY-MM-DD")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", got)

	_, err = ArrowShift(testNow, "utc", "+", "days=x")
	assert.Error(t, err)
}
