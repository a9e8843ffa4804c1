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
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat is used by the arrow_now tag when no format is given.
const DefaultDateFormat = "YYYY.M.D"

// dateToken matches Arrow format tokens. Longer tokens come first.
var dateToken = regexp.MustCompile(`\[[^\]]*\]|YYYY|YY|MMMM|MMM|MM|M|DDDD|DDD|DD|D|dddd|ddd|d|HH|H|hh|h|mm|m|ss|s|A|a|ZZ|Z|X`)

var fixedOffset = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// ArrowNow formats now in timezone tz using an Arrow format string.
func ArrowNow(now time.Time, tz string, format ...string) (string, error) {
	loc, err := LoadTimezone(tz)
	if err != nil {
		return "", err
	}
	return FormatDate(now.In(loc), pickFormat(format)), nil
}

// ArrowShift shifts now in timezone tz by offset and formats the result.
// op is "+" or "-"; offset is a comma separated list such as "days=1, hours=2".
func ArrowShift(now time.Time, tz, op, offset string, format ...string) (string, error) {
	loc, err := LoadTimezone(tz)
	if err != nil {
		return "", err
	}
	shifted, err := Shift(now.In(loc), op, offset)
	if err != nil {
		return "", err
	}
	return FormatDate(shifted, pickFormat(format)), nil
}

func pickFormat(format []string) string {
	if len(format) > 0 && format[0] != "" {
		return format[0]
	}
	return DefaultDateFormat
}

// LoadTimezone resolves "local", "utc", an IANA name or a fixed "+HH:MM" offset.
func LoadTimezone(tz string) (*time.Location, error) {
	switch strings.ToLower(strings.TrimSpace(tz)) {
	case "local":
		return time.Local, nil
	case "", "utc", "z":
		return time.UTC, nil
	}
	if m := fixedOffset.FindStringSubmatch(tz); m != nil {
		h, _ := strconv.Atoi(m[2])
		mi, _ := strconv.Atoi(m[3])
		secs := h*3600 + mi*60
		if m[1] == "-" {
			secs = -secs
		}
		return time.FixedZone(tz, secs), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Shift applies an Arrow style shift to t using wall clock arithmetic.
// Years and months must be whole numbers; the day is clamped to the last day
// of the target month. Weeks, days, hours, minutes and seconds may be fractional.
func Shift(t time.Time, op, offset string) (time.Time, error) {
	var sign float64
	switch op {
	case "+":
		sign = 1
	case "-":
		sign = -1
	default:
		return t, fmt.Errorf("invalid shift operator %q", op)
	}

	var months int
	var wall time.Duration
	for _, param := range strings.Split(offset, ",") {
		key, val, ok := strings.Cut(param, "=")
		if !ok {
			return t, fmt.Errorf("invalid shift parameter %q", strings.TrimSpace(param))
		}
		key = strings.TrimSpace(key)
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return t, fmt.Errorf("invalid shift value for %s: %w", key, err)
		}
		n *= sign

		switch key {
		case "years", "quarters", "months":
			if n != math.Trunc(n) {
				return t, fmt.Errorf("%s must be a whole number, got %v", key, n)
			}
			per := map[string]int{"years": 12, "quarters": 3, "months": 1}[key]
			months += int(n) * per
		case "weeks":
			wall += time.Duration(n * float64(7*24*time.Hour))
		case "days":
			wall += time.Duration(n * float64(24*time.Hour))
		case "hours":
			wall += time.Duration(n * float64(time.Hour))
		case "minutes":
			wall += time.Duration(n * float64(time.Minute))
		case "seconds":
			wall += time.Duration(n * float64(time.Second))
		default:
			return t, fmt.Errorf("unsupported shift unit %q", key)
		}
	}

	loc := t.Location()
	// shift as if the wall clock reading were UTC, then reattach the zone
	w := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	w = addMonths(w, months).Add(wall)
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), loc), nil
}

func addMonths(t time.Time, months int) time.Time {
	if months == 0 {
		return t
	}
	total := int(t.Month()) - 1 + months
	y := t.Year() + total/12
	m := total % 12
	if m < 0 {
		m += 12
		y--
	}
	last := time.Date(y, time.Month(m+2), 0, 0, 0, 0, 0, time.UTC).Day()
	return time.Date(y, time.Month(m+1), min(t.Day(), last), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// FormatDate renders t with an Arrow format string such as "YYYY-MM-DD HH:mm".
// Text in square brackets is emitted literally.
func FormatDate(t time.Time, format string) string {
	return dateToken.ReplaceAllStringFunc(format, func(tok string) string {
		if strings.HasPrefix(tok, "[") {
			return tok[1 : len(tok)-1]
		}
		return formatToken(t, tok)
	})
}

func formatToken(t time.Time, tok string) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%04d", t.Year())[2:]
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DDDD":
		return fmt.Sprintf("%03d", t.YearDay())
	case "DDD":
		return strconv.Itoa(t.YearDay())
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "d":
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return strconv.Itoa(wd)
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t.Hour()))
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "ZZ":
		return t.Format("-07:00")
	case "Z":
		return t.Format("-0700")
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	}
	return tok
}

func hour12(h int) int {
	if h == 0 {
		return 12
	}
	if h > 12 {
		return h - 12
	}
	return h
}
