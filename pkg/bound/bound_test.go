package bound

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rampart/pkg/interval"
	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		input        string
		sep          string
		expectedFrom string
		expectedTo   string
		expectedErr  bool
	}{
		"Normal":         {input: "3-7", sep: "-", expectedFrom: "3", expectedTo: "7"},
		"Spaces":         {input: " 3 - 7 ", sep: "-", expectedFrom: "3", expectedTo: "7"},
		"Negative":       {input: "-3--1", sep: "-", expectedFrom: "-3", expectedTo: "-1"},
		"Single":         {input: "5", sep: "-", expectedFrom: "5", expectedTo: "5"},
		"NegativeSingle": {input: "-5", sep: "-", expectedFrom: "-5", expectedTo: "-5"},
		"DotDot":         {input: "1.0.0-rc.1..1.2.0", sep: "..", expectedFrom: "1.0.0-rc.1", expectedTo: "1.2.0"},
		"Exponent":       {input: "-2e-3..1e-5", sep: "..", expectedFrom: "-2e-3", expectedTo: "1e-5"},
		"LeadingSep":     {input: "..b", sep: "..", expectedFrom: "", expectedTo: "b"},
		"LeadingColon":   {input: ":5", sep: ":", expectedFrom: "", expectedTo: "5"},
		"Empty":          {input: "  ", sep: "-", expectedErr: true},
		"NoSeparator":    {input: "3-7", sep: "", expectedErr: true},
		"NoUpperBound":   {input: "3-", sep: "-", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			from, to, err := ParseRange(tc.input, tc.sep)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedFrom, from)
			assert.Equal(t, tc.expectedTo, to)
		})
	}
}

func TestRelate(t *testing.T) {
	cases := map[string]struct {
		kind        Kind
		x, y        string
		sep         string
		expected    interval.Relation
		expectedErr bool
	}{
		"IntMeets":          {kind: KindInt, x: "2-3", y: "3-7", expected: interval.Meets},
		"IntReversedBounds": {kind: KindInt, x: "6-4", y: "7-3", expected: interval.During},
		"IntNegative":       {kind: KindInt, x: "-9--5", y: "-5-0", expected: interval.Meets},
		"IntEmpty":          {kind: KindInt, x: "3", y: "3-7", expected: interval.Overlaps},
		"IntCustomSep":      {kind: KindInt, x: "2:7", y: "3:7", sep: ":", expected: interval.FinishedBy},
		"IntInvalid":        {kind: KindInt, x: "a-b", y: "3-7", expectedErr: true},
		"UintAfter":         {kind: KindUint, x: "8-9", y: "3-7", expected: interval.After},
		"UintNegative":      {kind: KindUint, x: "-1-2", y: "3-7", expectedErr: true},
		"FloatStarts":       {kind: KindFloat, x: "3.0..4.5", y: "3..7", expected: interval.Starts},
		"FloatExponent":     {kind: KindFloat, x: "1e-5", y: "0..1", expected: interval.During},
		"FloatNegExponent":  {kind: KindFloat, x: "-2e-3..-1e-3", y: "-1e-3..0", expected: interval.Meets},
		"FloatNaN":          {kind: KindFloat, x: "NaN..1", y: "3..7", expectedErr: true},
		"String":            {kind: KindText, x: "apple..banana", y: "banana..cherry", expected: interval.Meets},
		"StringLexical":     {kind: KindText, x: "10..30", y: "3..7", expected: interval.Overlaps},
		"StringNoLower":     {kind: KindText, x: "..b", y: "a..c", expected: interval.Overlaps},
		"IntNoLower":        {kind: KindInt, x: ":5", y: "3:7", sep: ":", expectedErr: true},
		"Time": {
			kind:     KindTime,
			x:        "2024-03-01T00:00:00Z..2024-03-15T00:00:00Z",
			y:        "2024-03-14T00:00:00Z..2024-03-20T00:00:00Z",
			expected: interval.Overlaps,
		},
		"TimeZones": {
			kind:     KindTime,
			x:        "2024-03-01T01:00:00+01:00..2024-03-02T00:00:00Z",
			y:        "2024-03-01T00:00:00Z..2024-03-02T00:00:00Z",
			expected: interval.Equal,
		},
		"TimeInvalid":    {kind: KindTime, x: "yesterday..today", y: "2024-03-01T00:00:00Z", expectedErr: true},
		"Duration":       {kind: KindDuration, x: "1h-90m", y: "30m-2h", expected: interval.During},
		"Semver":         {kind: KindSemver, x: "1.0.0-rc.1..1.0.0", y: "1.0.0..2.0.0", expected: interval.Meets},
		"SemverPrefixed": {kind: KindSemver, x: "v1.2.0..v1.4", y: "1.2.0..1.3.0", expected: interval.StartedBy},
		"SemverInvalid":  {kind: KindSemver, x: "one..two", y: "1.0.0", expectedErr: true},
		"IP":             {kind: KindIP, x: "10.0.0.0/24", y: "10.0.0.0/16", expected: interval.Starts},
		"IPInvalid":      {kind: KindIP, x: "10.0.0.0/24", y: "10.0.0.0/99", expectedErr: true},
		"UnknownKind":    {kind: Kind(99), x: "1", y: "2", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := Relate(tc.kind, tc.x, tc.y, tc.sep)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, r, "-want %s, +got %s", tc.expected, r)
		})
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]struct {
		kind        Kind
		input       string
		expected    Summary
		expectedErr bool
	}{
		"Int":      {kind: KindInt, input: "7-3", expected: Summary{Lesser: "3", Greater: "7"}},
		"IntEmpty": {kind: KindInt, input: "3", expected: Summary{Lesser: "3", Greater: "3", Empty: true}},
		"Float":    {kind: KindFloat, input: "1.5..2.5e-1", expected: Summary{Lesser: "0.25", Greater: "1.5"}},
		"Time": {
			kind:     KindTime,
			input:    "2024-03-15T00:00:00+01:00..2024-03-01T00:00:00Z",
			expected: Summary{Lesser: "2024-03-01T00:00:00Z", Greater: "2024-03-14T23:00:00Z"},
		},
		"Duration": {kind: KindDuration, input: "90m-1h", expected: Summary{Lesser: "1h0m0s", Greater: "1h30m0s"}},
		"Semver":   {kind: KindSemver, input: "2.0.0..1.0.0", expected: Summary{Lesser: "1.0.0", Greater: "2.0.0"}},
		"IP":       {kind: KindIP, input: "192.168.0.0/30", expected: Summary{Lesser: "192.168.0.0", Greater: "192.168.0.3"}},
		"Invalid":  {kind: KindUint, input: "x-1", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Describe(tc.kind, tc.input, "")
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tc.expected, s); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestKind(t *testing.T) {
	for _, k := range KindValues() {
		parsed, err := KindString(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	k, err := KindString("IP")
	assert.NoError(t, err)
	assert.Equal(t, KindIP, k)

	_, err = KindString("bool")
	assert.Error(t, err)

	assert.Equal(t, "-", KindInt.DefaultSeparator())
	assert.Equal(t, "..", KindTime.DefaultSeparator())
	assert.Equal(t, "..", KindFloat.DefaultSeparator())

	assert.Equal(t, "string", KindText.String())
	k, err = KindString("string")
	assert.NoError(t, err)
	assert.Equal(t, KindText, k)
}
