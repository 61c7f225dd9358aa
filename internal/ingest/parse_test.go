package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := map[string]bool{
		"12":    true,
		"-3":    true,
		"1.5":   true,
		"007":   true,
		"1.2.3": false,
		"":      false,
		"-":     false,
		".":     false,
		"a1":    false,
		" 1":    false,
		"1-2":   false,

		"999999999":            true,
		"-999999999":           true,
		"1234567890":           false,
		"18446744073709551617": false,
		"99999999999999999999": false,
		"123456789.123456":     true,
	}

	for input, want := range tests {
		assert.Equal(t, want, IsNumeric(input), "input %q", input)
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("10910"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("-1"))
	assert.False(t, IsDigits("1.2"))
}

func TestAtoi(t *testing.T) {
	assert.Equal(t, 12, Atoi("12"))
	assert.Equal(t, -7, Atoi("-7"))
	assert.Equal(t, 3, Atoi("3.9"))
	assert.Equal(t, 9, Atoi("09"))
	assert.Equal(t, 0, Atoi(""))
	assert.Equal(t, 999999999, Atoi("999999999"))
	assert.Equal(t, 0, Atoi("99999999999999999999"))
	assert.Equal(t, 0, Atoi("-18446744073709551617"))
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{line: "a,b,c", want: []string{"a", "b", "c"}},
		{line: `a,"1-3,5",c`, want: []string{"a", "1-3,5", "c"}},
		{line: `"x""y"`, want: []string{"xy"}},
		{line: "a,,", want: []string{"a", "", ""}},
		{line: "", want: []string{""}},
		{line: `教1,"地点,二"`, want: []string{"教1", "地点,二"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitLine(tt.line), "line %q", tt.line)
	}
}

func TestExpandWeeks(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		parity Parity
		want   []int
	}{
		{name: "ranges and singles", field: "1-3,5", parity: ParityAny, want: []int{1, 2, 3, 5}},
		{name: "odd", field: "1-3,5", parity: ParityOdd, want: []int{1, 3, 5}},
		{name: "even", field: "1-3,5", parity: ParityEven, want: []int{2}},
		{name: "reversed range is empty", field: "5-3", parity: ParityAny, want: []int{}},
		{name: "malformed range skipped", field: "1-2-3,4", parity: ParityAny, want: []int{4}},
		{name: "garbage skipped", field: "a,2,", parity: ParityAny, want: []int{2}},
		{name: "empty", field: "", parity: ParityAny, want: []int{}},
		{name: "single week range", field: "8-8", parity: ParityAny, want: []int{8}},
		{name: "range up to bound", field: "58-60", parity: ParityAny, want: []int{58, 59, 60}},
		{name: "range past bound skipped", field: "58-61,3", parity: ParityAny, want: []int{3}},
		{name: "single week past bound skipped", field: "61,2", parity: ParityAny, want: []int{2}},
		{name: "huge range skipped", field: "1-3000000", parity: ParityAny, want: []int{}},
		{name: "overflowing week skipped", field: "18446744073709551617", parity: ParityAny, want: []int{}},
		{name: "overflowing range end skipped", field: "1-99999999999999999999,4", parity: ParityAny, want: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandWeeks(tt.field, tt.parity, 60))
		})
	}
}

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		location string
		site     string
		room     string
	}{
		{location: "A101", site: "A", room: "101"},
		{location: "理科楼A201", site: "理科楼A", room: "201"},
		// '-' пропускается вместе с цифрами: граница проходит по последнему иероглифу
		{location: "教3-201", site: "教", room: "3-201"},
		{location: "12-3", site: "12-3", room: ""},
		{location: "Lab", site: "Lab", room: ""},
		{location: "", site: "", room: ""},
	}

	for _, tt := range tests {
		site, room := SplitLocation(tt.location)
		assert.Equal(t, tt.site, site, "location %q", tt.location)
		assert.Equal(t, tt.room, room, "location %q", tt.location)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		field    string
		weekday  int
		sections []int
		ok       bool
	}{
		{field: "10910", weekday: 1, sections: []int{9, 10}, ok: true},
		{field: "2090910", weekday: 2, sections: []int{9, 9, 10}, ok: true},
		{field: "30102", weekday: 3, sections: []int{1, 2}, ok: true},
		{field: "209", weekday: 2, sections: []int{9}, ok: true},
		{field: "2091", weekday: 2, sections: []int{9, 1}, ok: true},
		{field: "5", weekday: 5, sections: []int{}, ok: true},
		{field: "1a09", ok: false},
		{field: "-109", ok: false},
		{field: "", ok: false},
	}

	for _, tt := range tests {
		weekday, sections, ok := ParseTime(tt.field)
		assert.Equal(t, tt.ok, ok, "field %q", tt.field)
		if !tt.ok {
			continue
		}
		assert.Equal(t, tt.weekday, weekday, "field %q", tt.field)
		assert.Equal(t, tt.sections, sections, "field %q", tt.field)
	}
}
