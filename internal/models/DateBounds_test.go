package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestYearBefore(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2017-08-23", "2016-08-23"},
		{"2016-02-29", "2015-02-28"},
		{"2017-03-01", "2016-03-01"},
		{"2017-01-01", "2016-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := YearBefore(mustDate(t, tt.in))
			assert.Equal(t, tt.want, FormatDate(got))
		})
	}
}

func TestDateBounds_Contains(t *testing.T) {
	b := DateBounds{
		Earliest: mustDate(t, "2010-01-01"),
		Latest:   mustDate(t, "2017-08-23"),
	}

	assert.True(t, b.Contains(mustDate(t, "2010-01-01")))
	assert.True(t, b.Contains(mustDate(t, "2017-08-23")))
	assert.True(t, b.Contains(mustDate(t, "2014-06-15")))
	assert.False(t, b.Contains(mustDate(t, "2009-12-31")))
	assert.False(t, b.Contains(mustDate(t, "2017-08-24")))
}

func TestDateBounds_TrailingYear(t *testing.T) {
	b := DateBounds{
		Earliest: mustDate(t, "2010-01-01"),
		Latest:   mustDate(t, "2017-08-23"),
	}

	from, to := b.TrailingYear()
	assert.Equal(t, "2016-08-23", FormatDate(from))
	assert.Equal(t, "2017-08-23", FormatDate(to))
	assert.Equal(t, "2010-01-01..2017-08-23", b.String())
}

func TestParseDate_Unpadded(t *testing.T) {
	for in, want := range map[string]string{
		"2017-1-5":   "2017-01-05",
		"2017-01-5":  "2017-01-05",
		"2017-1-05":  "2017-01-05",
		"2017-12-31": "2017-12-31",
	} {
		assert.Equal(t, want, FormatDate(mustDate(t, in)), in)
	}
}

func TestParseDate_Malformed(t *testing.T) {
	for _, s := range []string{"", "2017/01/01", "2017-13-01", "yesterday", "2017-02-30", "17-01-01", "2017-1-5x"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}
