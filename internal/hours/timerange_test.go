package hours

import (
	"testing"

	"cloudeng.io/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "11:00-14:00", want: "11:00-14:00"},
		{in: " 9:30 - 1:00 ", want: "09:30-01:00"},
		{in: "18:00〜23:00", want: "18:00-23:00"},
		{in: "00:00-24:00", want: "00:00-23:59"},
		{in: "11:00-", wantErr: true},
		{in: "11:00", wantErr: true},
		{in: "aa:bb-cc:dd", wantErr: true},
		{in: "25:00-26:00", wantErr: true},
		{in: "11:75-12:00", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRange(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestRangeContains(t *testing.T) {
	tod := datetime.NewTimeOfDay
	sameDay := Range{Start: tod(11, 0, 0), End: tod(14, 0, 0)}
	assert.False(t, sameDay.Overnight())
	assert.True(t, sameDay.Contains(tod(11, 0, 0)))
	assert.True(t, sameDay.Contains(tod(14, 0, 0)))
	assert.False(t, sameDay.Contains(tod(14, 0, 1)))
	assert.False(t, sameDay.Contains(tod(10, 59, 59)))

	overnight := Range{Start: tod(19, 0, 0), End: tod(1, 0, 0)}
	assert.True(t, overnight.Overnight())
	assert.True(t, overnight.Contains(tod(19, 0, 0)))
	assert.True(t, overnight.Contains(tod(0, 30, 0)))
	assert.False(t, overnight.Contains(tod(1, 0, 0)))
	assert.False(t, overnight.Contains(tod(12, 0, 0)))
}

func TestInAnyRange(t *testing.T) {
	assert.True(t, InAnyRange("11:00-14:00、17:00-20:00", at(Monday, 17, 30)))
	assert.False(t, InAnyRange("", at(Monday, 17, 30)))
	assert.False(t, InAnyRange("定休日", at(Monday, 17, 30)))
}
