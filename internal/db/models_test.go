package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullStringRoundTrip(t *testing.T) {
	assert.False(t, NullString(nil).Valid)

	empty := ""
	ns := NullString(&empty)
	assert.True(t, ns.Valid, "empty but present is not NULL")

	shop := Shop{OpeningHours: ns}
	got := shop.OpeningHoursPtr()
	if assert.NotNil(t, got) {
		assert.Equal(t, "", *got)
	}
	assert.Nil(t, shop.RegularHolidaysPtr())
}
