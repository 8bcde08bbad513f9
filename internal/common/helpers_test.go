package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	moment := time.Date(2025, 6, 2, 23, 59, 58, 123, loc)

	day := DateOnly(moment)

	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.June, day.Month())
	assert.Equal(t, 2, day.Day())
	assert.Zero(t, day.Hour())
	assert.Equal(t, loc, day.Location(), "часовой пояс сохраняется")
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	morning := time.Date(2025, 6, 2, 0, 1, 0, 0, loc)
	evening := time.Date(2025, 6, 2, 23, 59, 0, 0, loc)
	nextDay := time.Date(2025, 6, 3, 0, 1, 0, 0, loc)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, nextDay))
}

// Колонка DATE возвращается из БД как полночь UTC календарной даты.
// Сравнение идёт по компонентам даты, без приведения поясов: иначе для
// пояса западнее UTC сегодняшний маркер читался бы как вчерашний.
func TestSameDay_DateColumnRoundTrip(t *testing.T) {
	marker := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	west := time.FixedZone("EDT", -4*60*60)
	east := time.FixedZone("MSK", 3*60*60)

	assert.True(t, SameDay(DateOnly(time.Date(2025, 6, 2, 9, 0, 0, 0, west)), marker))
	assert.True(t, SameDay(DateOnly(time.Date(2025, 6, 2, 9, 0, 0, 0, east)), marker))
	assert.False(t, SameDay(DateOnly(time.Date(2025, 6, 3, 9, 0, 0, 0, west)), marker))
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("нет такой зоны"))
	loc := LoadLocation("UTC")
	assert.NotNil(t, loc)
}
