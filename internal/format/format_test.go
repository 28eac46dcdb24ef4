package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestPriceRange(t *testing.T) {
	tests := []struct {
		name      string
		low, high *float64
		want      string
	}{
		{"missing low", nil, ptr(90), ""},
		{"zero low", ptr(0), ptr(90), ""},
		{"single price", ptr(85), ptr(85), "$85"},
		{"no high", ptr(85), nil, "$85"},
		{"range", ptr(85), ptr(120), "$85–$120"},
		{"thousands", ptr(1200), ptr(2500), "$1,200–$2,500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceRange(tt.low, tt.high))
		})
	}
}

func TestDecimal(t *testing.T) {
	for in, want := range map[string]float64{"90": 90, "85.50": 85.5, "$120": 120, " 0 ": 0} {
		got, ok := Decimal(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "cheap", "NaN", "Inf", "+Infinity", "-5", "0x1p4", "1e3", "1,250", "$", ".5"} {
		_, ok := Decimal(in)
		assert.False(t, ok, in)
	}
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "", Phone(""))
	assert.Equal(t, "(510) 555-0199", Phone("510.555.0199"))
	assert.Equal(t, "+1 (510) 555-0199", Phone("1-510-555-0199"))
	assert.Equal(t, "555-0199", Phone("555-0199"))
	assert.Equal(t, "25105550199", Phone("25105550199"))
}

func TestPhoneMask(t *testing.T) {
	assert.Equal(t, "", PhoneMask("abc"))
	assert.Equal(t, "(51", PhoneMask("51"))
	assert.Equal(t, "(510) 55", PhoneMask("51055"))
	assert.Equal(t, "(510) 555-0199", PhoneMask("5105550199"))
	assert.Equal(t, "(510) 555-0199", PhoneMask("510555019988"))
}

func TestMicrochip(t *testing.T) {
	assert.Equal(t, "985112003456789", Microchip("985-112-003-456-789-12"))
	assert.Equal(t, "123456789", Microchip("123 456 789"))

	assert.True(t, ValidMicrochipLength(0))
	assert.True(t, ValidMicrochipLength(9))
	assert.True(t, ValidMicrochipLength(10))
	assert.True(t, ValidMicrochipLength(15))
	assert.False(t, ValidMicrochipLength(11))
}

func TestHoursLines(t *testing.T) {
	assert.Empty(t, HoursLines(""))
	assert.Equal(t,
		[]string{"Mon-Fri 8am-6pm", "Sat 9am-1pm, by appointment", "Emergency 24/7"},
		HoursLines("Mon-Fri 8am-6pm, Sat 9am-1pm, by appointment, Emergency 24/7"),
	)
	assert.Equal(t, []string{"Open daily, 8-8"}, HoursLines("Open daily, 8-8"))
	assert.Equal(t, []string{"mon 9-5", "tue 9-5"}, HoursLines("mon 9-5,tue 9-5"))
}

func TestNoteLines(t *testing.T) {
	assert.Empty(t, NoteLines(""))
	assert.Equal(t, []string{"Fear Free certified", "Cats only"}, NoteLines("Fear Free certified / Cats only "))
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "< 1 year old", Age(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "1 year old", Age(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "7 years old", Age(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestSpeciesEmoji(t *testing.T) {
	assert.Equal(t, "🐶", SpeciesEmoji("Dog"))
	assert.Equal(t, "🐱", SpeciesEmoji("Cat"))
	assert.Equal(t, "🐦", SpeciesEmoji("Bird"))
	assert.Equal(t, "🐰", SpeciesEmoji("Rabbit"))
	assert.Equal(t, "🐾", SpeciesEmoji("Iguana"))
}
