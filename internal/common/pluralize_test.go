package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralizeMessages(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "сообщений"},
		{1, "сообщение"},
		{2, "сообщения"},
		{4, "сообщения"},
		{5, "сообщений"},
		{11, "сообщений"},
		{12, "сообщений"},
		{14, "сообщений"},
		{21, "сообщение"},
		{22, "сообщения"},
		{100, "сообщений"},
		{101, "сообщение"},
		{111, "сообщений"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralizeMessages(tt.n), "n=%d", tt.n)
	}
}

func TestFormatMessages(t *testing.T) {
	assert.Equal(t, "1 сообщение", FormatMessages(1))
	assert.Equal(t, "3 сообщения", FormatMessages(3))
	assert.Equal(t, "150 сообщений", FormatMessages(150))
}

func TestPluralizeUsers(t *testing.T) {
	assert.Equal(t, "участник", PluralizeUsers(1))
	assert.Equal(t, "участника", PluralizeUsers(3))
	assert.Equal(t, "участников", PluralizeUsers(7))
	assert.Equal(t, "участников", PluralizeUsers(12))
}
