package activity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLeaderboard(t *testing.T) {
	entries := []TopEntry{
		{DisplayName: "Ali", Count: 10},
		{DisplayName: "Вика", Count: 7},
		{DisplayName: "Петя", Count: 7},
		{DisplayName: "Гоша", Count: 1},
	}

	text := FormatLeaderboard(ScopeWeekly, 5, entries)

	assert.Contains(t, text, "<b>Топ-5 за неделю</b>")
	assert.Contains(t, text, "1. Ali: 10 сообщений 🥇")
	assert.Contains(t, text, "2. Вика: 7 сообщений 🥈")
	assert.Contains(t, text, "3. Петя: 7 сообщений 🥉")
	// Четвёртое место без медали и с правильным склонением
	assert.Contains(t, text, "4. Гоша: 1 сообщение\n")
}

// Имя с разметкой нейтрализуется при рендеринге, а не при записи в БД.
func TestFormatLeaderboard_EscapesDisplayNames(t *testing.T) {
	entries := []TopEntry{
		{DisplayName: "<b>хитрец</b>", Count: 3},
	}

	text := FormatLeaderboard(ScopeMonthly, 5, entries)

	assert.NotContains(t, text, "<b>хитрец</b>")
	assert.Contains(t, text, "&lt;b&gt;хитрец&lt;/b&gt;")
	// Заголовок остаётся единственной жирной частью
	assert.Equal(t, 1, strings.Count(text, "<b>"))
}

func TestFormatRank(t *testing.T) {
	text := FormatRank(ScopeWeekly, 21, 3)
	assert.Contains(t, text, "за эту неделю: 21 сообщение")
	assert.Contains(t, text, "Твоё место: 3")

	text = FormatRank(ScopeAllTime, 5, 1)
	assert.Contains(t, text, "за всё время: 5 сообщений")
}

func TestFormatUnranked(t *testing.T) {
	assert.Contains(t, FormatUnranked(ScopeWeekly), "за эту неделю")
	assert.Contains(t, FormatUnranked(ScopeMonthly), "за этот месяц")
	assert.Contains(t, FormatUnranked(ScopeAllTime), "за всё время")
}
