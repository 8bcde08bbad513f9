// Package activity — format.go собирает тексты ответов.
// Экранирование имён — забота ЭТОГО слоя: в БД имена лежат как есть,
// HTML-разметка нейтрализуется только при рендеринге.
package activity

import (
	"fmt"
	"html"
	"strings"

	"serotonyl.ru/activity-bot/internal/common"
)

// medals — эмодзи для первых трёх мест таблицы лидеров.
var medals = [3]string{"🥇", "🥈", "🥉"}

// leaderboardTitle возвращает заголовок топа для периода.
func leaderboardTitle(scope Scope, limit int) string {
	switch scope {
	case ScopeWeekly:
		return fmt.Sprintf("Топ-%d за неделю", limit)
	case ScopeMonthly:
		return fmt.Sprintf("Топ-%d за месяц", limit)
	default:
		return fmt.Sprintf("Топ-%d за всё время", limit)
	}
}

// scopeGenitive — период в родительном падеже для ответов о ранге.
func scopeGenitive(scope Scope) string {
	switch scope {
	case ScopeWeekly:
		return "за эту неделю"
	case ScopeMonthly:
		return "за этот месяц"
	default:
		return "за всё время"
	}
}

// FormatLeaderboard рендерит таблицу лидеров в HTML для Telegram.
//
// Формат:
//
//	<b>Топ-5 за неделю</b>
//
//	1. Ali: 10 сообщений 🥇
//	2. Вика: 7 сообщений 🥈
//	...
func FormatLeaderboard(scope Scope, limit int, entries []TopEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", html.EscapeString(leaderboardTitle(scope, limit)))

	for i, e := range entries {
		medal := ""
		if i < len(medals) {
			medal = " " + medals[i]
		}
		fmt.Fprintf(&b, "%d. %s: %s%s\n",
			i+1, html.EscapeString(e.DisplayName), common.FormatMessages(e.Count), medal)
	}
	return b.String()
}

// FormatRank рендерит ответ на запрос собственного ранга.
func FormatRank(scope Scope, count int64, rank int) string {
	return fmt.Sprintf("Твои сообщения %s: %s\nТвоё место: %d",
		scopeGenitive(scope), common.FormatMessages(count), rank)
}

// FormatUnranked — ответ пользователю без записи счётчика.
func FormatUnranked(scope Scope) string {
	return fmt.Sprintf("Ты ещё не отправлял сообщений %s.", scopeGenitive(scope))
}
