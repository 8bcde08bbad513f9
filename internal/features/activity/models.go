// Package activity реализует подсчёт активности в чате: счётчики сообщений
// по трём периодам, ленивый периодический сброс и рейтинг пользователей.
// models.go описывает период подсчёта и структуры данных счётчиков.
package activity

import "time"

// Scope — период подсчёта. Закрытое перечисление: имя периода никогда
// не собирается из текста команды, только через это перечисление.
type Scope int

const (
	// ScopeAllTime — за всё время, не сбрасывается
	ScopeAllTime Scope = iota
	// ScopeWeekly — с начала недели, сброс в настроенный день недели
	ScopeWeekly
	// ScopeMonthly — с начала месяца, сброс первого числа
	ScopeMonthly
)

// AllScopes перечисляет все периоды в порядке инкремента.
var AllScopes = []Scope{ScopeAllTime, ScopeWeekly, ScopeMonthly}

// ResettableScopes перечисляет периоды с периодическим сбросом.
var ResettableScopes = []Scope{ScopeWeekly, ScopeMonthly}

// String возвращает ключ периода для хранения в БД.
func (s Scope) String() string {
	switch s {
	case ScopeAllTime:
		return "all_time"
	case ScopeWeekly:
		return "weekly"
	case ScopeMonthly:
		return "monthly"
	}
	return "unknown"
}

// Valid сообщает, является ли значение одним из трёх известных периодов.
func (s Scope) Valid() bool {
	return s == ScopeAllTime || s == ScopeWeekly || s == ScopeMonthly
}

// Record — счётчик сообщений пользователя в одном периоде.
// Создаётся при первом сообщении, count монотонно растёт до сброса периода.
type Record struct {
	UserID      int64     `db:"user_id"`      // Telegram user ID (уникален в периоде)
	DisplayName string    `db:"display_name"` // Последнее наблюдаемое имя (перезаписывается)
	Count       int64     `db:"count"`        // Число сообщений с последнего сброса
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// TopEntry — строка таблицы лидеров.
type TopEntry struct {
	DisplayName string `db:"display_name"`
	Count       int64  `db:"count"`
}
