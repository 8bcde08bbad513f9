// Package auth реализует трёхуровневую модель прав:
// владелец → супервайзеры → разрешённые групповые чаты.
// models.go описывает структуры реестра и результаты админ-операций.
package auth

import "time"

// AllowedGroup — групповой чат, активированный для подсчёта.
// Создаётся админ-командой; автоматического удаления нет.
type AllowedGroup struct {
	ChatID  int64     `db:"chat_id"`
	AddedAt time.Time `db:"added_at"`
}

// Supervisor — пользователь с правами уровня ниже владельца
// (может регистрировать чаты, но не назначать супервайзеров).
// Владелец строкой в этой таблице НЕ представлен — он задаётся конфигурацией.
type Supervisor struct {
	UserID  int64     `db:"user_id"`
	AddedAt time.Time `db:"added_at"`
}

// PromoteResult — результат назначения супервайзера.
type PromoteResult int

const (
	// PromoteAdded — пользователь добавлен в супервайзеры
	PromoteAdded PromoteResult = iota
	// PromoteAlreadyPresent — пользователь уже был супервайзером
	PromoteAlreadyPresent
	// PromoteRejectedIsOwner — попытка назначить владельца; запись не создаётся
	PromoteRejectedIsOwner
)

// String возвращает имя результата для логов.
func (r PromoteResult) String() string {
	switch r {
	case PromoteAdded:
		return "added"
	case PromoteAlreadyPresent:
		return "already_present"
	case PromoteRejectedIsOwner:
		return "rejected_is_owner"
	}
	return "unknown"
}

// RegisterResult — результат регистрации чата.
type RegisterResult int

const (
	// RegisterAdded — чат добавлен в список разрешённых
	RegisterAdded RegisterResult = iota
	// RegisterAlreadyPresent — чат уже был в списке
	RegisterAlreadyPresent
)

// String возвращает имя результата для логов.
func (r RegisterResult) String() string {
	switch r {
	case RegisterAdded:
		return "added"
	case RegisterAlreadyPresent:
		return "already_present"
	}
	return "unknown"
}
