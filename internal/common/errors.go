// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях бота.
// Эти ошибки позволяют обработчикам различать типы проблем
// и отправлять пользователю понятные сообщения.
package common

import "errors"

// Ошибки счётчиков активности
var (
	// ErrUserNotFound — у пользователя нет записи счётчика в этом периоде.
	// Это НЕ сбой: обработчики превращают её в ответ «ещё нет сообщений».
	ErrUserNotFound = errors.New("пользователь не найден")
	// ErrUnknownScope — неизвестный период подсчёта (баг вызывающего кода)
	ErrUnknownScope = errors.New("неизвестный период подсчёта")
)

// Ошибки авторизации
var (
	// ErrNotAuthorized — у пользователя нет нужного уровня прав
	ErrNotAuthorized = errors.New("недостаточно прав для этой команды")
	// ErrChatNotAllowed — чат не добавлен в список разрешённых
	ErrChatNotAllowed = errors.New("чат не активирован для подсчёта")
)
