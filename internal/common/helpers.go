// Package common содержит общие утилиты, используемые во всём проекте.
// helpers.go — работа с календарными датами в часовом поясе бота.
package common

import "time"

// DateOnly обрезает время до полуночи, сохраняя часовой пояс.
// Все сравнения «сброс уже был сегодня?» идут через эту функцию,
// чтобы дата была однозначной независимо от времени суток.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay сообщает, приходятся ли два значения на одну календарную дату.
// Компоненты даты сравниваются как есть, БЕЗ приведения часовых поясов:
// маркер сброса — чистая календарная дата (колонка DATE), из БД она
// приходит как полночь UTC, и конвертация в пояс бота западнее UTC
// сдвинула бы её на вчера — планировщик чистил бы период повторно.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// LoadLocation загружает часовой пояс по имени.
// Если база зон недоступна (минимальный Docker-образ) — UTC как запасной вариант.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
