// Package common — pluralize.go содержит вспомогательные функции
// для правильного склонения русских числительных.
package common

import (
	"fmt"
	"math"
)

// PluralizeMessages возвращает правильную форму слова «сообщение» для числа n.
//
// Правила русского языка:
//   - n%10==1 И n%100!=11 → "сообщение" (1, 21, 31, 101, ...)
//   - n%10 в [2,4] И n%100 НЕ в [12,14] → "сообщения" (2, 3, 4, 22, ...)
//   - Остальные случаи → "сообщений" (0, 5-20, 25-30, 100, ...)
func PluralizeMessages(n int64) string {
	absN := int64(math.Abs(float64(n)))
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return "сообщение"
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return "сообщения"
	}
	return "сообщений"
}

// FormatMessages форматирует количество сообщений в читабельную строку.
// Пример: FormatMessages(150) → "150 сообщений"
func FormatMessages(n int64) string {
	return fmt.Sprintf("%d %s", n, PluralizeMessages(n))
}

// PluralizeUsers возвращает правильную форму слова «участник».
func PluralizeUsers(n int) string {
	absN := int(math.Abs(float64(n)))
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return "участник"
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return "участника"
	}
	return "участников"
}
