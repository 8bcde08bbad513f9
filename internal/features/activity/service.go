// Package activity — service.go содержит основную бизнес-логику:
// конвейер приёма сообщений, ленивый планировщик сбросов и расчёт рейтинга.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"serotonyl.ru/activity-bot/internal/common"
)

// CounterStore — контракт хранилища счётчиков (§ activity_counts).
// Реализуется Repository; в тестах подменяется in-memory хранилищем.
type CounterStore interface {
	Increment(ctx context.Context, scope Scope, userID int64, displayName string) error
	Get(ctx context.Context, scope Scope, userID int64) (*Record, error)
	CountGreaterThan(ctx context.Context, scope Scope, threshold int64) (int, error)
	TopN(ctx context.Context, scope Scope, limit int) ([]TopEntry, error)
	Population(ctx context.Context, scope Scope) (int, error)
	Clear(ctx context.Context, scope Scope) error
}

// ResetLedger — контракт журнала сбросов (§ reset_markers).
type ResetLedger interface {
	LastResetDate(ctx context.Context, scope Scope) (time.Time, error)
	SetResetDate(ctx context.Context, scope Scope, day time.Time) error
}

// GroupGate проверяет, активирован ли чат для подсчёта.
// Реализуется auth.Service.
type GroupGate interface {
	IsGroupAllowed(ctx context.Context, chatID int64) (bool, error)
}

// Service управляет подсчётом активности.
type Service struct {
	store  CounterStore
	ledger ResetLedger
	gate   GroupGate

	selfID    int64        // ID самого бота: свои сообщения не считаем
	weeklyDay time.Weekday // День еженедельного сброса
	loc       *time.Location

	// Источник времени; в тестах подменяется фиксированной датой.
	now func() time.Time
}

// NewService создаёт сервис подсчёта активности.
func NewService(store CounterStore, ledger ResetLedger, gate GroupGate, selfID int64, weeklyDay time.Weekday, loc *time.Location) *Service {
	return &Service{
		store:     store,
		ledger:    ledger,
		gate:      gate,
		selfID:    selfID,
		weeklyDay: weeklyDay,
		loc:       loc,
		now:       time.Now,
	}
}

// CountMessage — конвейер приёма одного текстового сообщения из чата.
//
// Алгоритм:
//  1. Чат не в списке разрешённых — молча выходим, никаких побочных эффектов
//  2. Сообщение от самого бота — молча выходим (эхо не считаем)
//  3. Проверяем, не пора ли сбросить недельный/месячный периоды
//  4. Увеличиваем счётчики во всех трёх периодах
//
// Результат вызывающему не возвращается — операция fire-and-forget,
// ошибки хранилища поднимаются наверх только для логирования.
func (s *Service) CountMessage(ctx context.Context, chatID, userID int64, displayName string) error {
	allowed, err := s.gate.IsGroupAllowed(ctx, chatID)
	if err != nil {
		return fmt.Errorf("ошибка проверки чата: %w", err)
	}
	if !allowed {
		log.WithFields(log.Fields{"chat_id": chatID}).Debug("Сообщение из неактивированного чата — пропускаем")
		return nil
	}

	if userID == s.selfID {
		return nil
	}

	// Ленивый сброс: проверяется на каждом сообщении, отдельного таймера нет.
	// Если в день сброса сообщений не было — сброс случится при следующем.
	if err := s.applyDueResets(ctx); err != nil {
		return err
	}

	for _, scope := range AllScopes {
		if err := s.store.Increment(ctx, scope, userID, displayName); err != nil {
			return err
		}
	}
	return nil
}

// applyDueResets применяет назревшие сбросы периодов.
// Инвариант: не больше одного сброса на период в календарный день.
// Порядок «очистить, потом отметить» делает повторный заход безопасным:
// прерывание между шагами ведёт к лишней очистке пустого периода, не к потере.
func (s *Service) applyDueResets(ctx context.Context) error {
	today := common.DateOnly(s.now().In(s.loc))

	for _, scope := range ResettableScopes {
		if !s.resetDue(scope, today) {
			continue
		}

		last, err := s.ledger.LastResetDate(ctx, scope)
		if err != nil {
			return err
		}
		if !last.IsZero() && common.SameDay(today, last) {
			// Сегодня уже сбрасывали
			continue
		}

		if err := s.store.Clear(ctx, scope); err != nil {
			return err
		}
		if err := s.ledger.SetResetDate(ctx, scope, today); err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"scope": scope.String(),
			"date":  today.Format("2006-01-02"),
		}).Info("Период сброшен")
	}
	return nil
}

// resetDue проверяет триггер сброса для календарного дня:
// недельный — настроенный день недели, месячный — первое число.
func (s *Service) resetDue(scope Scope, day time.Time) bool {
	switch scope {
	case ScopeWeekly:
		return day.Weekday() == s.weeklyDay
	case ScopeMonthly:
		return day.Day() == 1
	}
	return false
}

// RankAndCount возвращает счётчик пользователя и его плотный соревновательный
// ранг в периоде: rank = (число пользователей со строго большим счётчиком) + 1,
// равные счётчики делят один ранг. Для пользователя без записи — (0, 0).
func (s *Service) RankAndCount(ctx context.Context, scope Scope, userID int64) (int64, int, error) {
	rec, err := s.store.Get(ctx, scope, userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	greater, err := s.store.CountGreaterThan(ctx, scope, rec.Count)
	if err != nil {
		return 0, 0, err
	}
	return rec.Count, greater + 1, nil
}

// Leaderboard возвращает топ периода по убыванию счётчика.
// Допустимость limit (5 или 20) — забота вызывающего обработчика.
func (s *Service) Leaderboard(ctx context.Context, scope Scope, limit int) ([]TopEntry, error) {
	if !scope.Valid() {
		return nil, common.ErrUnknownScope
	}
	return s.store.TopN(ctx, scope, limit)
}

// ScopeSummary — сводка по одному периоду для ночного лога.
type ScopeSummary struct {
	Scope      Scope
	Population int
	Leader     *TopEntry // nil, если период пуст
}

// DailySummary собирает сводку по всем периодам. Только чтение,
// счётчики и маркеры не трогает. Используется cron-задачей.
func (s *Service) DailySummary(ctx context.Context) ([]ScopeSummary, error) {
	out := make([]ScopeSummary, 0, len(AllScopes))
	for _, scope := range AllScopes {
		population, err := s.store.Population(ctx, scope)
		if err != nil {
			return nil, err
		}
		summary := ScopeSummary{Scope: scope, Population: population}
		if population > 0 {
			top, err := s.store.TopN(ctx, scope, 1)
			if err != nil {
				return nil, err
			}
			if len(top) > 0 {
				summary.Leader = &top[0]
			}
		}
		out = append(out, summary)
	}
	return out, nil
}
