// Package activity — repository.go выполняет операции с таблицами
// activity_counts и reset_markers. Каждая функция — один SQL-запрос;
// инкремент атомарен на уровне оператора, потерянных обновлений нет.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"serotonyl.ru/activity-bot/internal/common"
)

// Repository работает с таблицами activity_counts и reset_markers.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий счётчиков.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Increment создаёт запись со счётчиком 1 или увеличивает существующую на 1,
// попутно перезаписывая отображаемое имя. Один upsert-оператор:
// конкурентные инкременты одного пользователя сериализует сама БД.
func (r *Repository) Increment(ctx context.Context, scope Scope, userID int64, displayName string) error {
	query := `
		INSERT INTO activity_counts (scope, user_id, display_name, count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (scope, user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    count = activity_counts.count + 1,
		    updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, scope.String(), userID, displayName); err != nil {
		return fmt.Errorf("ошибка инкремента счётчика (%s, user_id=%d): %w", scope, userID, err)
	}
	return nil
}

// Get возвращает счётчик пользователя в периоде.
// Если записи нет — common.ErrUserNotFound (нормальная ситуация, не сбой).
func (r *Repository) Get(ctx context.Context, scope Scope, userID int64) (*Record, error) {
	query := `
		SELECT user_id, display_name, count, created_at, updated_at
		FROM activity_counts
		WHERE scope = $1 AND user_id = $2
	`
	var rec Record
	err := r.db.QueryRow(ctx, query, scope.String(), userID).Scan(
		&rec.UserID, &rec.DisplayName, &rec.Count, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("счётчик не найден (%s, user_id=%d): %w", scope, userID, common.ErrUserNotFound)
		}
		return nil, fmt.Errorf("ошибка чтения счётчика (%s, user_id=%d): %w", scope, userID, err)
	}
	return &rec, nil
}

// CountGreaterThan возвращает число записей периода со счётчиком строго больше
// порога. Используется для вычисления плотного соревновательного ранга.
func (r *Repository) CountGreaterThan(ctx context.Context, scope Scope, threshold int64) (int, error) {
	query := `SELECT COUNT(*) FROM activity_counts WHERE scope = $1 AND count > $2`
	var n int
	if err := r.db.QueryRow(ctx, query, scope.String(), threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта ранга (%s): %w", scope, err)
	}
	return n, nil
}

// TopN возвращает лучших пользователей периода по убыванию счётчика.
// При равенстве — по user_id, чтобы порядок был стабильным между вызовами.
func (r *Repository) TopN(ctx context.Context, scope Scope, limit int) ([]TopEntry, error) {
	query := `
		SELECT display_name, count
		FROM activity_counts
		WHERE scope = $1
		ORDER BY count DESC, user_id ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, scope.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса топа (%s): %w", scope, err)
	}
	defer rows.Close()

	var out []TopEntry
	for rows.Next() {
		var e TopEntry
		if err := rows.Scan(&e.DisplayName, &e.Count); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки топа: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк топа: %w", err)
	}
	return out, nil
}

// Population возвращает общее число записей периода. Используется ночной сводкой.
func (r *Repository) Population(ctx context.Context, scope Scope) (int, error) {
	query := `SELECT COUNT(*) FROM activity_counts WHERE scope = $1`
	var n int
	if err := r.db.QueryRow(ctx, query, scope.String()).Scan(&n); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта записей (%s): %w", scope, err)
	}
	return n, nil
}

// Clear удаляет все записи периода. Вызывается ТОЛЬКО планировщиком сброса.
// Повторный вызов на пустом периоде — безопасный no-op.
func (r *Repository) Clear(ctx context.Context, scope Scope) error {
	query := `DELETE FROM activity_counts WHERE scope = $1`
	if _, err := r.db.Exec(ctx, query, scope.String()); err != nil {
		return fmt.Errorf("ошибка очистки периода (%s): %w", scope, err)
	}
	return nil
}

// LastResetDate возвращает дату последнего применённого сброса периода.
// Если сброса ещё не было — нулевое время без ошибки.
func (r *Repository) LastResetDate(ctx context.Context, scope Scope) (time.Time, error) {
	query := `SELECT last_reset_date FROM reset_markers WHERE scope = $1`
	var day time.Time
	err := r.db.QueryRow(ctx, query, scope.String()).Scan(&day)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("ошибка чтения маркера сброса (%s): %w", scope, err)
	}
	return day, nil
}

// SetResetDate записывает дату применённого сброса (одна строка на период).
func (r *Repository) SetResetDate(ctx context.Context, scope Scope, day time.Time) error {
	query := `
		INSERT INTO reset_markers (scope, last_reset_date)
		VALUES ($1, $2)
		ON CONFLICT (scope) DO UPDATE
		SET last_reset_date = EXCLUDED.last_reset_date
	`
	if _, err := r.db.Exec(ctx, query, scope.String(), day); err != nil {
		return fmt.Errorf("ошибка записи маркера сброса (%s): %w", scope, err)
	}
	return nil
}
