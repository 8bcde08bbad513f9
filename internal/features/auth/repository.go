// Package auth — repository.go выполняет операции с таблицами
// allowed_groups и supervisors.
package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository работает с таблицами реестра прав.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий реестра.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// AddGroup добавляет чат в список разрешённых.
// Возвращает true, если строка была создана, и false, если чат уже был в
// списке. Один оператор: повторные вызовы сходятся к одному состоянию.
func (r *Repository) AddGroup(ctx context.Context, chatID int64) (bool, error) {
	query := `INSERT INTO allowed_groups (chat_id) VALUES ($1) ON CONFLICT (chat_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, query, chatID)
	if err != nil {
		return false, fmt.Errorf("ошибка регистрации чата (chat_id=%d): %w", chatID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// GroupExists проверяет, разрешён ли чат.
func (r *Repository) GroupExists(ctx context.Context, chatID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM allowed_groups WHERE chat_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, chatID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки чата (chat_id=%d): %w", chatID, err)
	}
	return exists, nil
}

// AddSupervisor добавляет пользователя в супервайзеры.
// Возвращает true, если строка была создана.
func (r *Repository) AddSupervisor(ctx context.Context, userID int64) (bool, error) {
	query := `INSERT INTO supervisors (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка назначения супервайзера (user_id=%d): %w", userID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// SupervisorExists проверяет, является ли пользователь супервайзером.
func (r *Repository) SupervisorExists(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM supervisors WHERE user_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки супервайзера (user_id=%d): %w", userID, err)
	}
	return exists, nil
}
