// Package auth — service.go содержит логику проверки прав и две
// идемпотентные админ-операции: регистрацию чата и назначение супервайзера.
package auth

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Registry — контракт хранилища реестра прав.
// Реализуется Repository; в тестах подменяется in-memory реестром.
type Registry interface {
	AddGroup(ctx context.Context, chatID int64) (bool, error)
	GroupExists(ctx context.Context, chatID int64) (bool, error)
	AddSupervisor(ctx context.Context, userID int64) (bool, error)
	SupervisorExists(ctx context.Context, userID int64) (bool, error)
}

// Service управляет реестром прав.
// Владелец задаётся конфигурацией при сборке и в БД не хранится.
type Service struct {
	repo    Registry
	ownerID int64
}

// NewService создаёт сервис авторизации.
func NewService(repo Registry, ownerID int64) *Service {
	return &Service{repo: repo, ownerID: ownerID}
}

// IsOwner проверяет, является ли пользователь владельцем бота.
func (s *Service) IsOwner(userID int64) bool {
	return userID == s.ownerID
}

// IsSupervisor проверяет права уровня супервайзера.
// Владелец неявно обладает всеми правами супервайзера.
func (s *Service) IsSupervisor(ctx context.Context, userID int64) (bool, error) {
	if s.IsOwner(userID) {
		return true, nil
	}
	return s.repo.SupervisorExists(ctx, userID)
}

// IsGroupAllowed проверяет, активирован ли чат для подсчёта.
func (s *Service) IsGroupAllowed(ctx context.Context, chatID int64) (bool, error) {
	return s.repo.GroupExists(ctx, chatID)
}

// PromoteSupervisor назначает пользователя супервайзером.
// Владельца назначить нельзя — он и так выше по уровню, запись не создаётся.
// Операция идемпотентна: повторный вызов возвращает PromoteAlreadyPresent.
func (s *Service) PromoteSupervisor(ctx context.Context, userID int64) (PromoteResult, error) {
	if s.IsOwner(userID) {
		return PromoteRejectedIsOwner, nil
	}

	added, err := s.repo.AddSupervisor(ctx, userID)
	if err != nil {
		return PromoteAlreadyPresent, err
	}
	if !added {
		return PromoteAlreadyPresent, nil
	}

	log.WithField("user_id", userID).Info("Назначен новый супервайзер")
	return PromoteAdded, nil
}

// RegisterGroup добавляет чат в список разрешённых. Идемпотентна.
func (s *Service) RegisterGroup(ctx context.Context, chatID int64) (RegisterResult, error) {
	added, err := s.repo.AddGroup(ctx, chatID)
	if err != nil {
		return RegisterAlreadyPresent, err
	}
	if !added {
		return RegisterAlreadyPresent, nil
	}

	log.WithField("chat_id", chatID).Info("Чат активирован для подсчёта")
	return RegisterAdded, nil
}
