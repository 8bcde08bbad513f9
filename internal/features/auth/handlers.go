// Package auth — handlers.go обрабатывает админ-команды:
// /add_chat (регистрация чата) и /add_supervisor (назначение супервайзера).
package auth

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Handler обрабатывает админ-команды.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler создаёт обработчик админ-команд.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleRegisterChat — команда /add_chat. Активирует текущий чат для
// подсчёта. Доступна супервайзерам и владельцу.
func (h *Handler) HandleRegisterChat(ctx context.Context, chatID, userID int64) {
	ok, err := h.service.IsSupervisor(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Ошибка проверки прав супервайзера")
		h.sendMessage(chatID, "❌ Не удалось проверить твои права, попробуй позже")
		return
	}
	if !ok {
		h.sendMessage(chatID, "⛔ Активировать чат может только супервайзер или владелец.")
		return
	}

	result, err := h.service.RegisterGroup(ctx, chatID)
	if err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка регистрации чата")
		h.sendMessage(chatID, "❌ Не удалось активировать чат, попробуй позже")
		return
	}

	switch result {
	case RegisterAdded:
		h.sendMessage(chatID, "✅ Чат активирован — считаю сообщения.")
	case RegisterAlreadyPresent:
		h.sendMessage(chatID, "Чат уже активирован.")
	}
}

// HandlePromoteSupervisor — команда /add_supervisor <user_id>.
// Доступна только владельцу.
func (h *Handler) HandlePromoteSupervisor(ctx context.Context, chatID, userID int64, args []string) {
	if !h.service.IsOwner(userID) {
		h.sendMessage(chatID, "⛔ Назначать супервайзеров может только владелец.")
		return
	}

	if len(args) < 1 {
		h.sendMessage(chatID, "❌ Формат: /add_supervisor <user_id>")
		return
	}
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || targetID == 0 {
		h.sendMessage(chatID, "❌ user_id должен быть числом")
		return
	}

	result, err := h.service.PromoteSupervisor(ctx, targetID)
	if err != nil {
		log.WithError(err).WithField("user_id", targetID).Error("Ошибка назначения супервайзера")
		h.sendMessage(chatID, "❌ Не удалось назначить супервайзера, попробуй позже")
		return
	}

	switch result {
	case PromoteAdded:
		h.sendMessage(chatID, "✅ Супервайзер назначен.")
	case PromoteAlreadyPresent:
		h.sendMessage(chatID, "Этот пользователь уже супервайзер.")
	case PromoteRejectedIsOwner:
		h.sendMessage(chatID, "Владелец и так обладает всеми правами.")
	}
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка отправки сообщения")
	}
}
