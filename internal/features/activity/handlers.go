// Package activity — handlers.go обрабатывает команды рейтинга:
// /my_rank, /my_weekly_rank, /my_monthly_rank и топы /top5_*, /top20_*.
package activity

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Authorizer — уровень прав, нужный обработчикам рейтинга.
// Реализуется auth.Service.
type Authorizer interface {
	IsGroupAllowed(ctx context.Context, chatID int64) (bool, error)
	IsSupervisor(ctx context.Context, userID int64) (bool, error)
}

// Поддерживаемые размеры топа. Остальные значения отклоняет обработчик,
// движок рейтинга их не ограничивает.
const (
	TopLimitSmall = 5
	TopLimitLarge = 20
)

// Handler обрабатывает команды рейтинга.
type Handler struct {
	service *Service
	auth    Authorizer
	bot     *tgbotapi.BotAPI
}

// NewHandler создаёт обработчик команд рейтинга.
func NewHandler(service *Service, auth Authorizer, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, auth: auth, bot: bot}
}

// HandleMyRank — команды /my_rank, /my_weekly_rank, /my_monthly_rank.
// Отвечает счётчиком и местом пользователя в периоде.
// В неактивированных чатах команда молча игнорируется.
func (h *Handler) HandleMyRank(ctx context.Context, chatID, userID int64, scope Scope) {
	if !h.chatActive(ctx, chatID) {
		return
	}

	count, rank, err := h.service.RankAndCount(ctx, scope, userID)
	if err != nil {
		log.WithError(err).WithField("scope", scope.String()).Error("Ошибка получения ранга")
		h.sendMessage(chatID, "❌ Не удалось получить твой ранг, попробуй позже")
		return
	}

	if count == 0 {
		h.sendMessage(chatID, FormatUnranked(scope))
		return
	}
	h.sendMessage(chatID, FormatRank(scope, count, rank))
}

// HandleTop — команды топов. Доступны только супервайзерам и владельцу
// (в исходном боте топы были доступны только админам чата).
func (h *Handler) HandleTop(ctx context.Context, chatID, userID int64, scope Scope, limit int) {
	if !h.chatActive(ctx, chatID) {
		return
	}

	if limit != TopLimitSmall && limit != TopLimitLarge {
		log.WithField("limit", limit).Warn("Неподдерживаемый размер топа")
		return
	}

	ok, err := h.auth.IsSupervisor(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Ошибка проверки прав супервайзера")
		h.sendMessage(chatID, "❌ Не удалось проверить твои права, попробуй позже")
		return
	}
	if !ok {
		h.sendMessage(chatID, "⛔ Эта команда доступна только супервайзерам.")
		return
	}

	entries, err := h.service.Leaderboard(ctx, scope, limit)
	if err != nil {
		log.WithError(err).WithField("scope", scope.String()).Error("Ошибка получения топа")
		h.sendMessage(chatID, "❌ Не удалось получить топ, попробуй позже")
		return
	}

	if len(entries) == 0 {
		h.sendMessage(chatID, "Пока никто не попал в рейтинг.")
		return
	}
	h.sendHTML(chatID, FormatLeaderboard(scope, limit, entries))
}

// chatActive проверяет allow-list для read-only команд рейтинга.
func (h *Handler) chatActive(ctx context.Context, chatID int64) bool {
	allowed, err := h.auth.IsGroupAllowed(ctx, chatID)
	if err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка проверки чата")
		return false
	}
	if !allowed {
		log.WithField("chat_id", chatID).Debug("Команда рейтинга в неактивированном чате")
	}
	return allowed
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка отправки сообщения")
	}
}

func (h *Handler) sendHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка отправки сообщения")
	}
}
