// Package bot содержит главный модуль бота — инициализацию, запуск и остановку.
// bot.go запускает long polling и маршрутизирует апдейты: команды — в
// обработчики, обычные сообщения из групп — в конвейер подсчёта активности.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"serotonyl.ru/activity-bot/internal/bot/middleware"
	"serotonyl.ru/activity-bot/internal/config"
	"serotonyl.ru/activity-bot/internal/features/activity"
	"serotonyl.ru/activity-bot/internal/features/auth"
)

// Bot — главная структура бота, объединяющая все компоненты.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config

	rateLimiter *middleware.RateLimiter

	activityService *activity.Service
	activityHandler *activity.Handler
	authHandler     *auth.Handler

	parser *CommandParser

	// ограничитель параллелизма обработки апдейтов
	inflight chan struct{}
}

// New создаёт новый экземпляр бота со всеми зависимостями.
func New(
	api *tgbotapi.BotAPI,
	cfg *config.Config,
	activityService *activity.Service,
	activityHandler *activity.Handler,
	authHandler *auth.Handler,
) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	return &Bot{
		api:             api,
		cfg:             cfg,
		rateLimiter:     middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		activityService: activityService,
		activityHandler: activityHandler,
		authHandler:     authHandler,
		parser:          NewCommandParser(),
		inflight:        make(chan struct{}, maxInFlight),
	}
}

// Start запускает polling обновлений от Telegram.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	// Закрываем на любом пути выхода: и по ctx, и при закрытии канала updates,
	// иначе горутина очистки лимитера переживёт бота.
	defer b.rateLimiter.Close()

	log.WithFields(log.Fields{
		"max_inflight": b.cfg.BotMaxInflight,
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Бот запущен и ожидает сообщения...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Бот останавливается (ctx done)...")
			b.api.StopReceivingUpdates()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("Канал updates закрыт, бот остановлен")
				return
			}

			// лимит параллелизма
			b.inflight <- struct{}{}
			go func(upd tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, upd)
			}(update)
		}
	}
}

// handleUpdate обрабатывает одно обновление от Telegram.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	if update.Message == nil || update.Message.Text == "" {
		return
	}
	message := update.Message
	if message.From == nil || message.Chat == nil {
		return
	}

	// Логируем входящее
	middleware.LogMessage(message)

	chatID := message.Chat.ID
	userID := message.From.ID

	cmd, args, isCommand := b.parser.ParseCommand(message.Text)

	if isCommand {
		// Rate limiting — только для команд. Подсчёт сообщений лимитировать
		// нельзя: каждое сообщение должно попасть в счётчики.
		if !b.rateLimiter.Allow(userID) {
			log.WithField("user_id", userID).Debug("rate limited")
			return
		}
		b.routeCommand(ctx, chatID, userID, cmd, args)
		return
	}

	// Не команда: в групповом чате считаем сообщение.
	// Проверка allow-list и отсечение собственных сообщений бота —
	// внутри конвейера, в начале.
	if message.Chat.IsGroup() || message.Chat.IsSuperGroup() {
		if err := b.activityService.CountMessage(ctx, chatID, userID, displayName(message.From)); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"chat_id": chatID,
				"user_id": userID,
			}).Error("Ошибка подсчёта сообщения")
		}
	}
}

// routeCommand маршрутизирует команду к нужному обработчику.
func (b *Bot) routeCommand(ctx context.Context, chatID, userID int64, cmd string, args []string) {
	log.WithFields(log.Fields{
		"cmd":  cmd,
		"args": args,
	}).Debug("routing command")

	switch cmd {
	case "start", "help":
		b.sendMessage(chatID, "Я считаю сообщения в чате. Команды: /my_rank, /my_weekly_rank, /my_monthly_rank, /top5_weekly, /top20_weekly, /top5_monthly, /top20_monthly, /top5_all, /top20_all")

	case "my_rank":
		b.activityHandler.HandleMyRank(ctx, chatID, userID, activity.ScopeAllTime)
	case "my_weekly_rank":
		b.activityHandler.HandleMyRank(ctx, chatID, userID, activity.ScopeWeekly)
	case "my_monthly_rank":
		b.activityHandler.HandleMyRank(ctx, chatID, userID, activity.ScopeMonthly)

	case "top5_weekly":
		b.activityHandler.HandleTop(ctx, chatID, userID, activity.ScopeWeekly, activity.TopLimitSmall)
	case "top20_weekly":
		b.activityHandler.HandleTop(ctx, chatID, userID, activity.ScopeWeekly, activity.TopLimitLarge)
	case "top5_monthly":
		b.activityHandler.HandleTop(ctx, chatID, userID, activity.ScopeMonthly, activity.TopLimitSmall)
	case "top20_monthly":
		b.activityHandler.HandleTop(ctx, chatID, userID, activity.ScopeMonthly, activity.TopLimitLarge)
	case "top5_all":
		b.activityHandler.HandleTop(ctx, chatID, userID, activity.ScopeAllTime, activity.TopLimitSmall)
	case "top20_all":
		b.activityHandler.HandleTop(ctx, chatID, userID, activity.ScopeAllTime, activity.TopLimitLarge)

	case "add_chat":
		b.authHandler.HandleRegisterChat(ctx, chatID, userID)
	case "add_supervisor":
		b.authHandler.HandlePromoteSupervisor(ctx, chatID, userID, args)
	}
}

// displayName возвращает имя для таблиц: @username, если он есть,
// иначе имя + фамилия. Хранится как есть, экранируется при рендеринге.
func displayName(user *tgbotapi.User) string {
	if user.UserName != "" {
		return user.UserName
	}
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return name
}

// sendMessage — утилита для отправки сообщений.
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка отправки сообщения")
	}
}
