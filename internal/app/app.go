// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозитории, сервисы, обработчики
// и собирает всё в один объект Bot.
package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"serotonyl.ru/activity-bot/internal/bot"
	"serotonyl.ru/activity-bot/internal/common"
	"serotonyl.ru/activity-bot/internal/config"
	"serotonyl.ru/activity-bot/internal/db/postgres"
	"serotonyl.ru/activity-bot/internal/features/activity"
	"serotonyl.ru/activity-bot/internal/features/auth"
	"serotonyl.ru/activity-bot/internal/jobs"
)

// App содержит все компоненты приложения.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
	BotAPI    *tgbotapi.BotAPI
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Telegram API: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("Авторизован как @%s", botAPI.Self.UserName)

	// === 3. Репозитории ===
	activityRepo := activity.NewRepository(pool)
	authRepo := auth.NewRepository(pool)

	// === 4. Сервисы ===
	loc := common.LoadLocation(cfg.AppTimezone)
	authService := auth.NewService(authRepo, cfg.OwnerID)
	activityService := activity.NewService(
		activityRepo, activityRepo, authService,
		botAPI.Self.ID, cfg.WeeklyWeekday(), loc,
	)

	// === 5. Обработчики ===
	activityHandler := activity.NewHandler(activityService, authService, botAPI)
	authHandler := auth.NewHandler(authService, botAPI)

	// === 6. Собираем бота ===
	b := bot.New(botAPI, cfg, activityService, activityHandler, authHandler)

	// === 7. Планировщик задач ===
	scheduler := jobs.NewScheduler(activityService, loc)

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        pool,
		BotAPI:    botAPI,
	}, nil
}

// runMigrations выполняет все SQL-миграции.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.InitMigrations(ctx, pool); err != nil {
		return err
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Activity},
		{2, migration002Auth},
	}

	for _, m := range migrations {
		if err := postgres.ApplyMigration(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		log.Infof("Миграция %d применена", m.version)
	}

	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.

var migration001Activity = `
CREATE TABLE IF NOT EXISTS activity_counts (
    scope VARCHAR(16) NOT NULL,
    user_id BIGINT NOT NULL,
    display_name TEXT NOT NULL DEFAULT '',
    count BIGINT NOT NULL DEFAULT 0 CHECK (count >= 0),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),
    PRIMARY KEY (scope, user_id)
);
CREATE INDEX IF NOT EXISTS idx_activity_counts_scope_count
    ON activity_counts(scope, count DESC);

CREATE TABLE IF NOT EXISTS reset_markers (
    scope VARCHAR(16) PRIMARY KEY,
    last_reset_date DATE NOT NULL
);
`

var migration002Auth = `
CREATE TABLE IF NOT EXISTS allowed_groups (
    chat_id BIGINT PRIMARY KEY,
    added_at TIMESTAMP DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS supervisors (
    user_id BIGINT PRIMARY KEY,
    added_at TIMESTAMP DEFAULT NOW()
);
`
