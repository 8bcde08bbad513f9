// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает единственную задачу — ночную сводку активности.
//
// Сбросы периодов здесь НЕ выполняются: они ленивые и срабатывают на первом
// сообщении дня сброса. Cron-задача только читает и логирует.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"serotonyl.ru/activity-bot/internal/features/activity"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron            *cron.Cron
	activityService *activity.Service
}

// NewScheduler создаёт планировщик задач в часовом поясе бота.
func NewScheduler(activityService *activity.Service, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(loc)),
		activityService: activityService,
	}
}

// Start запускает фоновые задачи.
func (s *Scheduler) Start(ctx context.Context) {
	// Ночная сводка в 00:05
	s.cron.AddFunc("5 0 * * *", func() {
		summaries, err := s.activityService.DailySummary(ctx)
		if err != nil {
			log.WithError(err).Error("[CRON] Ошибка сбора сводки активности")
			return
		}
		for _, sum := range summaries {
			fields := log.Fields{
				"scope": sum.Scope.String(),
				"users": sum.Population,
			}
			if sum.Leader != nil {
				fields["leader"] = sum.Leader.DisplayName
				fields["leader_count"] = sum.Leader.Count
			}
			log.WithFields(fields).Info("[CRON] Сводка активности")
		}
	})

	s.cron.Start()
	log.Info("Планировщик задач запущен")
}

// Stop останавливает планировщик.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}
