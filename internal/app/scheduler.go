package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SessionStore — реестр сессий чатов, который чистит планировщик
type SessionStore interface {
	Sweep(idle time.Duration) []int64
	Len() int
}

// AssistantStore удаляет панели ассистента у вычищенных чатов
type AssistantStore interface {
	Unmount(chatID int64)
}

// DialogStore сбрасывает незавершённые диалоги вычищенных чатов
type DialogStore interface {
	ClearState(chatID int64)
}

// SessionGauge получает число живых сессий после каждой чистки
type SessionGauge interface {
	SetActiveSessions(n int)
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	sessions   SessionStore
	assistants AssistantStore
	dialogs    DialogStore
	gauge      SessionGauge
	idleTTL    time.Duration
	interval   time.Duration
	logger     *zap.Logger
	stopChan   chan struct{}
}

// NewScheduler создаёт новый планировщик. Чистка идёт каждые idleTTL/4,
// но не реже раза в минуту.
func NewScheduler(
	sessions SessionStore,
	assistants AssistantStore,
	dialogs DialogStore,
	gauge SessionGauge,
	idleTTL time.Duration,
	logger *zap.Logger,
) *Scheduler {
	interval := idleTTL / 4
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}

	return &Scheduler{
		sessions:   sessions,
		assistants: assistants,
		dialogs:    dialogs,
		gauge:      gauge,
		idleTTL:    idleTTL,
		interval:   interval,
		logger:     logger,
		stopChan:   make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler",
		zap.Duration("idle_ttl", s.idleTTL),
		zap.Duration("interval", s.interval))

	go s.runSweepTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

func (s *Scheduler) runSweepTask(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SweepOnce()
		case <-s.stopChan:
			s.logger.Info("Session sweep task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Session sweep task cancelled")
			return
		}
	}
}

// SweepOnce удаляет простаивающие сессии вместе с панелями ассистента и диалогами
func (s *Scheduler) SweepOnce() int {
	dropped := s.sessions.Sweep(s.idleTTL)
	for _, chatID := range dropped {
		s.assistants.Unmount(chatID)
		s.dialogs.ClearState(chatID)
	}

	active := s.sessions.Len()
	s.gauge.SetActiveSessions(active)

	if len(dropped) > 0 {
		s.logger.Info("Idle sessions swept",
			zap.Int("dropped", len(dropped)),
			zap.Int("active", active))
	}

	return len(dropped)
}
