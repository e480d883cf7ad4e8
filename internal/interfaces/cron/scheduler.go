// Package cron agenda los barridos periódicos del flujo de mayoreo.
package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-dev/mayoreo-api/internal/application/wholesale"
	"github.com/wb-dev/mayoreo-api/pkg/config"
	"github.com/wb-dev/mayoreo-api/pkg/logger"
)

// Scheduler corre los dos barridos del flujo de mayoreo con expresiones cron
// configurables: cancelación automática de órdenes vencidas y recordatorios
// de pago.
type Scheduler struct {
	c   *cron.Cron
	uc  *wholesale.UseCase
	cfg config.WholesaleConfig
	log *logger.Logger
}

// NewScheduler construye el scheduler (no arranca hasta Start).
func NewScheduler(uc *wholesale.UseCase, cfg config.WholesaleConfig, log *logger.Logger) *Scheduler {
	return &Scheduler{
		c:   cron.New(),
		uc:  uc,
		cfg: cfg,
		log: log,
	}
}

// Start registra los jobs y arranca el loop del cron en su propia goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.c.AddFunc(s.cfg.AutoCancelCron, func() {
		if _, err := s.uc.AutoCancelStaleOrders(time.Now()); err != nil {
			s.log.Error().Err(err).Msg("barrido de cancelación falló")
		}
	}); err != nil {
		return fmt.Errorf("agendar cancelación automática (%q): %w", s.cfg.AutoCancelCron, err)
	}

	if _, err := s.c.AddFunc(s.cfg.ReminderCron, func() {
		if _, err := s.uc.SendPaymentReminders(time.Now()); err != nil {
			s.log.Error().Err(err).Msg("barrido de recordatorios falló")
		}
	}); err != nil {
		return fmt.Errorf("agendar recordatorios (%q): %w", s.cfg.ReminderCron, err)
	}

	s.c.Start()
	s.log.Info().
		Str("auto_cancel_cron", s.cfg.AutoCancelCron).
		Str("reminder_cron", s.cfg.ReminderCron).
		Msg("barridos periódicos agendados")
	return nil
}

// Stop detiene el cron y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
	s.log.Info().Msg("barridos periódicos detenidos")
}
