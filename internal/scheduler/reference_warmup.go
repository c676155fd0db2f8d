// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Rerimoura/venn-biz/internal/config"
	"github.com/Rerimoura/venn-biz/internal/usecases/referencing"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type ReferenceWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReferenceWarmupService recarrega periodicamente as listas de referência
// (produtos, cidades e vendedores) no cache, para o primeiro acesso do dia
// não pagar o custo das consultas.
type ReferenceWarmupService struct {
	scheduler           *gocron.Scheduler
	referenceService    referencing.ReferenceLister
	config              ReferenceWarmupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReferenceWarmupService(
	referenceService referencing.ReferenceLister,
	cfg *config.Config,
) *ReferenceWarmupService {
	warmupConfig := ReferenceWarmupConfig{
		CronSchedule: cfg.ReferenceWarmup.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.ReferenceWarmup.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
	}).Info("Configuração do agendador de aquecimento das listas de referência carregada")

	return &ReferenceWarmupService{
		scheduler:        scheduler,
		referenceService: referenceService,
		config:           warmupConfig,
	}
}

func (s *ReferenceWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de aquecimento das listas de referência desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento das listas de referência")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunWarmup(ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento das listas de referência")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento das listas de referência: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento das listas de referência")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReferenceWarmupService) RunWarmup(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Aquecimento das listas de referência já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando aquecimento das listas de referência")

	if err := s.referenceService.Warmup(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar listas de referência")
		return err
	}

	logrus.Info("Aquecimento das listas de referência concluído")

	return nil
}

// TriggerManualSync inicia manualmente um aquecimento das listas de referência
func (s *ReferenceWarmupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento das listas de referência já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual das listas de referência")
	go s.RunWarmup(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ReferenceWarmupService) GetStatus() map[string]any {
	return map[string]any{
		"warmup_enabled":         s.config.Enabled,
		"warmup_cron":            s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
