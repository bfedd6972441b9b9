package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/reconciling"
)

// SpendSyncConfig representa a configuração do agendador de sincronização de gastos
type SpendSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SpendSyncService gerencia o agendamento e a execução da sincronização diária
// de gastos e performance de anúncios
type SpendSyncService struct {
	scheduler           *gocron.Scheduler
	config              SpendSyncConfig
	appConfig           *config.Config
	reconciler          reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResult      domain.SyncResult
}

// NewSpendSyncService cria uma nova instância do serviço de sincronização de gastos
func NewSpendSyncService(reconciler reconciling.Reconciler, appConfig *config.Config) *SpendSyncService {
	syncConfig := SpendSyncConfig{
		CronSchedule:        appConfig.SpendSync.CronSchedule,
		RequestDelaySeconds: appConfig.SpendSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SpendSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SpendSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de gastos carregada")

	return &SpendSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		reconciler:  reconciler,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SpendSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de gastos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de gastos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSpend(context.Background(), time.Now())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de gastos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de gastos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSpend dispara a reconciliação de todas as contas ativas para a data
// alvo. Data zero significa a data corrente.
func (s *SpendSyncService) syncAllSpend(ctx context.Context, targetDate time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if targetDate.IsZero() {
		targetDate = time.Now()
	}
	logrus.WithField("date", targetDate.Format(time.DateOnly)).Info("Iniciando sincronização de gastos para todas as contas ativas")

	result, err := s.reconciler.SyncAll(ctx, targetDate)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de gastos")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncResult = result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"processed": result.Processed,
		"synced":    result.Synced,
		"skipped":   result.Skipped,
		"errors":    result.Errors,
	}).Info("Sincronização de gastos concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de gastos. Uma data
// alvo passada permite refazer dias antigos sob a proteção histórica; data
// zero sincroniza a data corrente.
func (s *SpendSyncService) TriggerManualSync(targetDate time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de gastos")
	go s.syncAllSpend(context.Background(), targetDate)
}

// GetStatus retorna o status atual do agendador
func (s *SpendSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_result":       s.lastSyncResult,
	}
}
