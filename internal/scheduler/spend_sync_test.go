package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
)

// fakeReconciler conta as chamadas de SyncAll e permite segurar a execução
// para simular uma sincronização longa
type fakeReconciler struct {
	mu       sync.Mutex
	calls    int
	lastDate time.Time
	result   domain.SyncResult
	release  chan struct{}
}

func (f *fakeReconciler) SyncAccount(ctx context.Context, account *domain.AdAccount, targetDate time.Time) domain.SyncResult {
	return domain.SyncResult{}
}

func (f *fakeReconciler) ListPerformance(linkID string, date time.Time) ([]*domain.AdPerformanceRecord, error) {
	return nil, nil
}

func (f *fakeReconciler) SyncAll(ctx context.Context, targetDate time.Time) (domain.SyncResult, error) {
	f.mu.Lock()
	f.calls++
	f.lastDate = targetDate
	f.mu.Unlock()

	if f.release != nil {
		<-f.release
	}
	return f.result, nil
}

func (f *fakeReconciler) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeReconciler) lastTargetDate() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastDate
}

func newTestSpendSyncService(reconciler *fakeReconciler) *SpendSyncService {
	cfg := &config.Config{
		SpendSync: config.SpendSync{
			CronSchedule:      "0 3 * * *",
			MaxConcurrentJobs: 2,
			Enabled:           true,
		},
	}
	return NewSpendSyncService(reconciler, cfg)
}

func TestSyncAllSpend_GuardaContraExecucaoConcorrente(t *testing.T) {
	reconciler := &fakeReconciler{release: make(chan struct{})}
	service := newTestSpendSyncService(reconciler)

	done := make(chan struct{})
	go func() {
		service.syncAllSpend(context.Background(), time.Time{})
		close(done)
	}()

	// espera a primeira execução marcar o guard
	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == true
	}, time.Second, 10*time.Millisecond)

	// a segunda chamada encontra o guard e retorna sem chamar o reconciliador
	service.syncAllSpend(context.Background(), time.Time{})
	assert.Equal(t, 1, reconciler.callCount())

	close(reconciler.release)
	<-done

	assert.Equal(t, false, service.GetStatus()["sync_running"])
}

func TestSyncAllSpend_RegistraResultadoDaUltimaExecucao(t *testing.T) {
	reconciler := &fakeReconciler{
		result: domain.SyncResult{Processed: 4, Synced: 3, Skipped: 1},
	}
	service := newTestSpendSyncService(reconciler)

	service.syncAllSpend(context.Background(), time.Time{})

	status := service.GetStatus()
	assert.Equal(t, domain.SyncResult{Processed: 4, Synced: 3, Skipped: 1}, status["last_sync_result"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestTriggerManualSync_DataPassadaEhRepassadaAoReconciliador(t *testing.T) {
	reconciler := &fakeReconciler{}
	service := newTestSpendSyncService(reconciler)

	backfillDate := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)
	service.TriggerManualSync(backfillDate)

	assert.Eventually(t, func() bool {
		return reconciler.callCount() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, backfillDate, reconciler.lastTargetDate())
}

func TestSyncAllSpend_DataZeroUsaADataCorrente(t *testing.T) {
	reconciler := &fakeReconciler{}
	service := newTestSpendSyncService(reconciler)

	service.syncAllSpend(context.Background(), time.Time{})

	assert.Equal(t, 1, reconciler.callCount())
	assert.False(t, reconciler.lastTargetDate().IsZero())
}

func TestStart_DesabilitadoNaoAgendaNada(t *testing.T) {
	reconciler := &fakeReconciler{}
	service := newTestSpendSyncService(reconciler)
	service.config.SyncEnabled = false

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, reconciler.callCount())
}

func TestGetStatus_ExpoeAConfiguracaoDoAgendador(t *testing.T) {
	service := newTestSpendSyncService(&fakeReconciler{})

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_max_concurrent"])
}
