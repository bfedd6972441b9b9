package reconciling

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/pkg/utils"
)

// Reconciler sincroniza gasto diário e performance por anúncio da plataforma
// externa para o banco, sob a política de proteção histórica
type Reconciler interface {
	SyncAccount(ctx context.Context, account *domain.AdAccount, targetDate time.Time) domain.SyncResult
	SyncAll(ctx context.Context, targetDate time.Time) (domain.SyncResult, error)
	ListPerformance(linkID string, date time.Time) ([]*domain.AdPerformanceRecord, error)
}

type Service struct {
	accountRepo     repository.AccountRepository
	userRepo        repository.UserRepository
	spendRepo       repository.SpendRecordRepository
	performanceRepo repository.AdPerformanceRepository
	platformService platform.PlatformIntegrator
	cfg             *config.Config

	// relógio injetável para testes de virada de dia (23:59 vs 00:01)
	now func() time.Time
}

func NewService(
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	spendRepo repository.SpendRecordRepository,
	performanceRepo repository.AdPerformanceRepository,
	platformService platform.PlatformIntegrator,
	cfg *config.Config,
) *Service {
	return &Service{
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		spendRepo:       spendRepo,
		performanceRepo: performanceRepo,
		platformService: platformService,
		cfg:             cfg,
		now:             time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço. Usado em testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SyncAll processa todas as contas ativas com pelo menos um produto vinculado,
// com concorrência limitada, e agrega os contadores de todas as contas
func (s *Service) SyncAll(ctx context.Context, targetDate time.Time) (domain.SyncResult, error) {
	total := domain.SyncResult{}

	accounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de gastos")
		return total, err
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de gastos")
		return total, nil
	}

	semaphore := make(chan struct{}, s.cfg.SpendSync.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			result := s.SyncAccount(ctx, acc, targetDate)

			mu.Lock()
			total.Add(result)
			mu.Unlock()
		}(account)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"date":      targetDate.Format(time.DateOnly),
		"accounts":  len(accounts),
		"processed": total.Processed,
		"synced":    total.Synced,
		"skipped":   total.Skipped,
		"errors":    total.Errors,
	}).Info("Sincronização de gastos concluída para todas as contas")

	return total, nil
}

// SyncAccount busca o gasto agregado e a performance por anúncio de uma conta
// para a data alvo e grava sob a política de proteção histórica. Falhas de
// busca ou escrita incrementam o contador de erros e nunca abortam as demais
// linhas da conta.
func (s *Service) SyncAccount(ctx context.Context, account *domain.AdAccount, targetDate time.Time) domain.SyncResult {
	result := domain.SyncResult{}

	links, err := s.accountRepo.ListProductLinksByAccountID(account.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao buscar vínculos de produto da conta")
		result.Errors++
		return result
	}

	if len(links) == 0 {
		logrus.WithField("account_id", account.ID).Info("Conta sem produto vinculado. Pulando.")
		return result
	}

	isCurrentDay := s.isCurrentDay(account, targetDate)

	s.syncAccountSpend(ctx, account, links, targetDate, isCurrentDay, &result)
	s.syncAccountPerformance(ctx, account, links, targetDate, isCurrentDay, &result)

	logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"external_id": account.ExternalID,
		"date":        targetDate.Format(time.DateOnly),
		"current_day": isCurrentDay,
		"processed":   result.Processed,
		"synced":      result.Synced,
		"skipped":     result.Skipped,
		"errors":      result.Errors,
	}).Info("Sincronização da conta concluída")

	return result
}

// isCurrentDay compara a data alvo com o dia corrente no fuso horário do
// usuário dono da conta. Sem fuso configurado, o fallback é UTC.
func (s *Service) isCurrentDay(account *domain.AdAccount, targetDate time.Time) bool {
	location := s.resolveLocation(account)
	return utils.SameCalendarDay(targetDate, s.now().In(location))
}

func (s *Service) resolveLocation(account *domain.AdAccount) *time.Location {
	if account.OwnerUserID == nil {
		logrus.WithField("account_id", account.ID).Info("Conta sem usuário dono. Usando UTC como fuso horário.")
		return time.UTC
	}

	user, err := s.userRepo.GetUserByID(*account.OwnerUserID)
	if err != nil || user == nil || user.Timezone == nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"user_id":    *account.OwnerUserID,
		}).Info("Usuário sem fuso horário configurado. Usando UTC.")
		return time.UTC
	}

	location, err := time.LoadLocation(*user.Timezone)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"timezone":   *user.Timezone,
			"error":      err.Error(),
		}).Warn("Fuso horário inválido. Usando UTC.")
		return time.UTC
	}

	return location
}

// syncAccountSpend grava um registro de gasto por produto vinculado. A ausência
// de dados na plataforma não é erro: um registro de gasto zero ainda é produzido.
func (s *Service) syncAccountSpend(
	ctx context.Context,
	account *domain.AdAccount,
	links []*domain.ProductAccountLink,
	targetDate time.Time,
	isCurrentDay bool,
	result *domain.SyncResult,
) {
	spend, err := s.platformService.GetAccountSpend(ctx, account.ExternalID, targetDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"external_id": account.ExternalID,
			"date":        targetDate.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao buscar gasto da conta na plataforma")
		result.Errors++
		return
	}

	currency := spend.Currency
	if currency == "" {
		currency = account.Currency
	}

	for _, link := range links {
		record := &domain.SpendRecord{
			ProductID:  link.ProductID,
			Date:       targetDate,
			Amount:     spend.Amount,
			Currency:   currency,
			CapturedAt: s.now(),
		}

		result.Processed++

		if isCurrentDay {
			if err := s.spendRepo.Upsert(record); err != nil {
				s.logWriteError(account, targetDate, "gasto", err)
				result.Errors++
				continue
			}
			result.Synced++
			continue
		}

		exists, err := s.spendRepo.ExistsByProductAndDate(link.ProductID, targetDate)
		if err != nil {
			s.logWriteError(account, targetDate, "gasto", err)
			result.Errors++
			continue
		}

		if exists {
			result.Skipped++
			continue
		}

		inserted, err := s.spendRepo.Insert(record)
		if err != nil {
			s.logWriteError(account, targetDate, "gasto", err)
			result.Errors++
			continue
		}

		if inserted {
			result.Synced++
		} else {
			// outra execução gravou a mesma chave primeiro
			result.Skipped++
		}
	}
}

// syncAccountPerformance grava as linhas de performance por anúncio, atribuídas
// a cada vínculo de produto da conta, sob a mesma política de proteção histórica
func (s *Service) syncAccountPerformance(
	ctx context.Context,
	account *domain.AdAccount,
	links []*domain.ProductAccountLink,
	targetDate time.Time,
	isCurrentDay bool,
	result *domain.SyncResult,
) {
	rows, err := s.platformService.GetAdPerformance(ctx, account.ExternalID, targetDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"external_id": account.ExternalID,
			"date":        targetDate.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao buscar performance de anúncios na plataforma")
		result.Errors++
		return
	}

	if len(rows) == 0 {
		return
	}

	for _, link := range links {
		for _, row := range rows {
			record := *row
			record.LinkID = link.ID

			if isCurrentDay {
				if err := s.performanceRepo.Upsert(&record); err != nil {
					s.logWriteError(account, targetDate, "performance", err)
					result.Errors++
					continue
				}
				result.Synced++
				continue
			}

			// dia passado: a decisão de existência é por anúncio, resolvida
			// pelo insert com conflito ignorado. Uma execução anterior que
			// parou no meio ainda consegue completar os anúncios ausentes.
			inserted, err := s.performanceRepo.Insert(&record)
			if err != nil {
				s.logWriteError(account, targetDate, "performance", err)
				result.Errors++
				continue
			}

			if inserted {
				result.Synced++
			} else {
				result.Skipped++
			}
		}
	}
}

// ListPerformance retorna as linhas de performance por anúncio de um vínculo
// na data, ordenadas por gasto decrescente
func (s *Service) ListPerformance(linkID string, date time.Time) ([]*domain.AdPerformanceRecord, error) {
	records, err := s.performanceRepo.ListByLinkAndDate(linkID, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"link_id": linkID,
			"date":    date.Format(time.DateOnly),
			"error":   err.Error(),
		}).Error("Erro ao consultar performance de anúncios do vínculo")
		return nil, err
	}

	return records, nil
}

func (s *Service) logWriteError(account *domain.AdAccount, targetDate time.Time, kind string, err error) {
	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"date":       targetDate.Format(time.DateOnly),
		"kind":       kind,
		"error":      err.Error(),
	}).Error("Erro ao gravar registro no banco de dados")
}
