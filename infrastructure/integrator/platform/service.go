package platform

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform/platformclient"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/pkg/utils"
)

type PlatformIntegrator interface {
	GetAccountSpend(ctx context.Context, accountID string, date time.Time) (*domain.AccountSpend, error)
	GetAdPerformance(ctx context.Context, accountID string, date time.Time) ([]*domain.AdPerformanceRecord, error)
	UpdateBudget(ctx context.Context, target domain.BudgetTarget, newBudget float64) error
}

// Integrator é a fachada sobre o cliente HTTP da plataforma, traduzindo
// as respostas remotas para os tipos de domínio
type Integrator struct {
	cfg    *config.Config
	Client platformclient.Client
}

func New(cfg *config.Config, client platformclient.Client) PlatformIntegrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountSpend obtém o gasto agregado de uma conta para a data.
// A ausência de dados na plataforma vira um gasto zero: um dia sem
// veiculação ainda produz registro.
func (s *Integrator) GetAccountSpend(ctx context.Context, accountID string, date time.Time) (*domain.AccountSpend, error) {
	report, err := s.Client.GetAccountSpend(ctx, accountID, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       date.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("Erro ao obter gasto da conta na plataforma")
		return nil, err
	}

	if report == nil {
		return &domain.AccountSpend{Amount: 0, Currency: ""}, nil
	}

	return &domain.AccountSpend{
		Amount:   utils.RoundWithTwoDecimalPlace(report.Spend),
		Currency: report.Currency,
	}, nil
}

// GetAdPerformance obtém as linhas de performance por anúncio de uma conta
// para a data. O vínculo com produto é atribuído pelo chamador.
func (s *Integrator) GetAdPerformance(ctx context.Context, accountID string, date time.Time) ([]*domain.AdPerformanceRecord, error) {
	rows, err := s.Client.GetAdPerformance(ctx, accountID, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       date.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("Erro ao obter performance de anúncios na plataforma")
		return nil, err
	}

	records := make([]*domain.AdPerformanceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.AdPerformanceRecord{
			AdID:         row.AdID,
			Date:         date,
			AdName:       row.AdName,
			AdSetID:      row.AdSetID,
			AdSetName:    row.AdSetName,
			CampaignID:   row.CampaignID,
			CampaignName: row.CampaignName,
			Spend:        row.Spend,
			Impressions:  row.Impressions,
			Clicks:       row.Clicks,
			CPC:          row.CPC,
			CPM:          row.CPM,
			CTR:          row.CTR,
		})
	}

	return records, nil
}

// UpdateBudget altera o orçamento diário do alvo na plataforma, convertendo
// o valor para unidades menores da moeda
func (s *Integrator) UpdateBudget(ctx context.Context, target domain.BudgetTarget, newBudget float64) error {
	err := s.Client.UpdateBudget(ctx, target.ID, utils.ToMinorUnits(newBudget))
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"target_kind": target.Kind,
		"target_id":   target.ID,
		"new_budget":  newBudget,
	}).Info("Orçamento atualizado na plataforma com sucesso")

	return nil
}
