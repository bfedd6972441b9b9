package platformclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	platformdomain "github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
)

// ErrUnauthorized indica credencial inválida ou expirada na plataforma.
// Fatal para o processamento da conta corrente; as demais contas continuam.
var ErrUnauthorized = errors.New("credencial inválida ou expirada na plataforma")

type Client interface {
	GetAccountSpend(ctx context.Context, accountID string, date time.Time) (*platformdomain.SpendReport, error)
	GetAdPerformance(ctx context.Context, accountID string, date time.Time) ([]platformdomain.AdRow, error)
	UpdateBudget(ctx context.Context, targetID string, budgetMinorUnits int64) error
}

type PlatformClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Platform.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &PlatformClient{
		Cfg: cfg,
		// Toda chamada externa tem timeout limitado; um timeout é tratado
		// como falha comum (contado e seguido adiante), nunca fatal
		httpClient: &http.Client{Timeout: timeout},
	}
}

// handleResponse lê o corpo e converte respostas não-2xx no erro apropriado
func (c *PlatformClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da plataforma")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errResp platformdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		if errResp.IsAuthError() {
			return nil, errors.Wrap(ErrUnauthorized, errResp.Error.Message)
		}
		return nil, errors.Errorf("erro da plataforma (%d): %s", errResp.Error.Code, errResp.Error.Message)
	}

	return nil, errors.Errorf("resposta inesperada da plataforma: status %d", resp.StatusCode)
}
