package platformclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	platformdomain "github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform/domain"
)

type responseAccountSpend struct {
	Data []platformdomain.SpendReport `json:"data"`
}

// GetAccountSpend obtém o gasto agregado de uma conta para uma única data.
// Ausência de dados não é erro: retorna nil para o chamador decidir.
func (c *PlatformClient) GetAccountSpend(ctx context.Context, accountID string, date time.Time) (*platformdomain.SpendReport, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Platform.URL, accountID)

	day := date.Format(time.DateOnly)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", day, day)

	params := url.Values{}
	params.Add("fields", "account_id,account_name,spend,account_currency")
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Platform.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de gasto")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao requisitar gasto da conta na plataforma")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response responseAccountSpend
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de gasto da conta")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
