package platformclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// UpdateBudget altera o orçamento diário de um conjunto de anúncios ou campanha.
// A plataforma espera o valor em unidades menores da moeda (centavos).
func (c *PlatformClient) UpdateBudget(ctx context.Context, targetID string, budgetMinorUnits int64) error {
	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Platform.URL, targetID)

	form := url.Values{}
	form.Add("daily_budget", strconv.FormatInt(budgetMinorUnits, 10))
	form.Add("access_token", c.Cfg.Platform.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de atualização de orçamento")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"target_id": targetID,
			"error":     err.Error(),
		}).Error("Erro ao atualizar orçamento na plataforma")
		return err
	}
	defer resp.Body.Close()

	if _, err := c.handleResponse(resp); err != nil {
		return err
	}

	return nil
}
