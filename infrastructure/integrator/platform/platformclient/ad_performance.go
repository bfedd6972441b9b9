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

type responseAdPerformance struct {
	Data   []platformdomain.AdRow `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// GetAdPerformance obtém as linhas de performance por anúncio de uma conta
// para uma única data, seguindo a paginação da plataforma
func (c *PlatformClient) GetAdPerformance(ctx context.Context, accountID string, date time.Time) ([]platformdomain.AdRow, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Platform.URL, accountID)

	day := date.Format(time.DateOnly)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", day, day)

	params := url.Values{}
	params.Add("level", "ad")
	params.Add("fields", "ad_id,ad_name,adset_id,adset_name,campaign_id,campaign_name,spend,impressions,clicks,cpc,cpm,ctr")
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Platform.AccessToken)

	rows := make([]platformdomain.AdRow, 0)
	nextURL := baseURL + "?" + params.Encode()

	for nextURL != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, nextURL, nil)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição de performance")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao requisitar performance de anúncios na plataforma")
			return nil, err
		}

		body, err := c.handleResponse(resp)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		var response responseAdPerformance
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de performance de anúncios")
			return nil, err
		}

		rows = append(rows, response.Data...)
		nextURL = response.Paging.Next
	}

	return rows, nil
}
