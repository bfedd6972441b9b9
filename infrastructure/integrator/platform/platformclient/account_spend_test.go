package platformclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
)

func newTestClient(serverURL string) *PlatformClient {
	return &PlatformClient{
		Cfg: &config.Config{
			Platform: config.Platform{
				URL:         serverURL,
				AccessToken: "token-de-teste",
			},
		},
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestGetAccountSpend_DecodificaOPayloadDaPlataforma(t *testing.T) {
	payload := `{
		"data": [
			{
				"account_id": "123456",
				"account_name": "Conta Teste",
				"spend": "150.75",
				"account_currency": "BRL",
				"date_start": "2024-05-10",
				"date_stop": "2024-05-10"
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("fields"), "account_currency")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	report, err := client.GetAccountSpend(context.Background(), "123456", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "123456", report.AccountID)
	assert.Equal(t, 150.75, report.Spend)
	// a moeda vem no campo account_currency do relatório
	assert.Equal(t, "BRL", report.Currency)
}

func TestGetAccountSpend_DiaSemDadosRetornaNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	report, err := client.GetAccountSpend(context.Background(), "123456", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, report)
}
