package platformdomain

// SpendReport é o gasto agregado de uma conta retornado pelo endpoint de
// relatórios da plataforma
type SpendReport struct {
	AccountID string  `json:"account_id"`
	Name      string  `json:"account_name"`
	Spend     float64 `json:"spend,string"`
	Currency  string  `json:"account_currency"`
}

// AdRow é a linha de performance de um anúncio individual em uma data
type AdRow struct {
	AdID         string  `json:"ad_id"`
	AdName       string  `json:"ad_name"`
	AdSetID      string  `json:"adset_id"`
	AdSetName    string  `json:"adset_name"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Spend        float64 `json:"spend,string"`
	Impressions  int     `json:"impressions,string"`
	Clicks       int     `json:"clicks,string"`
	CPC          float64 `json:"cpc,string"`
	CPM          float64 `json:"cpm,string"`
	CTR          float64 `json:"ctr,string"`
}
