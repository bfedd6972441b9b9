package domain

import "time"

// AdPerformanceRecord representa a performance de um anúncio individual em uma data.
// Invariante: no máximo um registro por (link_id, ad_id, date).
type AdPerformanceRecord struct {
	ID           int64     `json:"id"`
	LinkID       string    `json:"link_id"`
	AdID         string    `json:"ad_id"`
	Date         time.Time `json:"date"`
	AdName       string    `json:"ad_name"`
	AdSetID      string    `json:"adset_id"`
	AdSetName    string    `json:"adset_name"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Spend        float64   `json:"spend"`
	Impressions  int       `json:"impressions"`
	Clicks       int       `json:"clicks"`
	CPC          float64   `json:"cpc"`
	CPM          float64   `json:"cpm"`
	CTR          float64   `json:"ctr"`
}
