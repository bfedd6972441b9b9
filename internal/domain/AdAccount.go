package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount representa uma conta de anúncios na plataforma externa
type AdAccount struct {
	ID          string          `json:"id"`
	ExternalID  string          `json:"external_id"`
	Name        string          `json:"name"`
	Nickname    *string         `json:"nickname"`
	Status      AdAccountStatus `json:"status"`
	OwnerUserID *int            `json:"owner_user_id"`
	Currency    string          `json:"currency"`
}

// Product representa um produto anunciado; várias contas podem alimentar um mesmo produto
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductAccountLink é o vínculo N:N entre produto e conta de anúncios.
// Todo registro de gasto/performance é atribuído através deste vínculo,
// nunca diretamente à conta.
type ProductAccountLink struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	AccountID string `json:"account_id"`
}
