package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetTarget_StorageIDFormatoLegado(t *testing.T) {
	tests := []struct {
		name     string
		target   BudgetTarget
		expected string
	}{
		{
			name:     "Conjunto de anúncios usa o id puro",
			target:   BudgetTarget{Kind: TargetKindAdSet, ID: "123456"},
			expected: "123456",
		},
		{
			name:     "Campanha recebe o prefixo legado",
			target:   BudgetTarget{Kind: TargetKindCampaign, ID: "123456"},
			expected: "campaign_123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageID := tt.target.StorageID()
			assert.Equal(t, tt.expected, storageID)

			// o parse reconstrói exatamente o alvo original
			assert.Equal(t, tt.target, ParseTargetStorageID(storageID))
		})
	}
}

func TestParseTargetKind(t *testing.T) {
	kind, err := ParseTargetKind("adset")
	assert.NoError(t, err)
	assert.Equal(t, TargetKindAdSet, kind)

	kind, err = ParseTargetKind("campaign")
	assert.NoError(t, err)
	assert.Equal(t, TargetKindCampaign, kind)

	_, err = ParseTargetKind("account")
	assert.Error(t, err)
}
