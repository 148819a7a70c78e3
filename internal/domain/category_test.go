package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/domain"
)

func TestDREGroups(t *testing.T) {
	groups := domain.DREGroups()
	require.Len(t, groups, 13)

	assert.Equal(t, domain.GroupReceitaBruta, groups[0].ID)
	assert.Equal(t, domain.GroupInvestimentos, groups[12].ID)

	for i, g := range groups {
		assert.Equal(t, i+1, g.Order, "group %s", g.ID)
		assert.NotEmpty(t, g.Name)
	}

	// Callers get a copy, not the shared table.
	groups[0].Name = "mutated"
	assert.Equal(t, "Receita Bruta", domain.DREGroups()[0].Name)
}

func TestValidDREGroup(t *testing.T) {
	assert.True(t, domain.ValidDREGroup(domain.GroupCustosServicos))
	assert.True(t, domain.ValidDREGroup("despesas_pessoal"))
	assert.False(t, domain.ValidDREGroup("made_up"))
	assert.False(t, domain.ValidDREGroup(""))
}
