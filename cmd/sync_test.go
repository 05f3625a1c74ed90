package cmd

import (
	"testing"

	"stock-sync/core/shopify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStores(t *testing.T) {
	configured := []shopify.Store{
		{Name: "alpha"},
		{Name: "beta"},
		{Name: "gamma"},
	}

	t.Run("NoFilterKeepsAll", func(t *testing.T) {
		selected, err := selectStores(configured, nil)
		require.NoError(t, err)
		assert.Equal(t, configured, selected)
	})

	t.Run("SubsetPreservesOrder", func(t *testing.T) {
		selected, err := selectStores(configured, []string{"gamma", "alpha"})
		require.NoError(t, err)
		require.Len(t, selected, 2)
		assert.Equal(t, "alpha", selected[0].Name)
		assert.Equal(t, "gamma", selected[1].Name)
	})

	t.Run("UnknownNameFails", func(t *testing.T) {
		_, err := selectStores(configured, []string{"alpha", "omega"})
		assert.ErrorContains(t, err, "omega")
	})
}
