package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"estate-ledger/internal/model"
)

func TestViewPredicate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "deleted IS NULL", viewPredicate(model.ViewActive))
	require.Equal(t, "deleted IS NOT NULL", viewPredicate(model.ViewDeleted))
	require.Equal(t, "TRUE", viewPredicate(model.ViewAll))
}

func TestOrderClause(t *testing.T) {
	t.Parallel()

	t.Run("defaults to created ascending", func(t *testing.T) {
		require.Equal(t, " ORDER BY created ASC NULLS LAST, id ASC", orderClause(model.ItemQuery{}))
	})

	t.Run("accepts known columns case-insensitively", func(t *testing.T) {
		require.Equal(t, " ORDER BY price DESC NULLS LAST, id ASC", orderClause(model.ItemQuery{Sort: "Price", Order: "DESC"}))
	})

	t.Run("ignores unknown columns", func(t *testing.T) {
		require.Equal(t, " ORDER BY created ASC NULLS LAST, id ASC", orderClause(model.ItemQuery{Sort: "id; DROP TABLE items"}))
	})
}
