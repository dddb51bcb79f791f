package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	require.True(t, HouseCategoryStudio.Valid())
	require.False(t, HouseCategory("Castle").Valid())

	require.True(t, OwnershipBuy.Valid())
	require.False(t, OwnershipBuy.IsLease())
	require.True(t, OwnershipLongTerm.IsLease())
	require.True(t, OwnershipShortTerm.IsLease())
	require.False(t, OwnershipCategory("Gift").Valid())
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trips calendar day", func(t *testing.T) {
		var o Ownership
		require.NoError(t, json.Unmarshal([]byte(`{"started":"2024-03-01","ended":null}`), &o))
		require.Equal(t, "2024-03-01", o.Started.String())
		require.Nil(t, o.Ended)

		data, err := json.Marshal(o)
		require.NoError(t, err)
		require.Contains(t, string(data), `"started":"2024-03-01"`)
		require.Contains(t, string(data), `"ended":null`)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		var d Date
		err := json.Unmarshal([]byte(`"03/01/2024"`), &d)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("truncates to day", func(t *testing.T) {
		d := NewDate(time.Date(2024, 5, 6, 23, 59, 0, 0, time.UTC))
		require.Equal(t, "2024-05-06", d.String())
		require.Equal(t, 0, d.Hour())
	})
}
