package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesql/internal/store"
)

func TestRun(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	summary, err := Run(ctx, st.DB(), Options{Orders: 50, Quotes: 30, QuoteDetails: 200})
	require.NoError(t, err)

	assert.Equal(t, 50, summary.Orders)
	assert.Equal(t, 30, summary.Quotes)
	assert.Equal(t, 200, summary.QuoteDetails)

	stats, err := st.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), stats.Tables["salesorder"].RowCount)
	assert.Equal(t, int64(30), stats.Tables["quote"].RowCount)
	assert.Equal(t, int64(200), stats.Tables["quotedetail"].RowCount)

	// Every line item references a quote that exists.
	var orphans int64
	err = st.DB().QueryRowContext(ctx, `
		SELECT COUNT(*) FROM quotedetail qd
		LEFT JOIN quote q ON q.Id = qd.quoteid
		WHERE q.Id IS NULL`).Scan(&orphans)
	require.NoError(t, err)
	assert.Zero(t, orphans)
}

func TestRunIsDeterministic(t *testing.T) {
	ctx := context.Background()

	totals := make([]float64, 2)
	for i := range totals {
		st, err := store.Open(filepath.Join(t.TempDir(), "seed.db"))
		require.NoError(t, err)

		_, err = Run(ctx, st.DB(), Options{Orders: 20, Quotes: 10, QuoteDetails: 40})
		require.NoError(t, err)

		err = st.DB().QueryRowContext(ctx, "SELECT SUM(totalamount) FROM salesorder").Scan(&totals[i])
		require.NoError(t, err)
		st.Close()
	}

	assert.Equal(t, totals[0], totals[1])
}
