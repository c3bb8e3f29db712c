package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestEnsureLimit(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "no limit gets one appended",
			sql:  "SELECT customeridname FROM salesorder",
			want: "SELECT customeridname FROM salesorder LIMIT 1000",
		},
		{
			name: "trailing semicolon is stripped before appending",
			sql:  "SELECT 1;",
			want: "SELECT 1 LIMIT 1000",
		},
		{
			name: "existing LIMIT passes through unchanged",
			sql:  "SELECT 1 LIMIT 5",
			want: "SELECT 1 LIMIT 5",
		},
		{
			name: "lowercase limit passes through unchanged",
			sql:  "select 1 limit 5",
			want: "select 1 limit 5",
		},
		{
			// Known false negative of the substring heuristic: "limit"
			// inside an identifier suppresses the cap.
			name: "limit inside identifier defeats the check",
			sql:  "SELECT credit_limit FROM salesorder",
			want: "SELECT credit_limit FROM salesorder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnsureLimit(tt.sql, 1000))
		})
	}
}

func TestCleanSQL(t *testing.T) {
	assert.Equal(t, "SELECT 1", CleanSQL("```sql\nSELECT 1\n```"))
	assert.Equal(t, "SELECT 2", CleanSQL("```\nSELECT 2\n```"))
	assert.Equal(t, "SELECT 3", CleanSQL("  SELECT 3  "))
}

func TestQueryAppliesRowCap(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := st.DB().ExecContext(ctx,
			"INSERT INTO salesorder (Id, ordernumber, customeridname, totalamount) VALUES (?, ?, ?, ?)",
			i, i, "Acme", 100.0)
		require.NoError(t, err)
	}

	result, err := st.Query(ctx, "SELECT * FROM salesorder", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.RowCount)
}

func TestQueryNormalizesValues(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.DB().ExecContext(ctx, `
		CREATE TABLE mixed (
			s TEXT,
			n REAL,
			i INTEGER,
			ts DATETIME,
			b BLOB,
			missing TEXT
		)`)
	require.NoError(t, err)

	_, err = st.DB().ExecContext(ctx,
		"INSERT INTO mixed (s, n, i, ts, b, missing) VALUES (?, ?, ?, ?, ?, NULL)",
		"hello", 12.5, 7, "2024-03-01 10:30:00", []byte("raw"))
	require.NoError(t, err)

	result, err := st.Query(ctx, "SELECT * FROM mixed", 10)
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount)

	record := result.Records[0]
	assert.Equal(t, "hello", record["s"])
	assert.Equal(t, 12.5, record["n"])
	assert.Equal(t, int64(7), record["i"])
	assert.Equal(t, "raw", record["b"])
	assert.Nil(t, record["missing"])

	// The declared DATETIME column comes back as a time.Time from the
	// driver and must leave as an ISO-8601 string.
	ts, ok := record["ts"].(string)
	require.True(t, ok, "timestamp should be a string, got %T", record["ts"])
	assert.Contains(t, ts, "2024-03-01T10:30:00")

	// Every cell is transport-serializable.
	for col, val := range record {
		switch val.(type) {
		case string, float64, int64, bool, nil:
		default:
			t.Errorf("column %s has non-primitive type %T", col, val)
		}
	}
}

func TestQueryErrorCarriesSQL(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Query(context.Background(), "SELECT * FROM no_such_table", 10)
	require.Error(t, err)

	var qErr *QueryError
	require.ErrorAs(t, err, &qErr)
	assert.Contains(t, qErr.SQL, "no_such_table")
	assert.Contains(t, err.Error(), "no_such_table")
}

func TestTopCustomersByRevenue(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Three customers with revenue 500, 300, 100: a "top 5" query
	// returns all three in descending order with no padding rows.
	orders := []struct {
		id       string
		customer string
		amount   float64
	}{
		{"SO-1", "Beta Corp", 300},
		{"SO-2", "Alpha Inc", 250},
		{"SO-3", "Alpha Inc", 250},
		{"SO-4", "Gamma LLC", 100},
	}
	for _, o := range orders {
		_, err := st.DB().ExecContext(ctx,
			"INSERT INTO salesorder (Id, customeridname, totalamount) VALUES (?, ?, ?)",
			o.id, o.customer, o.amount)
		require.NoError(t, err)
	}

	result, err := st.Query(ctx, `
		SELECT customeridname, SUM(totalamount) AS revenue
		FROM salesorder
		GROUP BY customeridname
		ORDER BY revenue DESC
		LIMIT 5`, 1000)
	require.NoError(t, err)

	require.Equal(t, 3, result.RowCount)
	assert.Equal(t, "Alpha Inc", result.Records[0]["customeridname"])
	assert.Equal(t, 500.0, result.Records[0]["revenue"])
	assert.Equal(t, "Beta Corp", result.Records[1]["customeridname"])
	assert.Equal(t, 300.0, result.Records[1]["revenue"])
	assert.Equal(t, "Gamma LLC", result.Records[2]["customeridname"])
	assert.Equal(t, 100.0, result.Records[2]["revenue"])
}

func TestStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.DB().ExecContext(ctx,
		"INSERT INTO salesorder (Id, customeridname, totalamount) VALUES ('SO-1', 'Acme', 10)")
	require.NoError(t, err)

	stats, err := st.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Tables["salesorder"].RowCount)
	assert.Equal(t, int64(0), stats.Tables["quote"].RowCount)
	assert.Equal(t, int64(0), stats.Tables["quotedetail"].RowCount)
	assert.Greater(t, stats.DatabaseSizeMB, 0.0)
}
