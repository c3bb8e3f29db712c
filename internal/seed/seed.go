// Package seed generates synthetic CRM records. The generator is seeded
// with a fixed value so repeated runs over a fresh database produce the
// same dataset.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"
	"time"
)

type Options struct {
	Orders       int
	Quotes       int
	QuoteDetails int
}

type Summary struct {
	Orders       int
	Quotes       int
	QuoteDetails int
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Seattle",
}

var countries = []string{
	"United States", "Canada", "Mexico", "United Kingdom", "Germany", "France",
}

type product struct {
	name  string
	price float64
}

var products = []product{
	{"Product A", 99.99},
	{"Product B", 149.99},
	{"Product C", 299.99},
	{"Product D", 999.99},
	{"Product E", 19.99},
	{"Product F", 49.99},
	{"Product G", 199.99},
	{"Product H", 499.99},
}

// Run inserts synthetic rows into the three CRM tables inside one
// transaction.
func Run(ctx context.Context, db *sql.DB, opts Options) (*Summary, error) {
	rng := rand.New(rand.NewSource(42))
	start := time.Now().AddDate(-1, 0, 0)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	customers := make([]string, 100)
	for i := range customers {
		customers[i] = fmt.Sprintf("Customer %d", i+1)
	}

	if err := seedOrders(ctx, tx, rng, start, customers, opts.Orders); err != nil {
		return nil, err
	}

	quoteIDs, err := seedQuotes(ctx, tx, rng, start, customers, opts.Quotes)
	if err != nil {
		return nil, err
	}

	if err := seedQuoteDetails(ctx, tx, rng, quoteIDs, opts.QuoteDetails); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed transaction: %w", err)
	}

	return &Summary{
		Orders:       opts.Orders,
		Quotes:       opts.Quotes,
		QuoteDetails: opts.QuoteDetails,
	}, nil
}

func seedOrders(ctx context.Context, tx *sql.Tx, rng *rand.Rand, start time.Time, customers []string, n int) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO salesorder (Id, ordernumber, customeridname, totalamount, totaltax, createdon, statuscode, modifiedon, billto_city, billto_country)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare salesorder insert: %w", err)
	}
	defer stmt.Close()

	for i := 1; i <= n; i++ {
		created := start.AddDate(0, 0, rng.Intn(365)).Format(time.RFC3339)
		_, err := stmt.ExecContext(ctx,
			fmt.Sprintf("SO-%06d", i),
			fmt.Sprintf("ORD-%06d", i),
			customers[rng.Intn(len(customers))],
			round2(100+rng.Float64()*9900),
			round2(10+rng.Float64()*990),
			created,
			1+rng.Intn(3),
			created,
			cities[rng.Intn(len(cities))],
			countries[rng.Intn(len(countries))],
		)
		if err != nil {
			return fmt.Errorf("insert salesorder %d: %w", i, err)
		}
	}
	return nil
}

func seedQuotes(ctx context.Context, tx *sql.Tx, rng *rand.Rand, start time.Time, customers []string, n int) ([]string, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO quote (Id, quotenumber, name, customeridname, totalamount, statuscode, modifiedon)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare quote insert: %w", err)
	}
	defer stmt.Close()

	quoteIDs := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("Q-%06d", i)
		customer := customers[rng.Intn(len(customers))]
		modified := start.AddDate(0, 0, rng.Intn(365)).Format(time.RFC3339)
		_, err := stmt.ExecContext(ctx,
			id,
			fmt.Sprintf("QUOTE-%06d", i),
			fmt.Sprintf("Quote for %s", customer),
			customer,
			round2(100+rng.Float64()*14900),
			1+rng.Intn(4),
			modified,
		)
		if err != nil {
			return nil, fmt.Errorf("insert quote %d: %w", i, err)
		}
		quoteIDs = append(quoteIDs, id)
	}
	return quoteIDs, nil
}

func seedQuoteDetails(ctx context.Context, tx *sql.Tx, rng *rand.Rand, quoteIDs []string, n int) error {
	if len(quoteIDs) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO quotedetail (Id, quoteid, productidname, quantity, priceperunit, extendedamount, producttypecode)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare quotedetail insert: %w", err)
	}
	defer stmt.Close()

	for i := 1; i <= n; i++ {
		p := products[rng.Intn(len(products))]
		quantity := float64(1 + rng.Intn(20))
		_, err := stmt.ExecContext(ctx,
			fmt.Sprintf("QD-%06d", i),
			quoteIDs[rng.Intn(len(quoteIDs))],
			p.name,
			quantity,
			p.price,
			round2(quantity*p.price),
			1+rng.Intn(5),
		)
		if err != nil {
			return fmt.Errorf("insert quotedetail %d: %w", i, err)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
