// cmd/seed seeds the analytics database with deterministic sample CRM data
// for local development and demos.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"salesql/internal/seed"
	"salesql/internal/store"
)

var (
	dbPath      string
	orderCount  int
	quoteCount  int
	detailCount int
)

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Populate the salesql analytics database with sample CRM data",
	Long:         `Creates the SQLite database (running migrations if needed) and fills the salesorder, quote, and quotedetail tables with deterministic synthetic records.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		summary, err := seed.Run(cmd.Context(), st.DB(), seed.Options{
			Orders:       orderCount,
			Quotes:       quoteCount,
			QuoteDetails: detailCount,
		})
		if err != nil {
			return err
		}

		fmt.Printf("seeded %s: %d orders, %d quotes, %d quote details\n",
			dbPath, summary.Orders, summary.Quotes, summary.QuoteDetails)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&dbPath, "db", "database/crm_analytics.db", "path to the SQLite database")
	rootCmd.Flags().IntVar(&orderCount, "orders", 1000, "number of sales orders to generate")
	rootCmd.Flags().IntVar(&quoteCount, "quotes", 2000, "number of quotes to generate")
	rootCmd.Flags().IntVar(&detailCount, "quote-details", 10000, "number of quote line items to generate")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
