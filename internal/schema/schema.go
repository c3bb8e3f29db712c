// Package schema carries the static description of the CRM database that
// grounds every model prompt, plus the reasoning-effort heuristic.
package schema

import "strings"

// Tables lists the CRM tables in the analytics store.
var Tables = []string{"salesorder", "quote", "quotedetail"}

// Descriptor is the schema text fed verbatim into the system prompt. It
// enumerates only columns that actually exist so the model does not invent
// ones that were dropped during import.
const Descriptor = `Database Schema (SQLite) - ACTUAL AVAILABLE COLUMNS:

1. salesorder table - Orders/Sales Data:
   AVAILABLE COLUMNS:
   - Id (TEXT PRIMARY KEY): Sales Order ID (unique identifier)
   - ordernumber: Order Number (e.g., ORD-30741-T8V7) - Main order identifier
   - customeridname: Customer Name - Full customer name
   - totalamount: Total Amount (REAL) - Complete order amount including tax
   - totaltax: Total Tax (REAL) - Tax amount for the order
   - createdon: Order creation date (TEXT) - When order was created
   - statuscode: Order Status (INTEGER) - Order status code (active/inactive/completed)
   - modifiedon: Modified On (TEXT) - Last modification date
   - billto_city: Billing City - Customer's billing city
   - billto_country: Billing Country - Customer's billing country/region

2. quote table - Quote/Proposal Data:
   AVAILABLE COLUMNS:
   - Id (TEXT PRIMARY KEY): Record ID - Unique quote identifier
   - quotenumber: Quote Number - Primary business identifier for quotes
   - name: Quote Name - Title/description of the quote
   - customeridname: Customer Name - Full customer/account name
   - totalamount: Total Amount (REAL) - Complete quote value including all charges
   - statuscode: Quote Status (INTEGER) - Quote processing state (draft/active/won/lost)
   - modifiedon: Modified On (TEXT) - Last modification date

   NOTE: Tax, discount, and other financial columns are NOT in this database.

3. quotedetail table - Quote Line Items:
   AVAILABLE COLUMNS:
   - Id (TEXT PRIMARY KEY): Record ID - Unique line item identifier
   - quoteid: Quote ID - Links to parent quote (foreign key to quote table)
   - productidname: Product Name - Name of product/service being quoted
   - quantity: Quantity (REAL) - Number of units being quoted
   - priceperunit: Price Per Unit (REAL) - Unit price for the product/service
   - extendedamount: Extended Amount (REAL) - Line total (quantity x price)
   - producttypecode: Product Type (INTEGER) - Category/type of product

IMPORTANT NOTES:
- Tax information IS AVAILABLE in salesorder table (totaltax column)
- The totalamount field contains the complete amount including tax
- Order ID: Use 'ordernumber' field (e.g., ORD-30741-T8V7)
- Quote ID: Use 'quotenumber' field for business reference
- SQLite date functions: strftime('%Y-%m', modifiedon) for year-month
- Use LIMIT for SQLite (not TOP like SQL Server)
- All amounts are in REAL (floating point) format
- JOINs: Can join quote and quotedetail tables on quote.Id = quotedetail.quoteid`

// EffortForQuery picks the reasoning-effort tier for a query. The check is
// a crude keyword match: questions that announce themselves as complex get
// the higher tier, everything else runs at medium.
func EffortForQuery(query string) string {
	if strings.Contains(strings.ToLower(query), "complex") {
		return "high"
	}
	return "medium"
}
