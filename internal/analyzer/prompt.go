package analyzer

import (
	"encoding/json"
	"fmt"

	"salesql/internal/schema"
	"salesql/internal/store"
)

// systemPromptFormat wires the schema descriptor into the fixed output
// contract the parser expects. Pure string assembly, no runtime branching.
const systemPromptFormat = `You are an expert SQLite data analyst. Generate SQL queries and visualizations.

%s

CRITICAL INSTRUCTIONS:
1. Return ONLY valid JSON - no explanations before or after
2. Use SQLite syntax (LIMIT not TOP, strftime for dates)
3. Generate 3-5 different chart types
4. Each visualization needs its own optimized SQL query
5. Keep queries efficient with appropriate LIMIT clauses

You MUST return JSON in exactly this format:
{
    "sql_query": "Main SQL query for the data",
    "answer": "Natural language answer to the question",
    "visualizations": [
        {
            "type": "bar",
            "title": "Chart Title",
            "sql_for_chart": "SELECT column1, SUM(column2) as value FROM table GROUP BY column1 LIMIT 10",
            "chart_config": {
                "xAxis": "column1",
                "yAxis": "value",
                "color": "#8884d8"
            }
        }
    ],
    "recommendations": ["insight1", "insight2", "insight3"]
}

Return ONLY the JSON object, nothing else.`

func buildPrompt(query string) (system, user string) {
	system = fmt.Sprintf(systemPromptFormat, schema.Descriptor)
	user = fmt.Sprintf("Query: %s\n\nGenerate SQL and visualizations. Return ONLY JSON.", query)
	return system, user
}

// buildSummaryPrompt asks the model to format the top result rows into a
// detailed per-row text list. The rows are already normalized, so they
// marshal cleanly.
func buildSummaryPrompt(query string, records []store.Record) (system, user string, err error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal summary rows: %w", err)
	}

	system = "You are a data formatter. Format data into clear, detailed text lists. Include ALL specific values."
	user = fmt.Sprintf(`User asked: %s

The SQL query returned this data (top rows):
%s

Please format this data into a clear, detailed text summary.
Include ALL the specific values from the data in a readable list format.

Format guidelines:
- For orders: "Order ID: [ID] | Customer: [Name] | Amount: $[Amount formatted with commas] | Status: [Code] | Date: [Date]"
- For products: "Product: [Name] | Quantity: [Qty] | Revenue: $[Amount formatted with commas]"
- For customers: "Customer: [Name] | Total: $[Amount formatted with commas] | Orders: [Count]"
- For time-based data: "Period: [Date/Month] | Value: $[Amount formatted with commas]"

List ALL rows from the data provided, numbered 1, 2, 3, etc.
Format numbers with commas for thousands (e.g., $1,234,567).
Be precise and include all data fields available.`, query, data)

	return system, user, nil
}
