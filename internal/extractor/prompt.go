package extractor

import (
	"encoding/json"
	"fmt"
)

// startupEquityFields and structuredNoteFields are the AI target vocabularies
// used when the schema registry has nothing for a document type.
var (
	startupEquityFields = []string{
		"Company Name", "Investor", "Investment Amount",
		"Valuation (Pre-Money)", "Valuation (Post-Money)",
		"Equity to be Issued",
	}
	structuredNoteFields = []string{
		"Issuer", "ISIN", "Issue Date", "Redemption Date",
		"Underlying Asset", "Strike Level", "Autocall Barrier",
		"Knock-in Barrier", "Calculation Amount", "Coupon Rate",
	}
)

func defaultTargetFields() []string {
	out := make([]string, 0, len(startupEquityFields)+len(structuredNoteFields))
	out = append(out, startupEquityFields...)
	return append(out, structuredNoteFields...)
}

func buildPrompt(fields []string, excerpt string) string {
	fieldsJSON, _ := json.Marshal(fields)
	return fmt.Sprintf(`Extract the following fields from the term sheet.
Return ONLY strict JSON: one object with every field below as a key.
Missing fields must be null.

Fields:
%s

Text:
%s
`, fieldsJSON, excerpt)
}
