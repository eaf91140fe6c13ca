package classifier

import "termsheet/internal/domain"

type keywordSet struct {
	Type     domain.DocumentType
	Keywords []string
}

// keywordTable is scanned in order; the first type wins a tie.
var keywordTable = []keywordSet{
	{domain.DocumentTypeStructuredNote, []string{
		"ISIN", "Autocall", "Knock-in", "Barrier", "Underlying",
		"Calculation Amount", "Reference Index", "Strike Level",
	}},
	{domain.DocumentTypeStartupEquity, []string{
		"Pre-Money", "Post-Money", "Equity", "SAFE", "Investment Amount",
		"Valuation", "Cap Table",
	}},
	{domain.DocumentTypeVentureDebt, []string{"Warrants", "Loan", "Borrower", "Covenants"}},
	{domain.DocumentTypeBankLoan, []string{"Facility", "Interest Rate", "Borrower"}},
	{domain.DocumentTypeMAndA, []string{"Buyer", "Seller", "Purchase Price"}},
	{domain.DocumentTypeRealEstate, []string{"Property", "Lease", "Possession"}},
}
