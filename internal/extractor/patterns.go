package extractor

import (
	"regexp"
	"strings"

	"termsheet/internal/domain"
)

type fieldPattern struct {
	Field    string
	Patterns []*regexp.Regexp
}

func field(name string, exprs ...string) fieldPattern {
	fp := fieldPattern{Field: name}
	for _, e := range exprs {
		fp.Patterns = append(fp.Patterns, regexp.MustCompile(`(?i)`+e))
	}
	return fp
}

// patternTable is evaluated in order against the full text.
var patternTable = []fieldPattern{
	// universal / startup equity
	field("Company Name", `Company Name[:\s-]+(.+)`),
	field("Investor", `Investor[:\s-]+(.+)`),
	field("Investment Amount", `Investment Amount[:\s-]+(.+)`),
	field("Valuation (Pre-Money)", `Pre[- ]?Money[:\s-]+(.+)`),
	field("Valuation (Post-Money)", `Post[- ]?Money[:\s-]+(.+)`),
	field("Equity to be Issued", `Equity[:\s-]+(.+)`),

	// structured notes
	field("Issuer", `Issuer[:\s-]+(.+)`),
	field("ISIN", `ISIN[:\s-]+([A-Z0-9]+)`),
	field("Issue Date", `Issue Date[:\s-]+(.+)`),
	field("Redemption Date", `Redemption Date[:\s-]+(.+)`),
	field("Underlying Asset", `Underlying[:\s-]+(.+)`),
	field("Strike Level", `Strike[:\s-]+(.+)`),
	field("Autocall Barrier", `Autocall[:\s-]+(.+)`),
	field("Knock-in Barrier", `Knock[- ]?in[:\s-]+(.+)`),
	field("Calculation Amount", `Calculation Amount[:\s-]+(.+)`),
	field("Coupon Rate", `Coupon[:\s-]+(.+)`),

	// lending
	field("Borrower", `\bBorrower[:\s-]+(.+)`),
	field("Lender", `\bLender[:\s-]+(.+)`),
	field("Loan Amount", `\bLoan Amount[:\s-]+(.+)`),
	field("Facility Amount", `\bFacility Amount[:\s-]+(.+)`, `\bFacility Size[:\s-]+(.+)`),
	field("Interest Rate", `\bInterest Rate[:\s-]+(.+)`),
	field("Tenure", `\bTenure[:\s-]+(.+)`, `\bTenor[:\s-]+(.+)`),
	field("Warrants", `\bWarrants[:\s-]+(.+)`),

	// M&A
	field("Buyer", `\bBuyer[:\s-]+(.+)`, `\bAcquirer[:\s-]+(.+)`),
	field("Seller", `\bSeller[:\s-]+(.+)`),
	field("Purchase Price", `\bPurchase Price[:\s-]+(.+)`),
	field("Closing Date", `\bClosing Date[:\s-]+(.+)`),

	// real estate
	field("Property", `\bProperty[:\s-]+(.+)`, `\bPremises[:\s-]+(.+)`),
	field("Landlord", `\bLandlord[:\s-]+(.+)`, `\bLessor[:\s-]+(.+)`),
	field("Tenant", `\bTenant[:\s-]+(.+)`, `\bLessee[:\s-]+(.+)`),
	field("Rent", `\bRent[:\s-]+(.+)`),
	field("Lease Term", `\bLease Term[:\s-]+(.+)`),
}

// ExtractPatterns runs the deterministic pattern table over text. Fields
// without a match are omitted.
func ExtractPatterns(text string) domain.FieldSet {
	out := domain.FieldSet{}
	for _, fp := range patternTable {
		for _, re := range fp.Patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			out.Set(fp.Field, strings.TrimSpace(m[1]))
			break
		}
	}
	return out
}

// PatternFields lists the fields the deterministic table can produce, in
// table order.
func PatternFields() []string {
	out := make([]string, 0, len(patternTable))
	for _, fp := range patternTable {
		out = append(out, fp.Field)
	}
	return out
}
