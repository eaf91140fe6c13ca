package comparator

import (
	"regexp"
	"strings"

	"termsheet/internal/domain"
)

// Comparison field names.
const (
	FieldCompanyName  = "company_name"
	FieldAmount       = "amount"
	FieldDate         = "date"
	FieldTenure       = "tenure"
	FieldInterestRate = "interest_rate"
)

// Fields lists the comparison vocabulary in report order.
var Fields = []string{FieldCompanyName, FieldAmount, FieldDate, FieldTenure, FieldInterestRate}

var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)rs\.?\s?\d[\d,.]*`),
		regexp.MustCompile(`(?i)₹\s?\d[\d,.]*`),
		regexp.MustCompile(`(?i)inr\s?\d[\d,.]*`),
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),  // 10/12/2024
		regexp.MustCompile(`(?i)[\p{L}\p{N}_]+\s\d{1,2},\s\d{4}\b`),  // December 15, 2025
		regexp.MustCompile(`(?i)\b\d{1,2}\s[\p{L}\p{N}_]+\s\d{4}\b`), // 15 décembre 2025
	}
	tenurePatterns   = []*regexp.Regexp{regexp.MustCompile(`(?i)\b\d+\s?(months?|years?)\b`)}
	interestPatterns = []*regexp.Regexp{regexp.MustCompile(`\d+(\.\d+)?\s?%`)}
)

// ExtractFields pulls the five comparison fields out of text. Every field is
// present in the result; a nil value means no line matched.
func ExtractFields(text string) domain.FieldSet {
	lines := splitLines(text)

	out := domain.FieldSet{
		FieldCompanyName:  firstCompanyLine(lines),
		FieldAmount:       firstMatch(lines, amountPatterns),
		FieldDate:         firstMatch(lines, datePatterns),
		FieldTenure:       firstMatch(lines, tenurePatterns),
		FieldInterestRate: firstMatch(lines, interestPatterns),
	}
	return out
}

func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func firstCompanyLine(lines []string) *string {
	for _, l := range lines {
		lower := strings.ToLower(l)
		if strings.HasPrefix(lower, "company") || strings.Contains(lower, "company name") {
			return domain.StringPtr(l)
		}
	}
	return nil
}

// firstMatch scans lines in order and returns the whole match of the first
// pattern that hits on the earliest matching line.
func firstMatch(lines []string, patterns []*regexp.Regexp) *string {
	for _, l := range lines {
		for _, re := range patterns {
			if m := re.FindString(l); m != "" {
				return domain.StringPtr(m)
			}
		}
	}
	return nil
}
