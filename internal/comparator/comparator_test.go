package comparator_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"termsheet/internal/comparator"
	"termsheet/internal/domain"
	"termsheet/internal/port"
	"termsheet/mocks"
)

const idealSheet = `
  TERM SHEET
Company Name: Acme Lending Pvt Ltd
Loan Amount: Rs. 500000
Disbursement Date: 12/12/2024
Tenure: 24 months
Interest: 12.5 % per annum
`

const inputSheet = `Company Name: Acme Lending Pvt Ltd
Loan Amount: INR 600,000
Disbursement Date: December 15, 2025
Tenure: 24 months
`

func ptr(s string) *string { return domain.StringPtr(s) }

func TestExtractFields(t *testing.T) {
	got := comparator.ExtractFields(idealSheet)

	want := domain.FieldSet{
		"company_name":  ptr("Company Name: Acme Lending Pvt Ltd"),
		"amount":        ptr("Rs. 500000"),
		"date":          ptr("12/12/2024"),
		"tenure":        ptr("24 months"),
		"interest_rate": ptr("12.5 %"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFields_NothingFound(t *testing.T) {
	got := comparator.ExtractFields("")

	assert.Len(t, got, 5)
	for _, name := range comparator.Fields {
		assert.Contains(t, got, name)
		assert.Nil(t, got[name])
	}
}

func TestExtractFields_Variants(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
		want  string
	}{
		{"rupee sign", "Amount payable ₹ 1,20,000 on signing", "amount", "₹ 1,20,000"},
		{"inr lower", "inr 5000 only", "amount", "inr 5000"},
		{"long date", "Signed on 12 December 2025 at Mumbai", "date", "12 December 2025"},
		{"accented long date", "Signé le 15 décembre 2025", "date", "15 décembre 2025"},
		{"accented month first", "Échéance: février 3, 2026", "date", "février 3, 2026"},
		{"dashed date", "Due 1-2-24", "date", "1-2-24"},
		{"years", "Term of 3 years", "tenure", "3 years"},
		{"company prefix", "Company: Widgets", "company_name", "Company: Widgets"},
		{"rate", "Coupon 7% fixed", "interest_rate", "7%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := comparator.ExtractFields(tt.text)
			v, ok := got.Get(tt.field)
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestExtractFields_FirstMatchingLineWins(t *testing.T) {
	got := comparator.ExtractFields("Fee: Rs 100\nPrincipal: Rs 9000")

	v, _ := got.Get("amount")
	assert.Equal(t, "Rs 100", v)
}

func TestDiffFields_Scenario(t *testing.T) {
	ideal := domain.FieldSet{"amount": ptr("Rs. 500000"), "date": nil}
	input := domain.FieldSet{"amount": ptr("Rs. 500000"), "date": ptr("12/12/2024")}

	got := comparator.DiffFields(ideal, input)

	want := map[string]domain.FieldDiff{
		"amount": {Ideal: ptr("Rs. 500000"), Input: ptr("Rs. 500000"), Status: domain.DiffSame},
		"date":   {Ideal: nil, Input: ptr("12/12/2024"), Status: domain.DiffExtraInInput},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("differences mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffFields_DecisionTable(t *testing.T) {
	ideal := domain.FieldSet{"a": nil, "b": ptr("x"), "c": nil, "d": ptr("x"), "e": ptr("x")}
	input := domain.FieldSet{"a": nil, "b": ptr("x"), "c": ptr("y"), "d": nil, "e": ptr("y")}

	got := comparator.DiffFields(ideal, input)

	assert.Equal(t, domain.DiffNotFoundInBoth, got["a"].Status)
	assert.Equal(t, domain.DiffSame, got["b"].Status)
	assert.Equal(t, domain.DiffExtraInInput, got["c"].Status)
	assert.Equal(t, domain.DiffMissingInInput, got["d"].Status)
	assert.Equal(t, domain.DiffChanged, got["e"].Status)
}

func TestCompareText_SameDocumentNeverDiffers(t *testing.T) {
	for _, text := range []string{idealSheet, inputSheet, "", "no fields at all"} {
		res := comparator.CompareText(text, text)
		for name, d := range res.Differences {
			assert.Contains(t, []domain.DiffStatus{domain.DiffSame, domain.DiffNotFoundInBoth}, d.Status, name)
		}
		assert.Empty(t, comparator.ChangedFields(res.Differences))
	}
}

func TestCompare_UsesTextSource(t *testing.T) {
	ideal := port.Document{Name: "ideal.pdf", ContentType: "application/pdf", Data: []byte("a")}
	input := port.Document{Name: "input.pdf", ContentType: "application/pdf", Data: []byte("b")}
	src := new(mocks.MockTextSource)
	src.On("ExtractText", mock.Anything, ideal).Return(idealSheet)
	src.On("ExtractText", mock.Anything, input).Return(inputSheet)

	res := comparator.New(src).Compare(context.Background(), ideal, input)

	assert.Equal(t, domain.DiffSame, res.Differences["company_name"].Status)
	assert.Equal(t, domain.DiffChanged, res.Differences["amount"].Status)
	assert.Equal(t, domain.DiffChanged, res.Differences["date"].Status)
	assert.Equal(t, domain.DiffSame, res.Differences["tenure"].Status)
	assert.Equal(t, domain.DiffMissingInInput, res.Differences["interest_rate"].Status)
	assert.Equal(t, []string{"amount", "date", "interest_rate"}, comparator.ChangedFields(res.Differences))
	src.AssertExpectations(t)
}
