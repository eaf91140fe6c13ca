package extractor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"termsheet/internal/domain"
	"termsheet/internal/extractor"
)

func fields(kv ...string) domain.FieldSet {
	out := domain.FieldSet{}
	for i := 0; i+1 < len(kv); i += 2 {
		out.Set(kv[i], kv[i+1])
	}
	return out
}

func TestMerge_PatternWinsOnConflict(t *testing.T) {
	base := fields("Issuer", "Bank A", "ISIN", "XS123")
	ai := fields("Issuer", "Bank B", "Coupon Rate", "5%")

	merged, provenance := extractor.Merge(base, ai)

	want := fields("Issuer", "Bank A", "ISIN", "XS123", "Coupon Rate", "5%")
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merged fields mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]string{"Issuer": "pattern", "ISIN": "pattern", "Coupon Rate": "ai"}, provenance)
}

func TestMerge_AIFillsEmptyPatternValue(t *testing.T) {
	base := fields("Investor", "")
	base["Company Name"] = nil
	ai := fields("Investor", "Fund I", "Company Name", "Acme Inc")

	merged, provenance := extractor.Merge(base, ai)

	v, ok := merged.Get("Investor")
	assert.True(t, ok)
	assert.Equal(t, "Fund I", v)
	v, ok = merged.Get("Company Name")
	assert.True(t, ok)
	assert.Equal(t, "Acme Inc", v)
	assert.Equal(t, "ai", provenance["Investor"])
}

func TestMerge_WhitespacePatternValueWins(t *testing.T) {
	base := fields("Investor", " ")
	ai := fields("Investor", "Fund I")

	merged, provenance := extractor.Merge(base, ai)

	assert.Equal(t, " ", *merged["Investor"])
	assert.Equal(t, "pattern", provenance["Investor"])
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := fields("Investor", "")
	ai := fields("Investor", "Fund I")

	_, _ = extractor.Merge(base, ai)

	assert.Equal(t, "", *base["Investor"])
}

func TestMerge_NilAI(t *testing.T) {
	base := fields("ISIN", "XS1")

	merged, provenance := extractor.Merge(base, nil)

	assert.Equal(t, base, merged)
	assert.Equal(t, map[string]string{"ISIN": "pattern"}, provenance)
}
