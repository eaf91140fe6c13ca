package llm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsheet/internal/llm"
)

func TestExtractJSONObject_StripsCodeFences(t *testing.T) {
	raw, ok := llm.ExtractJSONObject("```json\n{\"ISIN\": \"XS123\"}\n```")

	require.True(t, ok)
	assert.Equal(t, `{"ISIN": "XS123"}`, raw)
}

func TestExtractJSONObject_GreedyBraces(t *testing.T) {
	raw, ok := llm.ExtractJSONObject(`Here you go: {"a": {"b": 1}} hope that helps`)

	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, raw)
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	_, ok := llm.ExtractJSONObject("I could not find any fields.")
	assert.False(t, ok)

	_, ok = llm.ExtractJSONObject("} backwards {")
	assert.False(t, ok)
}

func TestDecodeJSONObject_Strict(t *testing.T) {
	var out map[string]any
	err := llm.DecodeJSONObject(`{"Issuer": "Bank A", "ISIN": null}`, &out)

	require.NoError(t, err)
	assert.Equal(t, "Bank A", out["Issuer"])
	assert.Contains(t, out, "ISIN")
	assert.Nil(t, out["ISIN"])
}

func TestDecodeJSONObject_TrailingComma(t *testing.T) {
	var out map[string]any
	err := llm.DecodeJSONObject("```json\n{\"Issuer\": \"Bank A\", \"Coupon Rate\": \"5%\",}\n```", &out)

	require.NoError(t, err)
	assert.Equal(t, "Bank A", out["Issuer"])
	assert.Equal(t, "5%", out["Coupon Rate"])
}

func TestDecodeJSONObject_NoObject(t *testing.T) {
	var out map[string]any
	err := llm.DecodeJSONObject("no json here", &out)

	assert.True(t, errors.Is(err, llm.ErrNoJSONObject))
}

func TestDecodeJSONObject_StructTarget(t *testing.T) {
	var out struct {
		Score  int      `json:"score"`
		Issues []string `json:"issues"`
	}
	err := llm.DecodeJSONObject(`{"score": 80, "issues": ["ISIN malformed"]}`, &out)

	require.NoError(t, err)
	assert.Equal(t, 80, out.Score)
	assert.Equal(t, []string{"ISIN malformed"}, out.Issues)
}
