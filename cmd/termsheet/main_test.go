package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const equitySheet = `TERM SHEET
Company Name: Acme Inc
Investor: Fund I LP
Investment Amount: USD 2,000,000
Pre-Money Valuation: USD 8,000,000
Post-Money Valuation: USD 10,000,000
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	return got, nil
}

func TestClassifyCommand(t *testing.T) {
	path := writeFile(t, "series_a.txt", equitySheet)

	got, err := execute(t, "--offline", "classify", path)

	require.NoError(t, err)
	assert.Equal(t, "startup_equity", got["document_type"])
	assert.Equal(t, "heuristic", got["classification"])
}

func TestExtractCommand(t *testing.T) {
	path := writeFile(t, "series_a.txt", equitySheet)

	got, err := execute(t, "--offline", "extract", path)

	require.NoError(t, err)
	fields := got["extracted_fields"].(map[string]any)
	assert.Equal(t, "Acme Inc", fields["Company Name"])
	assert.Equal(t, "Fund I LP", fields["Investor"])
	assert.NotContains(t, got, "raw_text")
}

func TestExtractCommand_UnknownTypeFlag(t *testing.T) {
	path := writeFile(t, "series_a.txt", equitySheet)

	_, err := execute(t, "--offline", "extract", "--type", "invoice", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document type")
}

func TestValidateCommand_WritesWorkbook(t *testing.T) {
	path := writeFile(t, "series_a.txt", equitySheet)
	xlsx := filepath.Join(t.TempDir(), "report.xlsx")

	got, err := execute(t, "--offline", "validate", "--xlsx", xlsx, path)

	require.NoError(t, err)
	validation := got["validation"].(map[string]any)
	assert.Equal(t, float64(100), validation["score"])
	assert.Equal(t, "Needs Review", validation["status"])
	assert.Equal(t, "skipped", validation["deep_check"])

	data, err := os.ReadFile(xlsx)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), data[:2])
}

func TestCompareCommand(t *testing.T) {
	ideal := writeFile(t, "ideal.txt", "Company: Acme Finance\nLoan Amount: Rs. 5,00,000\nTenure: 12 months\n")
	input := writeFile(t, "input.txt", "Company: Acme Finance\nLoan Amount: Rs. 6,00,000\nTenure: 12 months\nInterest: 9.5%\n")

	got, err := execute(t, "compare", ideal, input)

	require.NoError(t, err)
	assert.Equal(t, []any{"amount", "interest_rate"}, got["changed_fields"])
	diffs := got["comparison"].(map[string]any)["differences"].(map[string]any)
	assert.Equal(t, "same", diffs["company_name"].(map[string]any)["status"])
	assert.Equal(t, "extra_in_input", diffs["interest_rate"].(map[string]any)["status"])
}

func TestCompareCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "compare", "/nonexistent/ideal.txt", "/nonexistent/input.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read /nonexistent/ideal.txt")
}
