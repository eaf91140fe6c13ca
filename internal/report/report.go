// Package report renders validation and comparison results as XLSX workbooks.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"termsheet/internal/comparator"
	"termsheet/internal/domain"
	"termsheet/internal/validator"
)

// Sheet names.
const (
	SheetSummary    = "Summary"
	SheetFields     = "Fields"
	SheetIssues     = "Issues"
	SheetComparison = "Comparison"
)

// ValidationWorkbook builds the export for a stored validation. statuses are
// the per-field rows computed against the upload's schema.
func ValidationWorkbook(rec *domain.ValidationRecord, statuses []validator.FieldStatus) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	res := rec.Result
	summary := [][]any{
		{"Validation ID", rec.ID.String()},
		{"Upload ID", rec.UploadID.String()},
		{"Document Type", string(res.DocumentType)},
		{"Status", res.Status.Label()},
		{"Score", res.Score},
		{"Deep Check", string(res.DeepCheck)},
		{"Summary", res.Summary},
		{"Validated At", rec.CreatedAt.UTC().Format(time.RFC3339)},
	}
	if err := writeRows(f, SheetSummary, 1, summary); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetSummary, "A", "A", 18)
	_ = f.SetColWidth(SheetSummary, "B", "B", 60)

	if _, err := f.NewSheet(SheetFields); err != nil {
		return nil, fmt.Errorf("adding sheet %s: %w", SheetFields, err)
	}
	rows := [][]any{{"Field", "Required", "State", "Value"}}
	for _, st := range statuses {
		rows = append(rows, []any{st.Field, yesNo(st.Required), string(st.State), deref(st.Value)})
	}
	if err := writeRows(f, SheetFields, 1, rows); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetFields, "A", "A", 28)
	_ = f.SetColWidth(SheetFields, "D", "D", 48)

	if _, err := f.NewSheet(SheetIssues); err != nil {
		return nil, fmt.Errorf("adding sheet %s: %w", SheetIssues, err)
	}
	rows = [][]any{{"#", "Issue"}}
	for i, issue := range res.Issues {
		rows = append(rows, []any{i + 1, issue})
	}
	if err := writeRows(f, SheetIssues, 1, rows); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetIssues, "B", "B", 80)

	return finish(f)
}

// ComparisonWorkbook builds the export for a stored comparison. The five
// comparison fields come first, any others follow sorted by name.
func ComparisonWorkbook(rec *domain.ComparisonRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetComparison); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	rows := [][]any{
		{"Ideal", rec.IdealFileName},
		{"Input", rec.InputFileName},
		{},
		{"Field", "Ideal", "Input", "Status"},
	}
	for _, name := range diffOrder(rec.Result.Differences) {
		d := rec.Result.Differences[name]
		rows = append(rows, []any{name, deref(d.Ideal), deref(d.Input), string(d.Status)})
	}
	if err := writeRows(f, SheetComparison, 1, rows); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetComparison, "A", "A", 18)
	_ = f.SetColWidth(SheetComparison, "B", "C", 40)
	_ = f.SetColWidth(SheetComparison, "D", "D", 20)

	return finish(f)
}

func diffOrder(diffs map[string]domain.FieldDiff) []string {
	order := make([]string, 0, len(diffs))
	known := make(map[string]bool, len(comparator.Fields))
	for _, name := range comparator.Fields {
		known[name] = true
		if _, ok := diffs[name]; ok {
			order = append(order, name)
		}
	}
	var extra []string
	for name := range diffs {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, startRow+i, err)
		}
	}
	return nil
}

func finish(f *excelize.File) ([]byte, error) {
	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
