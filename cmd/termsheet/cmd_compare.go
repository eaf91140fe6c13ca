package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"termsheet/internal/comparator"
	"termsheet/internal/domain"
	"termsheet/internal/report"
	"termsheet/internal/textsource"
)

type compareOutput struct {
	Ideal   string                   `json:"ideal_file"`
	Input   string                   `json:"input_file"`
	Changed []string                 `json:"changed_fields"`
	Result  *domain.ComparisonResult `json:"comparison"`
}

func newCompareCmd() *cobra.Command {
	var xlsxPath string
	cmd := &cobra.Command{
		Use:   "compare IDEAL INPUT",
		Short: "Diff the key fields of an input term sheet against an ideal one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ideal, err := readDocument(args[0])
			if err != nil {
				return err
			}
			input, err := readDocument(args[1])
			if err != nil {
				return err
			}

			res := comparator.New(textsource.New(0)).Compare(cmd.Context(), ideal, input)

			if xlsxPath != "" {
				rec := &domain.ComparisonRecord{
					ID:            uuid.New(),
					IdealFileName: ideal.Name,
					InputFileName: input.Name,
					Result:        *res,
				}
				data, err := report.ComparisonWorkbook(rec)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", xlsxPath, err)
				}
			}

			return writeJSON(cmd.OutOrStdout(), compareOutput{
				Ideal:   ideal.Name,
				Input:   input.Name,
				Changed: comparator.ChangedFields(res.Differences),
				Result:  res,
			})
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the comparison to this XLSX file")
	return cmd
}
