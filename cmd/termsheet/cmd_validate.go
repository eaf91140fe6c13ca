package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"termsheet/internal/domain"
	"termsheet/internal/report"
)

type validateOutput struct {
	File       string                   `json:"file"`
	Extraction extractOutput            `json:"extraction"`
	Validation *domain.ValidationResult `json:"validation"`
}

func newValidateCmd(gf *globalFlags) *cobra.Command {
	var (
		docType   string
		deepCheck bool
		xlsxPath  string
	)
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Extract a term sheet and score it against its schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := parseTypeFlag(docType)
			if err != nil {
				return err
			}
			p, err := buildPipeline(gf)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ex := p.extractor.ExtractWithType(ctx, p.text.ExtractText(ctx, doc), override)
			res := p.validator.Validate(ctx, ex.ExtractedFields, ex.DocumentType, deepCheck)

			if xlsxPath != "" {
				rec := &domain.ValidationRecord{ID: uuid.New(), DeepCheck: deepCheck, Result: *res}
				data, err := report.ValidationWorkbook(rec, p.validator.ComputeFieldStatuses(ex.ExtractedFields, ex.DocumentType))
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", xlsxPath, err)
				}
			}

			return writeJSON(cmd.OutOrStdout(), validateOutput{
				File: doc.Name,
				Extraction: extractOutput{
					File:           doc.Name,
					DocumentType:   ex.DocumentType,
					Classification: ex.Classification,
					Fields:         ex.ExtractedFields,
					Provenance:     ex.Provenance,
				},
				Validation: res,
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&docType, "type", "", "Document type override (skips classification)")
	f.BoolVar(&deepCheck, "deep-check", false, "Run the AI consistency check")
	f.StringVar(&xlsxPath, "xlsx", "", "Also write the validation report to this XLSX file")
	return cmd
}
