package main

import (
	"github.com/spf13/cobra"

	"termsheet/internal/domain"
)

type extractOutput struct {
	File           string                      `json:"file"`
	DocumentType   domain.DocumentType         `json:"document_type"`
	Classification domain.ClassificationSource `json:"classification"`
	Fields         domain.FieldSet             `json:"extracted_fields"`
	Provenance     map[string]string           `json:"provenance,omitempty"`
	RawText        string                      `json:"raw_text,omitempty"`
}

func newExtractCmd(gf *globalFlags) *cobra.Command {
	var (
		docType string
		withRaw bool
	)
	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Classify a term sheet and print its extracted fields",
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

			text := p.text.ExtractText(cmd.Context(), doc)
			ex := p.extractor.ExtractWithType(cmd.Context(), text, override)
			out := extractOutput{
				File:           doc.Name,
				DocumentType:   ex.DocumentType,
				Classification: ex.Classification,
				Fields:         ex.ExtractedFields,
				Provenance:     ex.Provenance,
			}
			if withRaw {
				out.RawText = ex.RawText
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&docType, "type", "", "Document type override (skips classification)")
	cmd.Flags().BoolVar(&withRaw, "raw", false, "Include the extracted raw text")
	return cmd
}
