package main

import (
	"github.com/spf13/cobra"

	"termsheet/internal/domain"
)

type classifyOutput struct {
	File     string                      `json:"file"`
	Type     domain.DocumentType         `json:"document_type"`
	Source   domain.ClassificationSource `json:"classification"`
	Scores   map[domain.DocumentType]int `json:"scores"`
	Degraded bool                        `json:"degraded,omitempty"`
	Reason   string                      `json:"reason,omitempty"`
}

func newClassifyCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE",
		Short: "Print the document type of a term sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline(gf)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			text := p.text.ExtractText(cmd.Context(), doc)
			res := p.classifier.Classify(cmd.Context(), text)
			return writeJSON(cmd.OutOrStdout(), classifyOutput{
				File:     doc.Name,
				Type:     res.Type,
				Source:   res.Source,
				Scores:   res.Scores,
				Degraded: res.Degraded,
				Reason:   res.Reason,
			})
		},
	}
}
