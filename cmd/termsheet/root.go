package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"termsheet/internal/classifier"
	"termsheet/internal/config"
	"termsheet/internal/extractor"
	"termsheet/internal/llm"
	_ "termsheet/internal/llm/providers"
	"termsheet/internal/logging"
	"termsheet/internal/port"
	"termsheet/internal/schema"
	"termsheet/internal/textsource"
	"termsheet/internal/validator"
)

// version is set at build time via -ldflags.
var version = "dev"

type globalFlags struct {
	schemaPath string
	offline    bool
}

// pipeline holds the components shared by the subcommands.
type pipeline struct {
	text       *textsource.Source
	classifier *classifier.Classifier
	extractor  *extractor.Extractor
	validator  *validator.Validator
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:           "termsheet",
		Short:         "Classify, extract, validate and compare term sheets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&gf.schemaPath, "schema", "", "Master schema file (JSON or YAML); built-in schemas when empty")
	f.BoolVar(&gf.offline, "offline", false, "Never call the completion API")

	root.AddCommand(
		newClassifyCmd(&gf),
		newExtractCmd(&gf),
		newValidateCmd(&gf),
		newCompareCmd(),
	)
	return root
}

// buildPipeline wires the pipeline from environment configuration. Without
// an API key, or with --offline, the completion API is never called.
func buildPipeline(gf *globalFlags) (*pipeline, error) {
	cfg := config.Read()
	logging.Setup(cfg.Log)

	path := gf.schemaPath
	if path == "" {
		path = cfg.Schema.Path
	}
	registry, err := schema.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}

	var completer port.Completer
	switch {
	case gf.offline:
	case cfg.Validate() != nil:
		log.Printf("termsheet: completion API not configured, running offline: %v", cfg.Validate())
	default:
		c, err := llm.NewFromConfig(&cfg.Completion)
		if err != nil {
			return nil, fmt.Errorf("completion provider: %w", err)
		}
		completer = c
	}

	cls := classifier.New(completer, cfg.Pipeline)
	return &pipeline{
		text:       textsource.New(cfg.Upload.MaxFileSizeMB * 1024 * 1024),
		classifier: cls,
		extractor:  extractor.New(completer, registry, cls, cfg.Pipeline),
		validator:  validator.New(completer, registry, cfg.Pipeline),
	}, nil
}
