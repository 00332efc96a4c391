package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ainews-journalist/internal/model"
	"ainews-journalist/internal/storage"

	"github.com/spf13/cobra"
)

var genOutput string

// generateCmd runs the pipeline once and writes the document.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch AI news once and write the JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if strings.TrimSpace(genOutput) != "" {
			cfg.Output.Path = genOutput
		}
		b, err := newBuilder(cfg)
		if err != nil {
			return err
		}

		ctx := context.Background()
		doc, err := b.Build(ctx)
		if err != nil {
			return fmt.Errorf("generate: no document could be produced: %w", err)
		}

		if err := storage.NewFileStore(cfg.Output.Path).Save(ctx, doc); err != nil {
			return fmt.Errorf("generate: save %s: %w", cfg.Output.Path, err)
		}
		slog.Info("generate: document saved", "path", cfg.Output.Path, "source", doc.Source, "total_news", doc.TotalNews)

		sinks, rdb := secondarySinks(cfg)
		if rdb != nil {
			defer rdb.Close()
		}
		for _, s := range sinks {
			if err := s.Save(ctx, doc); err != nil {
				slog.Warn("generate: secondary output failed", "error", err)
			}
		}

		printPreview(cmd.OutOrStdout(), doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output path (overrides output.path)")
}

// printPreview shows the first three items of doc.
func printPreview(w io.Writer, doc model.NewsDocument) {
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Updated: %s\n", doc.UpdateTime)
	fmt.Fprintf(w, "Total:   %d\n", doc.TotalNews)
	fmt.Fprintf(w, "Source:  %s\n\n", doc.Source)
	for i, it := range doc.Preview(3) {
		fmt.Fprintf(w, "%d. %s\n", i+1, it.Title)
		fmt.Fprintf(w, "   category: %s\n", it.Category)
		fmt.Fprintf(w, "   score:    %d\n\n", it.Score)
	}
	fmt.Fprintln(w, strings.Repeat("=", 50))
}
