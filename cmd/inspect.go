package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"ainews-journalist/internal/markdown"
	"ainews-journalist/internal/storage"

	"github.com/spf13/cobra"
)

// inspectCmd prints a summary of a previously written document or digest.
var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Print the preview of an existing JSON document or Markdown digest",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().Output.Path
		if len(args) == 1 {
			path = args[0]
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			doc, err := markdown.ParseFile(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range []string{"title", "datetime", "source"} {
				fmt.Fprintf(out, "%-9s %s\n", k+":", doc.String(k))
			}
			fmt.Fprintf(out, "%-9s %v\n", "total:", doc.Frontmatter["total_news"])
			fmt.Fprintf(out, "body bytes: %d\n", len(doc.Body))
			return nil
		}
		doc, err := storage.NewFileStore(path).LatestDocument(context.Background())
		if err != nil {
			return err
		}
		if err := doc.Validate(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		printPreview(cmd.OutOrStdout(), doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
