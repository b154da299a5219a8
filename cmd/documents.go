// ABOUTME: Document and video commands for application files
// ABOUTME: Uploads send metadata in the query string and the binary in the body

package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
)

var documentColumns = []column{
	{"ID", "id"},
	{"TYPE", "document_type"},
	{"FILE", "file_name"},
	{"STATUS", "status"},
	{"UPLOADED", "created_at"},
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage application documents and videos",
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload <application-id> <type> <file>",
	Short: "Upload a document for an application",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			f, err := os.Open(args[2])
			if err != nil {
				return fail(err)
			}
			defer f.Close()

			raw, err := c.UploadDocument(ctx, args[0], args[1], filepath.Base(args[2]), f)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var docsListCmd = &cobra.Command{
	Use:   "list <application-id>",
	Short: "List the documents on an application",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Documents(ctx, args[0])
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, documentColumns)
			}
			return 0
		})
	},
}

var docsVideosCmd = &cobra.Command{
	Use:   "videos <application-id>",
	Short: "List the videos on an application",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Videos(ctx, args[0])
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, documentColumns)
			}
			return 0
		})
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsUploadCmd, docsListCmd, docsVideosCmd)
}
