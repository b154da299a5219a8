// ABOUTME: Promotional stories commands
// ABOUTME: Story and slide management plus slide image upload

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
)

var storyBody string

var storyColumns = []column{
	{"ID", "id"},
	{"TITLE", "title"},
	{"ACTIVE", "is_active"},
	{"SLIDES", "slides.#"},
	{"ORDER", "order"},
}

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Manage promotional stories",
}

var storiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stories",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Stories(ctx)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, storyColumns)
			}
			return 0
		})
	},
}

var storiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a story from a JSON payload",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(storyBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.CreateStory(ctx, payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var storiesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Patch a story with a JSON payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(storyBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.UpdateStory(ctx, args[0], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var storiesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a story and its slides",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Delete story %s and all its slides?", args[0])) {
			return
		}
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			if _, err := c.DeleteStory(ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Fprintf(w, "Story %s deleted.\n", args[0])
			return 0
		})
	},
}

var storiesAddSlideCmd = &cobra.Command{
	Use:   "add-slide <story-id>",
	Short: "Append a slide from a JSON payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(storyBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.AddSlide(ctx, args[0], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var storiesDeleteSlideCmd = &cobra.Command{
	Use:   "delete-slide <slide-id>",
	Short: "Delete a single slide",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			if _, err := c.DeleteSlide(ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Fprintf(w, "Slide %s deleted.\n", args[0])
			return 0
		})
	},
}

var storiesUploadCmd = &cobra.Command{
	Use:   "upload-image <file>",
	Short: "Upload a slide image and print its URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			f, err := os.Open(args[0])
			if err != nil {
				return fail(err)
			}
			defer f.Close()

			raw, err := c.UploadStoryImage(ctx, filepath.Base(args[0]), f)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

func init() {
	rootCmd.AddCommand(storiesCmd)
	storiesCmd.AddCommand(storiesListCmd, storiesCreateCmd, storiesUpdateCmd,
		storiesDeleteCmd, storiesAddSlideCmd, storiesDeleteSlideCmd, storiesUploadCmd)
	storiesCreateCmd.Flags().StringVar(&storyBody, "body", "", "JSON payload (reads stdin when omitted)")
	storiesUpdateCmd.Flags().StringVar(&storyBody, "body", "", "JSON payload (reads stdin when omitted)")
	storiesAddSlideCmd.Flags().StringVar(&storyBody, "body", "", "JSON payload (reads stdin when omitted)")
}
