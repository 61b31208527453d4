package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <kind> [token]",
	Short: "Show an entity document",
	Long: `Show the document for an entity. The token may be an exact id
("character-003"), a bare numeric suffix ("3"), or a case-insensitive title
fragment ("ali" for Alice). For writers an empty token means the current
writer; for chapters use "nvk chapter show".`,
	Args: rangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	const action = "show"

	if args[0] == "chapter" {
		return showChapter(action, tokenArg(args[1:]))
	}

	kind, err := lookupKind(action, args[0])
	if err != nil {
		return err
	}
	state, err := requireState(action)
	if err != nil {
		return err
	}

	token := tokenArg(args[1:])
	if kind.Name == "writer" && strings.TrimSpace(token) == "" {
		if token = state.CurrentWriterID(); token == "" {
			return failMsg(action, ErrNotFound, "no current writer set")
		}
	}

	rec, err := entityStore().Resolve(kind, token)
	if err != nil {
		return failResolve(action, err)
	}

	content, err := os.ReadFile(rec.Path)
	if err != nil {
		return fail(action, ErrInternal, err)
	}

	if plainOutput {
		printDocument(string(content))
		return nil
	}
	return respond(action, map[string]interface{}{
		"kind":    kind.Name,
		"id":      rec.ID,
		"title":   rec.Title,
		"file":    proj.Rel(rec.Path),
		"content": string(content),
	})
}

// printDocument renders markdown for terminals and prints it raw otherwise.
func printDocument(content string) {
	if ui.IsTTY() {
		fmt.Print(ui.RenderMarkdown(content, ui.TermWidth()))
		return
	}
	fmt.Print(content)
}
