package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/entity"
	"github.com/yansilmi/novel-kit/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List entities of a kind",
	Long: `List every entity of a kind with its id, title and status.
Title and status are read from the documents themselves; files that stray
from the template degrade to placeholder values instead of failing.`,
	Args: exactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	const action = "list"

	kind, err := lookupKind(action, args[0])
	if err != nil {
		return err
	}
	if _, err := requireState(action); err != nil {
		return err
	}

	items, err := entityStore().List(kind)
	if err != nil {
		return fail(action, ErrInternal, err)
	}
	if items == nil {
		items = []entity.Summary{}
	}

	if plainOutput {
		printEntityTable(kind, items)
		return nil
	}
	return respond(action, map[string]interface{}{
		"kind":  kind.Name,
		"count": len(items),
		"items": items,
	})
}

func printEntityTable(kind entity.Kind, items []entity.Summary) {
	if len(items) == 0 {
		fmt.Println(ui.Hint(fmt.Sprintf("No %s entries yet", kind.Name)))
		return
	}
	fmt.Println(ui.Header(fmt.Sprintf("%s (%d)", kind.Name, len(items))))
	for _, item := range items {
		fmt.Printf("  %s  %-30s %s\n", ui.ID(item.ID), item.Title, ui.Hint(item.Status))
	}
}
