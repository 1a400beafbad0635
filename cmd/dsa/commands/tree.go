package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dsa/internal/tree/bst"
)

func treeCmd() *cobra.Command {
	var (
		kind    string
		deletes []int
	)
	cmd := &cobra.Command{
		Use:   "tree <keys...>",
		Short: "Insert keys into a basic or AVL tree and draw the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t bst.Tree[int, struct{}]
			switch kind {
			case "basic":
				t = bst.NewBasic[int, struct{}]()
			case "avl":
				t = bst.NewAVL[int, struct{}]()
			default:
				return fmt.Errorf("unknown tree kind %q (basic or avl)", kind)
			}
			for _, arg := range args {
				k, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("not an integer: %q", arg)
				}
				t.Put(k, struct{}{})
			}
			for _, k := range deletes {
				t.Delete(k)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, bst.Render(t.Root()))
			fmt.Fprintf(out, "size=%d height=%d\n", t.Len(), t.Height())
			fmt.Fprintf(out, "in-order: %s\n", joinInts(bst.Keys(t.Root())))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "avl", "tree kind: basic or avl")
	cmd.Flags().IntSliceVar(&deletes, "delete", nil, "keys to delete after inserting")
	return cmd
}
