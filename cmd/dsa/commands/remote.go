package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dsa/internal/service"
)

func remoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Run graph queries against a dsa-server (see --server)",
	}
	cmd.AddCommand(
		remoteUploadCmd(),
		remoteListCmd(),
		remoteRouteCmd(),
		remoteMSTCmd(),
		remoteIDCmd("components <id>", "List connected components", remoteComponents),
		remoteIDCmd("cycles <id>", "List every simple cycle", remoteCycles),
		remoteIDCmd("delete <id>", "Remove a graph from the server", remoteDelete),
	)
	return cmd
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func remoteUploadCmd() *cobra.Command {
	var f sourceFlags
	cmd := &cobra.Command{
		Use:   "upload <graph>",
		Short: "Upload a stored graph or graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0], f)
			if err != nil {
				return err
			}
			info, err := wire.Remote.Upload(ctxOf(cmd), doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\nFingerprint: %s\n", info.ID, info.Fingerprint)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func remoteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List graphs held by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := wire.Remote.List(ctxOf(cmd))
			if err != nil {
				return err
			}
			for _, g := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d vertices\t%d edges\n", g.ID, g.Name, g.Fingerprint, g.Vertices, g.Edges)
			}
			return nil
		},
	}
}

func remoteRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <id> <from> <to>",
		Short: "Shortest path on the server",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := wire.Remote.Route(ctxOf(cmd), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), r.Text)
			return nil
		},
	}
}

func remoteMSTCmd() *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "mst <id>",
		Short: "Minimum spanning tree on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := wire.Remote.MST(ctxOf(cmd), args[0], algo)
			if err != nil {
				return err
			}
			printTree(cmd, r.Edges, r.TotalWeight)
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "prim", "prim or kruskal")
	return cmd
}

type remoteAction func(cmd *cobra.Command, id string) error

func remoteIDCmd(use, short string, run remoteAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
}

func remoteComponents(cmd *cobra.Command, id string) error {
	r, err := wire.Remote.Components(ctxOf(cmd), id)
	if err != nil {
		return err
	}
	printGroups(cmd, r)
	return nil
}

func printGroups(cmd *cobra.Command, r service.ComponentsResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Components: %d\n", r.Count)
	for i, g := range r.Groups {
		fmt.Fprintf(out, "  %d: %s\n", i+1, strings.Join(g, " "))
	}
}

func remoteCycles(cmd *cobra.Command, id string) error {
	r, err := wire.Remote.Cycles(ctxOf(cmd), id)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), r.Text)
	return nil
}

func remoteDelete(cmd *cobra.Command, id string) error {
	if err := wire.Remote.Delete(ctxOf(cmd), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}
