package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dsa/internal/graph"
	"dsa/internal/graph/compute"
	"dsa/internal/store"
)

// sourceFlags are shared by commands that read a graph file.
type sourceFlags struct {
	directed bool
	weighted bool
	name     string
}

func (f *sourceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.directed, "directed", "d", false, "edge-list files: treat edges as directed")
	cmd.Flags().BoolVarP(&f.weighted, "weighted", "w", false, "edge-list files: keep edge weights")
}

func isDocumentPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// readDocument turns a stored name or a file path into a document.
func readDocument(ref string, f sourceFlags) (graph.Document, error) {
	if store.ValidateName(ref) == nil {
		doc, err := wire.Store.Load(ref)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return graph.Document{}, err
		}
	}
	if isDocumentPath(ref) {
		return graph.LoadDocument(ref)
	}
	b, err := os.ReadFile(ref)
	if err != nil {
		return graph.Document{}, fmt.Errorf("%q is neither a stored graph nor a readable file: %w", ref, err)
	}
	name := f.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	}
	return graph.Document{
		Name:     name,
		Directed: f.directed,
		Weighted: f.weighted,
		Kind:     graph.Kind(wire.Config.GraphKind),
		Text:     string(b),
	}, nil
}

func loadGraph(ref string, f sourceFlags) (graph.Graph, error) {
	doc, err := readDocument(ref, f)
	if err != nil {
		return nil, err
	}
	if doc.Kind == "" {
		doc.Kind = graph.Kind(wire.Config.GraphKind)
	}
	return graph.Build(doc)
}

func graphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Store graphs and run graph algorithms locally",
	}
	cmd.AddCommand(
		graphImportCmd(),
		graphListCmd(),
		graphDeleteCmd(),
		graphQueryCmd("show <graph>", "Print the vertex table and adjacency", showGraph),
		graphQueryCmd("fingerprint <graph>", "Print the graph fingerprint", printFingerprint),
		graphTraverseCmd(),
		graphQueryCmd("components <graph>", "List connected components", printComponents),
		graphRouteCmd(),
		graphMSTCmd(),
		graphQueryCmd("cycles <graph>", "List every simple cycle", printCycles),
	)
	return cmd
}

func graphImportCmd() *cobra.Command {
	var f sourceFlags
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a graph file and save it in the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc graph.Document
				err error
			)
			if isDocumentPath(args[0]) {
				doc, err = graph.LoadDocument(args[0])
			} else {
				doc, err = readDocument(args[0], f)
			}
			if err != nil {
				return err
			}
			if f.name != "" {
				doc.Name = f.name
			}
			entry, err := wire.Store.Save(doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d vertices, %d edges)\nFingerprint: %s\n",
				entry.Name, entry.Vertices, entry.Edges, entry.Fingerprint)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&f.name, "name", "", "store name (default file base name)")
	return cmd
}

func graphListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := wire.Store.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range names {
				e, err := wire.Store.Entry(n)
				if err != nil {
					fmt.Fprintln(out, n)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%d vertices\t%d edges\n", n, e.Fingerprint, e.Vertices, e.Edges)
			}
			return nil
		},
	}
}

func graphDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

type graphAction func(cmd *cobra.Command, g graph.Graph, args []string) error

func graphQueryCmd(use, short string, run graphAction) *cobra.Command {
	var f sourceFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], f)
			if err != nil {
				return err
			}
			return run(cmd, g, args[1:])
		},
	}
	f.bind(cmd)
	return cmd
}

func showGraph(cmd *cobra.Command, g graph.Graph, _ []string) error {
	return graph.Describe(cmd.OutOrStdout(), g)
}

func printFingerprint(cmd *cobra.Command, g graph.Graph, _ []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", graph.Fingerprint(g))
	return nil
}

func printComponents(cmd *cobra.Command, g graph.Graph, _ []string) error {
	c, err := compute.NewComponents(g)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Components: %d\n", c.Count())
	for i, group := range c.Groups() {
		fmt.Fprintf(out, "  %d: %s\n", i+1, joinVertices(group))
	}
	return nil
}

func printCycles(cmd *cobra.Command, g graph.Graph, _ []string) error {
	c, err := compute.FindCycles(g)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), c.Format())
	return nil
}

func graphTraverseCmd() *cobra.Command {
	var (
		f     sourceFlags
		order string
		from  string
	)
	cmd := &cobra.Command{
		Use:   "traverse <graph>",
		Short: "Print the DFS or BFS visit order from a vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], f)
			if err != nil {
				return err
			}
			walk := compute.DFS
			switch strings.ToLower(order) {
			case "dfs":
			case "bfs":
				walk = compute.BFS
			default:
				return fmt.Errorf("unknown traversal %q (dfs or bfs)", order)
			}
			start := from
			if start == "" {
				v, _ := g.VertexAt(0)
				start = v.Name
			}
			out := cmd.OutOrStdout()
			visited, err := walk(g, start, compute.Visitor{
				Edge: func(e graph.Edge) { fmt.Fprintf(out, "Visit Edge: %s\n", e) },
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s from %s: %s\n", strings.ToUpper(order), start, joinVertices(visited))
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&order, "order", "dfs", "dfs or bfs")
	cmd.Flags().StringVar(&from, "from", "", "start vertex (default first vertex)")
	return cmd
}

func graphRouteCmd() *cobra.Command {
	var f sourceFlags
	cmd := &cobra.Command{
		Use:   "route <graph> <from> <to>",
		Short: "Print the shortest path between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], f)
			if err != nil {
				return err
			}
			if _, ok := g.Vertex(args[2]); !ok {
				return fmt.Errorf("%w: %q", compute.ErrVertexNotFound, args[2])
			}
			p, err := compute.ShortestPaths(g, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), p.FormatRouteTo(args[2]))
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func graphMSTCmd() *cobra.Command {
	var (
		f    sourceFlags
		algo string
	)
	cmd := &cobra.Command{
		Use:   "mst <graph>",
		Short: "Print a minimum spanning tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0], f)
			if err != nil {
				return err
			}
			var tree compute.Tree
			switch strings.ToLower(algo) {
			case "prim":
				tree, err = compute.Prim(g)
			case "kruskal":
				tree, err = compute.Kruskal(g)
			default:
				return fmt.Errorf("unknown mst algorithm %q (prim or kruskal)", algo)
			}
			if err != nil {
				return err
			}
			printTree(cmd, tree.Edges, tree.TotalWeight)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&algo, "algo", "prim", "prim or kruskal")
	return cmd
}

func printTree(cmd *cobra.Command, edges []graph.Edge, total float64) {
	out := cmd.OutOrStdout()
	for _, e := range edges {
		fmt.Fprintln(out, e.UndirectedString())
	}
	fmt.Fprintf(out, "Total weight: %s\n", graph.FormatWeight(total))
}

func joinVertices(vs []graph.Vertex) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return strings.Join(names, " ")
}
