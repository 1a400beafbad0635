package graph

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Describe writes a human readable dump of g: a header, the vertex table and
// either the adjacency matrix (Dense) or the adjacency lists.
func Describe(w io.Writer, g Graph) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Graph:\t%s, %s (%s)\n", directedWord(g.Directed()), weightedWord(g.Weighted()), g.Kind())
	fmt.Fprintf(tw, "Vertices:\t%d\n", g.VertexCount())
	fmt.Fprintf(tw, "Edges:\t%d\n", g.EdgeCount())
	if err := tw.Flush(); err != nil {
		return err
	}
	if g.IsEmpty() {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(tw, "ID\tName")
	for _, v := range g.Vertices() {
		fmt.Fprintf(tw, "%d\t%s\n", v.ID, v.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if d, ok := g.(*Dense); ok {
		describeMatrix(tw, d)
	} else {
		describeLists(tw, g)
	}
	return tw.Flush()
}

func describeMatrix(w io.Writer, g *Dense) {
	vs := g.Vertices()
	fmt.Fprintln(w, "Adjacency matrix:")
	header := make([]string, 0, len(vs)+1)
	header = append(header, "")
	for _, v := range vs {
		header = append(header, v.Name)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for i, row := range g.Matrix() {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, vs[i].Name)
		for _, c := range row {
			if c == nil {
				cells = append(cells, "nil")
			} else {
				cells = append(cells, FormatWeight(*c))
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}

func describeLists(w io.Writer, g Graph) {
	fmt.Fprintln(w, "Adjacency lists:")
	for _, v := range g.Vertices() {
		var b strings.Builder
		for _, e := range g.Adjacent(v.ID) {
			fmt.Fprintf(&b, " -> %s(%s)", e.To.Name, FormatWeight(e.Weight))
		}
		fmt.Fprintf(w, "%s:\t%s\n", v.Name, strings.TrimSpace(b.String()))
	}
}

func directedWord(d bool) string {
	if d {
		return "directed"
	}
	return "undirected"
}

func weightedWord(w bool) string {
	if w {
		return "weighted"
	}
	return "unweighted"
}
