package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// String renders v as "<id>: <label>" followed by a newline and a
// comma-separated, ascending list of its outgoing arcs' ids. An absent
// label renders as the literal text "null".
func (v *Vertex[V, A]) String() string {
	labelText := "null"
	if v.hasLabel {
		labelText = fmt.Sprintf("%v", v.label)
	}

	return fmt.Sprintf("%d: %s\n%s", v.id, labelText, idList(v.outgoing.Slice(), func(a *Arc[V, A]) uint64 { return a.id }))
}

// String renders a as "arc (<id>): {<source ids>} --<label>-> {<dest
// ids>}". An absent label renders as the literal text "null".
func (a *Arc[V, A]) String() string {
	labelText := "null"
	if a.hasLabel {
		labelText = fmt.Sprintf("%v", a.label)
	}

	idOf := func(v *Vertex[V, A]) uint64 { return v.id }

	return fmt.Sprintf("arc (%d): {%s} --%s-> {%s}", a.id, idList(a.source.Slice(), idOf), labelText, idList(a.dest.Slice(), idOf))
}

// String renders g as the newline-joined String() of its vertices, in
// ascending id order.
func (g *Graph[V, A]) String() string {
	vertices := g.vertices.Slice()
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].id < vertices[j].id })

	lines := make([]string, len(vertices))
	for i, v := range vertices {
		lines[i] = v.String()
	}

	return strings.Join(lines, "\n")
}

// idList renders the ascending, comma-separated ids of items, extracted via
// id. Shared by Vertex.String (over outgoing arcs) and Arc.String (over
// source/dest vertices), which have no common element type to range over.
func idList[T any](items []T, id func(T) uint64) string {
	ids := make([]uint64, len(items))
	for i, item := range items {
		ids[i] = id(item)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}

	return strings.Join(parts, ",")
}
