// Package foldgraph renders the fold connectivity of a pattern as a
// node-link diagram: one node per panel, one edge per fold relation
// (connectsTo) and one per glue tab. Useful for checking which pieces
// fold from which before cutting anything.
package foldgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/foldline/foldline/pkg/pattern"
)

var groupFills = map[pattern.Group]string{
	pattern.GroupStructural: "white",
	pattern.GroupFacade:     "cornsilk",
	pattern.GroupAccessory:  "aliceblue",
	pattern.GroupDetail:     "lightgrey",
}

// ToDOT converts the pattern's fold graph to Graphviz DOT format. The
// resulting string can be rendered with [RenderSVG].
func ToDOT(u *pattern.UnfoldedPattern) string {
	var buf bytes.Buffer
	buf.WriteString("digraph folds {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	for _, p := range u.AllPanels() {
		label := p.Name
		if label == "" {
			label = p.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%s];\n", p.ID, label, groupFills[p.Group])
	}

	buf.WriteString("\n")
	for _, p := range u.AllPanels() {
		if p.ConnectsTo != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"fold\"];\n", p.ConnectsTo, p.ID)
		}
	}
	for _, tab := range u.GlueTabs {
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=\"tab %d\"];\n",
			tab.ParentPanel, tab.ID, tab.EdgeIndex)
		fmt.Fprintf(&buf, "  %q [shape=note, fillcolor=gainsboro, label=\"tab\"];\n", tab.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz viewBox to start at the origin
// so downstream converters agree on the canvas size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
