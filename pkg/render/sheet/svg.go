// Package sheet serializes an UnfoldedPattern to cut files: an SVG
// vector drawing for printing, a DXF exchange file for laser and CNC
// software, and a JSON document for external tools.
//
// Both geometric serializers emit the exact vertex coordinates the
// layout computed; nothing is re-derived here. Pattern coordinates are
// model-scale inches with y up; the SVG serializer flips to screen
// coordinates, the DXF serializer keeps the native orientation.
package sheet

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
)

// DefaultDPI converts the canvas from inches to device pixels.
const DefaultDPI = 96.0

// patternCSS maps each edge type to its stroke treatment: cut solid
// black, mountain fold dashed red, valley fold dashed blue, score
// dotted orange. Glue tabs are filled grey polygons, not strokes.
const patternCSS = `
    .panel-structural { fill: #ffffff; stroke: none; }
    .panel-facade { fill: #fdf6e3; stroke: none; }
    .panel-accessory { fill: #f0f4ff; stroke: none; }
    .panel-detail { fill: #f4f4f4; stroke: none; }
    .edge-cut { stroke: #000000; stroke-width: 0.012; fill: none; }
    .edge-fold-mountain { stroke: #cc2222; stroke-width: 0.01; stroke-dasharray: 0.08 0.05; fill: none; }
    .edge-fold-valley { stroke: #2222cc; stroke-width: 0.01; stroke-dasharray: 0.08 0.05; fill: none; }
    .edge-score { stroke: #dd8800; stroke-width: 0.01; stroke-dasharray: 0.02 0.04; fill: none; }
    .glue-tab { fill: #cccccc; stroke: #888888; stroke-width: 0.008; }
    .opening { fill: #ffffff; stroke: #000000; stroke-width: 0.012; }
    .sticker { fill: none; stroke: #44aa44; stroke-width: 0.008; stroke-dasharray: 0.03 0.03; }
    .tooth { stroke: #000000; stroke-width: 0.012; fill: none; }
    .label { font-family: sans-serif; fill: #333333; }
    .header { font-family: sans-serif; font-weight: bold; fill: #111111; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	dpi      float64
	labels   bool
	textures map[string][]byte
}

// WithDPI sets the device resolution of the fixed-size canvas.
func WithDPI(dpi float64) SVGOption {
	return func(r *svgRenderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithoutLabels suppresses panel name labels, for clean cut files.
func WithoutLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = false }
}

// WithTexture embeds a pre-baked PNG raster for one panel, clipped to
// the panel polygon. The texture is produced externally.
func WithTexture(panelID string, png []byte) SVGOption {
	return func(r *svgRenderer) {
		if r.textures == nil {
			r.textures = make(map[string][]byte)
		}
		r.textures[panelID] = png
	}
}

// RenderSVG serializes the pattern to an SVG document: one styled
// polygon per panel with its typed edges, glue-tab polygons, opening
// rectangles, and labels, grouped per panel group.
func RenderSVG(u *pattern.UnfoldedPattern, opts ...SVGOption) []byte {
	r := svgRenderer{dpi: DefaultDPI, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.4f %.4f" width="%.0f" height="%.0f">`+"\n",
		u.Width, u.Height, u.Width*r.dpi, u.Height*r.dpi)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", patternCSS)

	if r.labels {
		fmt.Fprintf(&buf, `  <text x="%.4f" y="%.4f" font-size="0.22" class="header">%s  (%s, %g x %g x %g ft, %s)</text>`+"\n",
			0.1, 0.3, xmlEscape(u.BuildingName), xmlEscape(u.ScaleLabel),
			u.RealWorld.WidthFeet, u.RealWorld.DepthFeet, u.RealWorld.HeightFeet, u.MaterialType)
	}

	groups := []struct {
		name   string
		panels []pattern.Panel
	}{
		{"structural", u.Panels},
		{"facade", u.FacadePanels},
		{"accessory", u.AccessoryPanels},
		{"detail", u.DetailPanels},
	}
	multi := false
	for _, g := range groups[1:] {
		if len(g.panels) > 0 {
			multi = true
		}
	}

	tabsByParent := make(map[string][]pattern.GlueTab)
	for _, tab := range u.GlueTabs {
		tabsByParent[tab.ParentPanel] = append(tabsByParent[tab.ParentPanel], tab)
	}

	for _, g := range groups {
		if len(g.panels) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "  <g id=\"group-%s\">\n", g.name)
		if multi && r.labels {
			r.renderGroupHeader(&buf, u, g.name, g.panels)
		}
		for i := range g.panels {
			r.renderPanel(&buf, u, &g.panels[i], tabsByParent[g.panels[i].ID])
		}
		fmt.Fprintf(&buf, "  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderGroupHeader(buf *bytes.Buffer, u *pattern.UnfoldedPattern, name string, panels []pattern.Panel) {
	minY := panels[0].Position.Y
	minX := panels[0].Position.X
	for i := range panels {
		b := geom.BoundsOf(panels[i].Vertices)
		if y := panels[i].Position.Y + b.MinY; y < minY {
			minY = y
		}
		if x := panels[i].Position.X + b.MinX; x < minX {
			minX = x
		}
	}
	fmt.Fprintf(buf, `    <text x="%.4f" y="%.4f" font-size="0.16" class="header">%s</text>`+"\n",
		minX, u.Height-minY+0.2, name)
}

func (r *svgRenderer) renderPanel(buf *bytes.Buffer, u *pattern.UnfoldedPattern, p *pattern.Panel, tabs []pattern.GlueTab) {
	sx := func(v geom.Point) float64 { return p.Position.X + v.X }
	sy := func(v geom.Point) float64 { return u.Height - (p.Position.Y + v.Y) }

	fmt.Fprintf(buf, "    <g id=\"panel-%s\">\n", xmlEscape(p.ID))

	// Glue tabs go under the panel fill so the shared edge stays visible.
	for _, tab := range tabs {
		fmt.Fprintf(buf, `      <polygon class="glue-tab" points="%s"/>`+"\n", pointList(tab.Vertices, sx, sy))
	}

	fmt.Fprintf(buf, `      <polygon class="panel-%s" points="%s"/>`+"\n", p.Group, pointList(p.Vertices, sx, sy))

	if png, ok := r.textures[p.ID]; ok {
		r.renderTexture(buf, p, png, sx, sy)
	}

	for _, e := range p.Edges {
		if e.Type == pattern.EdgeGlueTab {
			continue
		}
		from, to := p.Vertices[e.From], p.Vertices[e.To]
		fmt.Fprintf(buf, `      <line class="edge-%s" x1="%.4f" y1="%.4f" x2="%.4f" y2="%.4f"/>`+"\n",
			e.Type, sx(from), sy(from), sx(to), sy(to))
	}

	for _, teeth := range p.Teeth {
		r.renderTeeth(buf, p, teeth, sx, sy)
	}

	for _, o := range p.Openings {
		fmt.Fprintf(buf, `      <rect class="opening" x="%.4f" y="%.4f" width="%.4f" height="%.4f"/>`+"\n",
			p.Position.X+o.X, u.Height-(p.Position.Y+o.Y+o.Height), o.Width, o.Height)
		if r.labels && o.Label != "" {
			fmt.Fprintf(buf, `      <text x="%.4f" y="%.4f" font-size="0.08" class="label">%s</text>`+"\n",
				p.Position.X+o.X, u.Height-(p.Position.Y+o.Y)-0.02, xmlEscape(o.Label))
		}
	}

	for _, s := range p.Stickers {
		fmt.Fprintf(buf, `      <rect class="sticker" x="%.4f" y="%.4f" width="%.4f" height="%.4f"/>`+"\n",
			p.Position.X+s.X, u.Height-(p.Position.Y+s.Y+s.Height), s.Width, s.Height)
		if r.labels && s.Label != "" {
			fmt.Fprintf(buf, `      <text x="%.4f" y="%.4f" font-size="0.1" class="label">%s</text>`+"\n",
				p.Position.X+s.X+0.02, u.Height-(p.Position.Y+s.Y+s.Height/2), xmlEscape(s.Label))
		}
	}

	if r.labels && p.Name != "" {
		b := geom.BoundsOf(p.Vertices)
		fmt.Fprintf(buf, `      <text x="%.4f" y="%.4f" font-size="0.1" text-anchor="middle" class="label">%s</text>`+"\n",
			p.Position.X+(b.MinX+b.MaxX)/2, u.Height-(p.Position.Y+(b.MinY+b.MaxY)/2), xmlEscape(p.Name))
	}

	fmt.Fprintf(buf, "    </g>\n")
}

// renderTeeth marks the slot/tab tooth spans along an annotated edge
// with short perpendicular ticks at each tooth boundary.
func (r *svgRenderer) renderTeeth(buf *bytes.Buffer, p *pattern.Panel, teeth pattern.SlotTeeth,
	sx func(geom.Point) float64, sy func(geom.Point) float64) {
	e := p.Edges[teeth.EdgeIndex]
	from, to := p.Vertices[e.From], p.Vertices[e.To]
	dir := to.Sub(from)
	length := dir.Length()
	if length == 0 {
		return
	}
	unit := dir.Scale(1 / length)
	inward := dir.Normal().Scale(-teeth.Depth)

	for _, pos := range teeth.Positions {
		for _, d := range []float64{pos, pos + teeth.Length} {
			a := from.Add(unit.Scale(d))
			b := a.Add(inward)
			fmt.Fprintf(buf, `      <line class="tooth" x1="%.4f" y1="%.4f" x2="%.4f" y2="%.4f"/>`+"\n",
				sx(a), sy(a), sx(b), sy(b))
		}
	}
}

func (r *svgRenderer) renderTexture(buf *bytes.Buffer, p *pattern.Panel, png []byte,
	sx func(geom.Point) float64, sy func(geom.Point) float64) {
	b := geom.BoundsOf(p.Vertices)
	clipID := "clip-" + p.ID
	fmt.Fprintf(buf, `      <clipPath id="%s"><polygon points="%s"/></clipPath>`+"\n",
		xmlEscape(clipID), pointList(p.Vertices, sx, sy))
	fmt.Fprintf(buf, `      <image x="%.4f" y="%.4f" width="%.4f" height="%.4f" clip-path="url(#%s)" preserveAspectRatio="none" xlink:href="data:image/png;base64,%s"/>`+"\n",
		p.Position.X+b.MinX, sy(geom.Point{X: 0, Y: b.MaxY}), b.Width(), b.Height(),
		xmlEscape(clipID), base64.StdEncoding.EncodeToString(png))
}

func pointList(verts []geom.Point, sx func(geom.Point) float64, sy func(geom.Point) float64) string {
	var buf bytes.Buffer
	for i, v := range verts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.4f,%.4f", sx(v), sy(v))
	}
	return buf.String()
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
