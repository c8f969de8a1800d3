package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/diffsim/internal/diffusion"
)

const (
	svgWidth  = 640.0
	svgHeight = 400.0
	svgMargin = 48.0
)

// ProfileSVG renders a concentration profile as an SVG polyline with "x" and
// "C" axis labels. Returns the empty string for degenerate inputs.
func ProfileSVG(grid *diffusion.Grid, c diffusion.Field, title string) string {
	if grid == nil || grid.Len() < 2 || len(c) != grid.Len() {
		return ""
	}

	coords := grid.Coords()
	xMin, xMax := coords[0], coords[len(coords)-1]
	yMin, yMax := c.Min(), c.Max()
	if yMax == yMin {
		yMax = yMin + 1
	}

	plotW := svgWidth - 2*svgMargin
	plotH := svgHeight - 2*svgMargin

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgWidth, svgHeight, svgWidth, svgHeight))

	// Axes
	sb.WriteString(fmt.Sprintf(`<g stroke="#555555" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`,
		svgMargin, svgHeight-svgMargin, svgWidth-svgMargin, svgHeight-svgMargin,
		svgMargin, svgMargin, svgMargin, svgHeight-svgMargin))

	sb.WriteString(`<polyline fill="none" stroke="#00ff00" stroke-width="2" points="`)
	for i, v := range c {
		px := svgMargin + plotW*(coords[i]-xMin)/(xMax-xMin)
		py := svgHeight - svgMargin - plotH*(v-yMin)/(yMax-yMin)
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.2f,%.2f", px, py))
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<g fill="#cccccc" font-family="monospace" font-size="14">
<text x="%.1f" y="20" text-anchor="middle">%s</text>
<text x="%.1f" y="%.1f" text-anchor="middle">x</text>
<text x="16" y="%.1f" text-anchor="middle">C</text>
<text x="%.1f" y="%.1f">%.6g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.6g</text>
</g>
</svg>
`,
		svgWidth/2, escapeText(title),
		svgWidth/2, svgHeight-12,
		svgHeight/2,
		svgMargin, svgHeight-svgMargin+18, xMin,
		svgWidth-svgMargin, svgHeight-svgMargin+18, xMax))

	return sb.String()
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
