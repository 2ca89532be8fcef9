// Package tsv formats road-node positions for diagnostic output, e.g.
// dumping a query's search space for external visualization.
package tsv

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/renblom/routeweaver/graph"
)

// lineSeparator mirrors Java's System.lineSeparator(): "\r\n" on Windows,
// "\n" everywhere else.
func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// PositionsTSV renders nodes as one "<lat>\t<lon>" line per node, joined by
// the host platform's newline. It is a pure function of its input's order.
func PositionsTSV(nodes []graph.RoadNode) string {
	var b strings.Builder
	sep := lineSeparator()
	for i, node := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatFloat(float64(node.Loc.Lat), 'f', -1, 32))
		b.WriteByte('\t')
		b.WriteString(strconv.FormatFloat(float64(node.Loc.Lon), 'f', -1, 32))
	}
	return b.String()
}
