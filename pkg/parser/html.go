package parser

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/fdtools/balancelog/pkg/models"
)

// ParseHTML extracts the densest <table> from a rich-clipboard HTML
// fragment and feeds its cell grid through the regular column mapping.
// Tables compete on rows × cells so layout wrappers lose to the actual
// data grid. Returns false when nothing table-shaped was found.
func (p *Parser) ParseHTML(data []byte) ([]models.Row, bool) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		p.logger.Debug("html parse failed", "error", err)
		return nil, false
	}

	var best [][]string
	bestScore := -1
	for _, table := range findAll(doc, "table") {
		grid := tableGrid(table)
		cells := 0
		for _, row := range grid {
			cells += len(row)
		}
		score := len(grid) * cells
		if score > bestScore {
			bestScore = score
			best = grid
		}
	}
	if len(best) == 0 {
		return nil, false
	}

	var b strings.Builder
	for _, row := range best {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return p.ParseText(b.String()), true
}

func tableGrid(table *html.Node) [][]string {
	var grid [][]string
	for _, tr := range findAll(table, "tr") {
		var row []string
		for _, cell := range findAll(tr, "td", "th") {
			row = append(row, strings.TrimSpace(textContent(cell)))
		}
		if len(row) > 0 {
			grid = append(grid, row)
		}
	}
	return grid
}

// findAll collects descendant elements matching any of the given tags,
// in document order.
func findAll(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			for _, tag := range tags {
				if node.Data == tag {
					out = append(out, node)
					break
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
