package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/garylea7/siteport"
	"golang.org/x/net/html"
)

// LocateImage determines the layout region an image occupies by walking
// its ancestors up to the nearest <td>. The cell's position inside its
// row and table decides the region: first row wins header, last row
// footer (header is checked first, so a one-row table reads as header),
// first cell left-sidebar, last cell right-sidebar, anything else
// main-content. An image with no <td> ancestor is unknown.
//
// This is a single upward tree walk, O(depth).
func LocateImage(img *goquery.Selection) siteport.ImageLocation {
	if len(img.Nodes) == 0 {
		return siteport.LocationUnknown
	}

	cell := ancestor(img.Nodes[0], "td")
	if cell == nil {
		return siteport.LocationUnknown
	}

	row := ancestor(cell, "tr")
	if row == nil {
		return siteport.LocationMainContent
	}
	table := ancestor(row, "table")
	if table == nil {
		return siteport.LocationMainContent
	}

	rows := descendants(table, "tr")
	if len(rows) > 0 {
		if rows[0] == row {
			return siteport.LocationHeader
		}
		if rows[len(rows)-1] == row {
			return siteport.LocationFooter
		}
	}

	cells := descendants(row, "td")
	if len(cells) > 0 {
		if cells[0] == cell {
			return siteport.LocationLeftSidebar
		}
		if cells[len(cells)-1] == cell {
			return siteport.LocationRightSidebar
		}
	}

	return siteport.LocationMainContent
}

// ancestor returns the nearest ancestor element with the given tag name,
// or nil when the walk reaches the document root.
func ancestor(n *html.Node, tag string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return p
		}
	}
	return nil
}

// outermostAncestor returns the highest ancestor element with the given
// tag name, or nil when there is none.
func outermostAncestor(n *html.Node, tag string) *html.Node {
	var found *html.Node
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			found = p
		}
	}
	return found
}

// descendants returns all descendant elements with the given tag name in
// document order.
func descendants(n *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				nodes = append(nodes, c)
			}
			walk(c)
		}
	}
	walk(n)
	return nodes
}
