package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/garylea7/siteport"
)

// AnalyzeTable summarizes a <table> selection. The menu-table and
// layout-table thresholds come from the extractor's configuration; the
// defaults (2 rows with 12 cells in the second, at most 3 cell rows) are
// heuristic constants carried over from the reference site, not derived
// values.
func (e *Extractor) AnalyzeTable(table *goquery.Selection) siteport.TableShape {
	rows := table.Find("tr")

	shape := siteport.TableShape{
		RowCount:  rows.Length(),
		HasImages: table.Find("img").Length() > 0,
	}

	// Menu tables: exactly MenuTableRowCount rows where the second row
	// holds exactly MenuTableCellCount cells.
	if shape.RowCount == e.cfg.MenuTableRowCount && rows.Length() > 1 {
		if rows.Eq(1).Find("td").Length() == e.cfg.MenuTableCellCount {
			shape.IsMenuLike = true
		}
	}

	// cellRows counts rows that contributed at least one cell.
	var cellRows int
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() > 0 {
			cellRows++
		}
		cells.Each(func(_ int, cell *goquery.Selection) {
			shape.CellInfo = append(shape.CellInfo, siteport.CellInfo{
				HasImage:    cell.Find("img").Length() > 0,
				HasLinks:    cell.Find("a").Length() > 0,
				TextContent: strippedText(cell),
			})
		})
	})

	switch {
	case shape.HasImages && cellRows <= e.cfg.LayoutTableMaxCellRows:
		shape.ContentType = siteport.TableLayout
	case shape.IsMenuLike:
		shape.ContentType = siteport.TableMenu
	default:
		shape.ContentType = siteport.TableUnknown
	}

	return shape
}
