package siteport

import "regexp"

// tableRe matches the shortest span from a <table open tag to the next
// closing </table>, case-insensitively, across newlines.
var tableRe = regexp.MustCompile(`(?is)<table.*?</table\s*>`)

// StripTables removes every <table>...</table> span from an HTML string.
//
// This is a non-recursive textual strip, not a structural edit: the first
// </table> found closes the first <table found. For well-formed,
// non-nested tables the output never contains a <table> element. For
// improperly nested tables the strip can truncate surrounding content; a
// page whose entire body is one layout table strips to nothing. This is
// retained behavior from the reference importer which downstream content
// already depends on, not a defect to fix here.
func StripTables(html string) string {
	return tableRe.ReplaceAllString(html, "")
}
