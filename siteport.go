// Package siteport imports legacy static HTML sites into a WordPress
// install. It scans a site (or a local directory) for .html pages,
// extracts the main content region from each page's table-based layout,
// re-hosts local images as media attachments, and creates draft pages
// through the WordPress REST API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, wordpress/).
package siteport
