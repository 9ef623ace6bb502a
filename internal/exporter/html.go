// Package exporter writes path bookmarks as Netscape bookmark HTML.
package exporter

import (
	"fmt"
	"html"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/pathmarks/internal/model"
)

// FileURL returns the file:// URL for an absolute path.
func FileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// ExportHTML renders bookmarks in Netscape bookmark HTML format.
// Bookmarks without a path are skipped. Unnamed bookmarks use their path as
// the title; descriptions go in a DD element.
func ExportHTML(bookmarks []model.Bookmark) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	prefix := "    "
	for _, bm := range bookmarks {
		if bm.Path == nil {
			continue
		}
		title := bm.NameOr(*bm.Path)
		fmt.Fprintf(&b,
			"%s<DT><A HREF=\"%s\">%s</A>\n",
			prefix,
			html.EscapeString(FileURL(*bm.Path)),
			html.EscapeString(title),
		)
		if bm.Description != nil && *bm.Description != "" {
			fmt.Fprintf(&b, "%s<DD>%s\n", prefix, html.EscapeString(*bm.Description))
		}
	}

	b.WriteString("</DL><p>\n")

	return b.String()
}
