// Package importer reads path bookmarks from Netscape bookmark HTML.
package importer

import (
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/pathmarks/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML and returns the file
// bookmarks it contains, flattening folders. Links that are not file:// URLs
// or absolute paths are counted in skipped. A title equal to the path is
// treated as no name. Returned paths are not canonicalized.
func ParseHTMLBookmarks(r io.Reader) (bookmarks []model.Bookmark, skipped int, err error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, 0, err
	}

	// last is the bookmark a following DD describes, -1 if none
	last := -1

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				last = -1
				return

			case "a":
				last = -1
				href := getAttr(n, "href")
				if href == "" {
					return
				}

				path, ok := pathFromHref(href)
				if !ok {
					skipped++
					return
				}

				var name *string
				if title := getTextContent(n); title != "" && title != path && title != href {
					name = model.StringPtr(title)
				}

				bookmarks = append(bookmarks, model.NewBookmark(model.NewBookmarkParams{
					Name: name,
					Path: path,
				}))
				last = len(bookmarks) - 1
				return

			case "dd":
				if last >= 0 && bookmarks[last].Description == nil {
					if desc := getTextContent(n); desc != "" {
						bookmarks[last].Description = model.StringPtr(desc)
					}
				}
				last = -1
				// DD may wrap following siblings in malformed files
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return bookmarks, skipped, nil
}

// pathFromHref extracts a local path from a file:// URL or a bare absolute path.
func pathFromHref(href string) (string, bool) {
	if filepath.IsAbs(href) {
		return filepath.Clean(href), true
	}

	u, err := url.Parse(href)
	if err != nil || !strings.EqualFold(u.Scheme, "file") || u.Path == "" {
		return "", false
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", false
	}
	return filepath.Clean(filepath.FromSlash(u.Path)), true
}

// getTextContent returns the text content of a node, stopping at nested
// definition terms so a DD never swallows the next entry.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "dt" || c.Data == "dl") {
				continue
			}
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
