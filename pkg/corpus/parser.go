package corpus

import (
	"io"

	"golang.org/x/net/html"
)

// ExtractLinks returns the href target of every anchor element in the
// HTML document read from r, in document order. Duplicates are preserved;
// the caller decides how to fold them.
//
// A tokenizer from golang.org/x/net/html is used instead of a regular
// expression so malformed markup (unclosed tags, odd attribute quoting)
// still yields the anchors a browser would see.
func ExtractLinks(r io.Reader) ([]string, error) {
	var links []string

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return links, nil
			}
			return nil, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if len(name) != 1 || name[0] != 'a' || !hasAttr {
				continue
			}
			for {
				key, val, more := z.TagAttr()
				if string(key) == "href" {
					links = append(links, string(val))
					break
				}
				if !more {
					break
				}
			}
		}
	}
}
