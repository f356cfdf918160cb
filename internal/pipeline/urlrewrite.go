package pipeline

import (
	"errors"
	"net/url"
	"strings"

	"github.com/alnah/go-md2adf/adf"
)

var errNotAbsolute = errors.New("base URL must be absolute with a host")

// URLRewriter resolves relative image and link references against a base
// URL. External media in ADF must use an absolute URL.
//
// Rewrites:
//   - media url attributes (images)
//   - link mark href attributes
//
// Leaves unchanged:
//   - absolute URLs, protocol-relative URLs and data: URIs
//   - fragment-only references ("#section")
//   - references that would escape the base path ("../../x")
type URLRewriter struct {
	base *url.URL
}

// NewURLRewriter parses base, which must be an absolute URL with a host.
// A trailing slash is added to the base path so "docs" resolves as a
// directory.
func NewURLRewriter(base string) (*URLRewriter, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: base, Err: errNotAbsolute}
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery, u.Fragment = "", ""
	return &URLRewriter{base: u}, nil
}

// Resolve returns ref resolved against the base, or ref itself when it is
// not a relative reference or would leave the base path.
func (r *URLRewriter) Resolve(ref string) string {
	if !isRelativeRef(ref) {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}

	resolved := r.base.ResolveReference(u)

	// Security: keep the result under the base path (prevent traversal)
	if !strings.HasPrefix(resolved.Path, r.base.Path) {
		return ref
	}
	return resolved.String()
}

// Rewrite resolves the URLs of every media node and link mark in nodes,
// in place.
func (r *URLRewriter) Rewrite(nodes []adf.Node) {
	for i := range nodes {
		n := &nodes[i]
		if n.Type == adf.TypeMedia {
			if src := n.Attrs.String("url"); src != "" {
				n.Attrs = n.Attrs.Set("url", r.Resolve(src))
			}
		}
		for j := range n.Marks {
			m := &n.Marks[j]
			if m.Type == adf.MarkLink {
				m.Attrs = m.Attrs.Set("href", r.Resolve(m.Attrs.String("href")))
			}
		}
		r.Rewrite(n.Content)
	}
}

// isRelativeRef reports whether ref should be resolved.
func isRelativeRef(ref string) bool {
	if ref == "" {
		return false
	}

	// Skip anchors
	if strings.HasPrefix(ref, "#") {
		return false
	}

	// Skip protocol-relative URLs and data URIs
	if strings.HasPrefix(ref, "//") || strings.HasPrefix(strings.ToLower(ref), "data:") {
		return false
	}

	return true
}
