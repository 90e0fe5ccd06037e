// internal/routing/slug.go
//
// Path helpers for slug-addressed content.  Slugs themselves are
// authored in the datastore; this package only assembles them into
// site-relative paths.
package routing

import "strings"

// BuildPath joins parent + slug ensuring exactly one leading slash and no
// duplicate separators.
func BuildPath(parent, slug string) string {
	parent = strings.Trim(parent, "/")
	slug = strings.Trim(slug, "/")

	switch {
	case parent == "" && slug == "":
		return "/"
	case parent == "":
		return "/" + slug
	case slug == "":
		return "/" + parent
	default:
		return "/" + parent + "/" + slug
	}
}
