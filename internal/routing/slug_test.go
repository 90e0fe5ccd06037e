// internal/routing/slug_test.go
//
// Unit-tests for BuildPath.

package routing

import "testing"

func TestBuildPath(t *testing.T) {
	cases := []struct {
		parent, slug, want string
	}{
		{"", "", "/"},
		{"blog", "", "/blog"},
		{"", "contact", "/contact"},
		{"/blog/", "/my-post/", "/blog/my-post"},
	}
	for _, c := range cases {
		if got := BuildPath(c.parent, c.slug); got != c.want {
			t.Errorf("BuildPath(%q, %q) = %q, want %q", c.parent, c.slug, got, c.want)
		}
	}
}
