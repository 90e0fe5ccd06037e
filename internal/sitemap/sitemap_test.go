// internal/sitemap/sitemap_test.go
//
// Cardinality and well-formedness tests for the sitemap builder.

package sitemap

import (
	"encoding/xml"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltadigital/velta/internal/content"
)

func TestBuildCardinality(t *testing.T) {
	// Well past any listing page size: the sitemap must carry every
	// published post, one entry each.
	blogs := make([]content.Blog, 0, 150)
	for i := 0; i < 150; i++ {
		blogs = append(blogs, content.Blog{
			Slug:        fmt.Sprintf("post-%03d", i),
			PublishedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		})
	}
	projects := []content.Project{{ID: 11}, {ID: 12}, {ID: 13}}

	urls := Build("https://velta.example", blogs, projects)

	// Exactly one entry per static page, per blog, per project.
	assert.Len(t, urls, len(StaticPaths)+len(blogs)+len(projects))

	assert.Equal(t, "https://velta.example/", urls[0].Loc)
	assert.Equal(t, "https://velta.example/blog/post-000", urls[len(StaticPaths)].Loc)
	assert.Equal(t, "https://velta.example/projects/11", urls[len(StaticPaths)+len(blogs)].Loc)
}

func TestRenderIsValidXML(t *testing.T) {
	urls := Build("https://velta.example", nil, nil)
	out, err := Render(urls)
	require.NoError(t, err)

	assert.Contains(t, string(out), xml.Header)

	var parsed struct {
		XMLName xml.Name `xml:"urlset"`
		URLs    []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(out, &parsed))
	assert.Len(t, parsed.URLs, len(StaticPaths))
}

func TestBlogLastModFallsBackToPublished(t *testing.T) {
	published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	urls := Build("https://velta.example", []content.Blog{
		{Slug: "a", PublishedAt: published},
		{Slug: "b", PublishedAt: published, UpdatedAt: &updated},
	}, nil)

	a := urls[len(StaticPaths)]
	b := urls[len(StaticPaths)+1]
	assert.Equal(t, "2026-03-01", a.LastMod)
	assert.Equal(t, "2026-04-01", b.LastMod)
}
