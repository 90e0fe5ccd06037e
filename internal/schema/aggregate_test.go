// internal/schema/aggregate_test.go
//
// Aggregator tests: manifest dispatch, nil filtering, and document
// ordering per page type.

package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltadigital/velta/internal/content"
	"github.com/veltadigital/velta/internal/promo"
)

func typesOf(objs []Object) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.Type())
	}
	return out
}

func TestBuildNeverEmitsNil(t *testing.T) {
	g := testGenerator()

	// No company info at all: every company-dependent builder returns
	// nil, and none of those nils may reach the output.
	out := g.Build(PageServices, Inputs{})
	assert.Empty(t, out)

	out = g.Build(PageHome, Inputs{Company: testCompany()})
	for _, o := range out {
		require.NotNil(t, o)
	}
}

func TestServicesPageOrdering(t *testing.T) {
	g := testGenerator()
	price := 800.0
	in := Inputs{
		Company: testCompany(),
		Services: []content.Service{
			{Name: "Web Development", Price: &price},
			{Name: "SEO Audits"},
		},
	}

	out := g.Build(PageServices, in)
	require.Equal(t,
		[]string{"Organization", "LocalBusiness", "Service", "Service"},
		typesOf(out))

	// Service documents keep the input order.
	assert.Equal(t, "Web Development", out[2]["name"])
	assert.Equal(t, "SEO Audits", out[3]["name"])
}

func TestHomePageManifest(t *testing.T) {
	g := testGenerator()
	out := g.Build(PageHome, Inputs{Company: testCompany()})
	assert.Equal(t, []string{"Organization", "WebSite"}, typesOf(out))
}

func TestContactPageManifest(t *testing.T) {
	g := testGenerator()
	out := g.Build(PageContact, Inputs{Company: testCompany()})
	assert.Equal(t, []string{"Organization", "LocalBusiness"}, typesOf(out))
}

func TestBlogPageOnePostingPerBlog(t *testing.T) {
	g := testGenerator()
	now := time.Now()
	in := Inputs{
		Company: testCompany(),
		Blogs: []content.Blog{
			{Title: "A", Slug: "a", PublishedAt: now},
			{Title: "B", Slug: "b", PublishedAt: now},
			{Title: "C", Slug: "c", PublishedAt: now},
		},
	}
	out := g.Build(PageBlog, in)
	assert.Equal(t,
		[]string{"Organization", "BlogPosting", "BlogPosting", "BlogPosting"},
		typesOf(out))
}

func TestCampaignPageEmitsEachFragmentOnce(t *testing.T) {
	g := testGenerator()
	price := 1500.0
	in := Inputs{
		Company:  testCompany(),
		Services: []content.Service{{Name: "Web Development", Price: &price}},
		Packages: []promo.Package{{Title: "Web Basic", Price: &price}},
		Video:    &promo.CampaignVideo{Header: "Demo", VideoURL: "https://youtu.be/dQw4w9WgXcQ"},
		FAQs:     []FAQ{{Question: "How long?", Answer: "Four weeks."}},
		Crumbs: []Crumb{
			{Name: "Home", URL: "https://velta.example/"},
			{Name: "Web", URL: "https://velta.example/campaigns/web"},
		},
	}

	out := g.Build(PageCampaign, in)
	got := typesOf(out)
	assert.Equal(t, []string{
		"Organization", "WebSite", "LocalBusiness", "Service",
		"FAQPage", "BreadcrumbList", "Product", "VideoObject",
	}, got)

	// The redundancy the manifest exists to prevent: exactly one
	// Organization and one LocalBusiness per page.
	count := func(typ string) int {
		n := 0
		for _, s := range got {
			if s == typ {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count("Organization"))
	assert.Equal(t, 1, count("LocalBusiness"))
}

func TestBuildLengthEqualsNonNilResults(t *testing.T) {
	g := testGenerator()

	// Campaign inputs with holes: no FAQ, no video, no packages.
	in := Inputs{
		Company:  testCompany(),
		Services: []content.Service{{Name: "SEO"}},
	}
	out := g.Build(PageCampaign, in)
	assert.Equal(t,
		[]string{"Organization", "WebSite", "LocalBusiness", "Service"},
		typesOf(out))
}
