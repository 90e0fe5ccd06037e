// internal/schema/aggregate.go
//
// Page-schema aggregator.
//
// Context
// -------
// Each page type owns one declarative manifest: an ordered list of build
// steps over the fetched-entity bag.  Build walks the manifest, drops nil
// results, and returns the ordered document list.  The Organization
// document always leads when company info is present; after that the
// manifest decides.  Campaign pages use the same machinery as everything
// else — there is no ad-hoc literal construction at call sites, so no
// page can emit two Organization or LocalBusiness entries.
//
// Build does not deduplicate beyond nil-filtering and does not validate
// well-formedness; ordering is insertion order and carries no meaning to
// schema.org consumers.
package schema

import (
	"github.com/veltadigital/velta/internal/content"
	"github.com/veltadigital/velta/internal/metrics"
	"github.com/veltadigital/velta/internal/promo"
)

// PageType discriminates the manifest to apply.
type PageType string

const (
	PageHome     PageType = "home"
	PageServices PageType = "services"
	PageContact  PageType = "contact"
	PageBlog     PageType = "blog"
	PageProjects PageType = "projects"
	PageCampaign PageType = "campaign"

	// PageLegal has no manifest entry; legal pages emit the
	// Organization document alone.
	PageLegal PageType = "legal"
)

// Inputs is the bag of fetched entities a page hands to Build.  Missing
// entries are simply nil/empty; the builders tolerate that.
type Inputs struct {
	Company  *content.CompanyInfo
	Services []content.Service
	Blogs    []content.Blog
	Projects []content.Project
	Packages []promo.Package
	Video    *promo.CampaignVideo
	FAQs     []FAQ
	Crumbs   []Crumb
}

// step emits zero or more documents; nils are filtered by Build.
type step func(g *Generator, in Inputs) []Object

// manifest is the single declarative source of which builders run per
// page type, and in which order.
var manifest = map[PageType][]step{
	PageHome:     {stepWebSite},
	PageServices: {stepLocalBusiness, stepServices},
	PageContact:  {stepLocalBusiness},
	PageBlog:     {stepBlogPostings},
	PageProjects: {stepCreativeWorks},
	PageCampaign: {
		stepWebSite,
		stepLocalBusiness,
		stepServices,
		stepFAQ,
		stepBreadcrumbs,
		stepProducts,
		stepVideo,
	},
}

// Build selects and runs the page's builders, filtering nil results.
// The output never contains a nil entry: its length equals the count of
// non-nil builder results.
func (g *Generator) Build(page PageType, in Inputs) []Object {
	var out []Object

	appendNonNil := func(objs ...Object) {
		for _, o := range objs {
			if o == nil {
				continue
			}
			metrics.SchemaObjectsTotal.WithLabelValues(o.Type()).Inc()
			out = append(out, o)
		}
	}

	// Organization leads on every page that has company info.
	appendNonNil(g.Organization(in.Company))

	for _, st := range manifest[page] {
		appendNonNil(st(g, in)...)
	}
	return out
}

//
// manifest steps
//

func stepWebSite(g *Generator, in Inputs) []Object {
	return []Object{g.WebSite(in.Company)}
}

func stepLocalBusiness(g *Generator, in Inputs) []Object {
	return []Object{g.LocalBusiness(in.Company)}
}

func stepServices(g *Generator, in Inputs) []Object {
	out := make([]Object, 0, len(in.Services))
	for i := range in.Services {
		out = append(out, g.Service(&in.Services[i], in.Company))
	}
	return out
}

func stepBlogPostings(g *Generator, in Inputs) []Object {
	out := make([]Object, 0, len(in.Blogs))
	for i := range in.Blogs {
		out = append(out, g.BlogPosting(&in.Blogs[i]))
	}
	return out
}

func stepCreativeWorks(g *Generator, in Inputs) []Object {
	out := make([]Object, 0, len(in.Projects))
	for i := range in.Projects {
		out = append(out, g.CreativeWork(&in.Projects[i]))
	}
	return out
}

func stepFAQ(g *Generator, in Inputs) []Object {
	return []Object{g.FAQPage(in.FAQs)}
}

func stepBreadcrumbs(g *Generator, in Inputs) []Object {
	return []Object{g.Breadcrumbs(in.Crumbs)}
}

func stepProducts(g *Generator, in Inputs) []Object {
	out := make([]Object, 0, len(in.Packages))
	for i := range in.Packages {
		out = append(out, g.Product(&in.Packages[i]))
	}
	return out
}

func stepVideo(g *Generator, in Inputs) []Object {
	return []Object{g.VideoObject(in.Video)}
}
