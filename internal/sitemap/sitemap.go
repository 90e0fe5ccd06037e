// internal/sitemap/sitemap.go
//
// XML sitemap assembly.
//
// Context
// -------
// The sitemap is the fixed static-page list plus one entry per published
// blog post and one per portfolio item — exactly one <url> element each,
// nothing deduplicated, nothing invented.  Rendering uses encoding/xml
// with the standard urlset namespace; the handler in internal/web serves
// the bytes with an application/xml content type and a one-hour
// cache-control header.
package sitemap

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/veltadigital/velta/internal/content"
	"github.com/veltadigital/velta/internal/routing"
)

// StaticPaths lists the fixed pages, in emission order.
var StaticPaths = []string{
	"/",
	"/services",
	"/contact",
	"/blog",
	"/projects",
	"/campaigns/web",
	"/campaigns/seo",
	"/campaigns/sem",
	"/campaigns/automation",
	"/legal/privacy-policy",
	"/legal/terms-of-service",
}

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// urlSet is the document root.
type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Build combines static pages, blog slugs, and portfolio IDs into the
// ordered entry list.
func Build(base string, blogs []content.Blog, projects []content.Project) []URL {
	out := make([]URL, 0, len(StaticPaths)+len(blogs)+len(projects))

	for _, p := range StaticPaths {
		out = append(out, URL{
			Loc:        base + p,
			ChangeFreq: "weekly",
			Priority:   priorityFor(p),
		})
	}

	for _, b := range blogs {
		u := URL{
			Loc:        base + routing.BuildPath("blog", b.Slug),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		}
		if b.UpdatedAt != nil {
			u.LastMod = b.UpdatedAt.Format(time.DateOnly)
		} else {
			u.LastMod = b.PublishedAt.Format(time.DateOnly)
		}
		out = append(out, u)
	}

	for _, p := range projects {
		out = append(out, URL{
			Loc:        base + routing.BuildPath("projects", strconv.FormatUint(p.ID, 10)),
			ChangeFreq: "monthly",
			Priority:   "0.5",
		})
	}

	return out
}

// Render serializes the entry list with the XML declaration prepended.
func Render(urls []URL) ([]byte, error) {
	doc := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// priorityFor keeps the home page on top without a config knob.
func priorityFor(path string) string {
	if path == "/" {
		return "1.0"
	}
	return "0.8"
}
