// internal/schema/builders.go
//
// Per-entity schema builders.
//
// Contract (every builder)
// ------------------------
//   - Input: one entity record (possibly nil) and whatever site/business
//     context the type needs.
//   - Output: an Object with `@context`/`@type`, or nil when a required
//     input is absent.  Builders never panic on missing data; callers
//     filter nils uniformly.
//   - Entities carrying a precomputed schema_data document win verbatim
//     over synthesis.
//   - No side effects.  The only nondeterminism is the wall clock read
//     for validFrom.
package schema

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/veltadigital/velta/internal/content"
	"github.com/veltadigital/velta/internal/promo"
	"github.com/veltadigital/velta/internal/routing"
)

// descriptionBudget caps BlogPosting descriptions, in runes.
const descriptionBudget = 160

//
// Organization / WebSite / LocalBusiness
//

// Organization maps the company record to an Organization document.
func (g *Generator) Organization(c *content.CompanyInfo) Object {
	if c == nil {
		return nil
	}
	o := Object{
		"@context":    ldContext,
		"@type":       "Organization",
		"name":        c.Name,
		"description": c.Description,
		"url":         orDefault(c.URL, g.Site.BaseURL),
	}
	if logo := orDefault(c.LogoURL, g.Site.LogoURL); logo != "" {
		o["logo"] = logo
	}
	if c.Email != "" {
		o["email"] = c.Email
	}
	if c.Phone != "" {
		o["telephone"] = c.Phone
	}
	return o
}

// WebSite maps the company record to a WebSite document.
func (g *Generator) WebSite(c *content.CompanyInfo) Object {
	if c == nil {
		return nil
	}
	return Object{
		"@context":    ldContext,
		"@type":       "WebSite",
		"name":        c.Name,
		"url":         g.Site.BaseURL,
		"description": c.Description,
		"publisher": Object{
			"@type": "Organization",
			"name":  c.Name,
		},
	}
}

// LocalBusiness extends the organization shape with the centralized
// service-area block: postal address, geo coordinate, and opening hours
// all come from g.Biz, never from per-call literals.
func (g *Generator) LocalBusiness(c *content.CompanyInfo) Object {
	if c == nil {
		return nil
	}
	o := Object{
		"@context":    ldContext,
		"@type":       "LocalBusiness",
		"name":        c.Name,
		"description": c.Description,
		"url":         orDefault(c.URL, g.Site.BaseURL),
		"address": Object{
			"@type":           "PostalAddress",
			"streetAddress":   g.Biz.Street,
			"addressLocality": g.Biz.City,
			"addressRegion":   g.Biz.Region,
			"postalCode":      g.Biz.PostalCode,
			"addressCountry":  g.Biz.Country,
		},
		"geo": Object{
			"@type":     "GeoCoordinates",
			"latitude":  g.Biz.Latitude,
			"longitude": g.Biz.Longitude,
		},
	}
	if len(g.Biz.OpeningHours) > 0 {
		o["openingHours"] = g.Biz.OpeningHours
	}
	if g.Biz.PriceRange != "" {
		o["priceRange"] = g.Biz.PriceRange
	}
	if logo := orDefault(c.LogoURL, g.Site.LogoURL); logo != "" {
		o["image"] = logo
	}
	if c.Phone != "" {
		o["telephone"] = c.Phone
	}
	return o
}

//
// Service
//

// Service maps one service row.  A missing price means "contact for
// pricing": the offers block is omitted entirely rather than filled with
// a silent default.
func (g *Generator) Service(s *content.Service, c *content.CompanyInfo) Object {
	if s == nil {
		return nil
	}
	o := Object{
		"@context":    ldContext,
		"@type":       "Service",
		"name":        s.Name,
		"description": s.Description,
	}
	if s.Category != "" {
		o["serviceType"] = s.Category
	}
	if c != nil {
		o["provider"] = Object{
			"@type": "Organization",
			"name":  c.Name,
		}
	}
	if s.Price != nil {
		o["offers"] = Object{
			"@type":         "Offer",
			"price":         formatPrice(*s.Price),
			"priceCurrency": orDefault(s.Currency, "USD"),
			"availability":  "https://schema.org/InStock",
			"validFrom":     now().Format(time.RFC3339),
		}
	}
	return o
}

//
// BlogPosting / CreativeWork
//

// BlogPosting maps one post.  dateModified falls back to datePublished
// when the row has never been updated.
func (g *Generator) BlogPosting(b *content.Blog) Object {
	if b == nil {
		return nil
	}
	modified := b.PublishedAt
	if b.UpdatedAt != nil {
		modified = *b.UpdatedAt
	}
	o := Object{
		"@context":      ldContext,
		"@type":         "BlogPosting",
		"headline":      b.Title,
		"description":   truncate(b.Content, descriptionBudget),
		"datePublished": b.PublishedAt.Format(time.RFC3339),
		"dateModified":  modified.Format(time.RFC3339),
		"url":           g.Site.BaseURL + routing.BuildPath("blog", b.Slug),
		"publisher": Object{
			"@type": "Organization",
			"name":  g.Site.Name,
		},
	}
	if b.ImageURL != "" {
		o["image"] = b.ImageURL
	}
	if b.Tags != "" {
		o["keywords"] = b.Tags
	}
	return o
}

// CreativeWork maps one portfolio item.  Category becomes genre; the
// comma-separated technologies string is forwarded verbatim as keywords.
func (g *Generator) CreativeWork(p *content.Project) Object {
	if p == nil {
		return nil
	}
	o := Object{
		"@context":    ldContext,
		"@type":       "CreativeWork",
		"name":        p.Title,
		"description": p.Description,
		"dateCreated": p.CreatedAt.Format(time.RFC3339),
		"creator": Object{
			"@type": "Organization",
			"name":  g.Site.Name,
		},
	}
	if p.Category != "" {
		o["genre"] = p.Category
	}
	if p.Technologies != "" {
		o["keywords"] = p.Technologies
	}
	if p.ImageURL != "" {
		o["image"] = p.ImageURL
	}
	if p.ProjectURL != "" {
		o["url"] = p.ProjectURL
	}
	return o
}

//
// FAQPage / BreadcrumbList (purely structural)
//

// FAQPage wraps pre-shaped question/answer pairs.
func (g *Generator) FAQPage(items []FAQ) Object {
	if len(items) == 0 {
		return nil
	}
	entities := make([]Object, 0, len(items))
	for _, it := range items {
		entities = append(entities, Object{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": Object{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return Object{
		"@context":   ldContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// Breadcrumbs wraps pre-shaped name/url pairs, positions 1-based.
func (g *Generator) Breadcrumbs(items []Crumb) Object {
	if len(items) == 0 {
		return nil
	}
	elements := make([]Object, 0, len(items))
	for i, it := range items {
		elements = append(elements, Object{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.URL,
		})
	}
	return Object{
		"@context":        ldContext,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

//
// VideoObject
//

// VideoObject maps a campaign hero video.  When the row has no explicit
// thumbnail, one is derived from the platform video ID; if extraction
// fails the field is simply omitted.  The precomputed override is
// honored before anything else: only the synthesis path needs a source
// URL.
func (g *Generator) VideoObject(v *promo.CampaignVideo) Object {
	if v == nil {
		return nil
	}
	if o, ok := fromRaw(v.SchemaData); ok {
		return o
	}
	if v.VideoURL == "" {
		return nil
	}
	o := Object{
		"@context":    ldContext,
		"@type":       "VideoObject",
		"name":        v.Header,
		"description": v.Subtitle,
		"contentUrl":  v.VideoURL,
	}
	if thumb := orDefault(v.ThumbnailURL, deriveThumbnail(v.VideoURL)); thumb != "" {
		o["thumbnailUrl"] = thumb
	}
	return o
}

//
// Product / Offer (promo packages)
//

// Product maps one promo package.  The offer shape follows the package's
// Pricing variant: a single Offer for one-time or recurring pricing, and
// two Offers (setup fee + monthly fee) for setup-plus-recurring.  No
// pricing at all means no offers block.
func (g *Generator) Product(p *promo.Package) Object {
	if p == nil {
		return nil
	}
	if o, ok := fromRaw(p.SchemaData); ok {
		return o
	}
	o := Object{
		"@context":    ldContext,
		"@type":       "Product",
		"name":        p.Title,
		"description": p.Subtitle,
		"brand": Object{
			"@type": "Organization",
			"name":  g.Site.Name,
		},
	}
	if p.Features != "" {
		o["keywords"] = p.Features
	}
	if offers := buildOffers(p.Pricing(), p.CTAURL); offers != nil {
		o["offers"] = offers
	}
	return o
}

// buildOffers turns the tagged Pricing variant into schema.org offers.
func buildOffers(pr promo.Pricing, ctaURL string) any {
	offer := func(price float64, desc string) Object {
		o := Object{
			"@type":         "Offer",
			"price":         formatPrice(price),
			"priceCurrency": pr.Currency,
			"availability":  "https://schema.org/InStock",
			"validFrom":     now().Format(time.RFC3339),
		}
		if desc != "" {
			o["description"] = desc
		}
		if ctaURL != "" {
			o["url"] = ctaURL
		}
		return o
	}

	switch pr.Kind {
	case promo.PricingOneTime:
		return offer(pr.Amount, "")
	case promo.PricingRecurring:
		return offer(pr.Monthly, "Monthly fee")
	case promo.PricingSetupPlusRecurring:
		return []Object{
			offer(pr.Amount, "One-time setup fee"),
			offer(pr.Monthly, "Monthly management fee"),
		}
	}
	return nil
}

//
// small helpers
//

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func formatPrice(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.2f", v)
}

// truncate cuts s to at most n runes, appending an ellipsis when content
// was dropped.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
