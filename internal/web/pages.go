// internal/web/pages.go
//
// Server-rendered page handlers.
//
// Context
// -------
// Every page follows one shape: fan out the datastore reads through
// internal/gather (shared deadline, per-fetch fallback), hand the
// fetched bag to the schema aggregator, seed the head builder with the
// title, description, and JSON-LD blocks, then execute the page
// template.  A failed fetch leaves its variable at the zero value and
// the template renders placeholder copy; only detail pages (blog post,
// legal document) return 404, and only a template failure returns 500.
package web

import (
	"context"
	"database/sql"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/veltadigital/velta/internal/content"
	"github.com/veltadigital/velta/internal/gather"
	"github.com/veltadigital/velta/internal/head"
	"github.com/veltadigital/velta/internal/metrics"
	"github.com/veltadigital/velta/internal/promo"
	"github.com/veltadigital/velta/internal/schema"
	"github.com/veltadigital/velta/internal/view"
)

//
// shared render path
//

// render seeds the head builder and executes the page template.
func (s *Server) render(w http.ResponseWriter, r *http.Request,
	page schema.PageType, tmpl string,
	seo *content.SEOMetadata, in schema.Inputs, data map[string]any) {

	hb := head.New()
	hb.SetTitle(s.pageTitle(seo))
	if d := s.metaDescription(seo, in.Company); d != "" {
		hb.Meta(`<meta name="description" content="` +
			template.HTMLEscapeString(d) + `">`)
	}
	if seo != nil && seo.Keywords != "" {
		hb.Meta(`<meta name="keywords" content="` +
			template.HTMLEscapeString(seo.Keywords) + `">`)
	}

	for _, obj := range s.gen.Build(page, in) {
		js, err := obj.Serialize()
		if err != nil {
			zap.S().Errorw("jsonld serialize", "type", obj.Type(), "err", err)
			continue
		}
		hb.JSONLD(js)
	}

	data["Head"] = hb
	data["Site"] = s.cfg.Site

	metrics.PageRendersTotal.WithLabelValues(string(page)).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.Render(r, w, tmpl, data, view.CacheDefault); err != nil {
		metrics.RenderErrorsTotal.Inc()
		zap.S().Errorw("page render failed", "template", tmpl, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// pageTitle prefers the per-route SEO override over the site default.
func (s *Server) pageTitle(seo *content.SEOMetadata) string {
	if seo != nil && seo.Title != "" {
		return seo.Title
	}
	if s.cfg.Site.Tagline != "" {
		return s.cfg.Site.Name + " | " + s.cfg.Site.Tagline
	}
	return s.cfg.Site.Name
}

// metaDescription prefers the SEO override, then company copy.
func (s *Server) metaDescription(seo *content.SEOMetadata, co *content.CompanyInfo) string {
	if seo != nil && seo.Description != "" {
		return seo.Description
	}
	if co != nil {
		return co.Description
	}
	return ""
}

//
// page handlers
//

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var (
		company      *content.CompanyInfo
		hero         *content.HeroSection
		services     []content.Service
		blogs        []content.Blog
		testimonials []content.Testimonial
		developers   []content.Developer
		seo          *content.SEOMetadata
	)

	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("company", func(ctx context.Context) (err error) {
		company, err = content.ActiveCompanyInfo(ctx, s.db)
		return
	})
	g.Go("hero", func(ctx context.Context) (err error) {
		hero, err = content.HeroByRoute(ctx, s.db, "/")
		return
	})
	g.Go("services", func(ctx context.Context) (err error) {
		services, err = content.Services(ctx, s.db)
		return
	})
	g.Go("blogs", func(ctx context.Context) (err error) {
		blogs, err = content.Blogs(ctx, s.db, content.BlogFilter{Limit: 3})
		return
	})
	g.Go("testimonials", func(ctx context.Context) (err error) {
		testimonials, err = content.Testimonials(ctx, s.db, 6)
		return
	})
	g.Go("developers", func(ctx context.Context) (err error) {
		developers, err = content.Developers(ctx, s.db)
		return
	})
	g.Go("seo", func(ctx context.Context) (err error) {
		seo, err = content.SEOByRoute(ctx, s.db, "/")
		return
	})
	g.Wait()

	s.render(w, r, schema.PageHome, "home", seo,
		schema.Inputs{Company: company},
		map[string]any{
			"Company":      company,
			"Hero":         hero,
			"Services":     services,
			"Blogs":        blogs,
			"Testimonials": testimonials,
			"Developers":   developers,
		})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	var (
		company  *content.CompanyInfo
		hero     *content.HeroSection
		services []content.Service
		seo      *content.SEOMetadata
	)

	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("company", func(ctx context.Context) (err error) {
		company, err = content.ActiveCompanyInfo(ctx, s.db)
		return
	})
	g.Go("hero", func(ctx context.Context) (err error) {
		hero, err = content.HeroByRoute(ctx, s.db, "/services")
		return
	})
	g.Go("services", func(ctx context.Context) (err error) {
		services, err = content.Services(ctx, s.db)
		return
	})
	g.Go("seo", func(ctx context.Context) (err error) {
		seo, err = content.SEOByRoute(ctx, s.db, "/services")
		return
	})
	g.Wait()

	s.render(w, r, schema.PageServices, "services", seo,
		schema.Inputs{Company: company, Services: services},
		map[string]any{
			"Company":  company,
			"Hero":     hero,
			"Services": services,
		})
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	var (
		company *content.CompanyInfo
		seo     *content.SEOMetadata
	)

	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("company", func(ctx context.Context) (err error) {
		company, err = content.ActiveCompanyInfo(ctx, s.db)
		return
	})
	g.Go("seo", func(ctx context.Context) (err error) {
		seo, err = content.SEOByRoute(ctx, s.db, "/contact")
		return
	})
	g.Wait()

	s.render(w, r, schema.PageContact, "contact", seo,
		schema.Inputs{Company: company},
		map[string]any{"Company": company})
}

func (s *Server) handleBlogIndex(w http.ResponseWriter, r *http.Request) {
	filter := content.BlogFilter{
		Tag:    r.URL.Query().Get("tag"),
		Period: r.URL.Query().Get("period"),
	}
	filter.Normalize()

	var (
		company *content.CompanyInfo
		blogs   []content.Blog
		seo     *content.SEOMetadata
	)

	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("company", func(ctx context.Context) (err error) {
		company, err = content.ActiveCompanyInfo(ctx, s.db)
		return
	})
	g.Go("blogs", func(ctx context.Context) (err error) {
		blogs, err = content.Blogs(ctx, s.db, filter)
		return
	})
	g.Go("seo", func(ctx context.Context) (err error) {
		seo, err = content.SEOByRoute(ctx, s.db, "/blog")
		return
	})
	g.Wait()

	s.render(w, r, schema.PageBlog, "blog", seo,
		schema.Inputs{Company: company, Blogs: blogs},
		map[string]any{
			"Company": company,
			"Blogs":   blogs,
			"Filter":  filter,
		})
}

func (s *Server) handleBlogShow(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout())
	defer cancel()

	post, err := content.BlogBySlug(ctx, s.db, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		zap.S().Errorw("blog lookup failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var company *content.CompanyInfo
	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("company", func(ctx context.Context) (err error) {
		company, err = content.ActiveCompanyInfo(ctx, s.db)
		return
	})
	g.Wait()

	s.render(w, r, schema.PageBlog, "blog_post", nil,
		schema.Inputs{Company: company, Blogs: []content.Blog{*post}},
		map[string]any{
			"Company": company,
			"Blog":    post,
		})
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	var (
		company  *content.CompanyInfo
		projects []content.Project
		seo      *content.SEOMetadata
	)

	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("company", func(ctx context.Context) (err error) {
		company, err = content.ActiveCompanyInfo(ctx, s.db)
		return
	})
	g.Go("projects", func(ctx context.Context) (err error) {
		projects, err = content.Projects(ctx, s.db)
		return
	})
	g.Go("seo", func(ctx context.Context) (err error) {
		seo, err = content.SEOByRoute(ctx, s.db, "/projects")
		return
	})
	g.Wait()

	s.render(w, r, schema.PageProjects, "projects", seo,
		schema.Inputs{Company: company, Projects: projects},
		map[string]any{
			"Company":  company,
			"Projects": projects,
		})
}

func (s *Server) handleLegal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout())
	defer cancel()

	page, err := content.LegalBySlug(ctx, s.db, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		zap.S().Errorw("legal lookup failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, schema.PageLegal, "legal", nil,
		schema.Inputs{},
		map[string]any{"Legal": page})
}

func (s *Server) handleCampaign(w http.ResponseWriter, r *http.Request) {
	cat := promo.Category(chi.URLParam(r, "category"))
	if !cat.Valid() {
		http.NotFound(w, r)
		return
	}

	var (
		company  *content.CompanyInfo
		services []content.Service
		packages []promo.Package
		video    *promo.CampaignVideo
		gallery  []promo.GalleryItem
		seo      *content.SEOMetadata
	)

	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("company", func(ctx context.Context) (err error) {
		company, err = content.ActiveCompanyInfo(ctx, s.db)
		return
	})
	g.Go("services", func(ctx context.Context) (err error) {
		services, err = content.Services(ctx, s.db)
		return
	})
	g.Go("packages", func(ctx context.Context) (err error) {
		packages, err = promo.PackagesByCategory(ctx, s.db, cat)
		return
	})
	g.Go("video", func(ctx context.Context) (err error) {
		video, err = promo.VideoByPageSlug(ctx, s.db, string(cat))
		return
	})
	if cat == promo.CategoryAutomation {
		g.Go("gallery", func(ctx context.Context) (err error) {
			gallery, err = promo.Gallery(ctx, s.db)
			return
		})
	}
	g.Go("seo", func(ctx context.Context) (err error) {
		seo, err = content.SEOByRoute(ctx, s.db, "/campaigns/"+string(cat))
		return
	})
	g.Wait()

	s.render(w, r, schema.PageCampaign, "campaign", seo,
		schema.Inputs{
			Company:  company,
			Services: servicesForCategory(services, cat),
			Packages: packages,
			Video:    video,
			FAQs:     campaignFAQs[cat],
			Crumbs:   s.campaignCrumbs(cat),
		},
		map[string]any{
			"Company":  company,
			"Category": cat,
			"Packages": packages,
			"Video":    video,
			"Gallery":  gallery,
			"FAQs":     campaignFAQs[cat],
		})
}

//
// campaign fixtures
//

// campaignFAQs holds the editorial Q&A copy per campaign category.  This
// is site copy, not datastore content, so it lives with the handlers.
var campaignFAQs = map[promo.Category][]schema.FAQ{
	promo.CategoryWeb: {
		{Question: "How long does a website build take?",
			Answer: "Most brochure sites launch within four to six weeks; larger builds are scoped individually."},
		{Question: "Do you maintain sites after launch?",
			Answer: "Yes, every package includes an optional monthly care plan covering updates, backups, and monitoring."},
	},
	promo.CategorySEO: {
		{Question: "When will rankings improve?",
			Answer: "Organic search is a compounding channel; most clients see measurable movement within three months."},
		{Question: "Do you guarantee first-page results?",
			Answer: "No honest agency can. We commit to the process and report transparently on every metric."},
	},
	promo.CategorySEM: {
		{Question: "What is the minimum ad budget?",
			Answer: "Campaigns start at a media spend your setup fee is sized against; we advise on the break-even point."},
		{Question: "Is the setup fee recurring?",
			Answer: "No. Setup is one-time; the monthly fee covers ongoing optimisation and reporting."},
	},
	promo.CategoryAutomation: {
		{Question: "Which tools do you integrate?",
			Answer: "CRMs, mail providers, and internal databases; anything with an API is a candidate."},
		{Question: "Can automations be handed over in-house?",
			Answer: "Yes, every build ships with documentation and a handover session for your team."},
	},
}

// servicesForCategory narrows the catalogue to the campaign's own service
// so the page schema carries exactly the offering it sells.
func servicesForCategory(all []content.Service, cat promo.Category) []content.Service {
	var out []content.Service
	for _, s := range all {
		if strings.EqualFold(s.Category, string(cat)) {
			out = append(out, s)
		}
	}
	return out
}

// campaignCrumbs builds the two-level breadcrumb trail for one category.
func (s *Server) campaignCrumbs(cat promo.Category) []schema.Crumb {
	base := s.cfg.Site.BaseURL
	return []schema.Crumb{
		{Name: "Home", URL: base + "/"},
		{Name: campaignLabel(cat), URL: base + "/campaigns/" + string(cat)},
	}
}

// campaignLabel is the human heading for a category.
func campaignLabel(cat promo.Category) string {
	switch cat {
	case promo.CategoryWeb:
		return "Web Development"
	case promo.CategorySEO:
		return "Search Engine Optimisation"
	case promo.CategorySEM:
		return "Search Engine Marketing"
	case promo.CategoryAutomation:
		return "Business Automation"
	}
	return string(cat)
}
