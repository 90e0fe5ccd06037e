// internal/web/server.go
//
// HTTP surface of the site.
//
// Context
// -------
// One Server value owns everything a handler needs: the database pool,
// the view engine, the schema generator bound to the configured site
// identity, and the CAPTCHA verifier.  Routes() assembles the chi router
// with the full middleware chain; cmd/web mounts the result on the
// hardened http.Server from internal/server.
//
// Handler layout:
//
//   - pages.go – server-rendered HTML pages.
//   - api.go   – the contact endpoint, the blog-filter endpoint, and
//     sitemap.xml.
package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veltadigital/velta/internal/config"
	"github.com/veltadigital/velta/internal/contact"
	"github.com/veltadigital/velta/internal/middleware"
	"github.com/veltadigital/velta/internal/requestinfo"
	"github.com/veltadigital/velta/internal/schema"
	"github.com/veltadigital/velta/internal/view"
)

// Server bundles the shared dependencies of all handlers.
type Server struct {
	cfg    *config.Config
	db     *sqlx.DB
	views  *view.Engine
	gen    *schema.Generator
	verify *contact.Verifier
}

// New wires a Server from loaded configuration.
func New(cfg *config.Config, db *sqlx.DB, views *view.Engine) *Server {
	return &Server{
		cfg:   cfg,
		db:    db,
		views: views,
		gen: &schema.Generator{
			Site: schema.SiteMeta{
				Name:    cfg.Site.Name,
				BaseURL: cfg.Site.BaseURL,
				LogoURL: cfg.Site.LogoURL,
				Tagline: cfg.Site.Tagline,
			},
			Biz: schema.Business{
				Street:       cfg.Business.Street,
				City:         cfg.Business.City,
				Region:       cfg.Business.Region,
				PostalCode:   cfg.Business.PostalCode,
				Country:      cfg.Business.Country,
				Latitude:     cfg.Business.Latitude,
				Longitude:    cfg.Business.Longitude,
				PriceRange:   cfg.Business.PriceRange,
				OpeningHours: cfg.Business.OpeningHours,
			},
		},
		verify: contact.NewVerifier(cfg.Captcha.Secret, cfg.Captcha.VerifyURL),
	}
}

// fetchTimeout is the per-render datastore budget.
func (s *Server) fetchTimeout() time.Duration {
	if s.cfg.Fetch.Timeout > 0 {
		return s.cfg.Fetch.Timeout
	}
	return config.DefaultFetchTimeout
}

// Routes assembles the router: middleware chain first, then pages, then
// the machine endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if s.cfg.HTTP.ForceHTTPS {
		r.Use(middleware.ForceHTTPS)
	}
	r.Use(middleware.Security)
	r.Use(requestinfo.Enrich)

	r.Get("/", s.handleHome)
	r.Get("/services", s.handleServices)
	r.Get("/contact", s.handleContactPage)
	r.Get("/blog", s.handleBlogIndex)
	r.Get("/blog/{slug}", s.handleBlogShow)
	r.Get("/projects", s.handleProjects)
	r.Get("/legal/{slug}", s.handleLegal)
	r.Get("/campaigns/{category}", s.handleCampaign)

	r.Get("/sitemap.xml", s.handleSitemap)
	r.Post("/api/contact", s.handleContactSubmit)
	r.Get("/api/blogs", s.handleBlogList)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
