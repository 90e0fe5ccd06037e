// internal/content/repository.go
//
// sqlx fetch helpers for the content tables.
//
// Context
// -------
// Every function takes a context so queries respect the render deadline
// (internal/gather supplies a shared 10-second budget).  Single-row
// lookups return (*T, error); collection lookups return a possibly empty
// slice.  Callers convert errors into fallback shapes at the page
// boundary — these helpers never do that themselves.
package content

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// ActiveCompanyInfo returns the newest active company_info row.
func ActiveCompanyInfo(ctx context.Context, db *sqlx.DB) (*CompanyInfo, error) {
	const q = `
        SELECT id, name, description, url, logo_url, email, phone
        FROM   company_info
        WHERE  active = TRUE
        ORDER  BY updated_at DESC
        LIMIT  1`
	var rec CompanyInfo
	if err := db.GetContext(ctx, &rec, q); err != nil {
		return nil, err
	}
	return &rec, nil
}

// HeroByRoute fetches the hero block for one page route.
func HeroByRoute(ctx context.Context, db *sqlx.DB, route string) (*HeroSection, error) {
	const q = `
        SELECT id, route, headline, subheadline, cta_text, cta_url
        FROM   hero_sections
        WHERE  route = ?
        LIMIT  1`
	var rec HeroSection
	if err := db.GetContext(ctx, &rec, q, route); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Services returns all services ordered by category, then name.
func Services(ctx context.Context, db *sqlx.DB) ([]Service, error) {
	const q = `
        SELECT id, name, description, price, currency, category
        FROM   services
        ORDER  BY category, name`
	var rows []Service
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

//
// blog queries
//

// BlogFilter narrows the blog listing.  Tag and Period are mutually
// exclusive: Normalize clears the tag whenever a period is present, which
// matches the sidebar widget contract (selecting one resets the other).
type BlogFilter struct {
	Tag    string
	Period string // "week", "month", or "year"
	Limit  int
}

// Normalize enforces mutual exclusion and bounds the limit.
func (f *BlogFilter) Normalize() {
	if f.Period != "" {
		f.Tag = ""
	}
	switch f.Period {
	case "", "week", "month", "year":
	default:
		f.Period = ""
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}
}

// cutoff maps a period keyword to its earliest publish time.
func (f *BlogFilter) cutoff(now time.Time) time.Time {
	switch f.Period {
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, -1, 0)
	case "year":
		return now.AddDate(-1, 0, 0)
	}
	return time.Time{}
}

// Blogs returns published posts newest-first, narrowed by the filter.
func Blogs(ctx context.Context, db *sqlx.DB, f BlogFilter) ([]Blog, error) {
	f.Normalize()

	q := `
        SELECT id, title, slug, content, image_url, tags, published_at, updated_at
        FROM   blogs
        WHERE  published = TRUE`
	args := []any{}

	switch {
	case f.Tag != "":
		// Tags are stored as "a, b, c"; strip the spaces so FIND_IN_SET
		// matches individual entries.
		q += `
          AND  FIND_IN_SET(?, REPLACE(tags, ', ', ',')) > 0`
		args = append(args, f.Tag)
	case f.Period != "":
		q += `
          AND  published_at >= ?`
		args = append(args, f.cutoff(time.Now()))
	}

	q += `
        ORDER  BY published_at DESC
        LIMIT  ?`
	args = append(args, f.Limit)

	var rows []Blog
	if err := db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// BlogSlugs returns the slug and dates of every published post, with no
// limit.  The sitemap consumes this; its entry count must track the
// table exactly, so the listing cap in Blogs does not apply here.
func BlogSlugs(ctx context.Context, db *sqlx.DB) ([]Blog, error) {
	const q = `
        SELECT slug, published_at, updated_at
        FROM   blogs
        WHERE  published = TRUE
        ORDER  BY published_at DESC`
	var rows []Blog
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// BlogBySlug fetches one published post.
func BlogBySlug(ctx context.Context, db *sqlx.DB, slug string) (*Blog, error) {
	const q = `
        SELECT id, title, slug, content, image_url, tags, published_at, updated_at
        FROM   blogs
        WHERE  slug = ?
          AND  published = TRUE
        LIMIT  1`
	var rec Blog
	if err := db.GetContext(ctx, &rec, q, slug); err != nil {
		return nil, err
	}
	return &rec, nil
}

//
// portfolio and the rest
//

// Projects returns portfolio items newest-first.
func Projects(ctx context.Context, db *sqlx.DB) ([]Project, error) {
	const q = `
        SELECT id, title, description, image_url, project_url,
               category, technologies, created_at
        FROM   portfolio
        ORDER  BY created_at DESC`
	var rows []Project
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// Testimonials returns the highest-rated quotes first.
func Testimonials(ctx context.Context, db *sqlx.DB, limit int) ([]Testimonial, error) {
	const q = `
        SELECT id, author, company, quote, rating
        FROM   testimonials
        ORDER  BY rating DESC, id
        LIMIT  ?`
	var rows []Testimonial
	if err := db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// SEOByRoute fetches the per-route metadata override.
func SEOByRoute(ctx context.Context, db *sqlx.DB, route string) (*SEOMetadata, error) {
	const q = `
        SELECT id, route, title, description, keywords
        FROM   seo_metadata
        WHERE  route = ?
        LIMIT  1`
	var rec SEOMetadata
	if err := db.GetContext(ctx, &rec, q, route); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LegalBySlug fetches one legal document.
func LegalBySlug(ctx context.Context, db *sqlx.DB, slug string) (*LegalPage, error) {
	const q = `
        SELECT id, slug, title, content, updated_at
        FROM   legal_pages
        WHERE  slug = ?
        LIMIT  1`
	var rec LegalPage
	if err := db.GetContext(ctx, &rec, q, slug); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Developers returns the team roster.
func Developers(ctx context.Context, db *sqlx.DB) ([]Developer, error) {
	const q = `
        SELECT id, name, role, avatar_url
        FROM   developers
        ORDER  BY name`
	var rows []Developer
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}
