// internal/content/model.go
//
// Read-only views of the externally-owned content tables.  Nothing in
// this package creates or mutates rows; the site only selects them and
// hands them to templates and schema builders.
//
// Nullable columns map to pointer fields, mirroring how the database
// exposes optional data.  Collection fields stored as comma-separated
// text (blog tags, project technologies) stay verbatim strings; the
// schema layer forwards them without parsing.
package content

import "time"

// CompanyInfo mirrors the singleton-ish `company_info` row.  At most one
// active record is consumed per render.
type CompanyInfo struct {
	ID          uint64 `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	URL         string `db:"url"`
	LogoURL     string `db:"logo_url"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
}

// HeroSection is keyed by page route ("/", "/services", …).
type HeroSection struct {
	ID          uint64 `db:"id"`
	Route       string `db:"route"`
	Headline    string `db:"headline"`
	Subheadline string `db:"subheadline"`
	CTAText     string `db:"cta_text"`
	CTAURL      string `db:"cta_url"`
}

// Service is one row of the `services` table.  Price is nullable; a
// missing price means "contact for pricing" and suppresses the Offer
// block in structured data.
type Service struct {
	ID          uint64   `db:"id"`
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Price       *float64 `db:"price"`
	Currency    string   `db:"currency"`
	Category    string   `db:"category"`
}

// Blog is one post.  Tags is a comma-separated list as stored.  JSON tags
// serve the blog-filter API, which returns rows as-is.
type Blog struct {
	ID          uint64     `db:"id"           json:"id"`
	Title       string     `db:"title"        json:"title"`
	Slug        string     `db:"slug"         json:"slug"`
	Content     string     `db:"content"      json:"content"`
	ImageURL    string     `db:"image_url"    json:"image_url"`
	Tags        string     `db:"tags"         json:"tags"`
	PublishedAt time.Time  `db:"published_at" json:"published_at"`
	UpdatedAt   *time.Time `db:"updated_at"   json:"updated_at,omitempty"`
}

// Project is one row of the `portfolio` table.
type Project struct {
	ID           uint64    `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	ImageURL     string    `db:"image_url"`
	ProjectURL   string    `db:"project_url"`
	Category     string    `db:"category"`
	Technologies string    `db:"technologies"`
	CreatedAt    time.Time `db:"created_at"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID      uint64 `db:"id"`
	Author  string `db:"author"`
	Company string `db:"company"`
	Quote   string `db:"quote"`
	Rating  int    `db:"rating"`
}

// SEOMetadata overrides the <title>/description per route.
type SEOMetadata struct {
	ID          uint64 `db:"id"`
	Route       string `db:"route"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Keywords    string `db:"keywords"`
}

// LegalPage is a privacy-policy/terms style document keyed by slug.
type LegalPage struct {
	ID        uint64     `db:"id"`
	Slug      string     `db:"slug"`
	Title     string     `db:"title"`
	Content   string     `db:"content"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// Developer is a team-member card.
type Developer struct {
	ID        uint64 `db:"id"`
	Name      string `db:"name"`
	Role      string `db:"role"`
	AvatarURL string `db:"avatar_url"`
}
