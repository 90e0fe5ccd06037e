// internal/promo/model.go
//
// Campaign-page entities: promotional packages, campaign videos, and the
// automation gallery.
//
// The four promo tables (promo_web, promo_seo, promo_sem,
// promo_automation) share one row shape, so one Package struct covers
// them all and the repository picks the table by category.  What differs
// between categories is the *pricing* shape — a single one-time price
// versus a setup fee plus a recurring monthly fee (SEM) — captured here
// as a tagged Pricing variant so the schema layer needs exactly one
// Offer/Product builder.
//
// Rows may carry a precomputed `schema_data` JSON document.  That is a
// manual override: when present, builders emit it verbatim and never
// synthesize their own.
package promo

import "encoding/json"

// Category selects one of the promo tables.
type Category string

const (
	CategoryWeb        Category = "web"
	CategorySEO        Category = "seo"
	CategorySEM        Category = "sem"
	CategoryAutomation Category = "automation"
)

// table returns the backing table name, or "" for an unknown category.
// The whitelist keeps category strings out of SQL.
func (c Category) table() string {
	switch c {
	case CategoryWeb:
		return "promo_web"
	case CategorySEO:
		return "promo_seo"
	case CategorySEM:
		return "promo_sem"
	case CategoryAutomation:
		return "promo_automation"
	}
	return ""
}

// Valid reports whether c names a known promo table.
func (c Category) Valid() bool { return c.table() != "" }

// PricingKind tags the Pricing variant.
type PricingKind int

const (
	PricingNone PricingKind = iota
	PricingOneTime
	PricingRecurring
	PricingSetupPlusRecurring
)

// Pricing is the tagged variant the Product builder consumes.
type Pricing struct {
	Kind     PricingKind
	Amount   float64 // one-time price, or the setup fee
	Monthly  float64 // recurring monthly fee
	Currency string
}

// Package is one promotional bundle.
type Package struct {
	ID         uint64          `db:"id"`
	Category   Category        `db:"category"`
	Title      string          `db:"title"`
	Subtitle   string          `db:"subtitle"`
	Price      *float64        `db:"price"`
	Monthly    *float64        `db:"monthly_price"`
	Currency   string          `db:"currency"`
	Features   string          `db:"features"` // comma-separated, verbatim
	CTAText    string          `db:"cta_text"`
	CTAURL     string          `db:"cta_url"`
	SchemaData json.RawMessage `db:"schema_data"` // manual override, may be nil
}

// Pricing derives the tagged variant from the nullable price columns.
func (p *Package) Pricing() Pricing {
	cur := p.Currency
	if cur == "" {
		cur = "USD"
	}
	switch {
	case p.Price != nil && p.Monthly != nil:
		return Pricing{Kind: PricingSetupPlusRecurring, Amount: *p.Price, Monthly: *p.Monthly, Currency: cur}
	case p.Monthly != nil:
		return Pricing{Kind: PricingRecurring, Monthly: *p.Monthly, Currency: cur}
	case p.Price != nil:
		return Pricing{Kind: PricingOneTime, Amount: *p.Price, Currency: cur}
	}
	return Pricing{Kind: PricingNone, Currency: cur}
}

// CampaignVideo is the hero video block, one per campaign page slug.
type CampaignVideo struct {
	ID           uint64          `db:"id"`
	PageSlug     string          `db:"page_slug"`
	Header       string          `db:"header"`
	Subtitle     string          `db:"subtitle"`
	VideoURL     string          `db:"video_url"`
	ThumbnailURL string          `db:"thumbnail_url"`
	CTAText      string          `db:"cta_text"`
	CTAURL       string          `db:"cta_url"`
	SchemaData   json.RawMessage `db:"schema_data"` // manual override, may be nil
}

// GalleryItem is one automation-gallery screenshot.
type GalleryItem struct {
	ID       uint64 `db:"id"`
	Title    string `db:"title"`
	ImageURL string `db:"image_url"`
	Caption  string `db:"caption"`
}
