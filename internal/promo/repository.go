// internal/promo/repository.go
//
// sqlx fetch helpers for the campaign tables.  Same contract as
// internal/content: context-bounded reads, no fallback conversion here.
package promo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PackagesByCategory returns the promo bundles for one campaign type.
// The category string never reaches SQL directly; Category.table() maps
// it onto the whitelisted table name.
func PackagesByCategory(ctx context.Context, db *sqlx.DB, cat Category) ([]Package, error) {
	table := cat.table()
	if table == "" {
		return nil, fmt.Errorf("promo: unknown category %q", cat)
	}

	q := `
        SELECT id, title, subtitle, price, monthly_price, currency,
               features, cta_text, cta_url, schema_data
        FROM   ` + table + `
        ORDER  BY price IS NULL, price`
	var rows []Package
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Category = cat
	}
	return rows, nil
}

// VideoByPageSlug fetches the hero video for one campaign page.
func VideoByPageSlug(ctx context.Context, db *sqlx.DB, slug string) (*CampaignVideo, error) {
	const q = `
        SELECT id, page_slug, header, subtitle, video_url, thumbnail_url,
               cta_text, cta_url, schema_data
        FROM   campaign_videos
        WHERE  page_slug = ?
        LIMIT  1`
	var rec CampaignVideo
	if err := db.GetContext(ctx, &rec, q, slug); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Gallery returns the automation-gallery items in display order.
func Gallery(ctx context.Context, db *sqlx.DB) ([]GalleryItem, error) {
	const q = `
        SELECT id, title, image_url, caption
        FROM   automation_gallery
        ORDER  BY id`
	var rows []GalleryItem
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}
