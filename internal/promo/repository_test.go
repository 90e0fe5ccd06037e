// internal/promo/repository_test.go
//
// Unit-tests for the promo fetch helpers and the Pricing variant.

package promo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "sqlmock"), mock
}

func f64(v float64) *float64 { return &v }

func TestPricingVariants(t *testing.T) {
	cases := []struct {
		name string
		pkg  Package
		want PricingKind
	}{
		{"one-time", Package{Price: f64(1500)}, PricingOneTime},
		{"recurring", Package{Monthly: f64(99)}, PricingRecurring},
		{"setup plus recurring", Package{Price: f64(500), Monthly: f64(250)}, PricingSetupPlusRecurring},
		{"no pricing", Package{}, PricingNone},
	}
	for _, c := range cases {
		if got := c.pkg.Pricing().Kind; got != c.want {
			t.Errorf("%s: Pricing().Kind = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPricingCurrencyDefault(t *testing.T) {
	p := Package{Price: f64(100)}
	if got := p.Pricing().Currency; got != "USD" {
		t.Fatalf("default currency = %q, want USD", got)
	}
	p.Currency = "EUR"
	if got := p.Pricing().Currency; got != "EUR" {
		t.Fatalf("explicit currency lost: %q", got)
	}
}

func TestPackagesByCategory_TableWhitelist(t *testing.T) {
	db, _ := newMockDB(t)

	if _, err := PackagesByCategory(context.Background(), db, Category("evil; DROP")); err == nil {
		t.Fatal("unknown category must be rejected")
	}
}

func TestPackagesByCategory_SEM(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "title", "subtitle", "price", "monthly_price", "currency",
		"features", "cta_text", "cta_url", "schema_data",
	}).AddRow(1, "SEM Starter", "Ads that convert", 500.0, 250.0, "USD",
		"audit, setup, reporting", "Get started", "/contact", nil)

	mock.ExpectQuery(`FROM\s+promo_sem`).WillReturnRows(rows)

	got, err := PackagesByCategory(context.Background(), db, CategorySEM)
	if err != nil {
		t.Fatalf("PackagesByCategory error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one package, got %d", len(got))
	}
	if got[0].Category != CategorySEM {
		t.Fatalf("category not stamped: %q", got[0].Category)
	}
	if got[0].Pricing().Kind != PricingSetupPlusRecurring {
		t.Fatalf("SEM package should price as setup plus recurring")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestVideoByPageSlug(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "page_slug", "header", "subtitle", "video_url", "thumbnail_url",
		"cta_text", "cta_url", "schema_data",
	}).AddRow(3, "web", "See it live", "Two minutes", "https://youtu.be/dQw4w9WgXcQ",
		"", "Book a call", "/contact", nil)

	mock.ExpectQuery(`FROM\s+campaign_videos`).
		WithArgs("web").
		WillReturnRows(rows)

	rec, err := VideoByPageSlug(context.Background(), db, "web")
	if err != nil {
		t.Fatalf("VideoByPageSlug error: %v", err)
	}
	if rec.PageSlug != "web" || rec.VideoURL == "" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
