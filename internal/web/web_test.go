// internal/web/web_test.go
//
// Handler tests over httptest and sqlmock.  The render path runs against
// a throwaway template dir; datastore fetches that the test does not
// stub simply fall back, which is the production degradation behavior.

package web

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltadigital/velta/internal/config"
	"github.com/veltadigital/velta/internal/content"
	"github.com/veltadigital/velta/internal/sitemap"
	"github.com/veltadigital/velta/internal/view"
)

func newTestServer(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	mock.MatchExpectationsInOrder(false)

	root := t.TempDir()
	tmplDir := filepath.Join(root, "templates")
	require.NoError(t, os.MkdirAll(tmplDir, 0o755))

	pages := map[string]string{
		"home.html": `<!doctype html><html><head>{{ .Head.Title }}{{ .Head.Metas }}{{ .Head.JSON }}</head>` +
			`<body>home{{ if .Company }} {{ .Company.Name }}{{ end }}</body></html>`,
		"blog_post.html": `<!doctype html><html><head>{{ .Head.Title }}{{ .Head.JSON }}</head>` +
			`<body>{{ .Blog.Title }}</body></html>`,
	}
	for name, body := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(tmplDir, name), []byte(body), 0o644))
	}

	cfg := &config.Config{
		HTTP: config.HTTP{ListenAddr: ":0"},
		Site: config.Site{
			Name:    "Velta Digital",
			BaseURL: "https://velta.example",
			Tagline: "Web, Search, Automation",
			Email:   "hello@velta.example",
		},
		Business: config.Business{
			City:    "Austin",
			Country: "US",
		},
		Fetch: config.Fetch{Timeout: 2 * time.Second},
	}

	srv := New(cfg, sqlx.NewDb(raw, "sqlmock"), view.NewEngine(root))
	return srv.Routes(), mock
}

func companyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "url", "logo_url", "email", "phone",
	}).AddRow(1, "Velta Digital", "Full-service digital agency.",
		"https://velta.example", "https://velta.example/logo.png",
		"hello@velta.example", "+1-512-555-0100")
}

func TestHomePageRendersWithStructuredData(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery(`FROM\s+company_info`).WillReturnRows(companyRows())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<script type="application/ld+json">`)
	assert.Contains(t, body, `"@type":"Organization"`)
	assert.Contains(t, body, "Velta Digital")

	// Security middleware applies to page responses.
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestBlogShowReturns404ForUnknownSlug(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery(`FROM\s+blogs`).WillReturnError(sql.ErrNoRows)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/no-such-post", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCampaignRejectsUnknownCategory(t *testing.T) {
	h, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/crypto", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactAcceptsJSON(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectExec(`INSERT INTO contacts`).
		WithArgs(sqlmock.AnyArg(), "Jane", "jane@x.com",
			"General/Other Enquiries", "Hi there", "", "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"name":"Jane","email":"jane@x.com","message":"Hi there"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactPopupFormTakesServiceAsSubject(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectExec(`INSERT INTO contacts`).
		WithArgs(sqlmock.AnyArg(), "Jane", "jane@x.com",
			"SEO Audit", "Hello [via quick-contact popup]", "", "", "popup").
		WillReturnResult(sqlmock.NewResult(1, 1))

	form := url.Values{
		"name":    {"Jane"},
		"email":   {"jane@x.com"},
		"message": {"Hello"},
		"source":  {"popup"},
		"service": {"SEO Audit"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRejectsInvalidEmail(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"name":"Jane","email":"not-an-email","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactRejectsNonPOST(t *testing.T) {
	h, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBlogListFiltersByTag(t *testing.T) {
	h, mock := newTestServer(t)
	mock.ExpectQuery(`FIND_IN_SET`).
		WithArgs("golang", 100).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "slug", "content", "image_url", "tags",
			"published_at", "updated_at",
		}).AddRow(1, "Go Tips", "go-tips", "…", "", "golang, tips",
			time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blogs?tag=golang", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []content.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "go-tips", rows[0].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSitemapServesXMLWithCacheHeader(t *testing.T) {
	h, mock := newTestServer(t)

	// More posts than the blog listing cap: the sitemap fetch is
	// unbounded, so every one of them must surface as a <url> entry.
	blogRows := sqlmock.NewRows([]string{"slug", "published_at", "updated_at"})
	for i := 0; i < 120; i++ {
		blogRows.AddRow(fmt.Sprintf("post-%03d", i),
			time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), nil)
	}
	mock.ExpectQuery(`SELECT slug, published_at, updated_at`).
		WillReturnRows(blogRows)
	mock.ExpectQuery(`FROM\s+portfolio`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "image_url", "project_url",
			"category", "technologies", "created_at",
		}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "https://velta.example/services")
	assert.Contains(t, body, "https://velta.example/blog/post-119")
	assert.Equal(t, len(sitemap.StaticPaths)+120, strings.Count(body, "<url>"))
}
