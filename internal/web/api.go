// internal/web/api.go
//
// Machine endpoints: the contact-form submission handler, the blog
// filter endpoint, and sitemap.xml.
//
// Context
// -------
// The contact endpoint accepts JSON and form-encoded bodies on one
// route.  Form bodies decode through gorilla/schema; the two paths
// converge on contact.Submission and share its normalization and
// validation laws.  Outcomes:
//
//	200 – stored (response carries the minted ID)
//	400 – malformed body, validation failure, or CAPTCHA rejection
//	405 – non-POST (chi answers this for us)
//	500 – datastore write failure
//
// The notification enqueue never affects the response; a stored lead is
// a success even when the inbox ping fails.
package web

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"

	gorillaschema "github.com/gorilla/schema"
	"go.uber.org/zap"

	"github.com/veltadigital/velta/internal/contact"
	"github.com/veltadigital/velta/internal/content"
	"github.com/veltadigital/velta/internal/gather"
	"github.com/veltadigital/velta/internal/metrics"
	"github.com/veltadigital/velta/internal/sitemap"
)

// maxContactBody caps contact payloads well above any legitimate lead.
const maxContactBody = 1 << 20 // 1 MiB

// formDecoder is shared; gorilla/schema decoders cache struct metadata.
var formDecoder = func() *gorillaschema.Decoder {
	d := gorillaschema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

//
// contact endpoint
//

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/json"):
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			s.contactReject(w, http.StatusBadRequest, "malformed JSON body")
			return
		}
	default:
		if err := r.ParseForm(); err != nil {
			s.contactReject(w, http.StatusBadRequest, "malformed form body")
			return
		}
		if err := formDecoder.Decode(&sub, r.PostForm); err != nil {
			s.contactReject(w, http.StatusBadRequest, "malformed form fields")
			return
		}
	}

	sub.Normalize()
	if err := sub.Validate(); err != nil {
		s.contactReject(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	if err := s.verify.Verify(r.Context(), sub.CaptchaToken, clientAddr(r)); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("captcha_failed").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status": "error",
			"error":  "captcha verification failed",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout())
	defer cancel()
	if err := contact.Insert(ctx, s.db, &sub); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("error").Inc()
		zap.S().Errorw("contact insert failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "error",
			"error":  "could not store submission",
		})
		return
	}

	if err := contact.EnqueueNotification(r.Context(), contact.Notification{
		To:      s.cfg.Site.Email,
		Subject: sub.Subject,
		Body:    sub.Message,
	}); err != nil {
		zap.S().Warnw("notification enqueue failed", "err", err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"id":     sub.ID,
	})
}

// contactReject answers a 4xx with a JSON error and counts the outcome.
func (s *Server) contactReject(w http.ResponseWriter, code int, msg string) {
	metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
	writeJSON(w, code, map[string]string{"status": "error", "error": msg})
}

//
// blog filter endpoint
//

func (s *Server) handleBlogList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := content.BlogFilter{
		Tag:    q.Get("tag"),
		Period: q.Get("period"),
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout())
	defer cancel()

	rows, err := content.Blogs(ctx, s.db, filter)
	if err != nil {
		zap.S().Errorw("blog filter query failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "error",
			"error":  "could not load posts",
		})
		return
	}
	if rows == nil {
		rows = []content.Blog{} // JSON [] over null
	}
	writeJSON(w, http.StatusOK, rows)
}

//
// sitemap
//

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	var (
		blogs    []content.Blog
		projects []content.Project
	)

	g := gather.WithTimeout(r.Context(), s.fetchTimeout())
	g.Go("blogs", func(ctx context.Context) (err error) {
		// Unbounded on purpose: one <url> per published post.
		blogs, err = content.BlogSlugs(ctx, s.db)
		return
	})
	g.Go("projects", func(ctx context.Context) (err error) {
		projects, err = content.Projects(ctx, s.db)
		return
	})
	g.Wait()

	base := strings.TrimRight(s.cfg.Site.BaseURL, "/")
	out, err := sitemap.Render(sitemap.Build(base, blogs, projects))
	if err != nil {
		zap.S().Errorw("sitemap render failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	metrics.SitemapHitsTotal.Inc()
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(out)
}

//
// helpers
//

// writeJSON serializes v with the right headers.  Encoding a map or a
// row slice cannot fail, so the error is only logged.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("json encode failed", "err", err)
	}
}

// clientAddr strips the port from RemoteAddr for the CAPTCHA call.
// RealIP middleware has already rewritten it from X-Forwarded-For.
func clientAddr(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
