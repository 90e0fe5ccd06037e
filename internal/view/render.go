// internal/view/render.go
//
// Central view engine: template lookup, func-map injection, and an LRU of
// parsed *template.Template* sets.
//
// Public helpers
// --------------
//   - Render         – write rendered HTML to an http.ResponseWriter.
//   - RenderToString – return template.HTML (partials, e-mails).
//
// All templates under templates/ are parsed as one set so sub-templates
// ({{ template "layout" . }}) work out-of-the-box.  Parsed sets are cached
// in a small LRU keyed by logical page name; CacheSkip forces a re-parse,
// which keeps template editing pleasant during development.
//
// execName() chooses the best template to execute:
//   – If the set contains "<name>.html", we run that (file has no define).
//   – Else we fall back to "<name>" (root template defined via {{ define }}).

package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/veltadigital/velta/internal/cache"
	"github.com/veltadigital/velta/internal/requestinfo"
)

//
// cache definitions
//

// CachePolicy hints how the caller wants this template cached.
type CachePolicy int

const (
	CacheDefault CachePolicy = iota // cache parsed sets
	CacheSkip                       // never cache (dev reloads)
)

// Engine renders page templates rooted at <root>/templates.
type Engine struct {
	root string
	lru  *cache.LRU
}

// NewEngine constructs an Engine for the given repo root.
func NewEngine(root string) *Engine {
	return &Engine{root: root, lru: cache.New(64)}
}

//
// public helpers
//

// Render executes the template set and streams it to w.
func (e *Engine) Render(r *http.Request, w http.ResponseWriter, name string, data any, policy CachePolicy) error {
	t, err := e.load(name, policy)
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, execName(t, name), withRequest(data, r))
}

// RenderToString executes and returns HTML.  It mirrors Render, but writes
// to a buffer instead of w.
func (e *Engine) RenderToString(r *http.Request, name string, data any) (template.HTML, error) {
	t, err := e.load(name, CacheDefault)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, execName(t, name), withRequest(data, r)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

//
// internal: load
//

// load finds and (if necessary) parses the template set for the given base
// name, obeying the provided cache policy.
func (e *Engine) load(name string, policy CachePolicy) (*template.Template, error) {
	key := "templates::" + name

	if policy != CacheSkip {
		if v, ok := e.lru.Get(key); ok {
			return v.(*template.Template), nil
		}
	}

	base := filepath.Join(e.root, "templates", name+".html")
	if _, err := os.Stat(base); err != nil {
		return nil, os.ErrNotExist
	}

	// Parse all *.html in the same directory so the layout and partials
	// referenced via {{ template }} resolve.
	pattern := filepath.Join(filepath.Dir(base), "*.html")
	t, err := template.New(name).Funcs(funcMap()).ParseGlob(pattern)
	if err != nil {
		return nil, err
	}

	if policy != CacheSkip {
		e.lru.Add(key, t)
	}
	return t, nil
}

//
// func-map builders
//

func funcMap() template.FuncMap {
	fm := template.FuncMap{
		"dict":     dict,
		"fmtDate":  func(t time.Time) string { return t.Format("January 2, 2006") },
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"fmtPrice": func(p *float64, currency string) string {
			if p == nil {
				return ""
			}
			return fmt.Sprintf("%.2f %s", *p, currency)
		},
	}
	for k, v := range uaFuncMap() {
		fm[k] = v
	}
	return fm
}

// uaFuncMap exposes request-enrichment attributes to templates, e.g.
// {{ if isBot .Request }} … {{ end }}.
func uaFuncMap() template.FuncMap {
	info := func(r *http.Request) *requestinfo.RequestInfo {
		if r == nil {
			return nil
		}
		return requestinfo.FromContext(r.Context())
	}
	return template.FuncMap{
		"browser": func(r *http.Request) string {
			if i := info(r); i != nil {
				return i.UA.Browser
			}
			return ""
		},
		"device": func(r *http.Request) string {
			if i := info(r); i != nil {
				return i.UA.Device
			}
			return ""
		},
		"isBot": func(r *http.Request) bool {
			i := info(r)
			return i != nil && i.UA.IsBot
		},
	}
}

//
// helpers
//

// execName picks the template name to execute.
//
// Priority:
//  1. If the set has "<name>.html" (file-based template), run that.
//  2. Otherwise, fall back to "<name>" (root template defined in code).
func execName(t *template.Template, name string) string {
	if tmpl := t.Lookup(name + ".html"); tmpl != nil {
		return name + ".html"
	}
	return name
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}

// withRequest injects the *http.Request into map payloads so the UA
// helpers can reach request context.  Non-map payloads pass through.
func withRequest(data any, r *http.Request) any {
	m, ok := data.(map[string]any)
	if !ok {
		return data
	}
	if _, exists := m["Request"]; !exists {
		m["Request"] = r
	}
	return m
}
