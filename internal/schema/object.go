// internal/schema/object.go
//
// Schema.org JSON-LD object plumbing.
//
// Context
// -------
// Every structured-data document the site emits is an Object — a plain
// JSON-serializable map carrying a `@context`/`@type` pair.  Builders in
// this package produce Objects from datastore entities; the aggregator
// (aggregate.go) selects and orders them per page; the head builder wraps
// the serialized form in <script type="application/ld+json"> blocks.
//
// Serialization is always compact (no pretty-printing) because the output
// lands inline in page markup.
package schema

import (
	"encoding/json"
	"time"
)

const ldContext = "https://schema.org"

// Object is one schema.org-shaped document.
type Object map[string]any

// Type returns the `@type` discriminator, or "" when absent.
func (o Object) Type() string {
	t, _ := o["@type"].(string)
	return t
}

// Serialize renders the object as compact JSON.
func (o Object) Serialize() (string, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// fromRaw decodes a precomputed schema_data document.  Returns ok=false
// for empty or malformed payloads so the caller can fall back to
// synthesis.
func fromRaw(raw json.RawMessage) (Object, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var o Object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, false
	}
	return o, true
}

// now is stubbed in tests; validFrom fields read the wall clock, an
// accepted nondeterminism.
var now = time.Now

// SiteMeta identifies the site for publisher/url fields.
type SiteMeta struct {
	Name    string
	BaseURL string
	LogoURL string
	Tagline string
}

// Business is the centralized service-area block (address, geo
// coordinate, opening hours).  Populated from configuration — builders
// never carry their own copies of these literals.
type Business struct {
	Street       string
	City         string
	Region       string
	PostalCode   string
	Country      string
	Latitude     float64
	Longitude    float64
	PriceRange   string
	OpeningHours []string
}

// FAQ is one pre-shaped question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// Crumb is one pre-shaped breadcrumb entry.
type Crumb struct {
	Name string
	URL  string
}

// Generator binds the builders to the site identity and business block.
type Generator struct {
	Site SiteMeta
	Biz  Business
}
