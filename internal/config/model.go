// internal/config/model.go
//
// Typed configuration model for Velta.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                         – dotenv values,
//   • `conf/global.yaml`                      – primary static file,
//   • `VELTA_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the secrets client *after* unmarshalling, so flat files and git
// history never carry credentials (database password, CAPTCHA secret).
//
// The Business block is the single source of truth for the agency's
// service-area data — street address, geo coordinate, and opening hours.
// Every schema builder reads it from here; none of them carry their own
// copies of those literals.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the DSN template and its secret.
//
// The *template* (`DSN`) is kept in YAML so operators can tweak host,
// port, or flags without touching Vault.  The *secret* portion
// (`Password`) may be a `vault:` reference resolved at boot.  The DSN
// template contains one %s verb where the password is spliced in.
type Database struct {
	DSN      string `koanf:"dsn"      validate:"required"`
	Password string `koanf:"password" validate:"required"`
}

//
// Site section
//

// Site identifies the agency for page titles and structured data.
type Site struct {
	Name    string `koanf:"name"     validate:"required"`
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Tagline string `koanf:"tagline"`
	LogoURL string `koanf:"logo_url"`
	Email   string `koanf:"email"    validate:"omitempty,email"`
	Phone   string `koanf:"phone"`
}

//
// Business section
//

// Business is the service-area block consumed by the LocalBusiness and
// campaign schema builders.  Centralised here so geo coordinates and
// opening hours exist in exactly one place.
type Business struct {
	Street     string   `koanf:"street"`
	City       string   `koanf:"city"`
	Region     string   `koanf:"region"`
	PostalCode string   `koanf:"postal_code"`
	Country    string   `koanf:"country"`
	Latitude   float64  `koanf:"latitude"`
	Longitude  float64  `koanf:"longitude"`
	PriceRange string   `koanf:"price_range"`
	// OpeningHours uses schema.org shorthand, e.g. "Mo-Fr 09:00-18:00".
	OpeningHours []string `koanf:"opening_hours"`
}

//
// Captcha section
//

// Captcha configures the third-party token verification call on contact
// submissions.  An empty Secret disables verification entirely.
type Captcha struct {
	Secret    string `koanf:"secret"`
	VerifyURL string `koanf:"verify_url"`
}

//
// Fetch section
//

// Fetch bounds every datastore round-trip issued during a page render.
type Fetch struct {
	Timeout time.Duration `koanf:"timeout"`
}

//
// Geo section
//

// Geo points at the optional GeoLite2 database used by request
// enrichment.  Empty path disables lookups.
type Geo struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or VELTA_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // VELTA_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Site     Site     `koanf:"site"`
	Business Business `koanf:"business"`
	Captcha  Captcha  `koanf:"captcha"`
	Fetch    Fetch    `koanf:"fetch"`
	Geo      Geo      `koanf:"geo"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
