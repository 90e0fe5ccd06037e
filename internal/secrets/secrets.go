// internal/secrets/secrets.go
//
// Vault client wrapper for Velta.
//
// Context
// -------
//   - Provides a concurrency-safe singleton around the HashiCorp Vault Go SDK.
//   - Adds simple KV-v2 helpers, per-key caching, and `vault:` reference
//     resolution for config values.
//
// Public workflow
// ---------------
//  1. cli, err := secrets.New(ctx)                       // during boot.
//  2. val, err := cli.Resolve(ctx, cfg.Database.Password) // anywhere.
//
// A `vault:` reference has the shape `vault:<mount>/<path>#<key>`, e.g.
// `vault:kv/velta/prod#db_password`.  Plain strings pass through Resolve
// untouched, so local development can keep secrets in conf/.env.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	vault "github.com/hashicorp/vault/api"
)

// Prefix marks a config value as a Vault reference.
const Prefix = "vault:"

// cacheTTL keeps resolved keys warm; boot-time lookups repeat rarely.
const cacheTTL = 5 * time.Minute

// Client is safe for concurrent use.  Create once at startup.  Zero value
// is invalid.
type Client struct {
	api *vault.Client

	cacheMu sync.RWMutex
	cache   map[string]cached // canonical path#key → value + expiry.
}

type cached struct {
	val string
	exp time.Time
}

// New constructs a Vault client from the standard VAULT_ADDR/VAULT_TOKEN
// environment.  Callers that never pass `vault:` references may skip
// construction entirely; Resolve on a nil *Client only accepts plain
// strings.
func New(ctx context.Context) (*Client, error) {
	cfg := vault.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}

	apiCli, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
		apiCli.SetToken(tok)
	}

	return &Client{api: apiCli, cache: make(map[string]cached)}, nil
}

// Resolve returns val unchanged unless it carries the `vault:` prefix, in
// which case the referenced KV-v2 key is fetched.
func (c *Client) Resolve(ctx context.Context, val string) (string, error) {
	if !strings.HasPrefix(val, Prefix) {
		return val, nil
	}
	if c == nil {
		return "", errors.New("secrets: vault reference used without a client")
	}

	ref := strings.TrimPrefix(val, Prefix)
	path, key, ok := strings.Cut(ref, "#")
	if !ok || path == "" || key == "" {
		return "", fmt.Errorf("secrets: malformed reference %q", val)
	}
	return c.GetKV(ctx, path, key)
}

// GetKV fetches a single key from a KV-v2 secret, caching the result.
func (c *Client) GetKV(ctx context.Context, secretPath, key string) (string, error) {
	if secretPath == "" || key == "" {
		return "", errors.New("secret path and key must be non-empty")
	}

	canonical := secretPath + "#" + key

	c.cacheMu.RLock()
	if cv, ok := c.cache[canonical]; ok && time.Now().Before(cv.exp) {
		c.cacheMu.RUnlock()
		return cv.val, nil
	}
	c.cacheMu.RUnlock()

	mount, rel := splitMount(secretPath)
	sec, err := c.api.KVv2(mount).Get(ctx, rel)
	if err != nil {
		return "", fmt.Errorf("vault get %s: %w", secretPath, err)
	}

	raw, ok := sec.Data[key]
	if !ok {
		return "", fmt.Errorf("key %q not found in secret %q", key, secretPath)
	}
	sval, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("value at %s#%s is not a string", secretPath, key)
	}

	c.cacheMu.Lock()
	c.cache[canonical] = cached{val: sval, exp: time.Now().Add(cacheTTL)}
	c.cacheMu.Unlock()

	return sval, nil
}

//
// helpers
//

func splitMount(p string) (mount, rel string) {
	parts := strings.SplitN(p, "/", 2)
	mount = parts[0]
	if len(parts) == 2 {
		rel = parts[1]
	}
	return
}
