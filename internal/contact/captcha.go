// internal/contact/captcha.go
//
// Third-party CAPTCHA verification client.
//
// When a secret is configured, every submission's token is POSTed to the
// provider's verify endpoint and the boolean verdict is honored.  An
// empty secret disables verification entirely (local development, test
// environments).  One request, no retries — a verification hiccup reads
// as a failed check and the caller answers 400.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Verifier checks CAPTCHA tokens against the provider.
type Verifier struct {
	Secret    string
	VerifyURL string
	Client    *http.Client
}

// NewVerifier wires a verifier with a bounded HTTP client.
func NewVerifier(secret, verifyURL string) *Verifier {
	return &Verifier{
		Secret:    secret,
		VerifyURL: verifyURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether verification is active.
func (v *Verifier) Enabled() bool { return v != nil && v.Secret != "" }

// Verify returns nil when the token passes (or verification is
// disabled), an error otherwise.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.Enabled() {
		return nil
	}
	if token == "" {
		return errors.New("captcha token missing")
	}

	form := url.Values{
		"secret":   {v.Secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var verdict struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return err
	}
	if !verdict.Success {
		return errors.New("captcha verification failed")
	}
	return nil
}
