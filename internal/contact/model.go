// internal/contact/model.go
//
// Contact-form submission model and normalization rules.
//
// Context
// -------
// The contact endpoint accepts both JSON and form-encoded bodies.  Form
// bodies are decoded with gorilla/schema (hence the `schema` tags, whose
// field names match what the widgets post); JSON tags mirror them.
// Validation uses go-playground/validator, the same library the config
// loader leans on.
//
// Two normalization laws live here so every entry path shares them:
//
//   - A blank subject defaults to "General/Other Enquiries".
//   - Popup-originated submissions take the chosen service as their
//     subject and carry a literal marker suffix on the message, so the
//     back office can tell popup leads from page-form leads.
package contact

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultSubject is applied when a submission arrives without one.
const DefaultSubject = "General/Other Enquiries"

// PopupMarker tags messages that came in through the popup widget.
const PopupMarker = " [via quick-contact popup]"

// SourcePopup marks submissions from the popup widget.
const SourcePopup = "popup"

// Submission is one contact-form payload.
type Submission struct {
	ID              string `json:"-"                        schema:"-"`
	Name            string `json:"name"                     schema:"name"                     validate:"required,max=120"`
	Email           string `json:"email"                    schema:"email"                    validate:"required,email"`
	Subject         string `json:"subject"                  schema:"subject"                  validate:"max=200"`
	Message         string `json:"message"                  schema:"message"                  validate:"required,max=5000"`
	CaptchaToken    string `json:"captchaValue"             schema:"captchaValue"             validate:"-"`
	PreferredTime   string `json:"preferred_contact_time"   schema:"preferred_contact_time"   validate:"max=100"`
	PreferredMethod string `json:"preferred_contact_method" schema:"preferred_contact_method" validate:"max=100"`
	Source          string `json:"source"                   schema:"source"                   validate:"max=40"`
	Service         string `json:"service"                  schema:"service"                  validate:"max=120"`
}

// validate is the package-level singleton, mirroring internal/config.
var validate = validator.New()

// Normalize trims whitespace and applies the subject/popup laws.  Call
// before Validate so defaults satisfy the tag rules.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)

	if s.Source == SourcePopup {
		if s.Service != "" {
			s.Subject = s.Service
		}
		if !strings.HasSuffix(s.Message, PopupMarker) {
			s.Message += PopupMarker
		}
	}
	if s.Subject == "" {
		s.Subject = DefaultSubject
	}
}

// Validate returns the first tag violation, or nil.
func (s *Submission) Validate() error {
	return validate.Struct(s)
}
