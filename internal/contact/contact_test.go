// internal/contact/contact_test.go
//
// Unit-tests for submission normalization, validation, the CAPTCHA
// client, and the insert path (sqlmock).

package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestNormalizeDefaultsSubject(t *testing.T) {
	s := Submission{Name: "Jane", Email: "jane@x.com", Message: "Hi"}
	s.Normalize()
	if s.Subject != DefaultSubject {
		t.Fatalf("subject = %q, want %q", s.Subject, DefaultSubject)
	}
}

func TestNormalizePopupLaw(t *testing.T) {
	s := Submission{
		Name:    "Jane",
		Email:   "jane@x.com",
		Message: "Hi",
		Source:  SourcePopup,
		Service: "Web Development",
	}
	s.Normalize()

	if s.Subject != "Web Development" {
		t.Fatalf("popup subject = %q, want the chosen service", s.Subject)
	}
	if !strings.HasSuffix(s.Message, PopupMarker) {
		t.Fatalf("popup message missing marker: %q", s.Message)
	}

	// Normalize must be idempotent: no double markers.
	s.Normalize()
	if strings.Count(s.Message, PopupMarker) != 1 {
		t.Fatalf("marker duplicated: %q", s.Message)
	}
}

func TestValidateRejectsBadEmail(t *testing.T) {
	s := Submission{Name: "Jane", Email: "not-an-email", Message: "Hi"}
	s.Normalize()
	if err := s.Validate(); err == nil {
		t.Fatal("expected validation error for malformed email")
	}
}

func TestVerifierDisabledPasses(t *testing.T) {
	v := NewVerifier("", "https://verify.invalid")
	if err := v.Verify(context.Background(), "", ""); err != nil {
		t.Fatalf("disabled verifier must pass: %v", err)
	}
}

func TestVerifierHonorsVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("secret") != "s3cret" {
			t.Errorf("secret not forwarded")
		}
		if r.PostForm.Get("response") == "good-token" {
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	v := NewVerifier("s3cret", srv.URL)

	if err := v.Verify(context.Background(), "good-token", "203.0.113.9"); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if err := v.Verify(context.Background(), "bad-token", ""); err == nil {
		t.Fatal("invalid token accepted")
	}
	if err := v.Verify(context.Background(), "", ""); err == nil {
		t.Fatal("missing token accepted")
	}
}

func TestInsertMintsIDAndPersists(t *testing.T) {
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer raw.Close()
	db := sqlx.NewDb(raw, "sqlmock")

	mock.ExpectExec(`INSERT INTO contacts`).
		WithArgs(sqlmock.AnyArg(), "Jane", "jane@x.com", DefaultSubject, "Hi",
			"", "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	s := Submission{Name: "Jane", Email: "jane@x.com", Message: "Hi"}
	s.Normalize()
	if err := Insert(context.Background(), db, &s); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if s.ID == "" {
		t.Fatal("ID not minted")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
