// internal/contact/store.go
//
// Persistence for contact submissions: a single INSERT into `contacts`,
// no transactional coordination with anything else.  This is the one
// write path the whole site has.
package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Insert stores one normalized submission.  A missing ID is minted here.
func Insert(ctx context.Context, db *sqlx.DB, s *Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	const q = `
        INSERT INTO contacts
               (id, name, email, subject, message,
                preferred_contact_time, preferred_contact_method, source)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, q,
		s.ID, s.Name, s.Email, s.Subject, s.Message,
		s.PreferredTime, s.PreferredMethod, s.Source)
	return err
}
