// Package session holds the in-memory state of one interactive session: the
// current principal and the ordered list of tickets reported so far. Nothing
// here is durable; a process restart discards everything.
package session

import (
	"errors"

	"nammareport/backend/internal/models"
)

// ErrTicketNotFound is returned when a ticket id is absent from the session.
var ErrTicketNotFound = errors.New("ticket not found")

// Store is the state of a single session. It assumes one active request at a
// time per session and therefore carries no lock of its own; cross-session
// concurrency is handled by the Registry.
type Store struct {
	principal models.Principal
	tickets   []*models.Ticket
}

func NewStore() *Store {
	return &Store{}
}

// Principal returns a copy of the session's principal.
func (s *Store) Principal() models.Principal {
	return s.principal
}

// SetPrincipal replaces the session's principal.
func (s *Store) SetPrincipal(p models.Principal) {
	s.principal = p
}

// ResetPrincipal clears the authentication state on logout. The ticket list
// is deliberately retained: it survives logout/login within the process.
func (s *Store) ResetPrincipal() {
	s.principal = models.Principal{}
}

// AppendTicket adds a ticket to the end of the session's ticket list. The
// list is insertion-ordered and is the canonical sequence for every view.
func (s *Store) AppendTicket(t *models.Ticket) {
	s.tickets = append(s.tickets, t)
}

// FindTicket returns the ticket with the given id or ErrTicketNotFound.
func (s *Store) FindTicket(id string) (*models.Ticket, error) {
	for _, t := range s.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrTicketNotFound
}

// UpdateStatus applies the one-way Open → Resolved transition. Setting a
// ticket to its current status is a no-op, and a resolved ticket never
// regresses to Open.
func (s *Store) UpdateStatus(id string, status models.Status) error {
	t, err := s.FindTicket(id)
	if err != nil {
		return err
	}
	if t.Status == status || t.Status == models.StatusResolved {
		return nil
	}
	t.Status = status
	return nil
}

// Tickets returns the session's tickets in insertion order. The slice is a
// copy; the tickets themselves are shared.
func (s *Store) Tickets() []*models.Ticket {
	out := make([]*models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}
