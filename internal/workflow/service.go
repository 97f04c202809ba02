// Package workflow implements the ticket lifecycle: mobile verification,
// report submission and admin triage. It is the only writer of session state.
package workflow

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"nammareport/backend/internal/classify"
	"nammareport/backend/internal/models"
	"nammareport/backend/internal/notify"
	"nammareport/backend/internal/session"
)

var (
	// ErrMobileLength rejects numbers that are not exactly 10 characters.
	// Only the length is checked, matching the reference behavior.
	ErrMobileLength = errors.New("mobile number must be 10 characters")

	// ErrCodeNotRequested means VerifyCode ran before any code was sent.
	ErrCodeNotRequested = errors.New("no verification code requested")

	// ErrInvalidCode means the submitted code does not match the stored one.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrNoFile means SubmitReport ran without an uploaded file.
	ErrNoFile = errors.New("no file attached")

	// ErrUnauthorized means the caller lacks the required role.
	ErrUnauthorized = errors.New("unauthorized")
)

// Config carries the policy knobs the controller needs.
type Config struct {
	AdminMobile   string
	Location      models.Location
	IntegrityTags bool
	CodeSendDelay time.Duration
	AnalysisDelay time.Duration
}

// Service is the workflow controller for one session store. Randomness,
// clock and sleep are injectable so tests run deterministically and without
// real delays.
type Service struct {
	Store    *session.Store
	Notifier notify.Notifier
	Now      func() time.Time
	Sleep    func(time.Duration)

	cfg Config
	rng models.Rand
}

// NewService builds a controller over the given session store.
func NewService(store *session.Store, cfg Config, rng models.Rand, notifier notify.Notifier) *Service {
	return &Service{
		Store:    store,
		Notifier: notifier,
		Now:      time.Now,
		Sleep:    time.Sleep,
		cfg:      cfg,
		rng:      rng,
	}
}

// RequestVerificationCode generates a fresh 4-digit code for the given mobile
// number and stores it on the principal. The code is returned to the caller
// directly: the delivery channel is simulated, there is no SMS dispatch.
func (s *Service) RequestVerificationCode(mobile string) (int, error) {
	if len(mobile) != 10 {
		return 0, ErrMobileLength
	}
	s.Sleep(s.cfg.CodeSendDelay)

	code := s.rng.Intn(9000) + 1000
	p := s.Store.Principal()
	p.MobileNumber = mobile
	p.VerificationCode = code
	p.CodeSent = true
	s.Store.SetPrincipal(p)
	return code, nil
}

// VerifyCode compares the submitted code against the stored one as strings.
// A match marks the principal verified; repeating a correct submission is
// idempotent. A mismatch leaves the session state unchanged.
func (s *Service) VerifyCode(submitted string) error {
	p := s.Store.Principal()
	if !p.CodeSent {
		return ErrCodeNotRequested
	}
	if submitted != strconv.Itoa(p.VerificationCode) {
		return ErrInvalidCode
	}
	p.Verified = true
	s.Store.SetPrincipal(p)
	return nil
}

// SubmitReport classifies the uploaded file by name and appends a new Open
// ticket to the session. Exactly one ticket is created per successful call.
func (s *Service) SubmitReport(filename string) (*models.Ticket, error) {
	if err := s.Authorize(false); err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, ErrNoFile
	}
	s.Sleep(s.cfg.AnalysisDelay)

	res := classify.Classify(filename)
	now := s.Now()
	t := &models.Ticket{
		ID:        models.NewTicketID(s.rng),
		CreatedAt: now,
		Category:  res.Category,
		Priority:  res.Priority,
		Reason:    res.Reason,
		Location:  s.cfg.Location,
		Status:    models.StatusOpen,
	}
	if s.cfg.IntegrityTags {
		t.IntegrityTag = models.ComputeIntegrityTag(res.Category, now)
	}
	s.Store.AppendTicket(t)
	return t, nil
}

// MarkResolved applies the Open → Resolved transition and fires the simulated
// resolution notice. Resolving an already resolved ticket is a no-op and
// sends nothing.
func (s *Service) MarkResolved(id string) error {
	if err := s.Authorize(true); err != nil {
		return err
	}
	t, err := s.Store.FindTicket(id)
	if err != nil {
		return err
	}
	if t.Status == models.StatusResolved {
		return nil
	}
	if err := s.Store.UpdateStatus(id, models.StatusResolved); err != nil {
		return err
	}
	msg := fmt.Sprintf("Your report %s has been resolved.", id)
	return s.Notifier.Notify(s.Store.Principal().MobileNumber, msg)
}

// Logout resets the principal. The session's tickets are kept.
func (s *Service) Logout() {
	s.Store.ResetPrincipal()
}

// Tickets returns the session's tickets in insertion order.
func (s *Service) Tickets() []*models.Ticket {
	return s.Store.Tickets()
}

// Authorize is the single authorization guard for every operation: it
// requires a verified principal, and the administrator role when admin is
// set. It never mutates state.
func (s *Service) Authorize(admin bool) error {
	p := s.Store.Principal()
	if !p.Verified {
		return ErrUnauthorized
	}
	if admin && !p.IsAdmin(s.cfg.AdminMobile) {
		return ErrUnauthorized
	}
	return nil
}
