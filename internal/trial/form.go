package trial

import (
	"context"
	"errors"
	"sync"

	"h2hgym/pkg/types"

	"github.com/sirupsen/logrus"
)

// ErrInFlight is returned when a submission is attempted while the previous one
// has not resolved yet. The ignored attempt does not touch the form state.
var ErrInFlight = errors.New("trial request already in flight")

type Sender interface {
	Send(ctx context.Context, req types.TrialRequest) error
}

// Form holds the transient state of one visitor's trial form.
type Form struct {
	sender Sender
	logger logrus.FieldLogger

	mu         sync.Mutex
	submitting bool
	status     types.SubmissionStatus
}

func NewForm(sender Sender, logger logrus.FieldLogger) *Form {
	return &Form{sender: sender, logger: logger}
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form) Status() types.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit sends req once and records the outcome. The status is reset to none when
// the attempt starts and overwritten when it resolves.
func (f *Form) Submit(ctx context.Context, req types.TrialRequest) (types.SubmissionStatus, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return types.SubmissionStatus{}, ErrInFlight
	}
	f.submitting = true
	f.status = types.SubmissionStatus{}
	f.mu.Unlock()

	err := f.sender.Send(ctx, req)
	status := StatusFor(err)

	entry := f.logger.WithField("phone", req.Phone)
	if err != nil {
		entry.WithError(err).Warn("trial request failed")
	} else {
		entry.Info("trial request accepted")
	}

	f.mu.Lock()
	f.status = status
	f.submitting = false
	f.mu.Unlock()

	return status, nil
}

// Desk tracks the forms of visitors with a submission in flight.
type Desk struct {
	sender Sender
	logger logrus.FieldLogger

	mu    sync.Mutex
	forms map[string]*Form
}

func NewDesk(sender Sender, logger logrus.FieldLogger) *Desk {
	return &Desk{
		sender: sender,
		logger: logger,
		forms:  make(map[string]*Form),
	}
}

func (d *Desk) Submit(ctx context.Context, visitorID string, req types.TrialRequest) (types.SubmissionStatus, error) {
	d.mu.Lock()
	form, ok := d.forms[visitorID]
	if !ok {
		form = NewForm(d.sender, d.logger.WithField("visitor_id", visitorID))
		d.forms[visitorID] = form
	}
	d.mu.Unlock()

	status, err := form.Submit(ctx, req)
	if errors.Is(err, ErrInFlight) {
		return status, err
	}

	d.mu.Lock()
	if d.forms[visitorID] == form && !form.Submitting() {
		delete(d.forms, visitorID)
	}
	d.mu.Unlock()

	return status, err
}

func (d *Desk) Submitting(visitorID string) bool {
	d.mu.Lock()
	form, ok := d.forms[visitorID]
	d.mu.Unlock()

	return ok && form.Submitting()
}

// Pending reports the number of visitors with a submission in flight.
func (d *Desk) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.forms)
}
