package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"h2hgym/internal/trial"
	"h2hgym/pkg/types"
)

const (
	missingFieldsMessage = "Name and phone are required"
	invalidFormMessage   = "Invalid form submission"
	inFlightMessage      = "Your previous request is still being sent"
)

func failure(message string) types.SubmissionStatus {
	return types.SubmissionStatus{Kind: types.SubmissionFailure, Message: message}
}

func (s *Service) handleTrialSubmit(w http.ResponseWriter, r *http.Request) {
	// The submission runs to completion even if the visitor leaves the page.
	ctx := context.WithoutCancel(r.Context())
	visitorID := visitorIDFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.respondTrial(w, r, trialFlash{Status: failure(invalidFormMessage)})
		return
	}

	var req types.TrialRequest
	if err := decoder.Decode(&req, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode trial form")
		s.respondTrial(w, r, trialFlash{Status: failure(invalidFormMessage)})
		return
	}

	if !required(req.Name) || !required(req.Phone) {
		s.respondTrial(w, r, trialFlash{Status: failure(missingFieldsMessage), Values: req})
		return
	}

	status, err := s.desk.Submit(ctx, visitorID, req)
	if errors.Is(err, trial.ErrInFlight) {
		s.logger.WithField("visitor_id", visitorID).Info("ignoring trial submission while one is in flight")
		status = failure(inFlightMessage)
	}

	s.respondTrial(w, r, trialFlash{Status: status, Values: req})
}

// respondTrial answers scripted submissions with JSON and plain form posts with a
// redirect back to the form.
func (s *Service) respondTrial(w http.ResponseWriter, r *http.Request, flash trialFlash) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(flash.Status); err != nil {
			s.logger.WithError(err).Error("failed to encode trial status")
		}
		return
	}

	s.setFlashCookie(w, flash)
	http.Redirect(w, r, "/#trial", http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
