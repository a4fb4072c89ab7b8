package server

import (
	"net/http"

	"h2hgym/internal"
	"h2hgym/pkg/types"
)

// trialFlash carries the outcome of a trial submission across the post/redirect/get.
type trialFlash struct {
	Status types.SubmissionStatus
	Values types.TrialRequest
}

func (s *Service) secureCookies() bool {
	return s.config.Environment != "development"
}

func (s *Service) setFlashCookie(w http.ResponseWriter, flash trialFlash) {
	encoded, err := s.cookie.Encode(internal.COOKIE_FLASH_NAME, flash)
	if err != nil {
		// Long goals can push the cookie past the encoder's limit; keep the message.
		s.logger.WithError(err).Warn("failed to encode trial flash with form values")
		encoded, err = s.cookie.Encode(internal.COOKIE_FLASH_NAME, trialFlash{Status: flash.Status})
		if err != nil {
			s.logger.WithError(err).Error("failed to encode trial flash")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_FLASH_NAME,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.secureCookies(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.FlashMaxAgeSec,
		Path:     "/",
	})
}

func (s *Service) clearFlashCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_FLASH_NAME,
		Value:    "",
		HttpOnly: true,
		Secure:   s.secureCookies(),
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// popFlash returns the pending flash, if any, and clears it so it renders once.
func (s *Service) popFlash(w http.ResponseWriter, r *http.Request) (trialFlash, bool) {
	var flash trialFlash

	cookie, err := r.Cookie(internal.COOKIE_FLASH_NAME)
	if err != nil {
		return flash, false
	}

	s.clearFlashCookie(w)

	if err := s.cookie.Decode(internal.COOKIE_FLASH_NAME, cookie.Value, &flash); err != nil {
		s.logger.WithError(err).Debug("discarding undecodable trial flash")
		return trialFlash{}, false
	}

	return flash, true
}
