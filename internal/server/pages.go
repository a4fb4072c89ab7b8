package server

import (
	"net/http"
	"strings"
	"time"

	"h2hgym/internal/content"
	"h2hgym/internal/head"
	"h2hgym/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	visitorID := visitorIDFromContext(r.Context())

	flash, _ := s.popFlash(w, r)

	doc := head.NewDocument(head.Metadata{Title: "H2H Gym"})
	release := doc.Apply(content.SiteMetadata())
	defer release()

	headHTML, err := doc.HTML()
	if err != nil {
		s.logger.WithError(err).Error("failed to render head metadata")
		s.internalServerError(w)
		return
	}

	data := &types.HomePageData{
		BasePageData: types.BasePageData{
			Head: headHTML,
			Year: time.Now().Year(),
		},
		SceneURL:     content.SceneURL,
		Highlights:   content.Highlights(),
		Amenities:    content.Amenities(),
		AboutImage:   content.AboutImage,
		Programs:     content.Programs(),
		Trainers:     content.Trainers(),
		Gallery:      content.Gallery(),
		Plans:        content.Plans(),
		Testimonials: content.Testimonials(),
		Contact:      content.Contact(),
		Trial: types.TrialFormData{
			Submitting: s.desk.Submitting(visitorID),
			Status:     flash.Status,
			Values:     flash.Values,
		},
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
