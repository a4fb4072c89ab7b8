package server

import (
	"net/http"

	"h2hgym/internal/content"
	"h2hgym/internal/navbar"
	"h2hgym/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	if setter, ok := data.(types.NavbarDataSetter); ok {
		// Pages render at the top of the viewport; the browser script takes over from there.
		setter.SetNavbarData(types.NavbarData{
			Links:           content.NavLinks(),
			ScrollThreshold: navbar.ScrollThreshold,
			ScrolledClasses: navbar.ClassAttr(navbar.ScrolledClasses),
			Classes:         navbar.ClassAttr(navbar.ClassesFor(navbar.IsScrolled(0))),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}
