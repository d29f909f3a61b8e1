package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// RenderPropertyCard writes the card markup for one property summary.
func RenderPropertyCard(w io.Writer, p model.Property) error {
	return templates.ExecuteTemplate(w, "property-card", p)
}

// RenderReviewSection writes the review section in whichever state the view
// carries.
func RenderReviewSection(w io.Writer, view ReviewSectionView) error {
	return templates.ExecuteTemplate(w, "review-section", view)
}
