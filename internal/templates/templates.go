// Package templates defines the built-in resume template descriptors.
package templates

// Layout identifies the page layout of a template.
type Layout string

// The closed set of layout kinds.
const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutModern       Layout = "modern"
)

// ResumeTemplate describes one selectable visual template. Templates are
// immutable and predefined; they are selected by ID.
type ResumeTemplate struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Thumbnail      string `json:"thumbnail"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Layout         Layout `json:"layout"`
}

// Template identifiers. Part of the external surface; must remain stable.
const (
	IDModern       = "modern"
	IDProfessional = "professional"
	IDCreative     = "creative"
)

var builtin = []ResumeTemplate{
	{
		ID:             IDModern,
		Name:           "Modern",
		Thumbnail:      "/templates/modern.png",
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#f3f4f6",
		FontFamily:     "Inter, sans-serif",
		Layout:         LayoutModern,
	},
	{
		ID:             IDProfessional,
		Name:           "Professional",
		Thumbnail:      "/templates/professional.png",
		PrimaryColor:   "#4b5563",
		SecondaryColor: "#f9fafb",
		FontFamily:     "Roboto, sans-serif",
		Layout:         LayoutSingleColumn,
	},
	{
		ID:             IDCreative,
		Name:           "Creative",
		Thumbnail:      "/templates/creative.png",
		PrimaryColor:   "#8b5cf6",
		SecondaryColor: "#f5f3ff",
		FontFamily:     "Poppins, sans-serif",
		Layout:         LayoutTwoColumn,
	},
}

// Builtin returns a copy of the predefined template list, in display order.
func Builtin() []ResumeTemplate {
	out := make([]ResumeTemplate, len(builtin))
	copy(out, builtin)
	return out
}

// Default returns the template used when no selection has been made.
func Default() ResumeTemplate {
	return builtin[0]
}

// Lookup finds a template by ID among available. An unknown ID falls back to
// the first available template; Lookup never fails.
func Lookup(available []ResumeTemplate, id string) ResumeTemplate {
	for _, t := range available {
		if t.ID == id {
			return t
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return Default()
}
