package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// documentView is the data structure passed to the HTML templates. Dates
// and skill levels are pre-formatted so the templates stay declarative.
type documentView struct {
	PrimaryColor   string
	SecondaryColor string
	FontFamily     string

	FullName string
	Title    string
	Email    string
	Phone    string
	Address  string
	Summary  string

	Work           []workView
	Education      []educationView
	Skills         []skillView
	Certifications []certificationView
	SocialLinks    []types.SocialLink
}

type workView struct {
	Company     string
	Position    string
	Location    string
	DateRange   string
	Description string
}

type educationView struct {
	Institution string
	Degree      string
	Field       string
	Location    string
	DateRange   string
	Description string
}

type skillView struct {
	Name  string
	Level string
}

type certificationView struct {
	Name   string
	Issuer string
	Date   string
	URL    string
}

// Per-variant default color pairs, used when no template descriptor is
// supplied to RenderHTML.
var variantDefaults = map[templates.Layout]struct{ primary, secondary, font string }{
	templates.LayoutModern:       {"#3b82f6", "#f3f4f6", "Inter, sans-serif"},
	templates.LayoutSingleColumn: {"#4b5563", "#f9fafb", "Roboto, sans-serif"},
	templates.LayoutTwoColumn:    {"#8b5cf6", "#f5f3ff", "Poppins, sans-serif"},
}

var (
	modernTmpl       = template.Must(template.New("modern").Parse(modernHTML))
	professionalTmpl = template.Must(template.New("professional").Parse(professionalHTML))
	creativeTmpl     = template.Must(template.New("creative").Parse(creativeHTML))
)

// RenderHTML renders resume data through the given template descriptor.
// Pure and deterministic. A nil descriptor renders the modern variant with
// its built-in default colors; rendering never fails for valid templates.
func RenderHTML(data types.ResumeData, tmpl *templates.ResumeTemplate) (string, error) {
	layout := templates.LayoutModern
	defaults := variantDefaults[layout]
	view := buildView(data, defaults.primary, defaults.secondary, defaults.font)

	if tmpl != nil {
		layout = tmpl.Layout
		if _, known := variantDefaults[layout]; !known {
			layout = templates.LayoutModern
		}
		defaults = variantDefaults[layout]
		primary, secondary, font := tmpl.PrimaryColor, tmpl.SecondaryColor, tmpl.FontFamily
		if primary == "" {
			primary = defaults.primary
		}
		if secondary == "" {
			secondary = defaults.secondary
		}
		if font == "" {
			font = defaults.font
		}
		view = buildView(data, primary, secondary, font)
	}

	var t *template.Template
	switch layout {
	case templates.LayoutSingleColumn:
		t = professionalTmpl
	case templates.LayoutTwoColumn:
		t = creativeTmpl
	default:
		t = modernTmpl
	}

	var out strings.Builder
	if err := t.Execute(&out, view); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return out.String(), nil
}

func buildView(data types.ResumeData, primary, secondary, font string) documentView {
	info := data.PersonalInfo
	view := documentView{
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		FontFamily:     font,
		FullName:       strings.TrimSpace(info.FirstName + " " + info.LastName),
		Title:          info.Title,
		Email:          info.Email,
		Phone:          info.Phone,
		Address:        info.Address,
		Summary:        info.Summary,
		SocialLinks:    data.SocialLinks,
	}

	for _, item := range data.WorkExperience {
		view.Work = append(view.Work, workView{
			Company:     item.Company,
			Position:    item.Position,
			Location:    item.Location,
			DateRange:   workDateRange(item),
			Description: item.Description,
		})
	}
	for _, item := range data.Education {
		view.Education = append(view.Education, educationView{
			Institution: item.Institution,
			Degree:      item.Degree,
			Field:       item.FieldOfStudy,
			Location:    item.Location,
			DateRange:   educationDateRange(item),
			Description: item.Description,
		})
	}
	for _, item := range data.Skills {
		view.Skills = append(view.Skills, skillView{
			Name:  item.Name,
			Level: skillLevel(item.Level),
		})
	}
	for _, item := range data.Certifications {
		view.Certifications = append(view.Certifications, certificationView{
			Name:   item.Name,
			Issuer: item.Issuer,
			Date:   FormatDate(item.Date),
			URL:    item.URL,
		})
	}
	return view
}

// skillLevel renders a 1-5 proficiency as filled/empty dots. Out-of-range
// levels are clamped.
func skillLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("●", level) + strings.Repeat("○", 5-level)
}
