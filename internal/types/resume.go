// Package types provides type definitions for the structured resume data used throughout the resume-builder system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Section identifies one of the resume sub-forms shown in the editor.
type Section string

// The six editor sections. These identifiers are part of the external
// surface (API paths, persisted state) and must remain stable.
const (
	SectionPersonalInfo   Section = "personalInfo"
	SectionWorkExperience Section = "workExperience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionSocialLinks    Section = "socialLinks"
)

// Sections lists every valid section in display order.
func Sections() []Section {
	return []Section{
		SectionPersonalInfo,
		SectionWorkExperience,
		SectionEducation,
		SectionSkills,
		SectionCertifications,
		SectionSocialLinks,
	}
}

// Valid reports whether s is one of the six known sections.
func (s Section) Valid() bool {
	switch s {
	case SectionPersonalInfo, SectionWorkExperience, SectionEducation,
		SectionSkills, SectionCertifications, SectionSocialLinks:
		return true
	}
	return false
}

// PersonalInfo is the singleton contact/header record of a resume.
// Email syntax is checked only at submission boundaries, never by the store.
type PersonalInfo struct {
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Title     string `json:"title,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// WorkExperience is a single employment entry. ID is store-generated.
type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company" validate:"required,min=1"`
	Position    string `json:"position" validate:"required,min=1"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate" validate:"required,min=1"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry. ID is store-generated.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution" validate:"required,min=1"`
	Degree       string `json:"degree" validate:"required,min=1"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"startDate" validate:"required,min=1"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// Skill is a named skill with a 1-5 proficiency level.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required,min=1"`
	Level int    `json:"level" validate:"min=1,max=5"`
}

// Certification is a single certification entry. URL is optional.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required,min=1"`
	Issuer string `json:"issuer" validate:"required,min=1"`
	Date   string `json:"date" validate:"required,min=1"`
	URL    string `json:"url,omitempty" validate:"omitempty,url"`
}

// SocialLink is a single social/profile link.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform" validate:"required,min=1"`
	URL      string `json:"url" validate:"required,url"`
}

// ResumeData aggregates one PersonalInfo with the five ordered item lists.
// It is the unit of import/export and of persistence. List order is
// insertion order and is meaningful (display order).
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	SocialLinks    []SocialLink     `json:"socialLinks"`
}

// EmptyResumeData returns the all-empty default ResumeData with non-nil lists.
func EmptyResumeData() ResumeData {
	return ResumeData{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		SocialLinks:    []SocialLink{},
	}
}

// Clone returns a deep copy of the resume data.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.WorkExperience = append([]WorkExperience{}, d.WorkExperience...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]Skill{}, d.Skills...)
	out.Certifications = append([]Certification{}, d.Certifications...)
	out.SocialLinks = append([]SocialLink{}, d.SocialLinks...)
	return out
}

// Validate validates the PersonalInfo using the validator.
func (p *PersonalInfo) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the WorkExperience using the validator.
func (w *WorkExperience) Validate() error {
	validate := validator.New()
	return validate.Struct(w)
}

// Validate validates the Education using the validator.
func (e *Education) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}

// Validate validates the Skill using the validator.
func (s *Skill) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Validate validates the Certification using the validator.
func (c *Certification) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Validate validates the SocialLink using the validator.
func (s *SocialLink) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
