package types

// Partial update types. A nil field means "keep the existing value"; only
// non-nil fields are merged. These are the bodies of the PATCH endpoints and
// the arguments of the store's update operations.

// PersonalInfoPatch is a partial update of PersonalInfo.
type PersonalInfoPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	Title     *string `json:"title,omitempty"`
	Summary   *string `json:"summary,omitempty"`
}

// Apply merges the patch into info.
func (p PersonalInfoPatch) Apply(info *PersonalInfo) {
	if p.FirstName != nil {
		info.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		info.LastName = *p.LastName
	}
	if p.Email != nil {
		info.Email = *p.Email
	}
	if p.Phone != nil {
		info.Phone = *p.Phone
	}
	if p.Address != nil {
		info.Address = *p.Address
	}
	if p.Title != nil {
		info.Title = *p.Title
	}
	if p.Summary != nil {
		info.Summary = *p.Summary
	}
}

// WorkExperiencePatch is a partial update of a WorkExperience item.
type WorkExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply merges the patch into item.
func (p WorkExperiencePatch) Apply(item *WorkExperience) {
	if p.Company != nil {
		item.Company = *p.Company
	}
	if p.Position != nil {
		item.Position = *p.Position
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.StartDate != nil {
		item.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		item.EndDate = *p.EndDate
	}
	if p.Current != nil {
		item.Current = *p.Current
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
}

// EducationPatch is a partial update of an Education item.
type EducationPatch struct {
	Institution  *string `json:"institution,omitempty"`
	Degree       *string `json:"degree,omitempty"`
	FieldOfStudy *string `json:"fieldOfStudy,omitempty"`
	Location     *string `json:"location,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	Current      *bool   `json:"current,omitempty"`
	Description  *string `json:"description,omitempty"`
}

// Apply merges the patch into item.
func (p EducationPatch) Apply(item *Education) {
	if p.Institution != nil {
		item.Institution = *p.Institution
	}
	if p.Degree != nil {
		item.Degree = *p.Degree
	}
	if p.FieldOfStudy != nil {
		item.FieldOfStudy = *p.FieldOfStudy
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.StartDate != nil {
		item.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		item.EndDate = *p.EndDate
	}
	if p.Current != nil {
		item.Current = *p.Current
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
}

// SkillPatch is a partial update of a Skill item.
type SkillPatch struct {
	Name  *string `json:"name,omitempty"`
	Level *int    `json:"level,omitempty"`
}

// Apply merges the patch into item.
func (p SkillPatch) Apply(item *Skill) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Level != nil {
		item.Level = *p.Level
	}
}

// CertificationPatch is a partial update of a Certification item.
type CertificationPatch struct {
	Name   *string `json:"name,omitempty"`
	Issuer *string `json:"issuer,omitempty"`
	Date   *string `json:"date,omitempty"`
	URL    *string `json:"url,omitempty"`
}

// Apply merges the patch into item.
func (p CertificationPatch) Apply(item *Certification) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Issuer != nil {
		item.Issuer = *p.Issuer
	}
	if p.Date != nil {
		item.Date = *p.Date
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
}

// SocialLinkPatch is a partial update of a SocialLink item.
type SocialLinkPatch struct {
	Platform *string `json:"platform,omitempty"`
	URL      *string `json:"url,omitempty"`
}

// Apply merges the patch into item.
func (p SocialLinkPatch) Apply(item *SocialLink) {
	if p.Platform != nil {
		item.Platform = *p.Platform
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
}
