package store

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// List mutators. Add operations generate the item identifier and append;
// update and remove operations on an absent identifier are silent no-ops.

// AddWorkExperience appends a work experience entry, generating its ID.
func (s *Store) AddWorkExperience(item types.WorkExperience) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.data.WorkExperience = append(s.data.WorkExperience, item)
	s.commit()
	return item.ID
}

// UpdateWorkExperience merges the patch into the matching entry.
func (s *Store) UpdateWorkExperience(id string, patch types.WorkExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.WorkExperience {
		if s.data.WorkExperience[i].ID == id {
			patch.Apply(&s.data.WorkExperience[i])
			break
		}
	}
	s.commit()
}

// RemoveWorkExperience deletes the matching entry if present.
func (s *Store) RemoveWorkExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.WorkExperience {
		if s.data.WorkExperience[i].ID == id {
			s.data.WorkExperience = append(s.data.WorkExperience[:i], s.data.WorkExperience[i+1:]...)
			break
		}
	}
	s.commit()
}

// AddEducation appends an education entry, generating its ID.
func (s *Store) AddEducation(item types.Education) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.data.Education = append(s.data.Education, item)
	s.commit()
	return item.ID
}

// UpdateEducation merges the patch into the matching entry.
func (s *Store) UpdateEducation(id string, patch types.EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Education {
		if s.data.Education[i].ID == id {
			patch.Apply(&s.data.Education[i])
			break
		}
	}
	s.commit()
}

// RemoveEducation deletes the matching entry if present.
func (s *Store) RemoveEducation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Education {
		if s.data.Education[i].ID == id {
			s.data.Education = append(s.data.Education[:i], s.data.Education[i+1:]...)
			break
		}
	}
	s.commit()
}

// AddSkill appends a skill entry, generating its ID.
func (s *Store) AddSkill(item types.Skill) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.data.Skills = append(s.data.Skills, item)
	s.commit()
	return item.ID
}

// UpdateSkill merges the patch into the matching entry.
func (s *Store) UpdateSkill(id string, patch types.SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Skills {
		if s.data.Skills[i].ID == id {
			patch.Apply(&s.data.Skills[i])
			break
		}
	}
	s.commit()
}

// RemoveSkill deletes the matching entry if present.
func (s *Store) RemoveSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Skills {
		if s.data.Skills[i].ID == id {
			s.data.Skills = append(s.data.Skills[:i], s.data.Skills[i+1:]...)
			break
		}
	}
	s.commit()
}

// AddCertification appends a certification entry, generating its ID.
func (s *Store) AddCertification(item types.Certification) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.data.Certifications = append(s.data.Certifications, item)
	s.commit()
	return item.ID
}

// UpdateCertification merges the patch into the matching entry.
func (s *Store) UpdateCertification(id string, patch types.CertificationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Certifications {
		if s.data.Certifications[i].ID == id {
			patch.Apply(&s.data.Certifications[i])
			break
		}
	}
	s.commit()
}

// RemoveCertification deletes the matching entry if present.
func (s *Store) RemoveCertification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Certifications {
		if s.data.Certifications[i].ID == id {
			s.data.Certifications = append(s.data.Certifications[:i], s.data.Certifications[i+1:]...)
			break
		}
	}
	s.commit()
}

// AddSocialLink appends a social link entry, generating its ID.
func (s *Store) AddSocialLink(item types.SocialLink) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.data.SocialLinks = append(s.data.SocialLinks, item)
	s.commit()
	return item.ID
}

// UpdateSocialLink merges the patch into the matching entry.
func (s *Store) UpdateSocialLink(id string, patch types.SocialLinkPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.SocialLinks {
		if s.data.SocialLinks[i].ID == id {
			patch.Apply(&s.data.SocialLinks[i])
			break
		}
	}
	s.commit()
}

// RemoveSocialLink deletes the matching entry if present.
func (s *Store) RemoveSocialLink(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.SocialLinks {
		if s.data.SocialLinks[i].ID == id {
			s.data.SocialLinks = append(s.data.SocialLinks[:i], s.data.SocialLinks[i+1:]...)
			break
		}
	}
	s.commit()
}
