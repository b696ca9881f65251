package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
)

// AddItemResponse represents the response for POST /resume/{section}/items
type AddItemResponse struct {
	ID string `json:"id"`
}

// listSection parses the {section} path value, accepting only the five list
// sections (personal info has its own endpoint).
func listSection(r *http.Request) (types.Section, error) {
	section := types.Section(r.PathValue("section"))
	if !section.Valid() || section == types.SectionPersonalInfo {
		return "", &ErrUnknownSection{Section: r.PathValue("section")}
	}
	return section, nil
}

// hasItem reports whether the identified item exists in the given section.
func hasItem(data types.ResumeData, section types.Section, id string) bool {
	switch section {
	case types.SectionWorkExperience:
		for _, item := range data.WorkExperience {
			if item.ID == id {
				return true
			}
		}
	case types.SectionEducation:
		for _, item := range data.Education {
			if item.ID == id {
				return true
			}
		}
	case types.SectionSkills:
		for _, item := range data.Skills {
			if item.ID == id {
				return true
			}
		}
	case types.SectionCertifications:
		for _, item := range data.Certifications {
			if item.ID == id {
				return true
			}
		}
	case types.SectionSocialLinks:
		for _, item := range data.SocialLinks {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}

// handleAddItem appends a new item to a list section. The store generates
// the item identifier; the response carries it.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	section, err := listSection(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var id string
	switch section {
	case types.SectionWorkExperience:
		var item types.WorkExperience
		if !s.decodeAndValidate(w, r, &item, item.Validate) {
			return
		}
		id = s.store.AddWorkExperience(item)
	case types.SectionEducation:
		var item types.Education
		if !s.decodeAndValidate(w, r, &item, item.Validate) {
			return
		}
		id = s.store.AddEducation(item)
	case types.SectionSkills:
		var item types.Skill
		if !s.decodeAndValidate(w, r, &item, item.Validate) {
			return
		}
		id = s.store.AddSkill(item)
	case types.SectionCertifications:
		var item types.Certification
		if !s.decodeAndValidate(w, r, &item, item.Validate) {
			return
		}
		id = s.store.AddCertification(item)
	case types.SectionSocialLinks:
		var item types.SocialLink
		if !s.decodeAndValidate(w, r, &item, item.Validate) {
			return
		}
		id = s.store.AddSocialLink(item)
	}

	s.jsonResponse(w, http.StatusCreated, AddItemResponse{ID: id})
}

// decodeAndValidate decodes the request body into item and runs its
// validator, writing the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, item any, validate func() error) bool {
	if err := json.NewDecoder(r.Body).Decode(item); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

// handleUpdateItem merges a partial update into the identified item. The
// store treats an absent identifier as a no-op; the HTTP layer reports 404
// instead so API callers get explicit feedback.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	section, err := listSection(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	if !hasItem(s.store.ResumeData(), section, id) {
		err := &ErrItemNotFound{Section: string(section), ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	switch section {
	case types.SectionWorkExperience:
		var patch types.WorkExperiencePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		s.store.UpdateWorkExperience(id, patch)
	case types.SectionEducation:
		var patch types.EducationPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		s.store.UpdateEducation(id, patch)
	case types.SectionSkills:
		var patch types.SkillPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		s.store.UpdateSkill(id, patch)
	case types.SectionCertifications:
		var patch types.CertificationPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		s.store.UpdateCertification(id, patch)
	case types.SectionSocialLinks:
		var patch types.SocialLinkPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		s.store.UpdateSocialLink(id, patch)
	}

	s.jsonResponse(w, http.StatusOK, s.store.ResumeData())
}

// handleRemoveItem deletes the identified item. Like update, the HTTP layer
// reports 404 for an absent identifier while the store stays a no-op.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	section, err := listSection(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	if !hasItem(s.store.ResumeData(), section, id) {
		err := &ErrItemNotFound{Section: string(section), ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	switch section {
	case types.SectionWorkExperience:
		s.store.RemoveWorkExperience(id)
	case types.SectionEducation:
		s.store.RemoveEducation(id)
	case types.SectionSkills:
		s.store.RemoveSkill(id)
	case types.SectionCertifications:
		s.store.RemoveCertification(id)
	case types.SectionSocialLinks:
		s.store.RemoveSocialLink(id)
	}

	w.WriteHeader(http.StatusNoContent)
}
