package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[ -]?)?\(?\d{3}\)?[ -]?\d{3}[ -]?\d{4}`)
)

// ExtractResumeData derives a partial resume data structure from raw
// document text. The first non-blank line is assumed to be the candidate's
// name (first token and last token; middle tokens dropped), and the whole
// text is scanned for the first email and phone matches. Everything else is
// left empty. Best effort: never fails, may produce empty or wrong fields
// when the document does not open with a name line.
func ExtractResumeData(text string) types.ResumeData {
	data := types.EmptyResumeData()

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return data
	}

	nameParts := strings.Fields(lines[0])
	if len(nameParts) >= 2 {
		data.PersonalInfo.FirstName = nameParts[0]
		data.PersonalInfo.LastName = nameParts[len(nameParts)-1]
	}

	if email := emailPattern.FindString(text); email != "" {
		data.PersonalInfo.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		data.PersonalInfo.Phone = phone
	}

	return data
}
