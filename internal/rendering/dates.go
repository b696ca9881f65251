package rendering

import (
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// presentLabel is the literal end-boundary label for ongoing entries.
const presentLabel = "Present"

// dateLayouts are the accepted input layouts, most specific first. Month
// inputs ("2006-01") are the common case from the editor forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"January 2006",
	"Jan 2006",
	"2006",
}

// FormatDate renders a date string as short month/year ("Jan 2006"). An
// empty input renders empty; an unparseable input is passed through as-is.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return date
}

// FormatDateRange renders "start – end". A set current flag renders the end
// boundary as "Present" regardless of the end date value.
func FormatDateRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := FormatDate(end)
	if current {
		to = presentLabel
	}
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	}
	return from + " – " + to
}

// workDateRange renders the date range of a work experience item.
func workDateRange(item types.WorkExperience) string {
	return FormatDateRange(item.StartDate, item.EndDate, item.Current)
}

// educationDateRange renders the date range of an education item.
func educationDateRange(item types.Education) string {
	return FormatDateRange(item.StartDate, item.EndDate, item.Current)
}
