package wizard

import (
	"sort"
	"unicode/utf8"
)

// KeyDates validates the staged date list. Dates are never required; an empty
// list only produces an advisory warning for pro-se users.
type KeyDates struct {
	catalog *Catalog
}

func NewKeyDates(catalog *Catalog) *KeyDates {
	return &KeyDates{catalog: catalog}
}

func (s *KeyDates) Validate(data *CaseData, role Role) StepResult {
	res := okResult()
	if len(data.KeyDates) == 0 && role != RoleLegalProfessional {
		res.Warnings = append(res.Warnings, "Consider adding at least one important date to help you stay organized.")
	}
	return res
}

// ValidateKeyDate checks a single date before it is merged. The >= today rule
// applies at add time only; staged dates are not re-checked later.
func (s *KeyDates) ValidateKeyDate(d *KeyDate, role Role) StepResult {
	res := okResult()

	if d.Id == "" {
		res.fail("id", "Date id is missing.")
	}

	if n := utf8.RuneCountInString(d.Title); n < 3 || n > 255 {
		res.fail("title", "Please enter a title for this date.")
	}

	if d.Date == "" || !isISODate(d.Date) {
		res.fail("date", "Please enter a valid date.")
	} else if !dateOnOrAfterToday(d.Date) {
		res.fail("date", "Please enter a valid future date.")
	}

	if d.Time != "" && !isClockTime(d.Time) {
		res.fail("time", "Please enter time in HH:MM format.")
	}

	if d.Type == "" {
		res.fail("type", "Please select a date type.")
	} else if !contains(s.catalog.DateTypes[role], d.Type) {
		res.fail("type", "Please select a valid date type.")
	}

	if d.Priority == "" {
		res.fail("priority", "Please select a priority level.")
	} else if _, ok := priorityRank[d.Priority]; !ok {
		res.fail("priority", "Please select a valid priority level.")
	}

	if utf8.RuneCountInString(d.Description) > 500 {
		res.fail("description", "Description cannot exceed 500 characters.")
	}

	return res
}

// sortKeyDates keeps the list ordered by priority rank ascending (critical
// first), then date ascending within the same priority. ISO dates compare
// correctly as strings.
func sortKeyDates(dates []KeyDate) {
	sort.SliceStable(dates, func(i, j int) bool {
		ri, ok := priorityRank[dates[i].Priority]
		if !ok {
			ri = 5
		}
		rj, ok := priorityRank[dates[j].Priority]
		if !ok {
			rj = 5
		}
		if ri != rj {
			return ri < rj
		}
		return dates[i].Date < dates[j].Date
	})
}
