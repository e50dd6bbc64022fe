package wizard

import "unicode/utf8"

// DocumentUpload validates the staged document placeholders. The step itself
// is always optional; there is nothing to block on.
type DocumentUpload struct {
	catalog *Catalog
}

func NewDocumentUpload(catalog *Catalog) *DocumentUpload {
	return &DocumentUpload{catalog: catalog}
}

func (s *DocumentUpload) Validate(data *CaseData, role Role) StepResult {
	return okResult()
}

// ValidateDocument checks a single placeholder before it is merged.
func (s *DocumentUpload) ValidateDocument(d *DocumentPlaceholder, role Role) StepResult {
	res := okResult()

	if d.Id == "" {
		res.fail("id", "Document id is missing.")
	}

	if n := utf8.RuneCountInString(d.Title); n < 3 || n > 255 {
		res.fail("title", "Please enter a document title.")
	}

	if d.Type == "" {
		res.fail("type", "Please select a document type.")
	} else if !contains(s.catalog.DocumentTypes[role], d.Type) {
		res.fail("type", "Please select a valid document type.")
	}

	if d.Category == "" {
		res.fail("category", "Please select a document category.")
	} else if !contains(s.catalog.DocumentCategories[role], d.Category) {
		res.fail("category", "Please select a valid document category.")
	}

	if utf8.RuneCountInString(d.Description) > 500 {
		res.fail("description", "Description cannot exceed 500 characters.")
	}

	if d.ReceivedDate != "" && !isISODate(d.ReceivedDate) {
		res.fail("received_date", "Please enter a valid received date.")
	}

	if d.DueDate != "" {
		if !isISODate(d.DueDate) {
			res.fail("due_date", "Please enter a valid due date.")
		} else if !dateOnOrAfterToday(d.DueDate) {
			res.fail("due_date", "Due date must be today or later.")
		}
	}

	return res
}
