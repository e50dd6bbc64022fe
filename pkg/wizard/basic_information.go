package wizard

import "unicode/utf8"

// BasicInfoInput carries the step-1 fields submitted by the client.
type BasicInfoInput struct {
	Name         string `json:"name"`
	CaseNumber   string `json:"case_number"`
	Type         string `json:"type"`
	Jurisdiction string `json:"jurisdiction"`
	Venue        string `json:"venue"`
	Description  string `json:"description"`
}

// BasicInformation validates the case identity fields. Case number is
// required for legal professionals only; option fields must come from the
// role's catalog.
type BasicInformation struct {
	catalog *Catalog
}

func NewBasicInformation(catalog *Catalog) *BasicInformation {
	return &BasicInformation{catalog: catalog}
}

func (s *BasicInformation) Validate(data *CaseData, role Role) StepResult {
	res := okResult()

	if n := utf8.RuneCountInString(data.Name); n < 3 || n > 255 {
		res.fail("name", "Please enter a case name between 3 and 255 characters.")
	}

	if data.Type == "" {
		res.fail("type", "Please select a case type.")
	} else if !contains(s.catalog.CaseTypes[role], data.Type) {
		res.fail("type", "Please select a valid case type.")
	}

	if data.Jurisdiction == "" {
		res.fail("jurisdiction", "Please select a jurisdiction.")
	} else if !contains(s.catalog.Jurisdictions[role], data.Jurisdiction) {
		res.fail("jurisdiction", "Please select a valid jurisdiction.")
	}

	if data.Venue == "" {
		res.fail("venue", "Please enter the venue/court.")
	}

	if n := utf8.RuneCountInString(data.Description); n < 10 || n > 1000 {
		res.fail("description", "Please provide a case description between 10 and 1000 characters.")
	}

	switch {
	case role == RoleLegalProfessional && data.CaseNumber == "":
		res.fail("case_number", "Case number is required for legal professionals.")
	case utf8.RuneCountInString(data.CaseNumber) > 100:
		res.fail("case_number", "Case number cannot exceed 100 characters.")
	}

	return res
}
