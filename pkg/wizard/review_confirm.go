package wizard

// ReviewConfirm is a pure aggregation over the other four steps. It computes
// the submit-readiness warning list; it owns no data of its own.
type ReviewConfirm struct {
	catalog *Catalog
}

func NewReviewConfirm(catalog *Catalog) *ReviewConfirm {
	return &ReviewConfirm{catalog: catalog}
}

// Validate succeeds exactly when no blocking warnings remain, so a user who
// jumped straight to step 5 still cannot submit incomplete data.
func (s *ReviewConfirm) Validate(data *CaseData, role Role) StepResult {
	res := okResult()
	warnings := s.blockingWarnings(data, role)
	if len(warnings) > 0 {
		res.Valid = false
		res.Errors["review"] = warnings[0]
		res.Warnings = warnings
	}
	return res
}

// Warnings returns every outstanding completeness warning, blocking ones
// first, then advisory ones.
func (s *ReviewConfirm) Warnings(data *CaseData, role Role) []string {
	warnings := s.blockingWarnings(data, role)
	if len(data.KeyDates) == 0 {
		warnings = append(warnings, "Consider adding important dates for your case")
	}
	return warnings
}

// IsComplete reports whether the case can be submitted as-is.
func (s *ReviewConfirm) IsComplete(data *CaseData, role Role) bool {
	return len(s.blockingWarnings(data, role)) == 0
}

func (s *ReviewConfirm) blockingWarnings(data *CaseData, role Role) []string {
	var warnings []string

	if data.Name == "" {
		warnings = append(warnings, "Case name is required")
	}
	if role == RoleLegalProfessional && data.CaseNumber == "" {
		warnings = append(warnings, "Case number is required for legal professionals")
	}
	if data.Type == "" {
		warnings = append(warnings, "Case type is required")
	}
	if data.Jurisdiction == "" {
		warnings = append(warnings, "Jurisdiction is required")
	}
	if data.Venue == "" {
		warnings = append(warnings, "Venue is required")
	}
	if data.Description == "" {
		warnings = append(warnings, "Case description is required")
	}
	if !hasInitiatingParty(data.Parties) {
		warnings = append(warnings, "At least one plaintiff or petitioner is required")
	}
	if !hasRespondingParty(data.Parties) {
		warnings = append(warnings, "At least one defendant or respondent is required")
	}

	return warnings
}
