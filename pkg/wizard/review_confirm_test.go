package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewBlockingWarnings(t *testing.T) {
	s := NewReviewConfirm(DefaultCatalog)

	tests := []struct {
		name   string
		mutate func(d *CaseData)
		role   Role
		want   string
	}{
		{
			name:   "complete pro se case has no blockers",
			mutate: func(d *CaseData) {},
			role:   RoleProSe,
		},
		{
			name:   "missing name",
			mutate: func(d *CaseData) { d.Name = "" },
			role:   RoleProSe,
			want:   "Case name is required",
		},
		{
			name:   "professional without case number",
			mutate: func(d *CaseData) { d.CaseNumber = "" },
			role:   RoleLegalProfessional,
			want:   "Case number is required for legal professionals",
		},
		{
			name:   "missing description",
			mutate: func(d *CaseData) { d.Description = "" },
			role:   RoleProSe,
			want:   "Case description is required",
		},
		{
			name: "no initiating party",
			mutate: func(d *CaseData) {
				d.Parties = []Party{{Id: "p1", Type: "defendant"}}
			},
			role: RoleProSe,
			want: "At least one plaintiff or petitioner is required",
		},
		{
			name: "no responding party",
			mutate: func(d *CaseData) {
				d.Parties = []Party{{Id: "p1", Type: "petitioner"}}
			},
			role: RoleProSe,
			want: "At least one defendant or respondent is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := completeProSeData()
			data.CaseNumber = "2026-CV-00187"
			tt.mutate(&data)

			res := s.Validate(&data, tt.role)

			if tt.want == "" {
				assert.True(t, res.Valid, "errors: %v", res.Errors)
				return
			}
			assert.False(t, res.Valid)
			assert.Contains(t, res.Warnings, tt.want)
		})
	}
}

func TestReviewValidateSurfacesFirstBlocker(t *testing.T) {
	s := NewReviewConfirm(DefaultCatalog)

	res := s.Validate(&CaseData{}, RoleProSe)
	assert.False(t, res.Valid)
	assert.Equal(t, "Case name is required", res.Errors["review"])
}

func TestReviewWarningsIncludeDateAdvisory(t *testing.T) {
	s := NewReviewConfirm(DefaultCatalog)

	data := completeProSeData()
	warnings := s.Warnings(&data, RoleProSe)
	assert.Equal(t, []string{"Consider adding important dates for your case"}, warnings)

	data.KeyDates = []KeyDate{{Id: "d1", Title: "Hearing", Date: futureDate(10), Type: "hearing_date", Priority: "high"}}
	assert.Empty(t, s.Warnings(&data, RoleProSe))
}

func TestReviewIsComplete(t *testing.T) {
	s := NewReviewConfirm(DefaultCatalog)

	data := completeProSeData()
	assert.True(t, s.IsComplete(&data, RoleProSe))

	// Pro-se data is still incomplete for a professional until a case
	// number is supplied.
	assert.False(t, s.IsComplete(&data, RoleLegalProfessional))
	data.CaseNumber = "2026-CV-00187"
	assert.True(t, s.IsComplete(&data, RoleLegalProfessional))
}
