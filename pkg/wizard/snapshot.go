package wizard

import (
	"time"
)

// TotalSteps is the fixed number of wizard steps.
const TotalSteps = 5

// Step indices. Step 0 or 6 do not exist; navigation is clamped to [1, TotalSteps].
const (
	StepBasicInfo = 1
	StepParties   = 2
	StepKeyDates  = 3
	StepDocuments = 4
	StepReview    = 5
)

// StepNames maps step index to its display name.
var StepNames = map[int]string{
	StepBasicInfo: "Basic Information",
	StepParties:   "Party Management",
	StepKeyDates:  "Key Dates",
	StepDocuments: "Document Upload",
	StepReview:    "Review & Confirm",
}

// Role is the authenticated actor's user type. It parameterizes validation
// rules and option catalogs but is never stored inside a snapshot.
type Role string

const (
	RoleProSe             Role = "pro_se"
	RoleLegalProfessional Role = "legal_professional"
)

// ParseRole normalizes a raw user_type claim; anything unknown falls back to
// the most restrictive-option, least-strict-validation role.
func ParseRole(s string) Role {
	if s == string(RoleLegalProfessional) {
		return RoleLegalProfessional
	}
	return RoleProSe
}

// Party is a person or organization attached to the in-progress case.
// Id is opaque and client-generated; add/remove are idempotent by Id.
type Party struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// KeyDate is an important date staged for the case. Date is an ISO date
// (YYYY-MM-DD) and must be >= today at add time only; a date that goes stale
// while sitting in the wizard is not re-rejected.
type KeyDate struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Description string `json:"description,omitempty"`
}

// DocumentPlaceholder represents intent to attach a document later. It never
// carries file bytes.
type DocumentPlaceholder struct {
	Id           string `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
	ReceivedDate string `json:"received_date,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	Status       string `json:"status"`
}

// DocumentStatusPlaceholder is the only status a wizard document can have.
const DocumentStatusPlaceholder = "placeholder"

// CaseData is the accumulated in-progress case, merged from every step.
type CaseData struct {
	Name         string                `json:"name"`
	CaseNumber   string                `json:"case_number"`
	Type         string                `json:"type"`
	Jurisdiction string                `json:"jurisdiction"`
	Venue        string                `json:"venue"`
	Description  string                `json:"description"`
	Parties      []Party               `json:"parties"`
	KeyDates     []KeyDate             `json:"key_dates"`
	Documents    []DocumentPlaceholder `json:"documents"`
}

// Snapshot is the full persisted wizard state for one user session. Every
// mutating operation takes a snapshot in and returns a new snapshot out; the
// caller owns the read/write against the store. Nothing here assumes
// in-memory continuity between requests.
type Snapshot struct {
	CurrentStep int       `json:"current_step"`
	CaseData    CaseData  `json:"case_data"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSnapshot returns a fresh wizard state positioned at step 1 with empty
// defaults.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		CurrentStep: StepBasicInfo,
		CaseData: CaseData{
			Parties:   []Party{},
			KeyDates:  []KeyDate{},
			Documents: []DocumentPlaceholder{},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// Normalize repairs a snapshot rehydrated from storage: clamps the step
// pointer and replaces nil slices so JSON round-trips stay identical.
func (s *Snapshot) Normalize() {
	if s.CurrentStep < StepBasicInfo || s.CurrentStep > TotalSteps {
		s.CurrentStep = StepBasicInfo
	}
	if s.CaseData.Parties == nil {
		s.CaseData.Parties = []Party{}
	}
	if s.CaseData.KeyDates == nil {
		s.CaseData.KeyDates = []KeyDate{}
	}
	if s.CaseData.Documents == nil {
		s.CaseData.Documents = []DocumentPlaceholder{}
	}
}

// Clone returns a deep copy. Controller operations mutate only the copy, so
// a caller's snapshot stays untouched when an operation fails.
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	out.CaseData.Parties = append([]Party{}, s.CaseData.Parties...)
	out.CaseData.KeyDates = append([]KeyDate{}, s.CaseData.KeyDates...)
	out.CaseData.Documents = append([]DocumentPlaceholder{}, s.CaseData.Documents...)
	return &out
}

func (s *Snapshot) touch() {
	s.UpdatedAt = time.Now().UTC()
}
