package wizard

// StepInfo describes one step for rendering.
type StepInfo struct {
	Step      int    `json:"step"`
	Name      string `json:"name"`
	Current   bool   `json:"current"`
	Visited   bool   `json:"visited"`
	Completed bool   `json:"completed"`
}

// State is the read-only rendering view of a snapshot. It carries the option
// catalogs for the caller's role so the client never hardcodes option lists.
type State struct {
	CurrentStep int        `json:"current_step"`
	TotalSteps  int        `json:"total_steps"`
	Steps       []StepInfo `json:"steps"`
	CaseData    CaseData   `json:"case_data"`
	Warnings    []string   `json:"warnings"`
	IsComplete  bool       `json:"is_complete"`

	Options StateOptions `json:"options"`
}

// StateOptions is the role-resolved slice of the catalog.
type StateOptions struct {
	CaseTypes          []Option `json:"case_types"`
	Jurisdictions      []Option `json:"jurisdictions"`
	PartyTypes         []Option `json:"party_types"`
	PartyCategories    []Option `json:"party_categories"`
	DateTypes          []Option `json:"date_types"`
	Priorities         []Option `json:"priorities"`
	DocumentTypes      []Option `json:"document_types"`
	DocumentCategories []Option `json:"document_categories"`
}

// State builds the rendering view. It never mutates the snapshot.
func (c *Controller) State(snap *Snapshot, role Role) State {
	steps := make([]StepInfo, 0, TotalSteps)
	for step := StepBasicInfo; step <= TotalSteps; step++ {
		steps = append(steps, StepInfo{
			Step:      step,
			Name:      StepNames[step],
			Current:   step == snap.CurrentStep,
			Visited:   step <= snap.CurrentStep,
			Completed: c.ValidateStep(step, &snap.CaseData, role).Valid,
		})
	}

	return State{
		CurrentStep: snap.CurrentStep,
		TotalSteps:  TotalSteps,
		Steps:       steps,
		CaseData:    snap.CaseData,
		Warnings:    c.review.Warnings(&snap.CaseData, role),
		IsComplete:  c.review.IsComplete(&snap.CaseData, role),
		Options: StateOptions{
			CaseTypes:          c.catalog.CaseTypes[role],
			Jurisdictions:      c.catalog.Jurisdictions[role],
			PartyTypes:         c.catalog.PartyTypes[role],
			PartyCategories:    c.catalog.PartyCategories[role],
			DateTypes:          c.catalog.DateTypes[role],
			Priorities:         c.catalog.Priorities[role],
			DocumentTypes:      c.catalog.DocumentTypes[role],
			DocumentCategories: c.catalog.DocumentCategories[role],
		},
	}
}
