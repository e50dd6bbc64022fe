package wizard

import "unicode/utf8"

// Party roles that satisfy each side of the submission invariant. A case
// needs at least one initiating party and one responding party; the wizard
// accepts either litigation or petition terminology.
var (
	initiatingPartyTypes = map[string]bool{"plaintiff": true, "petitioner": true}
	respondingPartyTypes = map[string]bool{"defendant": true, "respondent": true}
)

// PartyManagement validates the staged party list. Advancing past step 2 only
// needs a non-empty list; the one-of-each-side invariant is checked at
// submission so users can stage parties in any order.
type PartyManagement struct {
	catalog *Catalog
}

func NewPartyManagement(catalog *Catalog) *PartyManagement {
	return &PartyManagement{catalog: catalog}
}

func (s *PartyManagement) Validate(data *CaseData, role Role) StepResult {
	res := okResult()
	if len(data.Parties) == 0 {
		res.fail("parties", "Please add at least one party to the case.")
	}
	return res
}

// ValidateParty checks a single party before it is merged into the list.
func (s *PartyManagement) ValidateParty(p *Party, role Role) StepResult {
	res := okResult()

	if p.Id == "" {
		res.fail("id", "Party id is missing.")
	}

	if p.Name == "" {
		res.fail("name", "Please provide the party's full name.")
	} else if utf8.RuneCountInString(p.Name) > 255 {
		res.fail("name", "The party name cannot exceed 255 characters.")
	}

	if p.Type == "" {
		res.fail("type", "Please select what type of party this is.")
	} else if !contains(s.catalog.PartyTypes[role], p.Type) {
		res.fail("type", "Please select a valid party type.")
	}

	if p.Category == "" {
		res.fail("category", "Please select whether this is an individual, organization, or government entity.")
	} else if !contains(s.catalog.PartyCategories[role], p.Category) {
		res.fail("category", "Please select a valid party category.")
	}

	if p.Email != "" {
		if utf8.RuneCountInString(p.Email) > 255 || !isValidEmail(p.Email) {
			res.fail("email", "Please enter a valid email address.")
		}
	}

	if utf8.RuneCountInString(p.Phone) > 20 {
		res.fail("phone", "Phone number cannot exceed 20 characters.")
	}

	if utf8.RuneCountInString(p.Address) > 500 {
		res.fail("address", "Address cannot exceed 500 characters.")
	}

	return res
}

// hasInitiatingParty reports whether at least one plaintiff or petitioner is
// staged.
func hasInitiatingParty(parties []Party) bool {
	for _, p := range parties {
		if initiatingPartyTypes[p.Type] {
			return true
		}
	}
	return false
}

// hasRespondingParty reports whether at least one defendant or respondent is
// staged.
func hasRespondingParty(parties []Party) bool {
	for _, p := range parties {
		if respondingPartyTypes[p.Type] {
			return true
		}
	}
	return false
}
