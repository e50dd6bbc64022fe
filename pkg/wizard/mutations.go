package wizard

// Merge points. Step components report their slice of data here and the
// controller folds it into the aggregate snapshot; there is no hidden event
// dispatch between components. Each method is snapshot-in, snapshot-out.

// UpdateBasicInfo merges the step-1 fields. Merging never validates; the
// fields are checked when the user advances past step 1 and again at submit.
func (c *Controller) UpdateBasicInfo(snap *Snapshot, in BasicInfoInput) *Snapshot {
	out := snap.Clone()
	out.CaseData.Name = in.Name
	out.CaseData.CaseNumber = in.CaseNumber
	out.CaseData.Type = in.Type
	out.CaseData.Jurisdiction = in.Jurisdiction
	out.CaseData.Venue = in.Venue
	out.CaseData.Description = in.Description
	out.touch()
	return out
}

// AddParty validates and merges one party. Adding the same id again replaces
// the earlier entry, which makes client retries idempotent.
func (c *Controller) AddParty(snap *Snapshot, p Party, role Role) (*Snapshot, StepResult) {
	res := c.parties.ValidateParty(&p, role)
	if !res.Valid {
		return snap, res
	}
	out := snap.Clone()
	out.CaseData.Parties = upsertParty(out.CaseData.Parties, p)
	out.touch()
	return out, res
}

// RemoveParty deletes by id. Removing an id that is not present is a no-op.
func (c *Controller) RemoveParty(snap *Snapshot, id string) *Snapshot {
	out := snap.Clone()
	kept := out.CaseData.Parties[:0]
	for _, p := range out.CaseData.Parties {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	out.CaseData.Parties = kept
	out.touch()
	return out
}

// AddKeyDate validates and merges one key date, then re-sorts the list by
// priority rank and date.
func (c *Controller) AddKeyDate(snap *Snapshot, d KeyDate, role Role) (*Snapshot, StepResult) {
	res := c.keyDates.ValidateKeyDate(&d, role)
	if !res.Valid {
		return snap, res
	}
	out := snap.Clone()
	out.CaseData.KeyDates = upsertKeyDate(out.CaseData.KeyDates, d)
	sortKeyDates(out.CaseData.KeyDates)
	out.touch()
	return out, res
}

// RemoveKeyDate deletes by id; the remaining list keeps its sorted order.
func (c *Controller) RemoveKeyDate(snap *Snapshot, id string) *Snapshot {
	out := snap.Clone()
	kept := out.CaseData.KeyDates[:0]
	for _, d := range out.CaseData.KeyDates {
		if d.Id != id {
			kept = append(kept, d)
		}
	}
	out.CaseData.KeyDates = kept
	out.touch()
	return out
}

// AddDocument validates and merges one document placeholder. Status is forced
// to placeholder regardless of client input.
func (c *Controller) AddDocument(snap *Snapshot, d DocumentPlaceholder, role Role) (*Snapshot, StepResult) {
	d.Status = DocumentStatusPlaceholder
	res := c.documents.ValidateDocument(&d, role)
	if !res.Valid {
		return snap, res
	}
	out := snap.Clone()
	out.CaseData.Documents = upsertDocument(out.CaseData.Documents, d)
	out.touch()
	return out, res
}

// RemoveDocument deletes by id.
func (c *Controller) RemoveDocument(snap *Snapshot, id string) *Snapshot {
	out := snap.Clone()
	kept := out.CaseData.Documents[:0]
	for _, d := range out.CaseData.Documents {
		if d.Id != id {
			kept = append(kept, d)
		}
	}
	out.CaseData.Documents = kept
	out.touch()
	return out
}

func upsertParty(list []Party, p Party) []Party {
	for i := range list {
		if list[i].Id == p.Id {
			list[i] = p
			return list
		}
	}
	return append(list, p)
}

func upsertKeyDate(list []KeyDate, d KeyDate) []KeyDate {
	for i := range list {
		if list[i].Id == d.Id {
			list[i] = d
			return list
		}
	}
	return append(list, d)
}

func upsertDocument(list []DocumentPlaceholder, d DocumentPlaceholder) []DocumentPlaceholder {
	for i := range list {
		if list[i].Id == d.Id {
			list[i] = d
			return list
		}
	}
	return append(list, d)
}
