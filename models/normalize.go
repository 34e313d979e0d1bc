// ABOUTME: Read-path normalization for records loaded from storage
// ABOUTME: Supplies defaults for missing fields and filters out corrupt entries
package models

// NormalizeContact fills defaults on a contact read from storage. Older
// records predate the activities field, so it must never come back nil.
func NormalizeContact(c Contact) Contact {
	if c.Activities == nil {
		c.Activities = []Activity{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Status == "" {
		c.Status = ContactStatusLead
	}
	return c
}

// NormalizeContacts normalizes a list and drops entries with no id. A corrupt
// entry is skipped rather than failing the whole list.
func NormalizeContacts(in []Contact) []Contact {
	out := make([]Contact, 0, len(in))
	for _, c := range in {
		if c.ID == "" {
			continue
		}
		out = append(out, NormalizeContact(c))
	}
	return out
}

// NormalizeCompanies drops company entries with no id.
func NormalizeCompanies(in []Company) []Company {
	out := make([]Company, 0, len(in))
	for _, c := range in {
		if c.ID == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// NormalizeTask reconciles the completion fields on a task read from storage.
func NormalizeTask(t Task) Task {
	if t.Completed && t.Status != TaskStatusCompleted {
		t.Status = TaskStatusCompleted
	}
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return t
}

// NormalizeTasks normalizes a list and drops entries with no id.
func NormalizeTasks(in []Task) []Task {
	out := make([]Task, 0, len(in))
	for _, t := range in {
		if t.ID == "" {
			continue
		}
		out = append(out, NormalizeTask(t))
	}
	return out
}
