// ABOUTME: Tests for read-path normalization
// ABOUTME: Missing fields get defaults, entries without ids get dropped
package models

import "testing"

func TestNormalizeContactDefaults(t *testing.T) {
	c := NormalizeContact(Contact{ID: "c1", FirstName: "Ada"})

	if c.Activities == nil {
		t.Error("expected Activities to be non-nil")
	}
	if len(c.Activities) != 0 {
		t.Errorf("expected empty Activities, got %d", len(c.Activities))
	}
	if c.Tags == nil {
		t.Error("expected Tags to be non-nil")
	}
	if c.Status != ContactStatusLead {
		t.Errorf("Status = %q, want %q", c.Status, ContactStatusLead)
	}
}

func TestNormalizeContactKeepsExisting(t *testing.T) {
	in := Contact{
		ID:         "c1",
		Status:     ContactStatusActive,
		Tags:       []string{"vip"},
		Activities: []Activity{{ID: "a1", Type: ActivityCall}},
	}
	out := NormalizeContact(in)

	if out.Status != ContactStatusActive {
		t.Errorf("Status = %q, want %q", out.Status, ContactStatusActive)
	}
	if len(out.Tags) != 1 || out.Tags[0] != "vip" {
		t.Errorf("Tags = %v", out.Tags)
	}
	if len(out.Activities) != 1 || out.Activities[0].ID != "a1" {
		t.Errorf("Activities = %v", out.Activities)
	}
}

func TestNormalizeContactsDropsMissingID(t *testing.T) {
	in := []Contact{
		{ID: "c1", FirstName: "Ada"},
		{FirstName: "no id"},
		{ID: "c2", FirstName: "Grace"},
	}
	out := NormalizeContacts(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(out))
	}
	if out[0].ID != "c1" || out[1].ID != "c2" {
		t.Errorf("unexpected order: %q, %q", out[0].ID, out[1].ID)
	}
}

func TestNormalizeCompaniesDropsMissingID(t *testing.T) {
	in := []Company{{ID: "co1", Name: "Acme"}, {Name: "no id"}}
	out := NormalizeCompanies(in)

	if len(out) != 1 || out[0].ID != "co1" {
		t.Errorf("unexpected companies: %v", out)
	}
}

func TestNormalizeTaskReconcilesCompletion(t *testing.T) {
	out := NormalizeTask(Task{ID: "t1", Completed: true, Status: TaskStatusPending})
	if out.Status != TaskStatusCompleted {
		t.Errorf("Status = %q, want %q", out.Status, TaskStatusCompleted)
	}

	out = NormalizeTask(Task{ID: "t2"})
	if out.Status != TaskStatusPending {
		t.Errorf("Status = %q, want %q", out.Status, TaskStatusPending)
	}
	if out.Priority != PriorityMedium {
		t.Errorf("Priority = %q, want %q", out.Priority, PriorityMedium)
	}
}

func TestNormalizeTasksDropsMissingID(t *testing.T) {
	in := []Task{{ID: "t1", Title: "call"}, {Title: "no id"}}
	out := NormalizeTasks(in)

	if len(out) != 1 || out[0].ID != "t1" {
		t.Errorf("unexpected tasks: %v", out)
	}
}
