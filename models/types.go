// ABOUTME: Data models for CRM entities
// ABOUTME: Defines Contact, Activity, Company, and Task structs with their enums
package models

import "time"

// Contact status values.
const (
	ContactStatusActive   = "active"
	ContactStatusInactive = "inactive"
	ContactStatusLead     = "lead"
)

// Activity type values.
const (
	ActivityCall     = "call"
	ActivityEmail    = "email"
	ActivityMeeting  = "meeting"
	ActivityNote     = "note"
	ActivityTask     = "task"
	ActivityFollowUp = "follow-up"
)

// Preferred contact channel values.
const (
	PreferredEmail    = "email"
	PreferredPhone    = "phone"
	PreferredText     = "text"
	PreferredLinkedIn = "linkedin"
)

// Company size values.
const (
	SizeStartup    = "startup"
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeEnterprise = "enterprise"
)

// Company status values.
const (
	CompanyStatusProspect = "prospect"
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
	CompanyStatusPartner  = "partner"
)

// Task type values.
const (
	TaskTypeCall     = "call"
	TaskTypeEmail    = "email"
	TaskTypeMeeting  = "meeting"
	TaskTypeFollowUp = "follow-up"
	TaskTypeOther    = "other"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task status values.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Activity is a dated interaction logged on a contact. Activities are kept
// newest-first; index 0 is the latest.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

// Address is an optional postal address on a contact.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type Contact struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	LastContact string   `json:"lastContact"`

	// Enhanced fields
	Address          *Address   `json:"address,omitempty"`
	Birthday         string     `json:"birthday,omitempty"`
	Website          string     `json:"website,omitempty"`
	LinkedIn         string     `json:"linkedIn,omitempty"`
	Twitter          string     `json:"twitter,omitempty"`
	LeadSource       string     `json:"leadSource,omitempty"`
	PreferredContact string     `json:"preferredContact,omitempty"`
	Activities       []Activity `json:"activities"`
}

type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Website   string `json:"website"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Size      string `json:"size"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// Task optionally references a contact by id. ContactName and CompanyName are
// denormalized display copies captured when the task is saved; they are not
// kept in step with later contact renames.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	ContactID   string `json:"contactId,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// Timestamp formats a time the way records store their timestamps.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FullName returns the contact's display name.
func (c Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// MarkCompleted sets the completion fields together so they never disagree.
func (t *Task) MarkCompleted(now time.Time) {
	t.Completed = true
	t.Status = TaskStatusCompleted
	t.CompletedAt = Timestamp(now)
}

// Reopen clears the completion fields and returns the task to pending.
func (t *Task) Reopen() {
	t.Completed = false
	t.Status = TaskStatusPending
	t.CompletedAt = ""
}
