// ABOUTME: Tests for the wire-format conversions
// ABOUTME: Field values must survive the naming bridge unchanged in both directions
package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davi-web/cms-dashboard/models"
)

func TestContactWireRoundTrip(t *testing.T) {
	in := models.Contact{
		ID:          "c1",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@acme.com",
		Phone:       "555-0100",
		Company:     "Acme",
		Position:    "Engineer",
		Tags:        []string{"vip", "analytics"},
		Notes:       "met at conference",
		Status:      models.ContactStatusActive,
		CreatedAt:   "2026-01-01T00:00:00Z",
		LastContact: "2026-02-01T00:00:00Z",
		Address: &models.Address{
			Street: "1 Main St", City: "London", Country: "UK",
		},
		Birthday:         "1815-12-10",
		Website:          "https://ada.example",
		LinkedIn:         "in/ada",
		LeadSource:       "referral",
		PreferredContact: models.PreferredEmail,
		Activities: []models.Activity{
			{ID: "a1", Type: models.ActivityCall, Description: "intro call", Date: "2026-02-01", CreatedAt: "2026-02-01T10:00:00Z"},
		},
	}

	out := contactFromWire(contactToWire(in))
	assert.Equal(t, in, out)
}

func TestContactWireUsesSnakeCase(t *testing.T) {
	w := contactToWire(models.Contact{
		ID:          "c1",
		FirstName:   "Ada",
		LastContact: "2026-02-01T00:00:00Z",
		LeadSource:  "referral",
	})

	raw, err := json.Marshal(w)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"first_name"`)
	assert.Contains(t, body, `"last_contact"`)
	assert.Contains(t, body, `"lead_source"`)
	assert.False(t, strings.Contains(body, `"firstName"`), "camelCase leaked onto the wire: %s", body)
}

func TestContactFromWireNormalizes(t *testing.T) {
	out := contactFromWire(contactWire{ID: "c1", FirstName: "Ada"})

	assert.NotNil(t, out.Activities)
	assert.NotNil(t, out.Tags)
	assert.Equal(t, models.ContactStatusLead, out.Status)
}

func TestCompanyWireRoundTrip(t *testing.T) {
	in := models.Company{
		ID: "co1", Name: "Acme", Industry: "Manufacturing",
		Website: "https://acme.example", Phone: "555-0111", Email: "hello@acme.example",
		Address: "2 Factory Rd", City: "Springfield", Country: "US",
		Size: models.SizeMedium, Status: models.CompanyStatusActive,
		Notes: "key account", CreatedAt: "2026-01-01T00:00:00Z",
	}

	out := companyFromWire(companyToWire(in))
	assert.Equal(t, in, out)
}

func TestTaskWireRoundTrip(t *testing.T) {
	in := models.Task{
		ID: "t1", Title: "Follow up", Description: "discuss proposal",
		Type: models.TaskTypeCall, Priority: models.PriorityHigh,
		Status: models.TaskStatusCompleted, ContactID: "c1",
		ContactName: "Ada Lovelace", CompanyName: "Acme",
		DueDate: "2026-03-01", Completed: true,
		CreatedAt: "2026-01-01T00:00:00Z", CompletedAt: "2026-02-15T00:00:00Z",
	}

	out := taskFromWire(taskToWire(in))
	assert.Equal(t, in, out)
}

func TestTaskWireUsesSnakeCase(t *testing.T) {
	raw, err := json.Marshal(taskToWire(models.Task{
		ID: "t1", ContactID: "c1", ContactName: "Ada", DueDate: "2026-03-01",
	}))
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"contact_id"`)
	assert.Contains(t, body, `"contact_name"`)
	assert.Contains(t, body, `"due_date"`)
}
