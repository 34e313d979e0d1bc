// ABOUTME: Contact MCP tool handlers
// ABOUTME: Implements add_contact, find_contacts, update_contact, log_activity, and delete_contact tools
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
)

type ContactHandlers struct {
	sel *data.Selector
}

func NewContactHandlers(sel *data.Selector) *ContactHandlers {
	return &ContactHandlers{sel: sel}
}

type AddContactInput struct {
	FirstName string `json:"first_name" jsonschema:"Contact first name (required)"`
	LastName  string `json:"last_name,omitempty" jsonschema:"Contact last name"`
	Email     string `json:"email,omitempty" jsonschema:"Contact email address"`
	Phone     string `json:"phone,omitempty" jsonschema:"Contact phone number"`
	Company   string `json:"company,omitempty" jsonschema:"Company name"`
	Position  string `json:"position,omitempty" jsonschema:"Job title or position"`
	Status    string `json:"status,omitempty" jsonschema:"Status: active, inactive, or lead (default lead)"`
	Notes     string `json:"notes,omitempty" jsonschema:"Additional notes about the contact"`
	Tags      string `json:"tags,omitempty" jsonschema:"Comma-separated tags"`
}

func (h *ContactHandlers) AddContact(ctx context.Context, request *mcp.CallToolRequest, input AddContactInput) (*mcp.CallToolResult, models.Contact, error) {
	if input.FirstName == "" {
		return nil, models.Contact{}, fmt.Errorf("first_name is required")
	}

	contact := models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		Position:  input.Position,
		Status:    input.Status,
		Notes:     input.Notes,
	}
	if input.Tags != "" {
		for _, tag := range strings.Split(input.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				contact.Tags = append(contact.Tags, tag)
			}
		}
	}

	created, err := h.sel.Contacts().Create(ctx, contact)
	if err != nil {
		return nil, models.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return nil, created, nil
}

type FindContactsInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Search query (searches name, email, and company)"`
	Status string `json:"status,omitempty" jsonschema:"Filter by status: active, inactive, or lead"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindContactsOutput struct {
	Contacts []models.Contact `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(ctx context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	contacts, err := h.sel.Contacts().List(ctx)
	if err != nil {
		return nil, FindContactsOutput{}, fmt.Errorf("failed to find contacts: %w", err)
	}

	query := strings.ToLower(input.Query)
	result := make([]models.Contact, 0, limit)
	for _, c := range contacts {
		if input.Status != "" && c.Status != input.Status {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(c.FullName() + " " + c.Email + " " + c.Company)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		result = append(result, c)
		if len(result) >= limit {
			break
		}
	}

	return nil, FindContactsOutput{Contacts: result}, nil
}

type UpdateContactInput struct {
	ID        string `json:"id" jsonschema:"Contact ID (required)"`
	FirstName string `json:"first_name,omitempty" jsonschema:"Updated first name"`
	LastName  string `json:"last_name,omitempty" jsonschema:"Updated last name"`
	Email     string `json:"email,omitempty" jsonschema:"Updated email address"`
	Phone     string `json:"phone,omitempty" jsonschema:"Updated phone number"`
	Company   string `json:"company,omitempty" jsonschema:"Updated company name"`
	Position  string `json:"position,omitempty" jsonschema:"Updated position"`
	Status    string `json:"status,omitempty" jsonschema:"Updated pipeline status"`
	Notes     string `json:"notes,omitempty" jsonschema:"Updated notes"`
}

func (h *ContactHandlers) UpdateContact(ctx context.Context, request *mcp.CallToolRequest, input UpdateContactInput) (*mcp.CallToolResult, models.Contact, error) {
	if input.ID == "" {
		return nil, models.Contact{}, fmt.Errorf("id is required")
	}

	contact, err := h.getContact(ctx, input.ID)
	if err != nil {
		return nil, models.Contact{}, err
	}

	// Update fields if provided
	if input.FirstName != "" {
		contact.FirstName = input.FirstName
	}
	if input.LastName != "" {
		contact.LastName = input.LastName
	}
	if input.Email != "" {
		contact.Email = input.Email
	}
	if input.Phone != "" {
		contact.Phone = input.Phone
	}
	if input.Company != "" {
		contact.Company = input.Company
	}
	if input.Position != "" {
		contact.Position = input.Position
	}
	if input.Status != "" {
		contact.Status = input.Status
	}
	if input.Notes != "" {
		contact.Notes = input.Notes
	}

	updated, err := h.sel.Contacts().Update(ctx, input.ID, contact)
	if err != nil {
		return nil, models.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return nil, updated, nil
}

type LogActivityInput struct {
	ContactID   string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Type        string `json:"type,omitempty" jsonschema:"Activity type: call, email, meeting, or note (default note)"`
	Description string `json:"description" jsonschema:"What happened (required)"`
	Date        string `json:"date,omitempty" jsonschema:"Activity date, YYYY-MM-DD (defaults to today)"`
}

func (h *ContactHandlers) LogActivity(ctx context.Context, request *mcp.CallToolRequest, input LogActivityInput) (*mcp.CallToolResult, models.Contact, error) {
	if input.ContactID == "" {
		return nil, models.Contact{}, fmt.Errorf("contact_id is required")
	}
	if input.Description == "" {
		return nil, models.Contact{}, fmt.Errorf("description is required")
	}

	contact, err := h.getContact(ctx, input.ContactID)
	if err != nil {
		return nil, models.Contact{}, err
	}

	activityType := input.Type
	if activityType == "" {
		activityType = models.ActivityNote
	}
	now := time.Now()
	date := input.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	activity := models.Activity{
		ID:          uuid.NewString(),
		Type:        activityType,
		Description: input.Description,
		Date:        date,
		CreatedAt:   models.Timestamp(now),
	}
	// Newest first
	contact.Activities = append([]models.Activity{activity}, contact.Activities...)
	contact.LastContact = models.Timestamp(now)

	updated, err := h.sel.Contacts().Update(ctx, input.ContactID, contact)
	if err != nil {
		return nil, models.Contact{}, fmt.Errorf("failed to log activity: %w", err)
	}

	return nil, updated, nil
}

type DeleteContactInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

type DeleteOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ContactHandlers) DeleteContact(ctx context.Context, request *mcp.CallToolRequest, input DeleteContactInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}

	if err := h.sel.Contacts().Delete(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil, DeleteOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted contact: %s", input.ID),
	}, nil
}

func (h *ContactHandlers) getContact(ctx context.Context, id string) (models.Contact, error) {
	contacts, err := h.sel.Contacts().List(ctx)
	if err != nil {
		return models.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}
	for _, c := range contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, fmt.Errorf("contact not found")
}
