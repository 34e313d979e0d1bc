// ABOUTME: Company MCP tool handlers
// ABOUTME: Implements add_company, find_companies, update_company, and delete_company tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
)

type CompanyHandlers struct {
	sel *data.Selector
}

func NewCompanyHandlers(sel *data.Selector) *CompanyHandlers {
	return &CompanyHandlers{sel: sel}
}

type AddCompanyInput struct {
	Name     string `json:"name" jsonschema:"Company name (required)"`
	Industry string `json:"industry,omitempty" jsonschema:"Industry"`
	Website  string `json:"website,omitempty" jsonschema:"Company website"`
	Phone    string `json:"phone,omitempty" jsonschema:"Phone number"`
	Email    string `json:"email,omitempty" jsonschema:"Contact email"`
	City     string `json:"city,omitempty" jsonschema:"City"`
	Country  string `json:"country,omitempty" jsonschema:"Country"`
	Size     string `json:"size,omitempty" jsonschema:"Company size bracket, e.g. 1-10, 11-50, 51-200"`
	Status   string `json:"status,omitempty" jsonschema:"Relationship status: active, inactive, or prospect"`
	Notes    string `json:"notes,omitempty" jsonschema:"Additional notes"`
}

func (h *CompanyHandlers) AddCompany(ctx context.Context, request *mcp.CallToolRequest, input AddCompanyInput) (*mcp.CallToolResult, models.Company, error) {
	if input.Name == "" {
		return nil, models.Company{}, fmt.Errorf("name is required")
	}

	company := models.Company{
		Name:     input.Name,
		Industry: input.Industry,
		Website:  input.Website,
		Phone:    input.Phone,
		Email:    input.Email,
		City:     input.City,
		Country:  input.Country,
		Size:     input.Size,
		Status:   input.Status,
		Notes:    input.Notes,
	}

	created, err := h.sel.Companies().Create(ctx, company)
	if err != nil {
		return nil, models.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return nil, created, nil
}

type FindCompaniesInput struct {
	Query    string `json:"query,omitempty" jsonschema:"Search query (searches name and website)"`
	Industry string `json:"industry,omitempty" jsonschema:"Filter by industry"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindCompaniesOutput struct {
	Companies []models.Company `json:"companies"`
}

func (h *CompanyHandlers) FindCompanies(ctx context.Context, request *mcp.CallToolRequest, input FindCompaniesInput) (*mcp.CallToolResult, FindCompaniesOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	companies, err := h.sel.Companies().List(ctx)
	if err != nil {
		return nil, FindCompaniesOutput{}, fmt.Errorf("failed to find companies: %w", err)
	}

	query := strings.ToLower(input.Query)
	result := make([]models.Company, 0, limit)
	for _, c := range companies {
		if input.Industry != "" && !strings.EqualFold(c.Industry, input.Industry) {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(c.Name + " " + c.Website)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		result = append(result, c)
		if len(result) >= limit {
			break
		}
	}

	return nil, FindCompaniesOutput{Companies: result}, nil
}

type UpdateCompanyInput struct {
	ID       string `json:"id" jsonschema:"Company ID (required)"`
	Name     string `json:"name,omitempty" jsonschema:"Updated name"`
	Industry string `json:"industry,omitempty" jsonschema:"Updated industry"`
	Website  string `json:"website,omitempty" jsonschema:"Updated website"`
	Phone    string `json:"phone,omitempty" jsonschema:"Updated phone number"`
	Email    string `json:"email,omitempty" jsonschema:"Updated email"`
	Status   string `json:"status,omitempty" jsonschema:"Updated status"`
	Notes    string `json:"notes,omitempty" jsonschema:"Updated notes"`
}

func (h *CompanyHandlers) UpdateCompany(ctx context.Context, request *mcp.CallToolRequest, input UpdateCompanyInput) (*mcp.CallToolResult, models.Company, error) {
	if input.ID == "" {
		return nil, models.Company{}, fmt.Errorf("id is required")
	}

	companies, err := h.sel.Companies().List(ctx)
	if err != nil {
		return nil, models.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	var company models.Company
	found := false
	for _, c := range companies {
		if c.ID == input.ID {
			company = c
			found = true
			break
		}
	}
	if !found {
		return nil, models.Company{}, fmt.Errorf("company not found")
	}

	if input.Name != "" {
		company.Name = input.Name
	}
	if input.Industry != "" {
		company.Industry = input.Industry
	}
	if input.Website != "" {
		company.Website = input.Website
	}
	if input.Phone != "" {
		company.Phone = input.Phone
	}
	if input.Email != "" {
		company.Email = input.Email
	}
	if input.Status != "" {
		company.Status = input.Status
	}
	if input.Notes != "" {
		company.Notes = input.Notes
	}

	updated, err := h.sel.Companies().Update(ctx, input.ID, company)
	if err != nil {
		return nil, models.Company{}, fmt.Errorf("failed to update company: %w", err)
	}

	return nil, updated, nil
}

type DeleteCompanyInput struct {
	ID string `json:"id" jsonschema:"Company ID (required)"`
}

func (h *CompanyHandlers) DeleteCompany(ctx context.Context, request *mcp.CallToolRequest, input DeleteCompanyInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}

	if err := h.sel.Companies().Delete(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete company: %w", err)
	}

	return nil, DeleteOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted company: %s", input.ID),
	}, nil
}
