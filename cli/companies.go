// ABOUTME: Company CLI commands
// ABOUTME: Human-friendly commands for managing companies through the data selector
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
)

// AddCompanyCommand adds a new company.
func AddCompanyCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("add-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name (required)")
	industry := fs.String("industry", "", "Industry")
	website := fs.String("website", "", "Website")
	phone := fs.String("phone", "", "Phone number")
	email := fs.String("email", "", "Contact email")
	address := fs.String("address", "", "Street address")
	city := fs.String("city", "", "City")
	country := fs.String("country", "", "Country")
	size := fs.String("size", models.SizeSmall, "Size (startup, small, medium, large, enterprise)")
	status := fs.String("status", models.CompanyStatusProspect, "Status (prospect, active, inactive, partner)")
	notes := fs.String("notes", "", "Notes about the company")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	company := models.Company{
		Name:     *name,
		Industry: *industry,
		Website:  *website,
		Phone:    *phone,
		Email:    *email,
		Address:  *address,
		City:     *city,
		Country:  *country,
		Size:     *size,
		Status:   *status,
		Notes:    *notes,
	}

	created, err := sel.Companies().Create(context.Background(), company)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	fmt.Printf("✓ Company created: %s (ID: %s)\n", created.Name, created.ID)
	return nil
}

// ListCompaniesCommand lists companies.
func ListCompaniesCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("list-companies", flag.ExitOnError)
	query := fs.String("query", "", "Search by name or industry")
	status := fs.String("status", "", "Filter by status")
	limit := fs.Int("limit", 50, "Max results")
	_ = fs.Parse(args)

	companies, err := sel.Companies().List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tINDUSTRY\tSIZE\tSTATUS\tCITY")

	shown := 0
	for _, c := range companies {
		if *query != "" && !matchesCompany(c, *query) {
			continue
		}
		if *status != "" && c.Status != *status {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Industry, c.Size, c.Status, c.City)
		shown++
		if shown >= *limit {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d company(ies)\n", shown)
	return nil
}

// UpdateCompanyCommand updates an existing company in place.
func UpdateCompanyCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("update-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name")
	industry := fs.String("industry", "", "Industry")
	website := fs.String("website", "", "Website")
	phone := fs.String("phone", "", "Phone number")
	email := fs.String("email", "", "Contact email")
	size := fs.String("size", "", "Size")
	status := fs.String("status", "", "Status")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("company ID is required (flags must come before the ID)")
	}
	id := fs.Arg(0)

	companies, err := sel.Companies().List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	var company models.Company
	found := false
	for _, c := range companies {
		if c.ID == id {
			company = c
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("company not found: %s", id)
	}

	if *name != "" {
		company.Name = *name
	}
	if *industry != "" {
		company.Industry = *industry
	}
	if *website != "" {
		company.Website = *website
	}
	if *phone != "" {
		company.Phone = *phone
	}
	if *email != "" {
		company.Email = *email
	}
	if *size != "" {
		company.Size = *size
	}
	if *status != "" {
		company.Status = *status
	}
	if *notes != "" {
		company.Notes = *notes
	}

	updated, err := sel.Companies().Update(context.Background(), id, company)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	fmt.Printf("✓ Company updated: %s\n", updated.Name)
	return nil
}

// DeleteCompanyCommand permanently deletes a company.
func DeleteCompanyCommand(sel *data.Selector, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("company ID is required")
	}
	id := args[0]

	if err := sel.Companies().Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	fmt.Printf("✓ Company deleted: %s\n", id)
	return nil
}

func matchesCompany(c models.Company, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Industry), q)
}
