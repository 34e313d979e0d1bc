// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts through the data selector
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
)

// AddContactCommand adds a new contact.
func AddContactCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name (required)")
	lastName := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	status := fs.String("status", models.ContactStatusLead, "Status (active, inactive, lead)")
	tags := fs.String("tags", "", "Comma-separated tags")
	notes := fs.String("notes", "", "Notes about the contact")
	_ = fs.Parse(args)

	if *firstName == "" {
		return fmt.Errorf("--first-name is required")
	}

	contact := models.Contact{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Phone:     *phone,
		Company:   *company,
		Position:  *position,
		Status:    *status,
		Notes:     *notes,
		Tags:      splitTags(*tags),
	}

	created, err := sel.Contacts().Create(context.Background(), contact)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	fmt.Printf("✓ Contact created: %s (ID: %s)\n", created.FullName(), created.ID)
	return nil
}

// ListContactsCommand lists contacts, optionally filtered by a search query.
func ListContactsCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	query := fs.String("query", "", "Search by name or email")
	status := fs.String("status", "", "Filter by status")
	limit := fs.Int("limit", 50, "Max results")
	_ = fs.Parse(args)

	contacts, err := sel.Contacts().List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMPANY\tSTATUS\tLAST CONTACT")

	shown := 0
	for _, c := range contacts {
		if *query != "" && !matchesContact(c, *query) {
			continue
		}
		if *status != "" && c.Status != *status {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FullName(), c.Email, c.Company, c.Status, c.LastContact)
		shown++
		if shown >= *limit {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d contact(s)\n", shown)
	return nil
}

// UpdateContactCommand updates an existing contact in place.
func UpdateContactCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	status := fs.String("status", "", "Status (active, inactive, lead)")
	tags := fs.String("tags", "", "Comma-separated tags (replaces existing)")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("contact ID is required (flags must come before the ID)")
	}
	id := fs.Arg(0)

	contact, err := findContact(sel, id)
	if err != nil {
		return err
	}

	if *firstName != "" {
		contact.FirstName = *firstName
	}
	if *lastName != "" {
		contact.LastName = *lastName
	}
	if *email != "" {
		contact.Email = *email
	}
	if *phone != "" {
		contact.Phone = *phone
	}
	if *company != "" {
		contact.Company = *company
	}
	if *position != "" {
		contact.Position = *position
	}
	if *status != "" {
		contact.Status = *status
	}
	if *tags != "" {
		contact.Tags = splitTags(*tags)
	}
	if *notes != "" {
		contact.Notes = *notes
	}

	updated, err := sel.Contacts().Update(context.Background(), id, contact)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	fmt.Printf("✓ Contact updated: %s\n", updated.FullName())
	return nil
}

// DeleteContactCommand permanently deletes a contact.
func DeleteContactCommand(sel *data.Selector, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("contact ID is required")
	}
	id := args[0]

	if err := sel.Contacts().Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	fmt.Printf("✓ Contact deleted: %s\n", id)
	return nil
}

// AddActivityCommand logs an activity on a contact and bumps its last-contact
// timestamp. Activities are prepended so the newest sits first.
func AddActivityCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("add-activity", flag.ExitOnError)
	actType := fs.String("type", models.ActivityNote, "Activity type (call, email, meeting, note, task, follow-up)")
	description := fs.String("description", "", "What happened (required)")
	date := fs.String("date", "", "Activity date (default: today)")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("contact ID is required (flags must come before the ID)")
	}
	if *description == "" {
		return fmt.Errorf("--description is required")
	}
	id := fs.Arg(0)

	contact, err := findContact(sel, id)
	if err != nil {
		return err
	}

	now := time.Now()
	when := *date
	if when == "" {
		when = now.Format("2006-01-02")
	}

	activity := models.Activity{
		ID:          uuid.New().String(),
		Type:        *actType,
		Description: *description,
		Date:        when,
		CreatedAt:   models.Timestamp(now),
	}
	contact.Activities = append([]models.Activity{activity}, contact.Activities...)
	contact.LastContact = models.Timestamp(now)

	if _, err := sel.Contacts().Update(context.Background(), id, contact); err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	fmt.Printf("✓ Activity logged on %s\n", contact.FullName())
	return nil
}

func findContact(sel *data.Selector, id string) (models.Contact, error) {
	contacts, err := sel.Contacts().List(context.Background())
	if err != nil {
		return models.Contact{}, fmt.Errorf("failed to load contacts: %w", err)
	}
	for _, c := range contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, fmt.Errorf("contact not found: %s", id)
}

func matchesContact(c models.Contact, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.FullName()), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Company), q)
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
