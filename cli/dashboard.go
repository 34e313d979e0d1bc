// ABOUTME: Dashboard CLI command
// ABOUTME: Summary stats, recent contacts, and upcoming tasks
package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
)

// DashboardCommand prints an overview of the CRM: totals, contacts added in
// the last week, recent contacts, and the next open tasks.
func DashboardCommand(sel *data.Selector) error {
	ctx := context.Background()

	contacts, err := sel.Contacts().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}
	companies, err := sel.Companies().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	tasks, err := sel.Tasks().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	openTasks := 0
	for _, t := range tasks {
		if !t.Completed {
			openTasks++
		}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	newThisWeek := 0
	for _, c := range contacts {
		if created, err := time.Parse(time.RFC3339, c.CreatedAt); err == nil && created.After(weekAgo) {
			newThisWeek++
		}
	}

	fmt.Println("CRM Dashboard")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Contacts:\t%d\n", len(contacts))
	fmt.Fprintf(w, "Companies:\t%d\n", len(companies))
	fmt.Fprintf(w, "Open tasks:\t%d\n", openTasks)
	fmt.Fprintf(w, "New contacts this week:\t%d\n", newThisWeek)
	if err := w.Flush(); err != nil {
		return err
	}

	printRecentContacts(contacts)
	printUpcomingTasks(tasks)
	return nil
}

func printRecentContacts(contacts []models.Contact) {
	if len(contacts) == 0 {
		return
	}

	sorted := make([]models.Contact, len(contacts))
	copy(sorted, contacts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	fmt.Println("\nRecent contacts:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, c := range sorted {
		company := c.Company
		if company == "" {
			company = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", c.FullName(), company, c.Status)
	}
	_ = w.Flush()
}

func printUpcomingTasks(tasks []models.Task) {
	open := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return
	}

	sort.SliceStable(open, func(i, j int) bool {
		return open[i].DueDate < open[j].DueDate
	})
	if len(open) > 5 {
		open = open[:5]
	}

	fmt.Println("\nUpcoming tasks:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, t := range open {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", t.DueDate, t.Title, t.Priority)
	}
	_ = w.Flush()
}
