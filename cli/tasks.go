// ABOUTME: Task CLI commands
// ABOUTME: Task CRUD plus completion toggling, with denormalized contact names
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
)

// AddTaskCommand adds a new task, capturing contact/company display names at
// creation time. Those copies are display-only and may go stale by design.
func AddTaskCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	title := fs.String("title", "", "Task title (required)")
	description := fs.String("description", "", "Description")
	taskType := fs.String("type", models.TaskTypeOther, "Type (call, email, meeting, follow-up, other)")
	priority := fs.String("priority", models.PriorityMedium, "Priority (low, medium, high)")
	contactID := fs.String("contact", "", "Linked contact ID")
	dueDate := fs.String("due", "", "Due date (default: tomorrow)")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	due := *dueDate
	if due == "" {
		due = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}

	task := models.Task{
		Title:       *title,
		Description: *description,
		Type:        *taskType,
		Priority:    *priority,
		Status:      models.TaskStatusPending,
		DueDate:     due,
	}

	if *contactID != "" {
		contact, err := findContact(sel, *contactID)
		if err != nil {
			return err
		}
		task.ContactID = contact.ID
		task.ContactName = contact.FullName()
		task.CompanyName = contact.Company
	}

	created, err := sel.Tasks().Create(context.Background(), task)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	fmt.Printf("✓ Task created: %s (ID: %s)\n", created.Title, created.ID)
	return nil
}

// ListTasksCommand lists tasks, open ones first, ordered by due date.
func ListTasksCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("list-tasks", flag.ExitOnError)
	status := fs.String("status", "all", "Filter: all, pending, completed")
	priority := fs.String("priority", "", "Filter by priority")
	limit := fs.Int("limit", 50, "Max results")
	_ = fs.Parse(args)

	tasks, err := sel.Tasks().List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}
		return tasks[i].DueDate < tasks[j].DueDate
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tDUE\tCONTACT")

	shown := 0
	for _, t := range tasks {
		switch *status {
		case "pending":
			if t.Completed {
				continue
			}
		case "completed":
			if !t.Completed {
				continue
			}
		}
		if *priority != "" && t.Priority != *priority {
			continue
		}

		contact := t.ContactName
		if contact != "" && t.CompanyName != "" {
			contact = fmt.Sprintf("%s (%s)", t.ContactName, t.CompanyName)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Priority, t.Status, t.DueDate, contact)
		shown++
		if shown >= *limit {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d task(s)\n", shown)
	return nil
}

// UpdateTaskCommand updates an existing task in place.
func UpdateTaskCommand(sel *data.Selector, args []string) error {
	fs := flag.NewFlagSet("update-task", flag.ExitOnError)
	title := fs.String("title", "", "Task title")
	description := fs.String("description", "", "Description")
	taskType := fs.String("type", "", "Type")
	priority := fs.String("priority", "", "Priority")
	status := fs.String("status", "", "Status (pending, in-progress, completed)")
	contactID := fs.String("contact", "", "Linked contact ID")
	dueDate := fs.String("due", "", "Due date")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("task ID is required (flags must come before the ID)")
	}
	id := fs.Arg(0)

	task, err := findTask(sel, id)
	if err != nil {
		return err
	}

	if *title != "" {
		task.Title = *title
	}
	if *description != "" {
		task.Description = *description
	}
	if *taskType != "" {
		task.Type = *taskType
	}
	if *priority != "" {
		task.Priority = *priority
	}
	if *status != "" {
		task.Status = *status
	}
	if *dueDate != "" {
		task.DueDate = *dueDate
	}
	if *contactID != "" {
		// Re-capture the display names on relink
		contact, err := findContact(sel, *contactID)
		if err != nil {
			return err
		}
		task.ContactID = contact.ID
		task.ContactName = contact.FullName()
		task.CompanyName = contact.Company
	}

	updated, err := sel.Tasks().Update(context.Background(), id, task)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("✓ Task updated: %s\n", updated.Title)
	return nil
}

// CompleteTaskCommand toggles a task's completion state.
func CompleteTaskCommand(sel *data.Selector, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("task ID is required")
	}
	id := args[0]

	task, err := findTask(sel, id)
	if err != nil {
		return err
	}

	if task.Completed {
		task.Reopen()
	} else {
		task.MarkCompleted(time.Now())
	}

	updated, err := sel.Tasks().Update(context.Background(), id, task)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if updated.Completed {
		fmt.Printf("✓ Task completed: %s\n", updated.Title)
	} else {
		fmt.Printf("✓ Task reopened: %s\n", updated.Title)
	}
	return nil
}

// DeleteTaskCommand permanently deletes a task.
func DeleteTaskCommand(sel *data.Selector, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("task ID is required")
	}
	id := args[0]

	if err := sel.Tasks().Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("✓ Task deleted: %s\n", id)
	return nil
}

func findTask(sel *data.Selector, id string) (models.Task, error) {
	tasks, err := sel.Tasks().List(context.Background())
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task not found: %s", id)
}
