// ABOUTME: Task MCP tool handlers
// ABOUTME: Implements add_task, find_tasks, complete_task, and delete_task tools
package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
)

type TaskHandlers struct {
	sel *data.Selector
}

func NewTaskHandlers(sel *data.Selector) *TaskHandlers {
	return &TaskHandlers{sel: sel}
}

type AddTaskInput struct {
	Title       string `json:"title" jsonschema:"Task title (required)"`
	Description string `json:"description,omitempty" jsonschema:"Task description"`
	Type        string `json:"type,omitempty" jsonschema:"Task type: call, email, meeting, follow-up, or other"`
	Priority    string `json:"priority,omitempty" jsonschema:"Priority: low, medium, or high (default medium)"`
	ContactID   string `json:"contact_id,omitempty" jsonschema:"Linked contact ID"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"Due date, YYYY-MM-DD (defaults to tomorrow)"`
}

func (h *TaskHandlers) AddTask(ctx context.Context, request *mcp.CallToolRequest, input AddTaskInput) (*mcp.CallToolResult, models.Task, error) {
	if input.Title == "" {
		return nil, models.Task{}, fmt.Errorf("title is required")
	}

	due := input.DueDate
	if due == "" {
		due = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Priority:    input.Priority,
		Status:      models.TaskStatusPending,
		DueDate:     due,
	}

	if input.ContactID != "" {
		contacts, err := h.sel.Contacts().List(ctx)
		if err != nil {
			return nil, models.Task{}, fmt.Errorf("failed to look up contact: %w", err)
		}
		for _, c := range contacts {
			if c.ID == input.ContactID {
				task.ContactID = c.ID
				task.ContactName = c.FullName()
				task.CompanyName = c.Company
				break
			}
		}
		if task.ContactID == "" {
			return nil, models.Task{}, fmt.Errorf("contact not found: %s", input.ContactID)
		}
	}

	created, err := h.sel.Tasks().Create(ctx, task)
	if err != nil {
		return nil, models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return nil, created, nil
}

type FindTasksInput struct {
	Query     string `json:"query,omitempty" jsonschema:"Search query (searches title and description)"`
	Status    string `json:"status,omitempty" jsonschema:"Filter: pending, in-progress, or completed"`
	Priority  string `json:"priority,omitempty" jsonschema:"Filter by priority"`
	ContactID string `json:"contact_id,omitempty" jsonschema:"Filter by linked contact ID"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindTasksOutput struct {
	Tasks []models.Task `json:"tasks"`
}

func (h *TaskHandlers) FindTasks(ctx context.Context, request *mcp.CallToolRequest, input FindTasksInput) (*mcp.CallToolResult, FindTasksOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	tasks, err := h.sel.Tasks().List(ctx)
	if err != nil {
		return nil, FindTasksOutput{}, fmt.Errorf("failed to find tasks: %w", err)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}
		return tasks[i].DueDate < tasks[j].DueDate
	})

	query := strings.ToLower(input.Query)
	result := make([]models.Task, 0, limit)
	for _, t := range tasks {
		if input.Status != "" && t.Status != input.Status {
			continue
		}
		if input.Priority != "" && t.Priority != input.Priority {
			continue
		}
		if input.ContactID != "" && t.ContactID != input.ContactID {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(t.Title + " " + t.Description)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		result = append(result, t)
		if len(result) >= limit {
			break
		}
	}

	return nil, FindTasksOutput{Tasks: result}, nil
}

type CompleteTaskInput struct {
	ID string `json:"id" jsonschema:"Task ID (required)"`
}

func (h *TaskHandlers) CompleteTask(ctx context.Context, request *mcp.CallToolRequest, input CompleteTaskInput) (*mcp.CallToolResult, models.Task, error) {
	if input.ID == "" {
		return nil, models.Task{}, fmt.Errorf("id is required")
	}

	tasks, err := h.sel.Tasks().List(ctx)
	if err != nil {
		return nil, models.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	var task models.Task
	found := false
	for _, t := range tasks {
		if t.ID == input.ID {
			task = t
			found = true
			break
		}
	}
	if !found {
		return nil, models.Task{}, fmt.Errorf("task not found")
	}

	task.MarkCompleted(time.Now())

	updated, err := h.sel.Tasks().Update(ctx, input.ID, task)
	if err != nil {
		return nil, models.Task{}, fmt.Errorf("failed to complete task: %w", err)
	}

	return nil, updated, nil
}

type DeleteTaskInput struct {
	ID string `json:"id" jsonschema:"Task ID (required)"`
}

func (h *TaskHandlers) DeleteTask(ctx context.Context, request *mcp.CallToolRequest, input DeleteTaskInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}

	if err := h.sel.Tasks().Delete(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete task: %w", err)
	}

	return nil, DeleteOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted task: %s", input.ID),
	}, nil
}
