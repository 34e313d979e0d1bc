// ABOUTME: MCP server subcommand
// ABOUTME: Exposes CRM data as MCP tools over stdio
package cli

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/handlers"
)

// MCPCommand starts the MCP server on stdio. Tools read and write through the
// same source selection as the CLI, so a signed-in session serves remote data.
func MCPCommand(sel *data.Selector) error {
	logrus.Info("starting CRM MCP server")

	contactHandlers := handlers.NewContactHandlers(sel)
	companyHandlers := handlers.NewCompanyHandlers(sel)
	taskHandlers := handlers.NewTaskHandlers(sel)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cms-dashboard",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a new contact to the CRM",
	}, contactHandlers.AddContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Search for contacts by name, email, or company",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Update an existing contact's information",
	}, contactHandlers.UpdateContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log an interaction with a contact and bump their last contacted date",
	}, contactHandlers.LogActivity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a contact from the CRM",
	}, contactHandlers.DeleteContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_company",
		Description: "Add a new company to the CRM",
	}, companyHandlers.AddCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_companies",
		Description: "Search for companies by name or website",
	}, companyHandlers.FindCompanies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_company",
		Description: "Update an existing company's information",
	}, companyHandlers.UpdateCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_company",
		Description: "Delete a company from the CRM",
	}, companyHandlers.DeleteCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a new task, optionally linked to a contact",
	}, taskHandlers.AddTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_tasks",
		Description: "Search tasks with optional status, priority, and contact filters",
	}, taskHandlers.FindTasks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "complete_task",
		Description: "Mark a task as completed",
	}, taskHandlers.CompleteTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task from the CRM",
	}, taskHandlers.DeleteTask)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
