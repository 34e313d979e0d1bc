// ABOUTME: Entry point for the CRM dashboard CLI and MCP server
// ABOUTME: Routes commands over shared store, session, and sync wiring
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Davi-web/cms-dashboard/api"
	"github.com/Davi-web/cms-dashboard/cli"
	"github.com/Davi-web/cms-dashboard/config"
	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/db"
	"github.com/Davi-web/cms-dashboard/session"
	"github.com/Davi-web/cms-dashboard/store"
	"github.com/Davi-web/cms-dashboard/syncer"
)

const version = "0.1.0"

// app bundles the shared wiring behind every command.
type app struct {
	store    *store.Store
	client   *api.Client
	sessions *session.Manager
	selector *data.Selector
	orch     *syncer.Orchestrator
	history  *sql.DB
}

func main() {
	// Local overrides for development, ignored when absent
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	verbose := flag.Bool("verbose", false, "Verbose logging")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("cms-dashboard version %s\n", version)
		os.Exit(0)
	}

	logrus.SetLevel(logrus.WarnLevel)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	a, err := setup()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.close()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		if err := cli.MCPCommand(a.selector); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runCRM(a, commandArgs[0], commandArgs[1:])

	case "auth":
		if len(commandArgs) == 0 {
			fmt.Println("Error: auth requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runAuth(a, commandArgs[0], commandArgs[1:])

	case "sync":
		if err := cli.SyncCommand(a.orch, a.history, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "dashboard":
		if err := cli.DashboardCommand(a.selector); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "health":
		if err := cli.HealthCommand(a.client); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCRM(a *app, command string, args []string) {
	var err error
	switch command {
	// Contact commands
	case "add-contact":
		err = cli.AddContactCommand(a.selector, args)
	case "list-contacts":
		err = cli.ListContactsCommand(a.selector, args)
	case "update-contact":
		err = cli.UpdateContactCommand(a.selector, args)
	case "delete-contact":
		err = cli.DeleteContactCommand(a.selector, args)
	case "add-activity":
		err = cli.AddActivityCommand(a.selector, args)

	// Company commands
	case "add-company":
		err = cli.AddCompanyCommand(a.selector, args)
	case "list-companies":
		err = cli.ListCompaniesCommand(a.selector, args)
	case "update-company":
		err = cli.UpdateCompanyCommand(a.selector, args)
	case "delete-company":
		err = cli.DeleteCompanyCommand(a.selector, args)

	// Task commands
	case "add-task":
		err = cli.AddTaskCommand(a.selector, args)
	case "list-tasks":
		err = cli.ListTasksCommand(a.selector, args)
	case "update-task":
		err = cli.UpdateTaskCommand(a.selector, args)
	case "complete-task":
		err = cli.CompleteTaskCommand(a.selector, args)
	case "delete-task":
		err = cli.DeleteTaskCommand(a.selector, args)

	default:
		fmt.Printf("Unknown crm command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runAuth(a *app, command string, args []string) {
	var err error
	switch command {
	case "signin":
		err = cli.SignInCommand(a.sessions, a.orch, args)
	case "signup":
		err = cli.SignUpCommand(a.sessions, a.orch, args)
	case "signout":
		err = cli.SignOutCommand(a.sessions)
	case "whoami":
		err = cli.WhoamiCommand(a.sessions)
	default:
		fmt.Printf("Unknown auth command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// setup wires the store, API client, session, data selector, and sync
// orchestrator that commands share.
func setup() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	storePath, err := config.StorePath()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	client := api.NewClient(cfg.BaseURL, cfg.AnonKey)

	sessionPath, err := config.SessionPath()
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(sessionPath, client)
	if err := sessions.Load(); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	selector := data.NewSelector(st, client, sessions)

	syncDBPath, err := config.SyncDBPath()
	if err != nil {
		return nil, err
	}
	history, err := db.OpenDatabase(syncDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sync database: %w", err)
	}

	orch := syncer.New(st, client, sessions, history)
	// A finished sync changes what the server holds, drop cached reads
	orch.OnComplete(selector.InvalidateAll)

	return &app{
		store:    st,
		client:   client,
		sessions: sessions,
		selector: selector,
		orch:     orch,
		history:  history,
	}, nil
}

func (a *app) close() {
	if a.history != nil {
		_ = a.history.Close()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
}

func printUsage() {
	fmt.Printf(`cms-dashboard v%s - CRM with local-first storage and account sync

USAGE:
  cms-dashboard [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --verbose              Verbose logging

COMMANDS:
  crm                    Contact, company, and task management
  auth                   Account sign in / sign up / sign out
  sync                   Upload local data to your account
  dashboard              Show CRM overview
  health                 Check remote service reachability
  mcp                    Start MCP server for assistant integration

CRM COMMANDS:
  cms-dashboard crm add-contact     Add a new contact
    --first-name <name>               First name (required)
    --last-name <name>                Last name
    --email <email>                   Email address
    --phone <phone>                   Phone number
    --company <company>               Company name
    --position <position>             Job title
    --status <status>                 active, inactive, or lead
    --tags <a,b,c>                    Comma-separated tags
    --notes <notes>                   Notes

  cms-dashboard crm list-contacts   List contacts
    --query <text>                    Search name, email, company
    --status <status>                 Filter by status
    --limit <n>                       Max results (default: 50)

  cms-dashboard crm update-contact [flags] <id>  Update a contact
    Note: flags must come before the contact ID

  cms-dashboard crm delete-contact <id>  Delete a contact

  cms-dashboard crm add-activity [flags] <contact-id>  Log an interaction
    --type <type>                     call, email, meeting, note
    --description <text>              What happened (required)
    --date <YYYY-MM-DD>               Activity date (default: today)
    Note: flags must come before the contact ID

  cms-dashboard crm add-company     Add a new company
  cms-dashboard crm list-companies  List companies
  cms-dashboard crm update-company [flags] <id>  Update a company
  cms-dashboard crm delete-company <id>  Delete a company

  cms-dashboard crm add-task        Add a new task
    --title <title>                   Task title (required)
    --type <type>                     call, email, meeting, follow-up, other
    --priority <priority>             low, medium, high
    --contact <id>                    Linked contact ID
    --due <YYYY-MM-DD>                Due date (default: tomorrow)

  cms-dashboard crm list-tasks      List tasks
  cms-dashboard crm update-task [flags] <id>  Update a task
  cms-dashboard crm complete-task <id>  Toggle task completion
  cms-dashboard crm delete-task <id>  Delete a task

AUTH COMMANDS:
  cms-dashboard auth signin --email <email> --password <pass>
  cms-dashboard auth signup --email <email> --password <pass> [--first-name] [--last-name]
  cms-dashboard auth signout
  cms-dashboard auth whoami

SYNC:
  cms-dashboard sync                Interactive upload dialog
  cms-dashboard sync --yes          Upload without prompting
  cms-dashboard sync --skip         Decline the upload
  cms-dashboard sync --status       Show past sync attempts

EXAMPLES:
  # Add a contact while signed out (stored locally)
  cms-dashboard crm add-contact --first-name "Ada" --last-name "Lovelace" --email "ada@acme.com"

  # Sign in, then upload local data to the account
  cms-dashboard auth signin --email "ada@acme.com" --password "secret"
  cms-dashboard sync --yes

`, version)
}
