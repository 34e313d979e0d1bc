// ABOUTME: Sync CLI command
// ABOUTME: Drives the one-shot upload of local data to the account
package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Davi-web/cms-dashboard/db"
	"github.com/Davi-web/cms-dashboard/syncer"
	"github.com/Davi-web/cms-dashboard/tui"
)

// SyncCommand uploads all local data to the signed-in account. By default it
// runs the interactive confirmation dialog; --yes confirms headlessly, --skip
// declines without uploading, and --status lists past attempts.
func SyncCommand(orch *syncer.Orchestrator, history *sql.DB, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Confirm the upload without prompting")
	skip := fs.Bool("skip", false, "Decline the upload and keep data local only")
	status := fs.Bool("status", false, "Show past sync attempts")
	_ = fs.Parse(args)

	if *status {
		return syncStatus(history)
	}

	if _, err := orch.Prompt(); err != nil {
		return err
	}

	if *skip {
		orch.Decline()
		fmt.Println("Sync skipped, your data stays on this machine.")
		return nil
	}

	if *yes {
		return syncHeadless(orch)
	}

	model := tui.NewSyncModel(orch)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run sync dialog: %w", err)
	}
	return nil
}

func syncHeadless(orch *syncer.Orchestrator) error {
	counts := orch.Counts()
	fmt.Printf("Uploading %d contact(s), %d company(ies), %d task(s)...\n",
		counts.Contacts, counts.Companies, counts.Tasks)

	orch.OnProgress(func(p syncer.Progress) {
		fmt.Printf("  %3d%% %s\n", p.Percent, p.Stage)
	})

	if err := orch.Confirm(context.Background()); err != nil {
		orch.Abandon()
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Println("✓ Sync complete. Local copies are kept as a fallback.")
	return nil
}

func syncStatus(history *sql.DB) error {
	attempts, err := db.ListAttempts(history, 20)
	if err != nil {
		return fmt.Errorf("failed to list sync attempts: %w", err)
	}

	if len(attempts) == 0 {
		fmt.Println("No sync attempts yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSTATUS\tCONTACTS\tCOMPANIES\tTASKS\tERROR")
	for _, a := range attempts {
		errMsg := ""
		if a.ErrorMessage != nil {
			errMsg = *a.ErrorMessage
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			a.StartedAt.Format("2006-01-02 15:04:05"), a.Status,
			a.Contacts, a.Companies, a.Tasks, errMsg)
	}
	return w.Flush()
}
