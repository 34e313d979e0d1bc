// ABOUTME: Authentication CLI commands
// ABOUTME: Sign in, sign up, sign out, and session status
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/Davi-web/cms-dashboard/session"
	"github.com/Davi-web/cms-dashboard/syncer"
)

// SignInCommand signs in with email and password. On success the one-time
// sync prompt is evaluated so a first sign-in with local data offers the
// upload right away.
func SignInCommand(sessions *session.Manager, orch *syncer.Orchestrator, args []string) error {
	fs := flag.NewFlagSet("signin", flag.ExitOnError)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Account password (required)")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("--email and --password are required")
	}

	s, err := sessions.SignIn(context.Background(), *email, *password)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Signed in as %s\n", s.Email)

	if orch.Evaluate() == syncer.StateConfirming {
		counts := orch.Counts()
		fmt.Printf("\nYou have %d local record(s) (%d contacts, %d companies, %d tasks).\n",
			counts.Total(), counts.Contacts, counts.Companies, counts.Tasks)
		fmt.Println("Run 'sync' to upload them to your account, or 'sync --skip' to keep them local.")
	}
	return nil
}

// SignUpCommand creates an account and signs in.
func SignUpCommand(sessions *session.Manager, orch *syncer.Orchestrator, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Account password (required)")
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("--email and --password are required")
	}

	s, err := sessions.SignUp(context.Background(), *email, *password, *firstName, *lastName)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Account created, signed in as %s\n", s.Email)

	if orch.Evaluate() == syncer.StateConfirming {
		counts := orch.Counts()
		fmt.Printf("\nYou have %d local record(s).\n", counts.Total())
		fmt.Println("Run 'sync' to upload them to your account, or 'sync --skip' to keep them local.")
	}
	return nil
}

// SignOutCommand tears down the session. Local data stays put.
func SignOutCommand(sessions *session.Manager) error {
	if !sessions.Active() {
		fmt.Println("Not signed in")
		return nil
	}
	sessions.SignOut()
	fmt.Println("✓ Signed out")
	return nil
}

// WhoamiCommand prints the current session, if any.
func WhoamiCommand(sessions *session.Manager) error {
	s := sessions.Current()
	if s == nil {
		fmt.Println("Not signed in (using local storage)")
		return nil
	}

	name := s.Email
	if s.FirstName != "" || s.LastName != "" {
		name = fmt.Sprintf("%s %s <%s>", s.FirstName, s.LastName, s.Email)
	}
	fmt.Printf("Signed in as %s\n", name)
	fmt.Printf("Since: %s\n", s.SignedInAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
