// ABOUTME: Tests for contact CLI commands and helpers
// ABOUTME: End-to-end through the selector against a local store
package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Davi-web/cms-dashboard/api"
	"github.com/Davi-web/cms-dashboard/data"
	"github.com/Davi-web/cms-dashboard/models"
	"github.com/Davi-web/cms-dashboard/session"
	"github.com/Davi-web/cms-dashboard/store"
)

func testSelector(t *testing.T) *data.Selector {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	client := api.NewClient("http://localhost:0", "anon")
	sessions := session.NewManager(filepath.Join(t.TempDir(), "session.json"), client)
	return data.NewSelector(st, client, sessions)
}

func TestAddContactCommand(t *testing.T) {
	sel := testSelector(t)

	err := AddContactCommand(sel, []string{
		"--first-name", "Ada",
		"--last-name", "Lovelace",
		"--email", "ada@acme.com",
		"--tags", "vip, analytics",
	})
	if err != nil {
		t.Fatalf("AddContactCommand failed: %v", err)
	}

	contacts, err := sel.Contacts().List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	if c.FullName() != "Ada Lovelace" || c.Email != "ada@acme.com" {
		t.Errorf("contact = %+v", c)
	}
	if len(c.Tags) != 2 || c.Tags[0] != "vip" || c.Tags[1] != "analytics" {
		t.Errorf("tags = %v", c.Tags)
	}
}

func TestAddContactRequiresFirstName(t *testing.T) {
	sel := testSelector(t)
	if err := AddContactCommand(sel, []string{"--last-name", "Lovelace"}); err == nil {
		t.Error("expected error without --first-name")
	}
}

func TestUpdateContactCommand(t *testing.T) {
	sel := testSelector(t)
	created, err := sel.Contacts().Create(context.Background(), models.Contact{FirstName: "Ada"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := UpdateContactCommand(sel, []string{"--position", "Engineer", created.ID}); err != nil {
		t.Fatalf("UpdateContactCommand failed: %v", err)
	}

	contacts, _ := sel.Contacts().List(context.Background())
	if contacts[0].Position != "Engineer" {
		t.Errorf("Position = %q", contacts[0].Position)
	}
	if contacts[0].FirstName != "Ada" {
		t.Errorf("unset flags must not clear fields: %+v", contacts[0])
	}
}

func TestAddActivityCommandPrepends(t *testing.T) {
	sel := testSelector(t)
	ctx := context.Background()
	created, err := sel.Contacts().Create(ctx, models.Contact{FirstName: "Ada"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := AddActivityCommand(sel, []string{"--description", "intro call", created.ID}); err != nil {
		t.Fatalf("AddActivityCommand failed: %v", err)
	}
	if err := AddActivityCommand(sel, []string{"--type", "meeting", "--description", "demo", created.ID}); err != nil {
		t.Fatalf("second AddActivityCommand failed: %v", err)
	}

	contacts, _ := sel.Contacts().List(ctx)
	acts := contacts[0].Activities
	if len(acts) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(acts))
	}
	if acts[0].Description != "demo" {
		t.Errorf("newest activity should be first, got %q", acts[0].Description)
	}
	if acts[0].Type != models.ActivityMeeting {
		t.Errorf("Type = %q", acts[0].Type)
	}
}

// remoteSelector returns a selector with a restored session, so contact access
// goes to the given server instead of the local store.
func remoteSelector(t *testing.T, serverURL string) *data.Selector {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	client := api.NewClient(serverURL, "anon")
	path := filepath.Join(t.TempDir(), "session.json")
	raw, _ := json.Marshal(session.Session{UserID: "u1", Email: "ada@acme.com", AccessToken: "tok"})
	if err := os.WriteFile(path, raw, 0600); err != nil {
		t.Fatal(err)
	}
	sessions := session.NewManager(path, client)
	if err := sessions.Load(); err != nil {
		t.Fatalf("session load failed: %v", err)
	}
	return data.NewSelector(st, client, sessions)
}

func TestAddActivityCommandBumpsLastContactRemote(t *testing.T) {
	const stale = "2020-01-01T00:00:00Z"
	var sent map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/contacts":
			_, _ = w.Write([]byte(`{"contacts":[{"id":"c1","first_name":"Ada","last_contact":"` + stale + `"}]}`))
		case r.Method == http.MethodPut && r.URL.Path == "/contacts/c1":
			if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
				t.Errorf("bad update body: %v", err)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"contact": sent})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	sel := remoteSelector(t, server.URL)
	if err := AddActivityCommand(sel, []string{"--description", "intro call", "c1"}); err != nil {
		t.Fatalf("AddActivityCommand failed: %v", err)
	}

	if sent == nil {
		t.Fatal("no update reached the server")
	}
	got, _ := sent["last_contact"].(string)
	if got == "" || got == stale {
		t.Errorf("last_contact sent to the server = %q, want a fresh timestamp", got)
	}
}

func TestDeleteContactCommand(t *testing.T) {
	sel := testSelector(t)
	ctx := context.Background()
	created, _ := sel.Contacts().Create(ctx, models.Contact{FirstName: "Ada"})

	if err := DeleteContactCommand(sel, []string{created.ID}); err != nil {
		t.Fatalf("DeleteContactCommand failed: %v", err)
	}
	contacts, _ := sel.Contacts().List(ctx)
	if len(contacts) != 0 {
		t.Errorf("expected no contacts, got %v", contacts)
	}

	if err := DeleteContactCommand(sel, []string{created.ID}); err == nil {
		t.Error("expected error deleting a missing contact")
	}
}

func TestMatchesContact(t *testing.T) {
	c := models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@acme.com", Company: "Acme"}

	if !matchesContact(c, "love") {
		t.Error("expected name match")
	}
	if !matchesContact(c, "ACME") {
		t.Error("expected case-insensitive company match")
	}
	if matchesContact(c, "grace") {
		t.Error("unexpected match")
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags(" vip , , analytics ")
	if len(got) != 2 || got[0] != "vip" || got[1] != "analytics" {
		t.Errorf("splitTags = %v", got)
	}
	if got := splitTags(""); len(got) != 0 {
		t.Errorf("splitTags(\"\") = %v", got)
	}
}
