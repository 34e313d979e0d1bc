// ABOUTME: Tests for the sync dialog model
// ABOUTME: Confirmation rendering and decline/quit key handling
package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Davi-web/cms-dashboard/api"
	"github.com/Davi-web/cms-dashboard/models"
	"github.com/Davi-web/cms-dashboard/session"
	"github.com/Davi-web/cms-dashboard/store"
	"github.com/Davi-web/cms-dashboard/syncer"
)

func confirmingOrchestrator(t *testing.T) *syncer.Orchestrator {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.SyncResult{Success: true})
	}))
	t.Cleanup(srv.Close)

	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := store.Set(st, store.KeyContacts, []models.Contact{{ID: "c1"}, {ID: "c2"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(st, store.KeyCompanies, []models.Company{{ID: "co1"}}); err != nil {
		t.Fatal(err)
	}

	client := api.NewClient(srv.URL, "anon")
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	raw, _ := json.Marshal(session.Session{UserID: "u1", AccessToken: "tok"})
	if err := os.WriteFile(sessionPath, raw, 0600); err != nil {
		t.Fatal(err)
	}
	sessions := session.NewManager(sessionPath, client)
	if err := sessions.Load(); err != nil {
		t.Fatal(err)
	}

	orch := syncer.New(st, client, sessions, nil)
	if _, err := orch.Prompt(); err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	return orch
}

func TestConfirmingViewShowsCounts(t *testing.T) {
	m := NewSyncModel(confirmingOrchestrator(t))

	view := m.View()
	if !strings.Contains(view, "Contacts") {
		t.Errorf("view missing contacts row:\n%s", view)
	}
	if !strings.Contains(view, "2") || !strings.Contains(view, "1") {
		t.Errorf("view missing counts:\n%s", view)
	}
	if !strings.Contains(view, "Upload") {
		t.Errorf("view missing confirm help:\n%s", view)
	}
}

func TestDeclineKeyQuitsAndDeclines(t *testing.T) {
	orch := confirmingOrchestrator(t)
	m := NewSyncModel(orch)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	if orch.State() != syncer.StateIdle {
		t.Errorf("orchestrator state = %q, want idle", orch.State())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestConfirmKeyStartsSync(t *testing.T) {
	orch := confirmingOrchestrator(t)
	m := NewSyncModel(orch)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Fatal("expected sync command")
	}

	sm := model.(SyncModel)
	view := sm.View()
	if strings.Contains(view, "Upload • ") {
		t.Errorf("still showing confirmation after confirm:\n%s", view)
	}
}
