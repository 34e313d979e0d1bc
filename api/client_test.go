// ABOUTME: Tests for the typed HTTP client
// ABOUTME: Bearer handling, error envelopes, and the bulk sync payload
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Davi-web/cms-dashboard/models"
)

func TestBearerFallsBackToAnonKey(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon-key")
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if got != "Bearer anon-key" {
		t.Errorf("Authorization = %q, want anon key", got)
	}

	client.SetAccessToken("session-token")
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if got != "Bearer session-token" {
		t.Errorf("Authorization = %q, want session token", got)
	}

	client.SetAccessToken("")
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if got != "Bearer anon-key" {
		t.Errorf("Authorization = %q, want anon key after clearing", got)
	}
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	_, err := client.SignIn(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.Code != http.StatusUnauthorized {
		t.Errorf("Code = %d, want 401", statusErr.Code)
	}
	if statusErr.Message != "invalid credentials" {
		t.Errorf("Message = %q", statusErr.Message)
	}
}

func TestListContactsDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contacts" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"contacts":[{"id":"c1","first_name":"Ada","last_name":"Lovelace","status":"active"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	contacts, err := client.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].FirstName != "Ada" {
		t.Errorf("FirstName = %q", contacts[0].FirstName)
	}
	if contacts[0].Activities == nil {
		t.Error("expected normalized Activities on decoded contact")
	}
}

func TestUpdateContactUsesPut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/contacts/c1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body contactWire
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]contactWire{"contact": body})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	updated, err := client.UpdateContact(context.Background(), "c1", models.Contact{ID: "c1", FirstName: "Ada"})
	if err != nil {
		t.Fatalf("UpdateContact failed: %v", err)
	}
	if updated.FirstName != "Ada" {
		t.Errorf("FirstName = %q", updated.FirstName)
	}
}

func TestSyncPayloadAndResult(t *testing.T) {
	var payload struct {
		Contacts  []json.RawMessage `json:"contacts"`
		Companies []json.RawMessage `json:"companies"`
		Tasks     []json.RawMessage `json:"tasks"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sync" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode sync payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(SyncResult{Success: true, Message: "Synced 3 records"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	result, err := client.Sync(context.Background(),
		[]models.Contact{{ID: "c1"}, {ID: "c2"}},
		[]models.Company{{ID: "co1"}},
		nil,
	)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	if !result.Success {
		t.Error("expected Success")
	}
	if result.Message != "Synced 3 records" {
		t.Errorf("Message = %q", result.Message)
	}
	if len(payload.Contacts) != 2 || len(payload.Companies) != 1 || len(payload.Tasks) != 0 {
		t.Errorf("payload sizes = %d/%d/%d, want 2/1/0",
			len(payload.Contacts), len(payload.Companies), len(payload.Tasks))
	}
}

func TestSyncUnsuccessfulResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SyncResult{Success: false, Message: "quota exceeded"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	result, err := client.Sync(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatalf("Sync transport failed: %v", err)
	}
	if result.Success {
		t.Error("expected Success false to pass through to the caller")
	}
}
