// ABOUTME: One-time local-to-cloud migration orchestrator
// ABOUTME: State machine: idle, confirming, syncing, succeeded or failed
package syncer

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/Davi-web/cms-dashboard/api"
	"github.com/Davi-web/cms-dashboard/db"
	"github.com/Davi-web/cms-dashboard/models"
	"github.com/Davi-web/cms-dashboard/session"
	"github.com/Davi-web/cms-dashboard/store"
)

// State is the orchestrator's position in the migration lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateConfirming State = "confirming"
	StateSyncing    State = "syncing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Counts is the per-collection tally shown on the confirmation prompt.
type Counts struct {
	Contacts  int
	Companies int
	Tasks     int
}

// Total is the number of records the bulk call would carry.
func (c Counts) Total() int {
	return c.Contacts + c.Companies + c.Tasks
}

// Progress reports a stage boundary during syncing.
type Progress struct {
	Percent int
	Stage   string
}

// Orchestrator drives the one-time upload of local collections to the remote
// record service. Local data is never deleted by any transition; only the
// persisted one-time flag keeps the prompt from repeating.
type Orchestrator struct {
	store    *store.Store
	client   *api.Client
	sessions *session.Manager
	history  *sql.DB // sync attempt log, may be nil
	log      *logrus.Entry

	mu      sync.Mutex
	state   State
	lastErr error

	onProgress func(Progress)
	onComplete func()
}

// New creates an orchestrator in the idle state. history may be nil when no
// attempt log is wanted.
func New(st *store.Store, client *api.Client, sessions *session.Manager, history *sql.DB) *Orchestrator {
	return &Orchestrator{
		store:    st,
		client:   client,
		sessions: sessions,
		history:  history,
		log:      logrus.WithField("component", "syncer"),
		state:    StateIdle,
	}
}

// OnProgress registers the stage callback used while syncing.
func (o *Orchestrator) OnProgress(fn func(Progress)) { o.onProgress = fn }

// OnComplete registers the hook fired once on entering succeeded. Callers use
// it to discard cached remote reads so the next read reflects synced data.
func (o *Orchestrator) OnComplete(fn func()) { o.onComplete = fn }

// State returns the current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Err returns the failure from the last attempt, if any.
func (o *Orchestrator) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Counts tallies the local collections.
func (o *Orchestrator) Counts() Counts {
	return Counts{
		Contacts:  len(store.Get(o.store, store.KeyContacts, []models.Contact{})),
		Companies: len(store.Get(o.store, store.KeyCompanies, []models.Company{})),
		Tasks:     len(store.Get(o.store, store.KeyTasks, []models.Task{})),
	}
}

// Evaluate decides whether the one-time prompt is due: a session is active,
// at least one local collection is non-empty, and this profile has not seen
// the prompt before. Entering confirming sets the flag immediately, so the
// prompt fires at most once per profile whatever the user then chooses.
func (o *Orchestrator) Evaluate() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateIdle {
		return o.state
	}
	if !o.sessions.Active() {
		return o.state
	}
	if o.Counts().Total() == 0 {
		return o.state
	}
	if o.store.Flag(store.FlagShownSync) {
		return o.state
	}

	if err := o.store.SetFlag(store.FlagShownSync, true); err != nil {
		o.log.WithError(err).Warn("failed to persist sync prompt flag")
	}
	o.state = StateConfirming
	return o.state
}

// Prompt re-opens the confirmation regardless of the one-time flag, for the
// explicit "sync local data" entry point. It still requires a session and
// something to upload.
func (o *Orchestrator) Prompt() (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.sessions.Active() {
		return o.state, session.ErrNoSession
	}
	if o.Counts().Total() == 0 {
		return o.state, fmt.Errorf("no local data found to sync")
	}
	o.state = StateConfirming
	return o.state, nil
}

// Decline leaves confirming without transferring anything. The one-time flag
// stays set, so the automatic prompt does not reappear for this profile.
func (o *Orchestrator) Decline() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateConfirming {
		o.state = StateIdle
	}
}

// Abandon gives up after a failure without data loss on either side.
func (o *Orchestrator) Abandon() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateFailed {
		o.state = StateIdle
		o.lastErr = nil
	}
}

// Confirm runs the bulk upload after explicit user confirmation.
func (o *Orchestrator) Confirm(ctx context.Context) error {
	o.mu.Lock()
	if o.state != StateConfirming {
		state := o.state
		o.mu.Unlock()
		return fmt.Errorf("cannot confirm from state %q", state)
	}
	o.mu.Unlock()
	return o.run(ctx)
}

// Retry re-enters syncing after a failure. Local data was never touched, so
// eventual success reaches the same end state as a first-try success.
func (o *Orchestrator) Retry(ctx context.Context) error {
	o.mu.Lock()
	if o.state != StateFailed {
		state := o.state
		o.mu.Unlock()
		return fmt.Errorf("cannot retry from state %q", state)
	}
	o.mu.Unlock()
	return o.run(ctx)
}

// run performs one syncing attempt: a single bulk call carrying the full
// contents of all three local collections. No partial per-record retry; the
// service owns merge and dedup semantics.
func (o *Orchestrator) run(ctx context.Context) error {
	o.mu.Lock()
	o.state = StateSyncing
	o.lastErr = nil
	o.mu.Unlock()

	o.progress(25, "assembling local data")
	contacts := models.NormalizeContacts(store.Get(o.store, store.KeyContacts, []models.Contact{}))
	companies := models.NormalizeCompanies(store.Get(o.store, store.KeyCompanies, []models.Company{}))
	tasks := models.NormalizeTasks(store.Get(o.store, store.KeyTasks, []models.Task{}))

	counts := Counts{Contacts: len(contacts), Companies: len(companies), Tasks: len(tasks)}
	attemptID := ulid.Make().String()
	o.recordBegin(attemptID, counts)

	result, err := o.client.Sync(ctx, contacts, companies, tasks)
	o.progress(75, "uploading")

	if err == nil && !result.Success {
		if result.Message != "" {
			err = fmt.Errorf("sync failed: %s", result.Message)
		} else {
			err = fmt.Errorf("sync failed")
		}
	}

	if err != nil {
		o.log.WithError(err).Error("bulk sync failed")
		o.recordFinish(attemptID, db.AttemptFailed, err)
		o.mu.Lock()
		o.state = StateFailed
		o.lastErr = err
		o.mu.Unlock()
		return err
	}

	// Local collections stay put as an offline backup.
	o.recordFinish(attemptID, db.AttemptSucceeded, nil)
	o.mu.Lock()
	o.state = StateSucceeded
	o.mu.Unlock()

	o.progress(100, "done")
	o.log.WithFields(logrus.Fields{
		"contacts":  counts.Contacts,
		"companies": counts.Companies,
		"tasks":     counts.Tasks,
	}).Info("bulk sync succeeded")

	if o.onComplete != nil {
		o.onComplete()
	}
	return nil
}

func (o *Orchestrator) progress(percent int, stage string) {
	if o.onProgress != nil {
		o.onProgress(Progress{Percent: percent, Stage: stage})
	}
}

func (o *Orchestrator) recordBegin(id string, counts Counts) {
	if o.history == nil {
		return
	}
	if err := db.BeginAttempt(o.history, id, counts.Contacts, counts.Companies, counts.Tasks); err != nil {
		o.log.WithError(err).Warn("failed to record sync attempt")
	}
}

func (o *Orchestrator) recordFinish(id, status string, cause error) {
	if o.history == nil {
		return
	}
	var msg *string
	if cause != nil {
		s := cause.Error()
		msg = &s
	}
	if err := db.FinishAttempt(o.history, id, status, msg); err != nil {
		o.log.WithError(err).Warn("failed to finish sync attempt record")
	}
}
