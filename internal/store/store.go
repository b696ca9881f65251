// Package store implements the resume state store: a constructed, injected
// state container with write-through durable persistence and synchronous
// subscriber notification. Mutators are total; invalid identifiers are
// absorbed as no-ops and invalid template IDs fall back to the default.
package store

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// StorageKey is the fixed key the state document is persisted under.
const StorageKey = "resume-storage"

// PersistedState is the single JSON document written through on every
// mutation and rehydrated at construction. The shape is unversioned; a
// stored document is adopted as-is.
type PersistedState struct {
	ActiveSection    types.Section    `json:"activeSection"`
	Data             types.ResumeData `json:"data"`
	ActiveTemplateID string           `json:"activeTemplateId"`
}

// Persister stores one state document under StorageKey.
// Load returns ok=false when no document has been persisted yet.
type Persister interface {
	Load(ctx context.Context) (PersistedState, bool, error)
	Save(ctx context.Context, state PersistedState) error
}

// Snapshot is a point-in-time deep copy of the store state handed to
// readers and subscribers.
type Snapshot struct {
	ActiveSection      types.Section              `json:"activeSection"`
	Data               types.ResumeData           `json:"data"`
	ActiveTemplate     templates.ResumeTemplate   `json:"activeTemplate"`
	AvailableTemplates []templates.ResumeTemplate `json:"availableTemplates"`
}

// Store owns the resume state. All access goes through its methods; every
// mutation persists write-through and notifies subscribers synchronously
// after the state transition completes.
type Store struct {
	mu        sync.Mutex
	persister Persister
	available []templates.ResumeTemplate

	section types.Section
	data    types.ResumeData
	active  templates.ResumeTemplate

	subs    map[int]func(Snapshot)
	nextSub int
}

// New creates a store over the given persister and template list,
// rehydrating from a previously persisted document if one exists. A nil
// persister disables persistence; an empty template list uses the built-ins.
func New(ctx context.Context, persister Persister, available []templates.ResumeTemplate) *Store {
	if len(available) == 0 {
		available = templates.Builtin()
	}

	s := &Store{
		persister: persister,
		available: available,
		section:   types.SectionPersonalInfo,
		data:      types.EmptyResumeData(),
		active:    available[0],
		subs:      map[int]func(Snapshot){},
	}

	if persister != nil {
		persisted, ok, err := persister.Load(ctx)
		if err != nil {
			log.Printf("store: failed to load persisted state: %v", err)
		} else if ok {
			if persisted.ActiveSection.Valid() {
				s.section = persisted.ActiveSection
			}
			s.data = persisted.Data.Clone()
			s.active = templates.Lookup(available, persisted.ActiveTemplateID)
		}
	}

	return s
}

// newID returns an identifier unique with overwhelming probability across
// processes, so identifiers stay valid after rehydration.
func newID() string {
	return uuid.NewString()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	available := make([]templates.ResumeTemplate, len(s.available))
	copy(available, s.available)
	return Snapshot{
		ActiveSection:      s.section,
		Data:               s.data.Clone(),
		ActiveTemplate:     s.active,
		AvailableTemplates: available,
	}
}

// Subscribe registers fn to be called synchronously after every mutation
// with a snapshot of the new state. It returns an unsubscribe function.
// Callbacks run inside the mutation's critical section and therefore must
// not call back into the store; work from the snapshot instead, or hand it
// off to another goroutine.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// commit persists the state write-through and notifies subscribers. It runs
// with the lock held for the whole save+notify phase so concurrent mutations
// cannot reorder durable writes or deliver snapshots out of order; the last
// persisted document always matches the last state transition. Persistence
// failures are logged, never surfaced to the mutating caller.
func (s *Store) commit() {
	snap := s.snapshotLocked()
	if s.persister != nil {
		persisted := PersistedState{
			ActiveSection:    s.section,
			Data:             snap.Data,
			ActiveTemplateID: s.active.ID,
		}
		if err := s.persister.Save(context.Background(), persisted); err != nil {
			log.Printf("store: failed to persist state: %v", err)
		}
	}
	for _, fn := range s.subs {
		fn(snap)
	}
}

// SetActiveSection sets the editor focus. Unknown sections are ignored.
func (s *Store) SetActiveSection(section types.Section) {
	if !section.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = section
	s.commit()
}

// ActiveSection returns the current editor focus.
func (s *Store) ActiveSection() types.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.section
}

// UpdatePersonalInfo merges the given fields into the personal info record.
// Fields not present in the patch retain their prior values.
func (s *Store) UpdatePersonalInfo(patch types.PersonalInfoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.data.PersonalInfo)
	s.commit()
}

// SetActiveTemplate selects the template with the given ID. An unknown ID
// silently falls back to the first available template; selection never fails.
func (s *Store) SetActiveTemplate(templateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = templates.Lookup(s.available, templateID)
	s.commit()
}

// ActiveTemplate returns the currently selected template.
func (s *Store) ActiveTemplate() templates.ResumeTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// AvailableTemplates returns the fixed template list.
func (s *Store) AvailableTemplates() []templates.ResumeTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]templates.ResumeTemplate, len(s.available))
	copy(out, s.available)
	return out
}

// ResumeData returns a deep copy of the current resume data.
func (s *Store) ResumeData() types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// ResetResumeData replaces the resume data with the all-empty default,
// leaving template selection and active section untouched.
func (s *Store) ResetResumeData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = types.EmptyResumeData()
	s.commit()
}

// SetResumeData replaces the resume data wholesale. Used after document import.
func (s *Store) SetResumeData(data types.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data.Clone()
	s.commit()
}
