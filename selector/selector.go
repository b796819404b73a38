// Package selector provides the integration instance selector. Given an integration type, it resolves the list of
// user-configured instances of that type from the instance store and enforces the auto-selection and creation-flow
// rules of the workflow builder.
package selector

import (
	"context"
	"sync"

	log "go.arcalot.io/log/v2"
)

// Instance is one configured, credentialed instantiation of an integration type, owned by the instance store.
type Instance struct {
	ID   string
	Name string
	Type string
}

// InstanceStore is the external collaborator holding the configured integration instances.
type InstanceStore interface {
	// ListInstances returns all configured instances across all integration types.
	ListInstances(ctx context.Context) ([]Instance, error)
	// CreateInstance stores a new instance of the given type and returns it.
	CreateInstance(ctx context.Context, integrationType string, instanceConfig map[string]string) (Instance, error)
}

// Sentinel choice values offered alongside the configured instances.
const (
	// ChoiceNew triggers the creation flow for a new instance.
	ChoiceNew = "__new__"
	// ChoiceManage delegates to the external settings surface without mutating the selection.
	ChoiceManage = "__manage__"
)

// Selector binds a workflow node to one configured instance of an integration type.
type Selector struct {
	logger log.Logger
	store  InstanceStore

	// onChange is invoked whenever the selection changes, including the one-time auto-selection.
	onChange func(instanceID string)
	// onOpenSettings is invoked when the manage choice is taken. May be nil.
	onOpenSettings func()

	lock            sync.Mutex
	integrationType string
	selected        string
	instances       []Instance
	// autoSelected latches after the single permitted auto-selection for the current type.
	autoSelected bool
	// generation invalidates in-flight refreshes when the inputs change, so a stale fetch resolving late is
	// discarded instead of overwriting newer data.
	generation uint64
}

// New creates a selector for the given integration type.
func New(
	logger log.Logger,
	store InstanceStore,
	integrationType string,
	onChange func(instanceID string),
	onOpenSettings func(),
) *Selector {
	return &Selector{
		logger:          logger,
		store:           store,
		integrationType: integrationType,
		onChange:        onChange,
		onOpenSettings:  onOpenSettings,
	}
}

// Refresh re-fetches the instance list and filters it to the selector's integration type. A fetch failure degrades
// to an empty list so the caller can still render the "no integrations configured" state with a creation choice.
// Auto-selection fires at most once per (type, empty-selection) transition: exactly one configured instance and no
// current selection.
func (s *Selector) Refresh(ctx context.Context) {
	s.lock.Lock()
	s.generation++
	generation := s.generation
	integrationType := s.integrationType
	s.lock.Unlock()

	all, err := s.store.ListInstances(ctx)
	if err != nil {
		s.logger.Warningf("Failed to load integration instances for %s (%v)", integrationType, err)
		all = nil
	}
	filtered := make([]Instance, 0, len(all))
	for _, instance := range all {
		if instance.Type == integrationType {
			filtered = append(filtered, instance)
		}
	}

	var autoSelect string
	s.lock.Lock()
	if generation != s.generation {
		// A newer refresh superseded this one while the fetch was in flight.
		s.lock.Unlock()
		return
	}
	s.instances = filtered
	if len(filtered) == 1 && s.selected == "" && !s.autoSelected {
		s.autoSelected = true
		s.selected = filtered[0].ID
		autoSelect = filtered[0].ID
	}
	s.lock.Unlock()

	if autoSelect != "" && s.onChange != nil {
		s.onChange(autoSelect)
	}
}

// SetType switches the selector to a different integration type, clearing the selection and re-arming the
// auto-selection latch. Call Refresh afterwards to load the new type's instances.
func (s *Selector) SetType(integrationType string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.integrationType == integrationType {
		return
	}
	s.integrationType = integrationType
	s.selected = ""
	s.instances = nil
	s.autoSelected = false
	s.generation++
}

// SetSelected applies an externally-supplied selection, e.g. a value restored from a saved workflow document.
func (s *Selector) SetSelected(instanceID string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.selected = instanceID
}

// Selected returns the currently selected instance ID, or an empty string.
func (s *Selector) Selected() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.selected
}

// Instances returns the last fetched instance list for the selector's type.
func (s *Selector) Instances() []Instance {
	s.lock.Lock()
	defer s.lock.Unlock()
	result := make([]Instance, len(s.instances))
	copy(result, s.instances)
	return result
}

// Choices returns the selectable values: the creation and manage sentinels followed by the configured instances.
// The two sentinels are always present, even with an empty instance list.
func (s *Selector) Choices() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	choices := make([]string, 0, len(s.instances)+2)
	choices = append(choices, ChoiceNew, ChoiceManage)
	for _, instance := range s.instances {
		choices = append(choices, instance.ID)
	}
	return choices
}

// Choose dispatches a selected value. Sentinels route to the creation flow or the settings surface; any other
// value becomes the selection and is reported through the change callback.
func (s *Selector) Choose(ctx context.Context, value string) error {
	switch value {
	case ChoiceNew:
		_, err := s.CreateNew(ctx, nil)
		return err
	case ChoiceManage:
		if s.onOpenSettings != nil {
			s.onOpenSettings()
		}
		return nil
	default:
		s.lock.Lock()
		s.selected = value
		s.lock.Unlock()
		if s.onChange != nil {
			s.onChange(value)
		}
		return nil
	}
}

// CreateNew runs the creation flow: it stores a new instance of the selector's type, refreshes the visible list
// and selects the new instance.
func (s *Selector) CreateNew(ctx context.Context, instanceConfig map[string]string) (Instance, error) {
	s.lock.Lock()
	integrationType := s.integrationType
	s.lock.Unlock()

	instance, err := s.store.CreateInstance(ctx, integrationType, instanceConfig)
	if err != nil {
		return Instance{}, err
	}
	s.Refresh(ctx)
	s.lock.Lock()
	s.selected = instance.ID
	s.lock.Unlock()
	if s.onChange != nil {
		s.onChange(instance.ID)
	}
	return instance, nil
}
