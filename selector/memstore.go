package selector

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryStore creates an in-memory instance store. It backs the CLI and the tests; production hosts supply
// their own InstanceStore implementation over their persistence layer.
func NewMemoryStore(seed ...Instance) InstanceStore {
	instances := make([]Instance, len(seed))
	copy(instances, seed)
	return &memoryStore{
		instances: instances,
	}
}

type memoryStore struct {
	lock      sync.Mutex
	instances []Instance
}

func (s *memoryStore) ListInstances(_ context.Context) ([]Instance, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	result := make([]Instance, len(s.instances))
	copy(result, s.instances)
	return result, nil
}

func (s *memoryStore) CreateInstance(
	_ context.Context,
	integrationType string,
	instanceConfig map[string]string,
) (Instance, error) {
	if integrationType == "" {
		return Instance{}, fmt.Errorf("cannot create an instance with an empty integration type")
	}
	name := instanceConfig["name"]
	if name == "" {
		name = integrationType
	}
	instance := Instance{
		ID:   uuid.NewString(),
		Name: name,
		Type: integrationType,
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.instances = append(s.instances, instance)
	return instance, nil
}
