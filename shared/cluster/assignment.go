// shared/cluster/assignment.go
package cluster

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/stathat/consistent"
	"github.com/streamkit/stream-manager/shared/registry"
)

// AssignmentManager decides whether this instance owns a named singleton
// task (the hourly upload sweep) by consistent-hashing the task key over
// the set of live instances from the registry. With one instance running
// it always wins; with replicas exactly one does.
type AssignmentManager struct {
	registryClient *registry.Client
	registrar      *registry.Registrar
	updateInterval time.Duration
	consistentHash *consistent.Consistent
	chMux          sync.RWMutex
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewAssignmentManager(registryClient *registry.Client, registrar *registry.Registrar, updateInterval time.Duration) *AssignmentManager {
	ctx, cancel := context.WithCancel(context.Background())

	am := &AssignmentManager{
		registryClient: registryClient,
		registrar:      registrar,
		updateInterval: updateInterval,
		consistentHash: consistent.New(),
		ctx:            ctx,
		cancel:         cancel,
	}

	// Seed the ring with ourselves so IsResponsible works before the
	// first registry refresh.
	am.chMux.Lock()
	am.consistentHash.Add(am.registrar.InstanceID())
	am.chMux.Unlock()

	return am
}

// Start runs the periodic ring refresh. Run in a goroutine.
func (am *AssignmentManager) Start() {
	ticker := time.NewTicker(am.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-am.ctx.Done():
			log.Println("AssignmentManager: refresh loop shutting down.")
			return
		case <-ticker.C:
			am.refreshRing()
		}
	}
}

// Stop shuts the refresh loop down.
func (am *AssignmentManager) Stop() {
	am.cancel()
}

func (am *AssignmentManager) refreshRing() {
	active, err := am.registryClient.ActiveInstances(am.ctx, am.registrar.ServiceType())
	if err != nil {
		log.Printf("ERROR: AssignmentManager: failed to list active instances: %v", err)
		return
	}

	members := make([]string, 0, len(active))
	for id := range active {
		members = append(members, id)
	}
	slices.Sort(members)

	am.chMux.Lock()
	defer am.chMux.Unlock()

	current := am.consistentHash.Members()
	slices.Sort(current)

	if !slices.Equal(members, current) {
		ring := consistent.New()
		for _, member := range members {
			ring.Add(member)
		}
		am.consistentHash = ring
		log.Printf("AssignmentManager: ring updated, active members: %v", members)
	}
}

// IsResponsible reports whether this instance owns the given task key.
func (am *AssignmentManager) IsResponsible(taskKey string) (bool, error) {
	am.chMux.RLock()
	defer am.chMux.RUnlock()

	if len(am.consistentHash.Members()) == 0 {
		return false, fmt.Errorf("assignment ring is empty")
	}

	owner, err := am.consistentHash.Get(taskKey)
	if err != nil {
		return false, fmt.Errorf("failed to resolve owner for task %q: %w", taskKey, err)
	}
	return owner == am.registrar.InstanceID(), nil
}
