// shared/registry/registrar.go
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Options carries the registration timing knobs from the service config.
type Options struct {
	ServiceIP               string
	ServicePort             int
	HeartbeatInterval       time.Duration
	HeartbeatTTL            time.Duration
	RegistryCleanupInterval time.Duration
}

// Registrar self-registers this process in Redis and keeps the entry fresh
// with periodic heartbeats, so peers can see which instances are alive.
type Registrar struct {
	redisClient *redis.Client
	serviceType string
	opts        Options
	instanceID  string
	stopChan    chan struct{}
	doneChan    chan struct{}
}

func NewRegistrar(redisClient *redis.Client, serviceType string, opts Options) *Registrar {
	return &Registrar{
		redisClient: redisClient,
		serviceType: serviceType,
		opts:        opts,
		instanceID:  fmt.Sprintf("%s-%s", serviceType, uuid.New().String()),
		stopChan:    make(chan struct{}),
		doneChan:    make(chan struct{}),
	}
}

// Start begins registration and heartbeating in a background goroutine.
func (r *Registrar) Start() {
	log.Printf("Starting registrar for %s (ID: %s) at %s:%d",
		r.serviceType, r.instanceID, r.opts.ServiceIP, r.opts.ServicePort)
	go r.run()
}

// Stop halts heartbeating and removes this instance from the registry.
func (r *Registrar) Stop() {
	close(r.stopChan)
	<-r.doneChan

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hashKey := redisRegistryHashPrefix + r.serviceType
	if _, err := r.redisClient.HDel(ctx, hashKey, r.instanceID).Result(); err != nil {
		log.Printf("ERROR: Failed to remove instance %s from registry on shutdown: %v", r.instanceID, err)
	} else {
		log.Printf("INFO: Instance %s removed from registry on shutdown.", r.instanceID)
	}
}

func (r *Registrar) run() {
	defer close(r.doneChan)

	ticker := time.NewTicker(r.opts.HeartbeatInterval)
	defer ticker.Stop()

	r.register()

	if r.opts.RegistryCleanupInterval > 0 {
		go r.cleanupLoop()
	}

	for {
		select {
		case <-ticker.C:
			r.register()
		case <-r.stopChan:
			return
		}
	}
}

func (r *Registrar) register() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	info := InstanceInfo{
		InstanceID:  r.instanceID,
		ServiceType: r.serviceType,
		IP:          r.opts.ServiceIP,
		Port:        r.opts.ServicePort,
		LastSeen:    time.Now().UnixMilli(),
	}

	infoJSON, err := json.Marshal(info)
	if err != nil {
		log.Printf("ERROR: Failed to marshal InstanceInfo for %s: %v", r.instanceID, err)
		return
	}

	hashKey := redisRegistryHashPrefix + r.serviceType
	if _, err := r.redisClient.HSet(ctx, hashKey, r.instanceID, infoJSON).Result(); err != nil {
		log.Printf("ERROR: Failed to heartbeat instance %s: %v", r.instanceID, err)
	}
}

// cleanupLoop periodically drops registry entries whose heartbeat lapsed.
func (r *Registrar) cleanupLoop() {
	ticker := time.NewTicker(r.opts.RegistryCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.removeStale()
		case <-r.stopChan:
			return
		}
	}
}

func (r *Registrar) removeStale() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashKey := redisRegistryHashPrefix + r.serviceType
	results, err := r.redisClient.HGetAll(ctx, hashKey).Result()
	if err != nil {
		log.Printf("ERROR: Registry cleanup failed to list instances: %v", err)
		return
	}

	now := time.Now()
	for instanceID, infoJSON := range results {
		var info InstanceInfo
		if err := json.Unmarshal([]byte(infoJSON), &info); err != nil {
			log.Printf("WARN: Registry cleanup: corrupt entry %s, deleting: %v", instanceID, err)
			if _, delErr := r.redisClient.HDel(ctx, hashKey, instanceID).Result(); delErr != nil {
				log.Printf("ERROR: Registry cleanup: failed to delete corrupt entry %s: %v", instanceID, delErr)
			}
			continue
		}
		if now.Sub(time.UnixMilli(info.LastSeen)) > r.opts.HeartbeatTTL {
			if _, delErr := r.redisClient.HDel(ctx, hashKey, instanceID).Result(); delErr != nil {
				log.Printf("ERROR: Registry cleanup: failed to delete stale instance %s: %v", instanceID, delErr)
			} else {
				log.Printf("INFO: Registry cleanup: removed stale instance %s.", instanceID)
			}
		}
	}
}

// InstanceID returns the unique id assigned to this process.
func (r *Registrar) InstanceID() string {
	return r.instanceID
}

// ServiceType returns the registered service type.
func (r *Registrar) ServiceType() string {
	return r.serviceType
}
