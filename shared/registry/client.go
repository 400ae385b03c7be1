// shared/registry/client.go
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client reads the instance registry. Kept separate from Registrar so a
// reader does not need registration credentials of its own.
type Client struct {
	redisClient    *redis.Client
	serviceTimeout time.Duration
}

func NewClient(redisClient *redis.Client, serviceTimeout time.Duration) *Client {
	return &Client{
		redisClient:    redisClient,
		serviceTimeout: serviceTimeout,
	}
}

// ActiveInstances returns the instances of a service type whose heartbeat
// is within the timeout, keyed by instance id.
func (c *Client) ActiveInstances(ctx context.Context, serviceType string) (map[string]InstanceInfo, error) {
	key := redisRegistryHashPrefix + serviceType
	results, err := c.redisClient.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list instances of type %s: %w", serviceType, err)
	}

	active := make(map[string]InstanceInfo)
	now := time.Now()
	for instanceID, infoJSON := range results {
		var info InstanceInfo
		if err := json.Unmarshal([]byte(infoJSON), &info); err != nil {
			log.Printf("WARN: Registry client: corrupt entry for %s: %v", instanceID, err)
			continue
		}
		if now.Sub(time.UnixMilli(info.LastSeen)) <= c.serviceTimeout {
			active[instanceID] = info
		}
	}
	return active, nil
}
