// shared/registry/types.go
package registry

// InstanceInfo describes one registered stream-manager instance. Stored as
// JSON in a Redis hash keyed by service type; used to decide which live
// instance owns singleton background work (the upload sweep).
type InstanceInfo struct {
	InstanceID  string `json:"instanceId"`
	ServiceType string `json:"serviceType"`
	IP          string `json:"ip"`
	Port        int    `json:"port"`
	LastSeen    int64  `json:"lastSeen"` // unix milliseconds
}

// redisRegistryHashPrefix prefixes the Redis hash key holding instance
// registrations: "services:<serviceType>".
const redisRegistryHashPrefix = "services:"
