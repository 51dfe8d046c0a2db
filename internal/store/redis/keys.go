package redis

import "fmt"

const (
	// KeyPrefixService is the prefix for service documents
	KeyPrefixService = "slatrack:service:"
	// KeyNames is the hash mapping service names to IDs
	KeyNames = "slatrack:names"
	// KeyAllServices is the key for the set of all service IDs
	KeyAllServices = "slatrack:services:all"
)

// ServiceKey returns the Redis key for a service document by ID
func ServiceKey(id string) string {
	return KeyPrefixService + id
}

// NamesKey returns the key of the name -> ID index hash
func NamesKey() string {
	return KeyNames
}

// AllServicesKey returns the key for the set of all service IDs
func AllServicesKey() string {
	return KeyAllServices
}

// ExtractServiceID extracts the service ID from a Redis key
func ExtractServiceID(key string) (string, error) {
	if len(key) <= len(KeyPrefixService) {
		return "", fmt.Errorf("invalid service key: %s", key)
	}
	return key[len(KeyPrefixService):], nil
}
