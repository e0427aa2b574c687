// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Role names carried in access-token claims.
const (
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)
