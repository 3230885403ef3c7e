// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
