package constants

// Environments
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published after marketplace writes
const (
	EventRatingCreated       = "rating.created"
	EventRatingUpdated       = "rating.updated"
	EventRatingDeleted       = "rating.deleted"
	EventBusinessDeactivated = "business.deactivated"
)
