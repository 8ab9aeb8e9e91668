package domain

const (
	CollectionUser = "users"
)
const (
	CollectionUserPreferences = "user_preferences"
)
