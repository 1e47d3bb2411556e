package models

// SessionKeyMapsAPIKey is the session-state key that overrides the configured maps key.
const SessionKeyMapsAPIKey = "maps_api_key"

// Session is the session-scoped state an agent attaches to a tool invocation.
type Session struct {
	MapsAPIKey string `json:"maps_api_key,omitempty"`
}

// SessionFromState extracts the known keys from a free-form state map.
func SessionFromState(state map[string]interface{}) Session {
	var s Session
	if v, ok := state[SessionKeyMapsAPIKey].(string); ok {
		s.MapsAPIKey = v
	}
	return s
}
