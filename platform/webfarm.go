package platform

// WebFarmService describes the current node within a web farm.
type WebFarmService interface {
	// ServerName returns the name this node is registered under.
	ServerName() string

	// WebFarmEnabled reports whether the application runs as a web farm.
	WebFarmEnabled() bool
}

// StaticWebFarm is a WebFarmService with fixed values. Web farm identity is
// process-wide, so this is usually all a host needs.
type StaticWebFarm struct {
	Name    string
	Enabled bool
}

func (s StaticWebFarm) ServerName() string   { return s.Name }
func (s StaticWebFarm) WebFarmEnabled() bool { return s.Enabled }
