package domain

import "time"

// Zone is one execution zone: a named group of worker agents with its own operational parameters.
// Name is set once by the zone loader and never changed afterwards; every other field is bound from
// flat configuration keys zone.<name>.<field_in_snake_case>.
type Zone struct {
	Name         string        `bind:"-" json:"name"`
	Provider     string        `json:"provider,omitempty"`
	ProviderURL  string        `json:"provider_url,omitempty"`
	CloudImage   string        `json:"cloud_image,omitempty"`
	MinAgents    int           `json:"min_agents"`
	MaxAgents    int           `json:"max_agents"`
	AgentTimeout time.Duration `json:"agent_timeout"`
	Priority     float64       `json:"priority"`
	Enabled      bool          `json:"enabled"`
	Tags         []string      `json:"tags,omitempty"`
}
