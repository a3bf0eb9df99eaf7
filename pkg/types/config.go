package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "airlit/0.1 (curator@example.com)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the article retrieval stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Days is the publication window: how many days back to query (default 7).
	Days int `json:"days" yaml:"days"`

	// MaxPubMed is the maximum number of PubMed articles to request (default 8).
	MaxPubMed int `json:"max_pubmed" yaml:"max_pubmed"`

	// MaxCrossref is the maximum number of Crossref articles to request (default 8).
	MaxCrossref int `json:"max_crossref" yaml:"max_crossref"`

	// ContactEmail is sent to the upstream APIs (PubMed email parameter,
	// User-Agent comment) for polite-pool identification.
	ContactEmail string `json:"contact_email" yaml:"contact_email"`
}

// EmailConfig holds SMTP delivery settings for the review email.
// An empty Host or To disables delivery.
type EmailConfig struct {
	// Host is the SMTP server hostname.
	Host string `json:"host" yaml:"host"`

	// Port is the SMTP server port (default 587).
	Port int `json:"port" yaml:"port"`

	// From is the sender address. Falls back to Username when empty.
	From string `json:"from" yaml:"from"`

	// To is the comma-separated recipient list.
	To string `json:"to" yaml:"to"`

	// Username and Password authenticate against the SMTP server when both
	// are set.
	Username string `json:"username" yaml:"username"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// UseTLS controls STARTTLS negotiation (default true).
	UseTLS bool `json:"use_tls" yaml:"use_tls"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`
	Email EmailConfig `json:"email" yaml:"email"`
}
