package auth

import "time"

// Config groups the knobs of the session layer
type Config struct {
	JWT struct {
		SecretKey  string
		Issuer     string
		SessionTTL time.Duration
	}
	Cookie struct {
		Name     string
		Secure   bool
		HTTPOnly bool
	}
}

// DefaultConfig returns sensible development defaults
func DefaultConfig() Config {
	var cfg Config
	cfg.JWT.Issuer = "chamba-api"
	cfg.JWT.SessionTTL = 24 * time.Hour
	cfg.Cookie.Name = "chamba_session"
	cfg.Cookie.Secure = false
	cfg.Cookie.HTTPOnly = true
	return cfg
}
