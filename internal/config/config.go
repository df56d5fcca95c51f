package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr         string
	ResendAPIKey string
	MailFrom     string
	MailTo       string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:         getenv("TAFC_ADDR", ":8080"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     getenv("RESEND_FROM", "TAFC <sales@tafc.tn>"),
		MailTo:       os.Getenv("CONTACT_TO"),
	}
}
