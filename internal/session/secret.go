package session

import "os"

// fallbackPassword is the documented default when nothing else is configured.
const fallbackPassword = "letmein"

// passwordEnvVar supplies the group password when the config file leaves it
// empty. A .env file is honored when the caller loads it before startup.
const passwordEnvVar = "PASSWORD"

// ResolvePassword picks the group password: the configured value wins, then
// the environment, then the hard-coded fallback. First non-empty value wins;
// a missing source falls through silently.
func ResolvePassword(configured string) string {
	if configured != "" {
		return configured
	}
	if env := os.Getenv(passwordEnvVar); env != "" {
		return env
	}
	return fallbackPassword
}
