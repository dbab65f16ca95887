package config

import "os"

// Development reports whether DEVELOPMENT is set to anything but "0". In
// development mode the session log is written at debug level.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
