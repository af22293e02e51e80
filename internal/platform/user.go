package platform

import "os"

// UserNameEnv lists the environment variables consulted for the OS user
// name, in order.
var UserNameEnv = []string{"USER", "USERNAME", "LOGNAME"}

// SystemUserName returns the first non-empty user name found in the
// environment, or an empty string.
func SystemUserName() string {
	for _, key := range UserNameEnv {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
