package utils

import (
	"os/user"
	"regexp"
	"strings"
)

var nonEnvChars = regexp.MustCompile(`[^A-Z0-9_]`)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// EnvVarName builds an environment variable name from a prefix and a free-form suffix.
// The suffix is upper-cased and every character outside [A-Z0-9_] becomes an underscore.
func EnvVarName(prefix, suffix string) string {
	name := strings.ToUpper(strings.TrimSpace(suffix))
	name = nonEnvChars.ReplaceAllString(name, "_")
	return prefix + name
}
