package config

import (
	"fmt"
	"os"
	"strings"
)

// ResolveSecret reads a secret using the *_FILE convention: when
// envName+"_FILE" names a file its trimmed content wins, otherwise the value
// of envName is returned. Neither set yields "".
func ResolveSecret(envName string) (string, error) {
	fileEnv := envName + "_FILE"
	if filePath := os.Getenv(fileEnv); filePath != "" {
		content, err := os.ReadFile(filePath)
		if err != nil {
			// never include the secret itself
			return "", fmt.Errorf("read secret %s=%s: %w", fileEnv, filePath, err)
		}
		return strings.TrimSpace(string(content)), nil
	}
	return os.Getenv(envName), nil
}

// Redacted returns the database settings with the password masked, for
// startup logging.
func (d Database) Redacted() Database {
	if d.Password != "" {
		d.Password = "****"
	}
	return d
}
