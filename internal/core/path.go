package core

import (
	"fmt"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// ValidateAssetPath rejects request paths that must never reach the file
// system.
func ValidateAssetPath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(path, "\\") {
		return fmt.Errorf("path cannot contain backslashes")
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path cannot contain NUL bytes")
	}

	return nil
}
