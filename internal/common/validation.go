package common

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateNotEmpty validates that a string is not blank
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateAliasName validates a server alias name (used as an ssh Host
// pattern, so whitespace and wildcard characters are rejected)
func ValidateAliasName(name string) error {
	if name == "" {
		return fmt.Errorf("alias name cannot be empty")
	}

	if len(name) > 64 {
		return fmt.Errorf("alias name too long (max 64 characters): %s", name)
	}

	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.') {
			return fmt.Errorf("alias name contains invalid character: %s", name)
		}
	}

	return nil
}

// ValidateHost validates a hostname (basic validation)
func ValidateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host cannot be empty")
	}

	if len(host) > 253 {
		return fmt.Errorf("host name too long: %s", host)
	}

	parts := strings.Split(host, ".")
	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("invalid host (empty label): %s", host)
		}
		if len(part) > 63 {
			return fmt.Errorf("host label too long: %s", part)
		}

		for i, c := range part {
			if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-') {
				return fmt.Errorf("invalid character in host: %s", host)
			}
			// Hyphen cannot be at start or end
			if c == '-' && (i == 0 || i == len(part)-1) {
				return fmt.Errorf("host label cannot start or end with hyphen: %s", part)
			}
		}
	}

	return nil
}

// ValidatePort validates a port number (1-65535)
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", port)
	}
	return nil
}

// ValidateEndpoint validates an API endpoint URL (http or https, with host)
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %s", endpoint)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint must use http or https: %s", endpoint)
	}

	if u.Host == "" {
		return fmt.Errorf("endpoint is missing a host: %s", endpoint)
	}

	return nil
}
