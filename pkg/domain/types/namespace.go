package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// NamespaceID represents a unique identifier for a knowledge namespace
type NamespaceID string

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9]+(?:[_-][a-zA-Z0-9]+)*$`)

// Validate checks if the NamespaceID is valid
func (x NamespaceID) Validate() error {
	if x == "" {
		return goerr.New("namespace ID cannot be empty")
	}
	if !idPattern.MatchString(string(x)) {
		return goerr.New("namespace ID must be alphanumeric with hyphens or underscores", goerr.V("id", x))
	}
	return nil
}

// String returns the string representation of NamespaceID
func (x NamespaceID) String() string {
	return string(x)
}
