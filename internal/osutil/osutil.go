// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import "os"

// Provider abstracts the process environment used while resolving configuration.
type Provider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Environ() []string
	IsTerminal(fd uintptr) bool
}

// DefaultProvider uses real OS functions.
type DefaultProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Environ returns the process environment as KEY=value pairs.
func (DefaultProvider) Environ() []string {
	return os.Environ()
}

// IsTerminal reports whether fd refers to a terminal.
func (DefaultProvider) IsTerminal(fd uintptr) bool {
	return isTerminal(fd)
}

// OS is the package-level provider instance.
// In production, this is DefaultProvider. Tests can replace it.
var OS Provider = DefaultProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p Provider) {
	OS = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	OS = DefaultProvider{}
}
