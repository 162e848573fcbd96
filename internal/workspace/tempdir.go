// Package workspace provides scoped access to the user temporary directory.
package workspace

import "os"

// UserTempDirectory hands out the system temporary directory for the duration
// of a run. Closing it leaves the directory untouched.
type UserTempDirectory struct{}

// Path returns the system temporary directory.
func (UserTempDirectory) Path() string {
	return os.TempDir()
}

// Close is a no-op.
func (UserTempDirectory) Close() error {
	return nil
}

// WithUserTempDir calls fn with the user temporary directory.
func WithUserTempDir(fn func(dir string) error) error {
	tmp := UserTempDirectory{}
	defer func() { _ = tmp.Close() }()

	return fn(tmp.Path())
}
