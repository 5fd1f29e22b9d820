package launch

import "os"

// Execution-mode environment contract. The engine and anything it
// loads read EnvVar to detect a test context.
const (
	// EnvVar is the ambient execution-mode variable.
	EnvVar = "SKIFF_ENV"

	// TestEnv is the value EnsureTestEnv applies when the caller has
	// not set one.
	TestEnv = "test"
)

// EnsureTestEnv sets EnvVar to TestEnv unless the caller already set
// it. Runs once at startup, before any component.
func EnsureTestEnv() error {
	if os.Getenv(EnvVar) != "" {
		return nil
	}
	return os.Setenv(EnvVar, TestEnv)
}
