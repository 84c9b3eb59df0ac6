package llogs

// Driver is the minimal contract for a logs backend. The concrete driver
// installs itself as the default slog handler.
type Driver interface {
	Close() bool
}
