package registry

// Lifetime controls how a container should cache instances produced for a
// registered contract.
type Lifetime int

const (
	// Transient is the default lifetime. The container constructs a fresh
	// instance on every resolution.
	Transient Lifetime = iota

	// Scoped instances are unique within one scope (commonly one request)
	// and isolated between scopes.
	Scoped

	// Singleton instances are constructed once and shared for the lifetime
	// of the container.
	Singleton
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Scoped:
		return "scoped"
	case Singleton:
		return "singleton"
	default:
		return "unknown"
	}
}
