package configs

import "strings"

// Backend selects which campaign store the service runs against. "memory"
// is a self-contained demo mode with seeded data; "postgres" is the
// persistent store. Both implement the same repository contract.
type Backend struct {
	// Kind is "memory" or "postgres".
	Kind string `env:"KIND" envDefault:"memory"`
	// Seed inserts the demo campaigns on startup.
	Seed bool `env:"SEED" envDefault:"true"`
}

// UsePostgres reports whether the postgres store was selected.
func (b Backend) UsePostgres() bool {
	return strings.EqualFold(b.Kind, "postgres")
}
