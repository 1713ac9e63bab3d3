package archway

import "log"

// Compile-time bounds. These fix the size of fixed-length types — a
// Signature is a [MaxComponentsPerArchetype]ComponentKind array, and each
// archetype's sparse component-array index is [MaxComponentKinds]*colbuf.Buffer
// — so they are true Go constants, not runtime-tunable fields.
const (
	// MaxComponentKinds bounds distinct component-kind ids; it fixes the
	// size of each archetype's sparse component-array index.
	MaxComponentKinds = 256

	// MaxComponentsPerArchetype bounds signature length.
	MaxComponentsPerArchetype = 16

	// MaxQueryComponents bounds the component set named by a single query.
	MaxQueryComponents = 16

	// CacheLineAlignment is the byte alignment applied to every component
	// array allocation.
	CacheLineAlignment = 64
)

// Sentinel marks unused trailing slots in a Signature. It is the maximum
// value representable by ComponentKind.
const Sentinel ComponentKind = ^ComponentKind(0)

// Config holds runtime tunables. DefaultEntityCapacity,
// DefaultArchetypeCapacity and DefaultQueryCapacity are read when an
// Instance is created; DefaultArchetypeRowCapacity is read each time an
// archetype is created, and Debug and Logger at each check or warning, so
// changing those three also affects instances already constructed.
var Config config = config{
	DefaultEntityCapacity:       65536,
	DefaultArchetypeCapacity:    512,
	DefaultQueryCapacity:        256,
	DefaultArchetypeRowCapacity: 256,
}

type config struct {
	// DefaultEntityCapacity is the entity table's initial row capacity.
	DefaultEntityCapacity int

	// DefaultArchetypeCapacity is the archetype index's initial capacity.
	DefaultArchetypeCapacity int

	// DefaultQueryCapacity is the query registry's initial capacity.
	DefaultQueryCapacity int

	// DefaultArchetypeRowCapacity is a freshly created archetype's initial
	// row capacity.
	DefaultArchetypeRowCapacity int

	// Debug gates programming-error assertions: in debug mode a violated
	// invariant (unknown entity, stride mismatch, too many kinds, duplicate
	// kind, removing an absent component) panics via bark.AddTrace; in
	// release mode it is returned as a plain error.
	Debug bool

	// Logger receives warnings for benign conditions (no archetype yet
	// matches a new query, a duplicate query definition). Nil disables
	// warnings.
	Logger *log.Logger
}

// SetDebug toggles assertion-style panics for programming errors.
func (c *config) SetDebug(on bool) {
	c.Debug = on
}

// SetLogger installs a logger for benign-condition warnings.
func (c *config) SetLogger(l *log.Logger) {
	c.Logger = l
}

func (c *config) warnf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
