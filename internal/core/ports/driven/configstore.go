package driven

// Configuration keys understood by the compiler.
const (
	ConfigInput           = "input"
	ConfigZerocopy        = "zerocopy"
	ConfigGoSourceOutput  = "emit.gosource.output"
	ConfigGoSourcePackage = "emit.gosource.package"
	ConfigSQLitePath      = "emit.sqlite.path"
)

// ConfigStore provides access to compiler configuration.
// Keys use dot notation; nested TOML tables are flattened on load.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Keys returns all configured keys, sorted.
	Keys() []string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
