package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (postgres, sqlite).
	Driver string `mapstructure:"driver" default:"postgres"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"gocards"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"gocards"`
	// SSLMode is the Postgres sslmode parameter.
	SSLMode string `mapstructure:"sslmode" default:"disable"`
	// Path is the database file path when the sqlite driver is used.
	Path string `mapstructure:"path" default:"gocards.db"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
