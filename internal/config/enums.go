package config

// Environment represents the runtime environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

func (e Environment) IsValid() bool {
	switch e {
	case EnvDevelopment, EnvProduction:
		return true
	}
	return false
}

func (e Environment) IsProduction() bool {
	return e == EnvProduction
}

// Driver represents a supported database backend
type Driver string

const (
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

func (d Driver) IsValid() bool {
	switch d {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		return true
	}
	return false
}

// Env returns the configured environment as a typed value.
func (c *Config) Env() Environment {
	return Environment(c.Environment)
}

// DatabaseDriver returns the configured driver as a typed value.
func (c DatabaseConfig) DatabaseDriver() Driver {
	return Driver(c.Driver)
}
