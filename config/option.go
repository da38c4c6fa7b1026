package config

import "fmt"

// Option overrides part of a loaded configuration, typically from
// command line flags. Overrides only change which databases, languages
// and destinations a run uses; they never alter per-table rendering.
type Option func(*Config) error

// WithActiveDatabase selects a different entry of config.databases.
func WithActiveDatabase(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return fmt.Errorf("modelgen: active database name cannot be empty")
		}
		c.ActiveDatabase = name
		return nil
	}
}

// WithDatabaseType overrides the db_type of the active database.
func WithDatabaseType(dbType string) Option {
	return func(c *Config) error {
		db, ok := c.Databases[c.ActiveDatabase]
		if !ok {
			return fmt.Errorf("modelgen: active database %q not found in config.databases", c.ActiveDatabase)
		}
		db.DBType = dbType
		c.Databases[c.ActiveDatabase] = db
		return nil
	}
}

// WithDSN overrides the connection string of the active database.
func WithDSN(dsn string) Option {
	return func(c *Config) error {
		db, ok := c.Databases[c.ActiveDatabase]
		if !ok {
			return fmt.Errorf("modelgen: active database %q not found in config.databases", c.ActiveDatabase)
		}
		db.DSN = dsn
		c.Databases[c.ActiveDatabase] = db
		return nil
	}
}

// WithDBName overrides the schema name of the active database.
func WithDBName(name string) Option {
	return func(c *Config) error {
		db, ok := c.Databases[c.ActiveDatabase]
		if !ok {
			return fmt.Errorf("modelgen: active database %q not found in config.databases", c.ActiveDatabase)
		}
		db.DBName = name
		c.Databases[c.ActiveDatabase] = db
		return nil
	}
}

// WithTargetLanguages replaces the configured target language list.
func WithTargetLanguages(langs ...string) Option {
	return func(c *Config) error {
		if len(langs) == 0 {
			return fmt.Errorf("modelgen: target language list cannot be empty")
		}
		c.Generation.TargetLanguages = langs
		return nil
	}
}

// WithOutputDir replaces the configured output directory.
func WithOutputDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return fmt.Errorf("modelgen: output directory cannot be empty")
		}
		c.Generation.OutputDir = dir
		return nil
	}
}

// WithTables restricts generation to the named tables, replacing any
// configured table name patterns.
func WithTables(tables ...string) Option {
	return func(c *Config) error {
		if len(tables) == 0 {
			return fmt.Errorf("modelgen: table list cannot be empty")
		}
		c.Generation.TableNamePatterns = &TablePatterns{Include: tables}
		return nil
	}
}

// Apply applies options in order and returns the first error.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
