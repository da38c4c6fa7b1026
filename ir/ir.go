// Package ir defines the database-agnostic intermediate representation
// produced by the dialect connectors and consumed by the generation
// engine. Connectors normalize every raw column type into one of the
// generic categories below; the engine never looks at dialect-specific
// types except through the configured type mappings.
package ir

// Generic type categories. This set is the contract boundary between
// schema introspection and code generation.
const (
	String   = "string"
	Integer  = "integer"
	Float    = "float"
	Boolean  = "boolean"
	Datetime = "datetime"
	Bytes    = "bytes"
)

// DatabaseSchema is a fully introspected database. It is built once per
// run and never mutated afterwards.
type DatabaseSchema struct {
	Name   string  `msgpack:"name"`
	Tables []Table `msgpack:"tables"`
}

// Table is a single table. Column order is significant: it determines
// the order of the emitted fields.
type Table struct {
	Name    string   `msgpack:"name"`
	Columns []Column `msgpack:"columns"`
}

// Column describes one column of a table. DefaultValue and Comment are
// empty when the database reports none.
type Column struct {
	Name         string `msgpack:"name"`
	DatabaseType string `msgpack:"database_type"`
	GenericType  string `msgpack:"generic_type"`
	Nullable     bool   `msgpack:"nullable"`
	DefaultValue string `msgpack:"default_value"`
	Comment      string `msgpack:"comment"`
	PrimaryKey   bool   `msgpack:"primary_key"`
}
