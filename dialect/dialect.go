// Package dialect introspects database schemas into the intermediate
// representation. Each supported database type gets a Connector that
// knows its catalog queries and its mapping from native column types to
// the generic type categories.
package dialect

import (
	"context"
	"fmt"

	"github.com/syssam/modelgen/ir"
)

// Supported database type identifiers.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
	Atlas    = "atlas"
)

// Connector introspects one live database.
type Connector interface {
	// Schema reads the tables and columns of dbName, in the catalog's
	// declared order.
	Schema(ctx context.Context, dbName string) (*ir.DatabaseSchema, error)
	Close() error
}

// Open connects to a database of the named type. The type set is
// closed: anything else is a configuration error.
func Open(ctx context.Context, dbType, dsn string) (Connector, error) {
	switch dbType {
	case MySQL:
		return openMySQL(ctx, dsn)
	case Postgres:
		return openPostgres(ctx, dsn)
	case SQLite:
		return openSQLite(ctx, dsn)
	case Atlas:
		return openAtlas(ctx, dsn)
	default:
		return nil, fmt.Errorf("modelgen: unsupported database type %q", dbType)
	}
}
