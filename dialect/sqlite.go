package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/syssam/modelgen/ir"
)

type sqliteConnector struct {
	db *sql.DB
}

func openSQLite(ctx context.Context, dsn string) (Connector, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("modelgen: open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("modelgen: ping sqlite: %w", err)
	}
	return &sqliteConnector{db: db}, nil
}

func (c *sqliteConnector) Close() error { return c.db.Close() }

func (c *sqliteConnector) Schema(ctx context.Context, dbName string) (*ir.DatabaseSchema, error) {
	const tablesQuery = `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`
	rows, err := c.db.QueryContext(ctx, tablesQuery)
	if err != nil {
		return nil, fmt.Errorf("modelgen: list sqlite tables: %w", err)
	}
	defer rows.Close()

	schema := &ir.DatabaseSchema{Name: dbName}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("modelgen: scan sqlite table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("modelgen: iterate sqlite tables: %w", err)
	}
	for _, name := range names {
		table, err := c.table(ctx, name)
		if err != nil {
			return nil, err
		}
		schema.Tables = append(schema.Tables, table)
	}
	return schema, nil
}

func (c *sqliteConnector) table(ctx context.Context, tableName string) (ir.Table, error) {
	// PRAGMA table_info reports columns in declaration order. SQLite
	// keeps no column comments.
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", tableName))
	if err != nil {
		return ir.Table{}, fmt.Errorf("modelgen: inspect sqlite table %s: %w", tableName, err)
	}
	defer rows.Close()

	table := ir.Table{Name: tableName}
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, dataType   string
			defaultValue     sql.NullString
		)
		if err := rows.Scan(&cid, &name, &dataType, &notNull, &defaultValue, &pk); err != nil {
			return ir.Table{}, fmt.Errorf("modelgen: scan sqlite column of %s: %w", tableName, err)
		}
		table.Columns = append(table.Columns, ir.Column{
			Name:         name,
			DatabaseType: dataType,
			GenericType:  sqliteGenericType(dataType),
			Nullable:     notNull == 0,
			DefaultValue: defaultValue.String,
			PrimaryKey:   pk > 0,
		})
	}
	if err := rows.Err(); err != nil {
		return ir.Table{}, fmt.Errorf("modelgen: iterate sqlite columns of %s: %w", tableName, err)
	}
	return table, nil
}

// sqliteGenericType folds a SQLite declared type into a generic
// category. Declared types are free-form, so matching is by lowercased
// affinity keywords.
func sqliteGenericType(dataType string) string {
	t := strings.ToLower(dataType)
	switch {
	case strings.Contains(t, "int"):
		return ir.Integer
	case strings.Contains(t, "char"), strings.Contains(t, "text"), strings.Contains(t, "clob"):
		return ir.String
	case strings.Contains(t, "real"), strings.Contains(t, "floa"), strings.Contains(t, "doub"), strings.Contains(t, "decimal"), strings.Contains(t, "numeric"):
		return ir.Float
	case strings.Contains(t, "bool"):
		return ir.Boolean
	case strings.Contains(t, "date"), strings.Contains(t, "time"):
		return ir.Datetime
	case strings.Contains(t, "blob"), t == "":
		return ir.Bytes
	default:
		return ir.String
	}
}
