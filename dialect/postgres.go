package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/syssam/modelgen/ir"
)

type postgresConnector struct {
	db *sql.DB
}

func openPostgres(ctx context.Context, dsn string) (Connector, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("modelgen: open postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("modelgen: ping postgres: %w", err)
	}
	return &postgresConnector{db: db}, nil
}

func (c *postgresConnector) Close() error { return c.db.Close() }

func (c *postgresConnector) Schema(ctx context.Context, dbName string) (*ir.DatabaseSchema, error) {
	const tablesQuery = `
		SELECT tablename
		FROM pg_catalog.pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename`
	rows, err := c.db.QueryContext(ctx, tablesQuery)
	if err != nil {
		return nil, fmt.Errorf("modelgen: list postgres tables: %w", err)
	}
	defer rows.Close()

	schema := &ir.DatabaseSchema{Name: dbName}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("modelgen: scan postgres table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("modelgen: iterate postgres tables: %w", err)
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

func (c *postgresConnector) table(ctx context.Context, tableName string) (ir.Table, error) {
	const columnsQuery = `
		SELECT c.column_name, c.udt_name, c.is_nullable, c.column_default,
		       col_description(pgc.oid, a.attnum) AS column_comment
		FROM information_schema.columns c
		JOIN pg_catalog.pg_class pgc ON pgc.relname = c.table_name
		JOIN pg_catalog.pg_attribute a ON a.attrelid = pgc.oid AND a.attname = c.column_name
		WHERE c.table_schema = 'public' AND c.table_name = $1
		ORDER BY c.ordinal_position`
	rows, err := c.db.QueryContext(ctx, columnsQuery, tableName)
	if err != nil {
		return ir.Table{}, fmt.Errorf("modelgen: inspect postgres table %s: %w", tableName, err)
	}
	defer rows.Close()

	table := ir.Table{Name: tableName}
	for rows.Next() {
		var (
			name, dataType, isNullable string
			defaultValue, comment      sql.NullString
		)
		if err := rows.Scan(&name, &dataType, &isNullable, &defaultValue, &comment); err != nil {
			return ir.Table{}, fmt.Errorf("modelgen: scan postgres column of %s: %w", tableName, err)
		}
		table.Columns = append(table.Columns, ir.Column{
			Name:         name,
			DatabaseType: dataType,
			GenericType:  postgresGenericType(dataType),
			Nullable:     strings.EqualFold(isNullable, "YES"),
			DefaultValue: defaultValue.String,
			Comment:      comment.String,
		})
	}
	if err := rows.Err(); err != nil {
		return ir.Table{}, fmt.Errorf("modelgen: iterate postgres columns of %s: %w", tableName, err)
	}
	if err := c.markPrimaryKeys(ctx, tableName, &table); err != nil {
		return ir.Table{}, err
	}
	return table, nil
}

func (c *postgresConnector) markPrimaryKeys(ctx context.Context, tableName string, table *ir.Table) error {
	const pkQuery = `
		SELECT a.attname
		FROM pg_index i
		JOIN pg_attribute a ON a.attrelid = i.indrelid AND a.attnum = ANY(i.indkey)
		WHERE i.indrelid = $1::regclass AND i.indisprimary`
	rows, err := c.db.QueryContext(ctx, pkQuery, tableName)
	if err != nil {
		return fmt.Errorf("modelgen: inspect postgres primary key of %s: %w", tableName, err)
	}
	defer rows.Close()

	pks := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("modelgen: scan postgres primary key of %s: %w", tableName, err)
		}
		pks[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("modelgen: iterate postgres primary keys of %s: %w", tableName, err)
	}
	for i := range table.Columns {
		if pks[table.Columns[i].Name] {
			table.Columns[i].PrimaryKey = true
		}
	}
	return nil
}

// postgresGenericType folds a Postgres udt_name into a generic category.
func postgresGenericType(dataType string) string {
	switch strings.ToLower(dataType) {
	case "varchar", "text", "uuid", "name", "bpchar", "char", "citext", "json", "jsonb":
		return ir.String
	case "int2", "int4", "int8", "smallint", "integer", "bigint", "serial", "bigserial", "smallserial":
		return ir.Integer
	case "float4", "float8", "numeric", "decimal", "real", "double precision":
		return ir.Float
	case "bool", "boolean":
		return ir.Boolean
	case "timestamptz", "timestamp", "date", "time", "timetz":
		return ir.Datetime
	case "bytea":
		return ir.Bytes
	default:
		return ir.String
	}
}
