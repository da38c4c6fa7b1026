package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"github.com/syssam/modelgen/ir"
)

type mysqlConnector struct {
	db *sql.DB
}

func openMySQL(ctx context.Context, dsn string) (Connector, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("modelgen: open mysql connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("modelgen: ping mysql: %w", err)
	}
	return &mysqlConnector{db: db}, nil
}

func (c *mysqlConnector) Close() error { return c.db.Close() }

func (c *mysqlConnector) Schema(ctx context.Context, dbName string) (*ir.DatabaseSchema, error) {
	const tablesQuery = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'
		ORDER BY table_name`
	rows, err := c.db.QueryContext(ctx, tablesQuery, dbName)
	if err != nil {
		return nil, fmt.Errorf("modelgen: list mysql tables: %w", err)
	}
	defer rows.Close()

	schema := &ir.DatabaseSchema{Name: dbName}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("modelgen: scan mysql table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("modelgen: iterate mysql tables: %w", err)
	}
	for _, name := range names {
		table, err := c.table(ctx, dbName, name)
		if err != nil {
			return nil, err
		}
		schema.Tables = append(schema.Tables, table)
	}
	return schema, nil
}

func (c *mysqlConnector) table(ctx context.Context, dbName, tableName string) (ir.Table, error) {
	const columnsQuery = `
		SELECT column_name, data_type, is_nullable, column_default, column_comment, column_key
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ?
		ORDER BY ordinal_position`
	rows, err := c.db.QueryContext(ctx, columnsQuery, dbName, tableName)
	if err != nil {
		return ir.Table{}, fmt.Errorf("modelgen: inspect mysql table %s: %w", tableName, err)
	}
	defer rows.Close()

	table := ir.Table{Name: tableName}
	for rows.Next() {
		var (
			name, dataType, isNullable, key string
			defaultValue, comment           sql.NullString
		)
		if err := rows.Scan(&name, &dataType, &isNullable, &defaultValue, &comment, &key); err != nil {
			return ir.Table{}, fmt.Errorf("modelgen: scan mysql column of %s: %w", tableName, err)
		}
		table.Columns = append(table.Columns, ir.Column{
			Name:         name,
			DatabaseType: dataType,
			GenericType:  mysqlGenericType(dataType),
			Nullable:     strings.EqualFold(isNullable, "YES"),
			DefaultValue: defaultValue.String,
			Comment:      comment.String,
			PrimaryKey:   key == "PRI",
		})
	}
	if err := rows.Err(); err != nil {
		return ir.Table{}, fmt.Errorf("modelgen: iterate mysql columns of %s: %w", tableName, err)
	}
	return table, nil
}

// mysqlGenericType folds a MySQL data type into a generic category.
func mysqlGenericType(dataType string) string {
	switch strings.ToLower(dataType) {
	case "varchar", "char", "text", "tinytext", "mediumtext", "longtext", "enum", "set", "json":
		return ir.String
	case "tinyint", "smallint", "mediumint", "int", "integer", "bigint":
		return ir.Integer
	case "float", "double", "decimal", "numeric":
		return ir.Float
	case "boolean", "bool":
		return ir.Boolean
	case "datetime", "timestamp", "date", "time", "year":
		return ir.Datetime
	case "blob", "tinyblob", "mediumblob", "longblob", "binary", "varbinary":
		return ir.Bytes
	default:
		return ir.String
	}
}
