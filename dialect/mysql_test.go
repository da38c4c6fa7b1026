package dialect

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgen/ir"
)

func TestMySQLSchema(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.tables")).
		WithArgs("appdb").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("orders").
			AddRow("users"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WithArgs("appdb", "orders").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable", "column_default", "column_comment", "column_key"}).
			AddRow("id", "bigint", "NO", nil, "", "PRI").
			AddRow("total", "decimal", "NO", "0.00", "order total", ""))

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WithArgs("appdb", "users").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable", "column_default", "column_comment", "column_key"}).
			AddRow("id", "int", "NO", nil, "", "PRI").
			AddRow("bio", "text", "YES", nil, "", ""))

	conn := &mysqlConnector{db: db}
	schema, err := conn.Schema(context.Background(), "appdb")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, schema.Tables, 2)
	assert.Equal(t, "appdb", schema.Name)

	orders := schema.Tables[0]
	assert.Equal(t, "orders", orders.Name)
	require.Len(t, orders.Columns, 2)
	assert.Equal(t, ir.Column{
		Name: "id", DatabaseType: "bigint", GenericType: ir.Integer, PrimaryKey: true,
	}, orders.Columns[0])
	assert.Equal(t, ir.Column{
		Name: "total", DatabaseType: "decimal", GenericType: ir.Float,
		DefaultValue: "0.00", Comment: "order total",
	}, orders.Columns[1])

	users := schema.Tables[1]
	assert.True(t, users.Columns[1].Nullable)
	assert.Equal(t, ir.String, users.Columns[1].GenericType)
}

func TestMySQLGenericType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dataType string
		want     string
	}{
		{"varchar", ir.String},
		{"VARCHAR", ir.String},
		{"enum", ir.String},
		{"bigint", ir.Integer},
		{"tinyint", ir.Integer},
		{"double", ir.Float},
		{"bool", ir.Boolean},
		{"timestamp", ir.Datetime},
		{"longblob", ir.Bytes},
		{"geometry", ir.String},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mysqlGenericType(tt.dataType), tt.dataType)
	}
}
