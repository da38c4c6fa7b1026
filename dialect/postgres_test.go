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

func TestPostgresSchema(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM pg_catalog.pg_tables")).
		WillReturnRows(sqlmock.NewRows([]string{"tablename"}).AddRow("users"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "udt_name", "is_nullable", "column_default", "column_comment"}).
			AddRow("id", "int8", "NO", "nextval('users_id_seq')", nil).
			AddRow("token", "uuid", "NO", nil, nil).
			AddRow("last_seen", "timestamptz", "YES", nil, "last activity"))

	mock.ExpectQuery(regexp.QuoteMeta("i.indisprimary")).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"attname"}).AddRow("id"))

	conn := &postgresConnector{db: db}
	schema, err := conn.Schema(context.Background(), "appdb")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, schema.Tables, 1)
	users := schema.Tables[0]
	require.Len(t, users.Columns, 3)

	assert.True(t, users.Columns[0].PrimaryKey)
	assert.Equal(t, ir.Integer, users.Columns[0].GenericType)
	assert.Equal(t, "nextval('users_id_seq')", users.Columns[0].DefaultValue)

	assert.Equal(t, ir.String, users.Columns[1].GenericType)
	assert.False(t, users.Columns[1].PrimaryKey)

	last := users.Columns[2]
	assert.True(t, last.Nullable)
	assert.Equal(t, ir.Datetime, last.GenericType)
	assert.Equal(t, "last activity", last.Comment)
}

func TestPostgresGenericType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dataType string
		want     string
	}{
		{"varchar", ir.String},
		{"uuid", ir.String},
		{"bpchar", ir.String},
		{"int2", ir.Integer},
		{"bigserial", ir.Integer},
		{"float8", ir.Float},
		{"numeric", ir.Float},
		{"bool", ir.Boolean},
		{"timestamptz", ir.Datetime},
		{"bytea", ir.Bytes},
		{"tsvector", ir.String},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, postgresGenericType(tt.dataType), tt.dataType)
	}
}
