package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/modelgen/ir"
)

func TestSQLiteGenericType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dataType string
		want     string
	}{
		{"INTEGER", ir.Integer},
		{"int", ir.Integer},
		{"TINYINT(1)", ir.Integer},
		{"TEXT", ir.String},
		{"VARCHAR(255)", ir.String},
		{"REAL", ir.Float},
		{"DOUBLE PRECISION", ir.Float},
		{"NUMERIC(10,2)", ir.Float},
		{"BOOLEAN", ir.Boolean},
		{"DATETIME", ir.Datetime},
		{"DATE", ir.Datetime},
		{"BLOB", ir.Bytes},
		{"", ir.Bytes},
		{"UUID", ir.String},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteGenericType(tt.dataType), tt.dataType)
	}
}

func TestDialectOpenUnsupported(t *testing.T) {
	t.Parallel()

	_, err := Open(t.Context(), "oracle", "dsn")
	assert.ErrorContains(t, err, `unsupported database type "oracle"`)
}
