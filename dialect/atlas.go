package dialect

import (
	"context"
	"fmt"

	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlclient"

	// Register the sqlclient drivers for atlas:// URL inspection.
	_ "ariga.io/atlas/sql/mysql"
	_ "ariga.io/atlas/sql/postgres"
	_ "ariga.io/atlas/sql/sqlite"

	"github.com/syssam/modelgen/ir"
)

// atlasConnector inspects through the Atlas driver layer, accepting any
// URL Atlas understands. It is the escape hatch for databases whose
// native connector is missing a detail the Atlas inspector reports.
type atlasConnector struct {
	client *sqlclient.Client
}

func openAtlas(ctx context.Context, url string) (Connector, error) {
	client, err := sqlclient.Open(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("modelgen: open atlas client: %w", err)
	}
	return &atlasConnector{client: client}, nil
}

func (c *atlasConnector) Close() error { return c.client.Close() }

func (c *atlasConnector) Schema(ctx context.Context, dbName string) (*ir.DatabaseSchema, error) {
	name := dbName
	if c.client.URL.Schema != "" {
		name = c.client.URL.Schema
	}
	inspected, err := c.client.InspectSchema(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("modelgen: inspect schema via atlas: %w", err)
	}
	out := &ir.DatabaseSchema{Name: dbName}
	for _, t := range inspected.Tables {
		pks := make(map[string]bool)
		if t.PrimaryKey != nil {
			for _, part := range t.PrimaryKey.Parts {
				if part.C != nil {
					pks[part.C.Name] = true
				}
			}
		}
		table := ir.Table{Name: t.Name}
		for _, col := range t.Columns {
			var comment string
			for _, attr := range col.Attrs {
				if c, ok := attr.(*schema.Comment); ok {
					comment = c.Text
				}
			}
			table.Columns = append(table.Columns, ir.Column{
				Name:         col.Name,
				DatabaseType: col.Type.Raw,
				GenericType:  atlasGenericType(col.Type.Type),
				Nullable:     col.Type.Null,
				DefaultValue: atlasDefault(col.Default),
				Comment:      comment,
				PrimaryKey:   pks[col.Name],
			})
		}
		out.Tables = append(out.Tables, table)
	}
	return out, nil
}

// atlasGenericType folds an Atlas schema type into a generic category.
func atlasGenericType(t schema.Type) string {
	switch t.(type) {
	case *schema.StringType, *schema.EnumType, *schema.JSONType, *schema.UUIDType:
		return ir.String
	case *schema.IntegerType:
		return ir.Integer
	case *schema.FloatType, *schema.DecimalType:
		return ir.Float
	case *schema.BoolType:
		return ir.Boolean
	case *schema.TimeType:
		return ir.Datetime
	case *schema.BinaryType:
		return ir.Bytes
	default:
		return ir.String
	}
}

func atlasDefault(x schema.Expr) string {
	switch d := x.(type) {
	case *schema.Literal:
		return d.V
	case *schema.RawExpr:
		return d.X
	default:
		return ""
	}
}
