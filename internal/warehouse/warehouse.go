// Package warehouse runs parameterized aggregate queries against the places analytics table.
package warehouse

import "context"

const (
	DialectBigQuery = "bigquery"
	DialectPostgres = "postgres"
)

// Param is a named scalar bound into a Statement. Backends that use positional
// placeholders bind params in slice order.
type Param struct {
	Name  string
	Value interface{}
}

type Statement struct {
	SQL    string
	Params []Param
}

// Row maps column name to the value the driver produced.
type Row map[string]interface{}

// Warehouse is the analytics query engine the market tools read from.
type Warehouse interface {
	Query(ctx context.Context, stmt Statement) ([]Row, error)
	// Dialect names the SQL flavour statements must be written in.
	Dialect() string
}

// Args returns the param values in order, for positional drivers.
func (s Statement) Args() []interface{} {
	args := make([]interface{}, len(s.Params))
	for i, p := range s.Params {
		args[i] = p.Value
	}
	return args
}
