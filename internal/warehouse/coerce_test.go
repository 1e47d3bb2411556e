package warehouse

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    int64
		wantErr bool
	}{
		{"nil", nil, 0, false},
		{"int64", int64(7), 7, false},
		{"integral float", float64(12), 12, false},
		{"numeric bytes", []byte("42"), 42, false},
		{"numeric bytes with scale", []byte("42.0"), 42, false},
		{"json number", json.Number("9"), 9, false},
		{"rat", big.NewRat(10, 1), 10, false},
		{"fractional float", 1.5, 0, true},
		{"garbage", []byte("abc"), 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int64(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"nil", nil, 0},
		{"float", 3.87, 3.87},
		{"int", int64(4), 4},
		{"bytes", []byte("12.5"), 12.5},
		{"rat", big.NewRat(1, 4), 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Float64(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := Float64(struct{}{})
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "60601", String("60601"))
	assert.Equal(t, "60601", String([]byte("60601")))
	assert.Equal(t, "60601", String(int64(60601)))
}

func TestStatement_Args(t *testing.T) {
	s := Statement{Params: []Param{{Name: "city", Value: "Austin"}, {Name: "type", Value: "bakery"}}}
	assert.Equal(t, []interface{}{"Austin", "bakery"}, s.Args())
}
