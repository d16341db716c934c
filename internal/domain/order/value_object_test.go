package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name string
		json string
		want bool
	}{
		{"null", `null`, false},
		{"empty string", `""`, false},
		{"zero", `0`, false},
		{"zero float", `0.0`, false},
		{"false", `false`, false},
		{"string zero", `"0"`, true},
		{"number", `2`, true},
		{"text", `"Ada"`, true},
		{"object", `{}`, true},
		{"out of range number", `1e400`, true},
		{"negative out of range number", `-1e400`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.json), &v))
			assert.Equal(t, tt.want, v.Truthy())
		})
	}
}

func TestValue_AbsentFieldIsFalsy(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada"}`), &req))

	assert.True(t, req.Name.Truthy())
	assert.False(t, req.Address.Truthy())
	assert.Equal(t, "", req.Address.String())
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`"500"`, "500"},
		{`500`, "500"},
		{`500.50`, "500.5"},
		{`true`, "true"},
		{`null`, ""},
		{`1e400`, "Infinity"},
		{`-1e400`, "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.json), &v))
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestValue_OrEmpty(t *testing.T) {
	assert.Equal(t, "", NewValue(nil).OrEmpty())
	assert.Equal(t, "", NewValue(0).OrEmpty())
	assert.Equal(t, "SupplierX", NewValue("SupplierX").OrEmpty())
}
