package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampoNumerico_UnmarshalJSON(t *testing.T) {
	var req struct {
		A CampoNumerico `json:"a"`
		B CampoNumerico `json:"b"`
		C CampoNumerico `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12.5, "b": "7,5", "c": null}`), &req))

	assert.Equal(t, CampoNumerico("12.5"), req.A)
	assert.Equal(t, CampoNumerico("7,5"), req.B)
	assert.Equal(t, CampoNumerico(""), req.C)
}

func TestCampoNumerico_Decimal(t *testing.T) {
	cases := []struct {
		in    CampoNumerico
		want  string
		valid bool
	}{
		{"150.50", "150.5", true},
		{"  20 ", "20", true},
		{"", "0", false},
		{"   ", "0", false},
		{"abc", "0", false},
		{"7,5", "0", false},
	}
	for _, tc := range cases {
		d, ok := tc.in.Decimal()
		assert.Equal(t, tc.valid, ok, string(tc.in))
		assert.Equal(t, tc.want, d.String(), string(tc.in))
	}

	assert.Nil(t, CampoNumerico("x").DecimalPtr())
	require.NotNil(t, CampoNumerico("3").DecimalPtr())
	assert.Equal(t, "3", CampoNumerico("3").DecimalPtr().String())
}
