package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{`850`, 85000},
		{`850.5`, 85050},
		{`"1200.00"`, 120000},
		{`0.1`, 10},
		{`-12.34`, -1234},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.in), &m))
			assert.Equal(t, tt.want, m)
		})
	}

	for _, in := range []string{`"abc"`, `"NaN"`, `"Inf"`, `"-Infinity"`, `1e17`, `"-9e16"`} {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(in), &m), in)
		assert.Zero(t, m, in)
	}

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`1e13`), &m))
	assert.Equal(t, MaxMoney, m)
}

func TestMoney_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		A Money `json:"a"`
		B Money `json:"b"`
		C Money `json:"c"`
	}{Euros(900), Euros(75.25), Euros(-0.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":900,"b":75.25,"c":-0.50}`, string(raw))
}

func TestReceipt_IsPending(t *testing.T) {
	sentAt := "2026-02-03T10:30:00"
	empty := ""

	assert.True(t, Receipt{Status: ReceiptStatusGenerated}.IsPending())
	assert.True(t, Receipt{Status: ReceiptStatusGenerated, EmailSentAt: &empty}.IsPending())
	assert.False(t, Receipt{Status: ReceiptStatusGenerated, EmailSentAt: &sentAt}.IsPending())
	assert.False(t, Receipt{Status: ReceiptStatusSent}.IsPending())
}
