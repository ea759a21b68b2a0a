package number

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64JSON(t *testing.T) {
	var v struct {
		Amount Uint64 `json:"amount"`
	}

	// javascript clients send amounts as strings
	require.Nil(t, json.Unmarshal([]byte(`{"amount":"18446744073709551615"}`), &v))
	assert.Equal(t, Uint64(18446744073709551615), v.Amount)

	// plain numbers work too
	require.Nil(t, json.Unmarshal([]byte(`{"amount":1000}`), &v))
	assert.Equal(t, Uint64(1000), v.Amount)

	bts, err := json.Marshal(v)
	require.Nil(t, err)
	assert.Equal(t, `{"amount":"1000"}`, string(bts))
}
