package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mall-client/pkg/money"
)

func TestFormat_USD(t *testing.T) {
	f, err := money.NewFormatter("USD", "en")
	require.NoError(t, err)

	out := f.Format(decimal.RequireFromString("1234.5"))
	assert.Contains(t, out, "$")
	assert.Contains(t, out, "1234.50")
}

func TestNewFormatter_MonedaInvalida(t *testing.T) {
	_, err := money.NewFormatter("XXXX", "en")
	assert.Error(t, err)
}

func TestNewFormatter_IdiomaInvalido(t *testing.T) {
	_, err := money.NewFormatter("USD", "??")
	assert.Error(t, err)
}
