package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "¥0.00", Currency(dec("0")))
	assert.Equal(t, "¥35.00", Currency(dec("35")))
	assert.Equal(t, "¥135.50", Currency(dec("135.5")))
	assert.Equal(t, "¥1,234.56", Currency(dec("1234.56")))
	assert.Equal(t, "¥12,345.67", Currency(dec("12345.67")))
	assert.Equal(t, "¥1,234,567.89", Currency(dec("1234567.89")))
}

func TestCurrency_RendersMagnitude(t *testing.T) {
	assert.Equal(t, "¥35.00", Currency(dec("-35.00")))
}

func TestSignedCurrency(t *testing.T) {
	assert.Equal(t, "-¥35.00", SignedCurrency(dec("-35.00")))
	assert.Equal(t, "+¥35.00", SignedCurrency(dec("35.00")))
	assert.Equal(t, "+¥0.00", SignedCurrency(dec("0")))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "999", groupThousands("999"))
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "100.00", groupThousands("100.00"))
	assert.Equal(t, "1,000.00", groupThousands("1000.00"))
	assert.Equal(t, "123,456,789.01", groupThousands("123456789.01"))
}
