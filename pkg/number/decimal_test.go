package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestPercentage(t *testing.T) {
	assert.T(t, Percentage(700).Equal(Decimal("7")))
	assert.T(t, Percentage(35).Equal(Decimal("0.35")))
	assert.T(t, Percentage(10000).Equal(Decimal("100")))
	assert.T(t, Percentage(0).Equal(Decimal("0")))
}

func TestDecimal(t *testing.T) {
	assert.T(t, Decimal("1.25").Equal(Decimal("1.250")))
	assert.T(t, Decimal("not a number").Equal(Decimal("0")))
}
