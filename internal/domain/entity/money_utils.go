package entity

import (
	"fmt"
	"strings"

	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

var hundred = decimal.NewFromInt(100)

// ParseAmount validates a decimal string and returns it in minor units (cents).
// Negative values and more than two decimal places are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if value.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}

	if -value.Exponent() > MaxDecimalPlaces && !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	cents := value.Mul(hundred)
	if !cents.IsInteger() || cents.GreaterThan(decimal.NewFromInt(1<<62)) {
		return 0, fmt.Errorf("%w: amount out of range", errs.ErrInvalidAmount)
	}

	return cents.IntPart(), nil
}

// FormatAmount renders minor units as a decimal string with two places, e.g. 1015 -> "10.15"
func FormatAmount(cents int64) string {
	return decimal.New(cents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}

// AmountToDecimal converts minor units into a decimal value
func AmountToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -MaxDecimalPlaces)
}

// AmountFromDecimal rounds a decimal value to minor units
func AmountFromDecimal(value decimal.Decimal) int64 {
	return value.Round(MaxDecimalPlaces).Mul(hundred).IntPart()
}
