package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a user-supplied amount and converts it to cents.
// The numeric check runs before the sign check, so "-0.01" fails as negative
// rather than as non-numeric. Zero is a valid amount.
// Uses a string-based approach to avoid floating point precision issues:
// - "500"   -> 50000
// - "10.1"  -> 1010
// - "10.15" -> 1015
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, errs.ErrAmountRequired
	}

	digits := amount
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	} else if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}

	// A bare sign or decimal point is not a number
	if !strings.ContainsAny(digits, "0123456789") {
		return 0, errs.ErrAmountNotNumeric
	}

	parts := strings.Split(digits, ".")
	if len(parts) > 2 {
		return 0, errs.ErrAmountNotNumeric
	}

	var integerValue string
	switch {
	case len(parts) == 1:
		integerValue = parts[0] + "00"
	case len(parts[1]) == 0:
		// Like "10."
		integerValue = parts[0] + "00"
	case len(parts[1]) == 1:
		integerValue = parts[0] + parts[1] + "0"
	case len(parts[1]) == MaxDecimalPlaces:
		integerValue = parts[0] + parts[1]
	default:
		return 0, errs.ErrAmountNotNumeric
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, errs.ErrAmountNotNumeric
	}

	if negative && value != 0 {
		return 0, errs.ErrAmountNegative
	}

	return value, nil
}

// ParseSignedAmount converts a numeric string to cents, accepting a leading
// sign. Used for initial balances, which unlike transaction amounts may be
// negative.
func ParseSignedAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	negative := strings.HasPrefix(amount, "-")
	cents, err := ParseAmount(strings.TrimPrefix(amount, "-"))
	if err != nil {
		return 0, err
	}
	if negative {
		return -cents, nil
	}
	return cents, nil
}

// CentsToString converts an integer amount of cents to a decimal string.
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
// - -50 becomes "-0.50"
func CentsToString(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	amountStr := fmt.Sprintf("%d", cents)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - MaxDecimalPlaces
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}
