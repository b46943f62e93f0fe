package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"10.", 1000},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
			{".5", 50},
			{"  25.50  ", 2550},
			{"+10", 1000},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrAmountRequired, "Empty string"},
			{"   ", errs.ErrAmountRequired, "Whitespace only"},
			{"-1.00", errs.ErrAmountNegative, "Negative amount"},
			{"-0.01", errs.ErrAmountNegative, "Negative cent"},
			{"1.234", errs.ErrAmountNotNumeric, "Too many decimal places"},
			{"abc", errs.ErrAmountNotNumeric, "Non-numeric"},
			{"1,000.00", errs.ErrAmountNotNumeric, "Comma as thousands separator"},
			{"1.00.00", errs.ErrAmountNotNumeric, "Multiple decimal points"},
			{"$100", errs.ErrAmountNotNumeric, "Currency symbol"},
			{"-abc", errs.ErrAmountNotNumeric, "Negative non-numeric fails as non-numeric"},
			{".", errs.ErrAmountNotNumeric, "Bare decimal point"},
			{"-", errs.ErrAmountNotNumeric, "Bare minus sign"},
			{"+", errs.ErrAmountNotNumeric, "Bare plus sign"},
			{"-.", errs.ErrAmountNotNumeric, "Sign and point without digits"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Negative zero is accepted as zero", func(t *testing.T) {
		cents, err := ParseAmount("-0.00")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), cents)
	})
}

func TestParseSignedAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected int64
	}{
		{"100.00", 10000},
		{"-100.00", -10000},
		{"-0.01", -1},
		{"0", 0},
		{"  -42.50", -4250},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			cents, err := ParseSignedAmount(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, cents)
		})
	}

	t.Run("Invalid input still rejected", func(t *testing.T) {
		_, err := ParseSignedAmount("-abc")
		assert.ErrorIs(t, err, errs.ErrAmountNotNumeric)

		_, err = ParseSignedAmount("")
		assert.ErrorIs(t, err, errs.ErrAmountRequired)
	})
}

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{1015, "10.15"},
		{1000, "10.00"},
		{0, "0.00"},
		{-50, "-0.50"},
		{-10000, "-100.00"},
		{123456789, "1234567.89"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToString(tc.cents))
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	inputs := []string{"0.01", "10.15", "99999.99", "0.00"}
	for _, input := range inputs {
		cents, err := ParseAmount(input)
		assert.NoError(t, err)
		assert.Equal(t, input, CentsToString(cents))
	}
}
