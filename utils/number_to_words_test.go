package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToCurrencyWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{5, "Five Rupees Only"},
		{24780, "Twenty Four Thousand Seven Hundred Eighty Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{1.50, "One Rupees and Fifty Paise Only"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NumberToCurrencyWords(tc.amount))
	}
}
