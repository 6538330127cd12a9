package models

import "testing"

func TestProcessorFor(t *testing.T) {
	tests := []struct {
		currency Currency
		want     PaymentClient
	}{
		{CurrencyUSD, PaymentPaypal},
		{CurrencyNGN, PaymentPaystack},
	}
	for _, tt := range tests {
		if got := ProcessorFor(tt.currency); got != tt.want {
			t.Errorf("ProcessorFor(%s) = %s, want %s", tt.currency, got, tt.want)
		}
	}
}
