package service

import "testing"

func TestFormatMerchantName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"strips pos prefix and reference number", "POS AMAZON 1234567890", "Amazon"},
		{"strips upi prefix", "UPI/SWIGGY", "Swiggy"},
		{"strips company suffix", "BIG BAZAAR PVT", "Big Bazaar"},
		{"strips filler characters", "DMART **", "Dmart"},
		{"title cases multi-word names", "CAFE COFFEE DAY 123456789", "Cafe Coffee Day"},
		{"short words stay uppercase", "JJ STORE", "JJ Store"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMerchantName(tt.raw); got != tt.want {
				t.Errorf("FormatMerchantName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
