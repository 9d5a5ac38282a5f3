package core

import "testing"

func TestParsePriceNumericValues(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want float64
	}{
		{"float64", 250.0, 250},
		{"int64", int64(99), 99},
		{"int", 45, 45},
		{"plain string", "120", 120},
		{"decimal string", "99.5", 99.5},
	}
	for _, tt := range tests {
		got := ParsePrice(tt.raw)
		if got == nil {
			t.Fatalf("%s: ParsePrice(%v) returned nil, want %v", tt.name, tt.raw, tt.want)
		}
		if *got != tt.want {
			t.Fatalf("%s: ParsePrice(%v) = %v, want %v", tt.name, tt.raw, *got, tt.want)
		}
	}
}

func TestParsePriceStripsCurrencyTokens(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"250 EGP", 250},
		{"250egp", 250},
		{"1,250 LE", 1250},
		{"90 جنيه", 90},
		{"$45.50", 45.5},
		{" 300 ", 300},
	}
	for _, tt := range tests {
		got := ParsePrice(tt.raw)
		if got == nil {
			t.Fatalf("ParsePrice(%q) returned nil, want %v", tt.raw, tt.want)
		}
		if *got != tt.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", tt.raw, *got, tt.want)
		}
	}
}

func TestParsePriceMixedCaseTokensNearMultibyteRunes(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"250Le", 250},
		{"250 eGp", 250},
		{"90 جنيه", 90},
	}
	for _, tt := range tests {
		got := ParsePrice(tt.raw)
		if got == nil || *got != tt.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	// "ŉ" upper-cases to a longer byte sequence, so token offsets computed on
	// an upper-cased copy do not transfer back to the original string.
	if got := ParsePrice("ŉ250LE"); got != nil {
		t.Fatalf("ParsePrice(%q) = %v, want nil", "ŉ250LE", *got)
	}
}

func TestParsePriceUnparseable(t *testing.T) {
	tests := []interface{}{
		nil,
		"",
		"call us",
		"EGP",
		[]string{"250"},
		map[string]interface{}{"amount": 250},
	}
	for _, raw := range tests {
		if got := ParsePrice(raw); got != nil {
			t.Fatalf("ParsePrice(%v) = %v, want nil", raw, *got)
		}
	}
}

func TestMatchesBucketBoundaries(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	tests := []struct {
		price  *float64
		bucket string
		want   bool
	}{
		{price(99.99), PriceBucketUnder100, true},
		{price(100), PriceBucketUnder100, false},
		{price(100), PriceBucket100To300, true},
		{price(300), PriceBucket100To300, true},
		{price(300.01), PriceBucket100To300, false},
		{price(300), PriceBucket300To500, true},
		{price(500), PriceBucket300To500, true},
		{price(500), PriceBucketAbove500, false},
		{price(500.01), PriceBucketAbove500, true},
		// No bucket selected matches everything, including unpriced items.
		{nil, "", true},
		{price(50), "", true},
		// An unparseable price never satisfies a specific bucket.
		{nil, PriceBucketUnder100, false},
		{nil, PriceBucketAbove500, false},
	}
	for _, tt := range tests {
		if got := matchesBucket(tt.price, tt.bucket); got != tt.want {
			t.Fatalf("matchesBucket(%v, %q) = %v, want %v", tt.price, tt.bucket, got, tt.want)
		}
	}
}
