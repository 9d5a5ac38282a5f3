package core

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Price bucket filter values, as exposed by the storefront's price dropdown.
const (
	PriceBucketUnder100 = "under100"
	PriceBucket100To300 = "100-300"
	PriceBucket300To500 = "300-500"
	PriceBucketAbove500 = "above500"
)

// currencyPattern matches the currency tokens stripped from free-text prices
// before numeric parsing, in any letter case. Legacy product documents carry
// values like "250 EGP", "1,250 le" or "90 جنيه".
var currencyPattern = regexp.MustCompile(`(?i)egp|le|جنيه|\$`)

// ParsePrice normalizes a raw stored price into a number. Firestore hands
// back float64 or int64 for numeric fields and string for legacy free-text
// values; currency tokens, thousands separators and whitespace are stripped
// before parsing. Returns nil when no finite number can be extracted.
func ParsePrice(raw interface{}) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case int64:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case string:
		cleaned := currencyPattern.ReplaceAllString(v, "")
		cleaned = strings.NewReplacer(",", "", " ", "").Replace(cleaned)
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			return nil
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// matchesBucket reports whether a parsed price falls in the given bucket.
// A nil price never satisfies any bucket; an unknown bucket matches
// everything, mirroring the storefront's fall-through.
func matchesBucket(price *float64, bucket string) bool {
	if bucket == "" {
		return true
	}
	if price == nil {
		return false
	}
	p := *price
	switch bucket {
	case PriceBucketUnder100:
		return p < 100
	case PriceBucket100To300:
		return p >= 100 && p <= 300
	case PriceBucket300To500:
		return p >= 300 && p <= 500
	case PriceBucketAbove500:
		return p > 500
	default:
		return true
	}
}
