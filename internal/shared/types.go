package shared

// Currency codes accepted for settlement and payout.
var SettlementCurrencies = []interface{}{"USD", "NGN", "GHS", "KES", "GBP", "EUR"}

// Currency codes a gift card can be denominated in.
var CardCurrencies = []interface{}{"USD", "GBP", "EUR", "CAD", "AUD", "NGN", "GHS"}

const (
	// DefaultListLimit caps every list endpoint unless the caller asks otherwise.
	DefaultListLimit = 200
	MaxListLimit     = 1000
)

// ResolveLimit returns limit when set, DefaultListLimit otherwise.
func ResolveLimit(limit int) int64 {
	if limit <= 0 {
		return DefaultListLimit
	}
	return int64(limit)
}

// BoolOr dereferences b, falling back to def when nil.
func BoolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// StringOr dereferences s, falling back to def when nil.
func StringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
