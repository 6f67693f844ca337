// FILE: pricefield.go
// Package ticksim – shared "price_field" selector used by several metrics.

package ticksim

// PriceField selects which tick price a metric observes.
type PriceField string

const (
	PriceBid PriceField = "bid"
	PriceAsk PriceField = "ask"
	PriceMid PriceField = "mid"
)

// Value extracts the selected price from a tick.
func (f PriceField) Value(t Tick) float64 {
	switch f {
	case PriceBid:
		return t.Bid
	case PriceAsk:
		return t.Ask
	default:
		return t.Mid
	}
}

// validatePriceField normalizes an empty field to mid and rejects unknown
// values with a ConfigurationError, per spec §7.
func validatePriceField(f PriceField) (PriceField, error) {
	switch f {
	case "":
		return PriceMid, nil
	case PriceBid, PriceAsk, PriceMid:
		return f, nil
	default:
		return "", NewConfigurationError("price_field", "unknown price field: "+string(f))
	}
}
