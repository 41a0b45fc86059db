package domain

// =============================================================================
// FishStock
// =============================================================================

// FishStock maps species keys to quantities. Quantities are always positive;
// a species that reaches zero is removed from the map rather than kept as a
// zero entry.
type FishStock map[string]int

// Clone returns a defensive copy of the stock.
func (s FishStock) Clone() FishStock {
	out := make(FishStock, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Total returns the number of individual fish across all species.
func (s FishStock) Total() int {
	total := 0
	for _, qty := range s {
		total += qty
	}
	return total
}

// Prune removes entries with non-positive quantities.
func (s FishStock) Prune() {
	for k, qty := range s {
		if qty <= 0 {
			delete(s, k)
		}
	}
}
