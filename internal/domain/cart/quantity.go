package cart

// IncreaseQuantity returns the next quantity, or current and false when one
// more unit would exceed stock.
func IncreaseQuantity(current, stock int) (int, bool) {
	if current+1 > stock {
		return current, false
	}
	return current + 1, true
}

// DecreaseQuantity never goes below 1; removal is a separate operation.
func DecreaseQuantity(current int) (int, bool) {
	if current-1 <= 0 {
		return current, false
	}
	return current - 1, true
}
