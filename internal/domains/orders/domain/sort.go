package domain

import "sort"

// SortForKitchen orders the board in place: higher status rank first, then oldest first.
// Orders equal on both keys keep their input order.
func SortForKitchen(orders []*Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if a.Status.Rank() != b.Status.Rank() {
			return a.Status.Rank() > b.Status.Rank()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}
