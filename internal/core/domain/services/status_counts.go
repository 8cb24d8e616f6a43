package services

import "orderdesk/internal/core/domain/model/order"

// StatusCounts maps every status of the enum to a count. Keys are exactly
// order.All(); a status with no orders maps to 0.
type StatusCounts map[order.Status]int

// CountByStatus is the one aggregation behind every dashboard counter and
// quick-filter badge. Orders that fail validation are not counted.
func CountByStatus(orders []*order.Order) StatusCounts {
	counts := make(StatusCounts, len(order.All()))
	for _, s := range order.All() {
		counts[s] = 0
	}

	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}
		if _, known := counts[o.Status()]; known {
			counts[o.Status()]++
		}
	}

	return counts
}

// Total is the sum over all statuses.
func (c StatusCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// ByName keys the counts by wire name, for JSON and log output.
func (c StatusCounts) ByName() map[string]int {
	out := make(map[string]int, len(c))
	for s, n := range c {
		out[s.String()] = n
	}
	return out
}
