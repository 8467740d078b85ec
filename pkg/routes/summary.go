package routes

import "math"

// RouteSummary aggregates one route: the number of customer stops
// (waypoints minus the depot) and the total Euclidean length of the
// polyline.
type RouteSummary struct {
	Customers int
	Distance  float64
}

// Summary aggregates a whole solution.
type Summary struct {
	Routes         []RouteSummary
	TotalCustomers int
	TotalDistance  float64
}

// Summarize computes per-route and total statistics. A route with fewer
// than two waypoints counts zero customers and zero distance.
func Summarize(rs []Route) Summary {
	var s Summary
	s.Routes = make([]RouteSummary, len(rs))
	for i, r := range rs {
		var sum RouteSummary
		if len(r) > 1 {
			sum.Customers = len(r) - 1
			for j := 1; j < len(r); j++ {
				sum.Distance += math.Hypot(r[j].X-r[j-1].X, r[j].Y-r[j-1].Y)
			}
		}
		s.Routes[i] = sum
		s.TotalCustomers += sum.Customers
		s.TotalDistance += sum.Distance
	}
	return s
}
