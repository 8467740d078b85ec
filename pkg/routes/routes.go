// Package routes loads vehicle route solutions from the CSV export
// written by the Clarke-Wright solver.
//
// The format is line oriented. A comment line starting with
// "# Ruta vehiculo" opens a new route; every following comma-separated
// record is a waypoint on that route. Records carry either two fields
// (x, y) or three or more (x, y, node id; extra fields are ignored).
//
// Loading is best effort: malformed records are dropped, lines without
// a comma are ignored, and a missing or unreadable file yields an empty
// result. Load never returns an error.
package routes

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// UnknownID marks a waypoint whose source record carried no node identifier.
// Real node identifiers are non-negative; the depot's id 0 is a real id.
const UnknownID = -1

// routeMarker prefixes the comment line the solver writes before each route.
const routeMarker = "# Ruta vehiculo"

// Waypoint is a single position on a route, in Euclidean plan coordinates.
// NodeID is only used for display labeling and is UnknownID when the source
// record had no third field.
type Waypoint struct {
	X, Y   float64
	NodeID int
}

// Route is an ordered sequence of waypoints. Order defines the polyline
// path; the first waypoint is conventionally the depot.
type Route []Waypoint

// Load reads the solution file at path and returns its routes in file
// order. It returns an empty slice when the file is missing, unreadable,
// or contains no routes; an empty route between two consecutive markers
// is not kept.
func Load(path string) []Route {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var (
		result  []Route
		current Route
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, routeMarker) {
			if len(current) > 0 {
				result = append(result, current)
			}
			current = nil
			continue
		}

		if !strings.Contains(line, ",") {
			continue
		}
		if w, ok := parseRecord(line); ok {
			current = append(current, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil
	}

	if len(current) > 0 {
		result = append(result, current)
	}
	return result
}

// parseRecord parses one comma-separated waypoint record. It reports
// false for records whose numeric fields do not parse.
func parseRecord(line string) (Waypoint, bool) {
	parts := strings.Split(line, ",")

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Waypoint{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Waypoint{}, false
	}

	id := UnknownID
	if len(parts) >= 3 {
		id, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return Waypoint{}, false
		}
	}
	return Waypoint{X: x, Y: y, NodeID: id}, true
}
