// README: Route fare record for a fixed location pair.
package catalog

// Route is one pre-priced pair of locations. Fares holds the raw price cells
// keyed by fare code ("2", "N2", "3", "N3", ...); values stay as text until
// the resolver parses them.
type Route struct {
	Pickup   string
	Drop     string
	Distance string
	Fares    map[string]string
}

// Cell returns the raw price cell for a fare code.
func (r Route) Cell(code string) (string, bool) {
	v, ok := r.Fares[code]
	return v, ok
}
