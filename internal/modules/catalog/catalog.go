// README: Static route catalog with symmetric, case-insensitive lookup.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Catalog is the read-only route fare table, loaded once at startup and
// injected wherever route lookups are needed.
type Catalog struct {
	routes []Route
}

// New builds a catalog and fails fast if two records cover the same unordered
// location pair. Duplicate pairs would make lookups order-dependent.
func New(routes []Route) (*Catalog, error) {
	seen := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		key := pairKey(r.Pickup, r.Drop)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate route between %q and %q", r.Pickup, r.Drop)
		}
		seen[key] = struct{}{}
	}
	return &Catalog{routes: routes}, nil
}

// FindRoute matches a pickup/drop pair against the catalog. The pair is
// unordered: a stored route matches in either direction. Comparison is
// case-insensitive; returned fields keep their stored casing.
func (c *Catalog) FindRoute(pickup, drop string) (Route, bool) {
	p := strings.ToLower(pickup)
	d := strings.ToLower(drop)
	for _, r := range c.routes {
		rp := strings.ToLower(r.Pickup)
		rd := strings.ToLower(r.Drop)
		if (rp == p && rd == d) || (rp == d && rd == p) {
			return r, true
		}
	}
	return Route{}, false
}

// Len reports the number of routes in the catalog.
func (c *Catalog) Len() int {
	return len(c.routes)
}

// LoadFile reads a route table from a JSON array of flat string records.
// "pickup", "drop" and "dist" are fixed fields; every other key is treated as
// a price cell keyed by fare code, matching the shape of the upstream data.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []map[string]string
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	routes := make([]Route, 0, len(records))
	for i, rec := range records {
		r := Route{
			Pickup:   rec["pickup"],
			Drop:     rec["drop"],
			Distance: rec["dist"],
			Fares:    make(map[string]string),
		}
		if r.Pickup == "" || r.Drop == "" {
			return nil, fmt.Errorf("route %d in %s: missing pickup or drop", i, path)
		}
		for k, v := range rec {
			switch k {
			case "pickup", "drop", "dist":
			default:
				r.Fares[k] = v
			}
		}
		routes = append(routes, r)
	}
	return New(routes)
}

func pairKey(a, b string) string {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
