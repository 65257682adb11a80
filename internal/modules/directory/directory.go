// README: Static driver directory with exact id lookup.
package directory

import (
	"encoding/json"
	"fmt"
	"os"

	"savaari/internal/types"
)

// Driver is immutable reference data. DeviceToken is the FCM registration
// token used for booking notifications.
type Driver struct {
	ID          types.ID `json:"id"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	DeviceToken string   `json:"deviceToken"`
}

// Directory is the read-only driver table, loaded once at startup.
type Directory struct {
	drivers []Driver
	byID    map[types.ID]Driver
}

func New(drivers []Driver) *Directory {
	byID := make(map[types.ID]Driver, len(drivers))
	for _, d := range drivers {
		byID[d.ID] = d
	}
	return &Directory{drivers: drivers, byID: byID}
}

// FindByID looks a driver up by exact id. Ids are not case-folded.
func (d *Directory) FindByID(id types.ID) (Driver, bool) {
	drv, ok := d.byID[id]
	return drv, ok
}

// All returns every driver in directory order.
func (d *Directory) All() []Driver {
	return d.drivers
}

// LoadFile reads the driver list from a JSON array.
func LoadFile(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var drivers []Driver
	if err := json.Unmarshal(raw, &drivers); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, drv := range drivers {
		if drv.ID == "" {
			return nil, fmt.Errorf("driver %d in %s: missing id", i, path)
		}
	}
	return New(drivers), nil
}
