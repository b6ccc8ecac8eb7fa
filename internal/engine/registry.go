package engine

import "github.com/kurochkinivan/port_assigner/internal/domain"

// Registry maps device numbers to property records and remembers their order.
type Registry struct {
	order   []*domain.Device
	devices map[string]*domain.Device
}

// NewRegistry keeps the first record of every device number. Records without
// a number are ignored; CheckRegistryDuplicates reports both cases.
func NewRegistry(rows []*domain.Device) *Registry {
	r := &Registry{
		order:   make([]*domain.Device, 0, len(rows)),
		devices: make(map[string]*domain.Device, len(rows)),
	}

	for _, d := range rows {
		if d.DeviceNumber == "" {
			continue
		}
		if _, ok := r.devices[d.DeviceNumber]; ok {
			continue
		}

		r.devices[d.DeviceNumber] = d
		r.order = append(r.order, d)
	}

	return r
}

func (r *Registry) Lookup(number string) (*domain.Device, bool) {
	d, ok := r.devices[number]
	return d, ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

// All returns the records in dataset order.
func (r *Registry) All() []*domain.Device {
	return r.order
}
