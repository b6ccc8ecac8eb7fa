package domain

// PortsPerSwitch is the fixed port count of every switch.
const PortsPerSwitch = 12

// SwitchAssignment holds the occupants of one switch. A nil port is empty.
type SwitchAssignment struct {
	ID     int
	Switch *Device
	Ports  [PortsPerSwitch]*Device
}

// Occupied reports how many ports hold a device.
func (s *SwitchAssignment) Occupied() int {
	n := 0
	for _, p := range s.Ports {
		if p != nil {
			n++
		}
	}
	return n
}

// PortNumbers returns the occupant identifiers joined by "|", empty ports as "".
func (s *SwitchAssignment) PortNumbers() string {
	var b []byte
	for i, p := range s.Ports {
		if i > 0 {
			b = append(b, '|')
		}
		if p != nil {
			b = append(b, p.DeviceNumber...)
		}
	}
	return string(b)
}
