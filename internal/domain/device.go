package domain

// Device is a piece of equipment plugged into a switch port. Everything but
// DeviceNumber is metadata copied in from the property dataset.
type Device struct {
	DeviceNumber  string `csv:"device_number"  db:"device_number"  json:"device_number"`
	Floor         string `csv:"floor"          db:"floor"          json:"floor"`
	RackName      string `csv:"rack_name"      db:"rack_name"      json:"rack_name"`
	RoomName      string `csv:"room_name"      db:"room_name"      json:"room_name"`
	DeviceName    string `csv:"device_name"    db:"device_name"    json:"device_name"`
	ModelName     string `csv:"model_name"     db:"model_name"     json:"model_name"`
	PortName      string `csv:"port_name"      db:"port_name"      json:"port_name"`
	CableName     string `csv:"cable_name"     db:"cable_name"     json:"cable_name"`
	ConnectorName string `csv:"connector_name" db:"connector_name" json:"connector_name"`
	Rosette       string `csv:"rosette"        db:"rosette"        json:"rosette"`
	HostName      string `csv:"host_name"      db:"host_name"      json:"host_name"`
}

// NewDevice returns a device that only knows its identifier.
func NewDevice(number string) *Device {
	return &Device{DeviceNumber: number}
}

// CopyMetadata overwrites every field except the identifier and the host name.
func (d *Device) CopyMetadata(src *Device) {
	d.Floor = src.Floor
	d.RackName = src.RackName
	d.RoomName = src.RoomName
	d.DeviceName = src.DeviceName
	d.ModelName = src.ModelName
	d.PortName = src.PortName
	d.CableName = src.CableName
	d.ConnectorName = src.ConnectorName
	d.Rosette = src.Rosette
}

// Numbers returns the identifiers of devices joined by "|".
func Numbers(devices []*Device) string {
	var b []byte
	for i, d := range devices {
		if i > 0 {
			b = append(b, '|')
		}
		b = append(b, d.DeviceNumber...)
	}
	return string(b)
}
