package columns

import (
	"strconv"
	"strings"

	"github.com/kurochkinivan/port_assigner/internal/domain"
)

// Setter stores decoded cell text into a record.
type Setter[T any] func(record *T, value string)

// Getter reads the text of one output cell.
type Getter func(row domain.SlotRow) string

var deviceText = map[string]func(d *domain.Device) *string{
	"deviceNumber":  func(d *domain.Device) *string { return &d.DeviceNumber },
	"floor":         func(d *domain.Device) *string { return &d.Floor },
	"rackName":      func(d *domain.Device) *string { return &d.RackName },
	"roomName":      func(d *domain.Device) *string { return &d.RoomName },
	"deviceName":    func(d *domain.Device) *string { return &d.DeviceName },
	"modelName":     func(d *domain.Device) *string { return &d.ModelName },
	"portName":      func(d *domain.Device) *string { return &d.PortName },
	"cableName":     func(d *domain.Device) *string { return &d.CableName },
	"connectorName": func(d *domain.Device) *string { return &d.ConnectorName },
	"rosette":       func(d *domain.Device) *string { return &d.Rosette },
	"hostName":      func(d *domain.Device) *string { return &d.HostName },
}

// DeviceFields decodes property rows.
var DeviceFields = func() map[string]Setter[domain.Device] {
	fields := make(map[string]Setter[domain.Device], len(deviceText))
	for name, text := range deviceText {
		fields[name] = func(d *domain.Device, v string) { *text(d) = v }
	}
	return fields
}()

// AssignmentFields decodes assignment rows. Device lists are "|" separated.
var AssignmentFields = map[string]Setter[domain.AssignmentGroup]{
	"groupKey": func(g *domain.AssignmentGroup, v string) { g.GroupKey = v },
	"floor":    func(g *domain.AssignmentGroup, v string) { g.Floor = v },
	"rackName": func(g *domain.AssignmentGroup, v string) { g.RackName = v },
	"sw":       deviceList(domain.CategorySwitch),
	"ap":       deviceList(domain.CategoryAP),
	"printer":  deviceList(domain.CategoryPrinter),
	"mfp":      deviceList(domain.CategoryMFP),
	"ocr":      deviceList(domain.CategoryOCR),
	"other":    deviceList(domain.CategoryOther),
}

func deviceList(c domain.Category) Setter[domain.AssignmentGroup] {
	return func(g *domain.AssignmentGroup, v string) {
		list := g.Category(c)
		for number := range strings.SplitSeq(v, "|") {
			if number = strings.TrimSpace(number); number == "" {
				continue
			}
			*list = append(*list, domain.NewDevice(number))
		}
	}
}

// SwitchFields reads the switch of a slot row.
var SwitchFields = deviceGetters(func(row domain.SlotRow) *domain.Device { return row.Switch })

// PortFields reads the occupant of a slot row, plus the port number itself.
var PortFields = func() map[string]Getter {
	fields := deviceGetters(func(row domain.SlotRow) *domain.Device { return row.Occupant })
	fields["portNumber"] = func(row domain.SlotRow) string { return strconv.Itoa(row.Port) }
	return fields
}()

func deviceGetters(pick func(row domain.SlotRow) *domain.Device) map[string]Getter {
	fields := make(map[string]Getter, len(deviceText)+1)
	for name, text := range deviceText {
		fields[name] = func(row domain.SlotRow) string {
			d := pick(row)
			if d == nil {
				return ""
			}
			return *text(d)
		}
	}
	return fields
}
