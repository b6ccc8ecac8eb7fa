package domain

// Category is one of the six device lists of an assignment group.
type Category string

const (
	CategorySwitch  Category = "sw"
	CategoryAP      Category = "ap"
	CategoryPrinter Category = "printer"
	CategoryMFP     Category = "mfp"
	CategoryOCR     Category = "ocr"
	CategoryOther   Category = "other"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategorySwitch,
	CategoryAP,
	CategoryPrinter,
	CategoryMFP,
	CategoryOCR,
	CategoryOther,
}

// AssignmentGroup bundles the devices of one rack.
type AssignmentGroup struct {
	GroupKey string
	Floor    string
	RackName string

	Switches []*Device
	APs      []*Device
	Printers []*Device
	MFPs     []*Device
	OCRs     []*Device
	Others   []*Device
}

// Category returns a pointer to the list backing c, or nil for an unknown category.
func (g *AssignmentGroup) Category(c Category) *[]*Device {
	switch c {
	case CategorySwitch:
		return &g.Switches
	case CategoryAP:
		return &g.APs
	case CategoryPrinter:
		return &g.Printers
	case CategoryMFP:
		return &g.MFPs
	case CategoryOCR:
		return &g.OCRs
	case CategoryOther:
		return &g.Others
	}
	return nil
}

// Devices flattens all categories in declaration order.
func (g *AssignmentGroup) Devices() []*Device {
	var all []*Device
	for _, c := range Categories {
		all = append(all, *g.Category(c)...)
	}
	return all
}

// PortDevices returns the devices filled from the top of the port range:
// printers, MFPs, OCR units and other equipment, in that order.
func (g *AssignmentGroup) PortDevices() []*Device {
	devices := make([]*Device, 0, len(g.Printers)+len(g.MFPs)+len(g.OCRs)+len(g.Others))
	devices = append(devices, g.Printers...)
	devices = append(devices, g.MFPs...)
	devices = append(devices, g.OCRs...)
	devices = append(devices, g.Others...)
	return devices
}
