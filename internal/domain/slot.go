package domain

// Slot is the flat form of a SlotRow used by the TSV output, the database
// table and the HTTP API. Empty slots leave the embedded device blank.
type Slot struct {
	Seq        int    `csv:"-"           db:"seq"         json:"-"`
	Rack       string `csv:"rack"        db:"rack"        json:"rack"`
	SwitchID   int    `csv:"switch_id"   db:"switch_id"   json:"switch_id"`
	Switch     string `csv:"switch"      db:"switch"      json:"switch"`
	SwitchHost string `csv:"switch_host" db:"switch_host" json:"switch_host"`
	Port       int    `csv:"port"        db:"port"        json:"port"`
	Device
}

// Slots flattens the table; Seq numbers slots from 1 in output order.
func (t *ResultTable) Slots() []Slot {
	rows := t.Rows()
	slots := make([]Slot, 0, len(rows))

	for i, row := range rows {
		slot := Slot{
			Seq:      i + 1,
			Rack:     row.RackName,
			SwitchID: row.SwitchID,
			Port:     row.Port,
		}

		if row.Switch != nil {
			slot.Switch = row.Switch.DeviceNumber
			slot.SwitchHost = row.Switch.HostName
		}

		if row.Occupant != nil {
			slot.Device = *row.Occupant
		}

		slots = append(slots, slot)
	}

	return slots
}
