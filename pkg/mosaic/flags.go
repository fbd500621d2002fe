package mosaic

import "strings"

// Flags is a set of mosaic properties.
type Flags uint8

const (
	// NoFlags means an immutable, non-transferable, unrestricted mosaic.
	NoFlags Flags = 0
	// SupplyMutable allows the owner to change the supply.
	SupplyMutable Flags = 0x01
	// Transferable allows transfers between arbitrary accounts.
	Transferable Flags = 0x02
	// Restrictable allows the owner to configure mosaic restrictions.
	Restrictable Flags = 0x04
)

// NewFlags builds flags from separate properties.
func NewFlags(supplyMutable, transferable, restrictable bool) Flags {
	var f Flags
	if supplyMutable {
		f |= SupplyMutable
	}
	if transferable {
		f |= Transferable
	}
	if restrictable {
		f |= Restrictable
	}
	return f
}

// SupplyMutable tells whether the supply can be changed.
func (f Flags) SupplyMutable() bool { return f&SupplyMutable != 0 }

// Transferable tells whether the mosaic can be transferred.
func (f Flags) Transferable() bool { return f&Transferable != 0 }

// Restrictable tells whether restrictions can be configured.
func (f Flags) Restrictable() bool { return f&Restrictable != 0 }

// String implements the stringer interface.
func (f Flags) String() string {
	var parts []string
	if f.SupplyMutable() {
		parts = append(parts, "SupplyMutable")
	}
	if f.Transferable() {
		parts = append(parts, "Transferable")
	}
	if f.Restrictable() {
		parts = append(parts, "Restrictable")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// SupplyChangeAction is the direction of a supply change.
type SupplyChangeAction uint8

const (
	// Decrease removes units from the supply.
	Decrease SupplyChangeAction = 0
	// Increase adds units to the supply.
	Increase SupplyChangeAction = 1
)

// String implements the stringer interface.
func (a SupplyChangeAction) String() string {
	switch a {
	case Decrease:
		return "Decrease"
	case Increase:
		return "Increase"
	default:
		return "Unknown"
	}
}
