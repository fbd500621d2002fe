/*
Package flags contains CLI flag types for Symbol values.
*/
package flags

import (
	"flag"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/namespace"
	"github.com/urfave/cli"
)

// AliasPrefix marks a namespace name given instead of an address or a
// mosaic id.
const AliasPrefix = "@"

// Address is a wrapper for an UnresolvedAddress with flag.Value methods.
type Address struct {
	IsSet bool
	Value address.UnresolvedAddress
}

// AddressFlag is a flag with type Address.
type AddressFlag struct {
	Name  string
	Usage string
	Value Address
}

var (
	_ flag.Value = (*Address)(nil)
	_ cli.Flag   = AddressFlag{}
)

// String implements the fmt.Stringer interface.
func (a Address) String() string {
	if !a.IsSet {
		return ""
	}
	return a.Value.String()
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	addr, err := ParseAddress(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	a.IsSet = true
	a.Value = addr
	return nil
}

// Unresolved returns the parsed value.
func (a *Address) Unresolved() address.UnresolvedAddress {
	if !a.IsSet {
		// It is a programmer error to call this method without
		// checking if the value was provided.
		panic("address was not set")
	}
	return a.Value
}

// IsSet checks if flag was set to a non-default value.
func (f AddressFlag) IsSet() bool {
	return f.Value.IsSet
}

// String returns a readable representation of this value
// (for usage defaults).
func (f AddressFlag) String() string {
	return flagString(f.Name, f.Usage)
}

// GetName implements cli.Flag.
func (f AddressFlag) GetName() string {
	return f.Name
}

// Apply populates the flag given the flag set and environment.
// Ignores errors.
func (f AddressFlag) Apply(set *flag.FlagSet) {
	eachName(f.Name, func(name string) {
		set.Var(&f.Value, name, f.Usage)
	})
}

// ParseAddress parses an address in any of its textual forms or a namespace
// alias written as "@name".
func ParseAddress(s string) (address.UnresolvedAddress, error) {
	if name, ok := strings.CutPrefix(s, AliasPrefix); ok {
		id, err := namespace.FromName(name)
		if err != nil {
			return address.UnresolvedAddress{}, err
		}
		return address.NewAlias(id), nil
	}
	a, err := address.DecodeString(s)
	if err != nil {
		return address.UnresolvedAddress{}, err
	}
	return address.NewUnresolved(a), nil
}
