package flags

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/mosaic"
	"github.com/symbolkit/symbol-go/pkg/namespace"
	"github.com/urfave/cli"
)

// Mosaics is a list of mosaics accumulated from repeated flags.
type Mosaics []mosaic.Mosaic

// MosaicsFlag is a repeatable flag of "id:amount" values, the id is either 16
// hex characters or a namespace alias written as "@name".
type MosaicsFlag struct {
	Name  string
	Usage string
	Value *Mosaics
}

var (
	_ flag.Value = (*Mosaics)(nil)
	_ cli.Flag   = MosaicsFlag{}
)

// String implements the fmt.Stringer interface.
func (m *Mosaics) String() string {
	if m == nil {
		return ""
	}
	s := make([]string, len(*m))
	for i := range *m {
		s[i] = (*m)[i].String()
	}
	return strings.Join(s, ",")
}

// Set implements the flag.Value interface.
func (m *Mosaics) Set(s string) error {
	v, err := ParseMosaic(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	*m = append(*m, v)
	return nil
}

// String returns a readable representation of this value
// (for usage defaults).
func (f MosaicsFlag) String() string {
	return flagString(f.Name, f.Usage)
}

// GetName implements cli.Flag.
func (f MosaicsFlag) GetName() string {
	return f.Name
}

// Apply populates the flag given the flag set and environment.
func (f MosaicsFlag) Apply(set *flag.FlagSet) {
	if f.Value == nil {
		f.Value = new(Mosaics)
	}
	eachName(f.Name, func(name string) {
		set.Var(f.Value, name, f.Usage)
	})
}

// ParseMosaic parses an "id:amount" pair, the amount is in atomic units.
func ParseMosaic(s string) (mosaic.Mosaic, error) {
	idStr, amountStr, ok := strings.Cut(s, ":")
	if !ok {
		return mosaic.Mosaic{}, fmt.Errorf("%w: mosaic %q is not in id:amount form", errs.ErrInputFormat, s)
	}
	amount, err := strconv.ParseUint(amountStr, 10, 64)
	if err != nil {
		return mosaic.Mosaic{}, fmt.Errorf("%w: mosaic amount: %v", errs.ErrInputFormat, err)
	}
	var id mosaic.UnresolvedID
	if name, ok := strings.CutPrefix(idStr, AliasPrefix); ok {
		ns, err := namespace.FromName(name)
		if err != nil {
			return mosaic.Mosaic{}, err
		}
		id = mosaic.NewAliasID(ns)
	} else {
		id, err = mosaic.UnresolvedIDDecodeString(idStr)
		if err != nil {
			return mosaic.Mosaic{}, err
		}
	}
	return mosaic.NewAbsolute(id, amount)
}
