package transaction

import (
	"fmt"
	"math"
	"sort"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
	"github.com/symbolkit/symbol-go/pkg/mosaic"
)

// MaxTransferMosaics is the number of mosaics a transfer can carry.
const MaxTransferMosaics = math.MaxUint8

// Transfer moves mosaics and a message to a recipient.
type Transfer struct {
	Recipient address.UnresolvedAddress
	Mosaics   []mosaic.Mosaic
	Message   Message
}

var _ Body = (*Transfer)(nil)

// NewTransfer creates a transfer body. Mosaics are kept sorted by id.
func NewTransfer(recipient address.UnresolvedAddress, mosaics []mosaic.Mosaic, msg Message) (*Transfer, error) {
	if len(mosaics) > MaxTransferMosaics {
		return nil, fmt.Errorf("%w: %d mosaics, at most %d allowed", errs.ErrInputFormat, len(mosaics), MaxTransferMosaics)
	}
	if n := len(msg.Bytes()); n > math.MaxUint16 {
		return nil, fmt.Errorf("%w: message is %d bytes long", errs.ErrInputFormat, n)
	}
	t := &Transfer{
		Recipient: recipient,
		Mosaics:   append([]mosaic.Mosaic(nil), mosaics...),
		Message:   msg,
	}
	sort.SliceStable(t.Mosaics, func(i, j int) bool {
		return t.Mosaics[i].ID.Uint64() < t.Mosaics[j].ID.Uint64()
	})
	return t, nil
}

// Type implements Body interface.
func (t *Transfer) Type() Type { return TransferType }

// EncodeBody implements Body interface.
func (t *Transfer) EncodeBody(w *io.BinWriter, net netmode.Type) {
	recipient := t.Recipient.Bytes(net)
	msg := t.Message.Bytes()
	if len(t.Mosaics) > MaxTransferMosaics {
		w.Err = fmt.Errorf("%w: %d mosaics, at most %d allowed", errs.ErrInputFormat, len(t.Mosaics), MaxTransferMosaics)
		return
	}
	if len(msg) > math.MaxUint16 {
		w.Err = fmt.Errorf("%w: message is %d bytes long", errs.ErrInputFormat, len(msg))
		return
	}
	w.WriteBytes(recipient[:])
	w.WriteU16LE(uint16(len(msg)))
	w.WriteB(byte(len(t.Mosaics)))
	w.WriteZeroes(4 + 1)
	io.WriteArray(w, t.Mosaics)
	w.WriteBytes(msg)
}
