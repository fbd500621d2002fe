package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/mosaic"
	"github.com/symbolkit/symbol-go/pkg/namespace"
)

func TestTransferMosaicsSorted(t *testing.T) {
	tr := testTransfer(t)
	require.Len(t, tr.Mosaics, 2)
	require.Equal(t, uint64(testCurrencyID), tr.Mosaics[0].ID.Uint64())
	require.Equal(t, uint64(testCurrencyAlias), tr.Mosaics[1].ID.Uint64())
	require.True(t, tr.Mosaics[1].ID.IsAlias())
}

func TestTransferBytes(t *testing.T) {
	tx := New(netmode.TestNet, testDeadline, testMaxFee, testTransfer(t))
	b, err := tx.Bytes()
	require.NoError(t, err)
	require.Len(t, b, BodyIndex+24+2+1+5+2*16+13)
	require.Equal(t, byte(len(b)), b[0])
	require.Equal(t, TransferType, PayloadType(b))
	require.Equal(t, DefaultVersion, b[HeaderLen])
	require.Equal(t, byte(netmode.TestNet), b[HeaderLen+1])
}

func TestTransferAliasRecipient(t *testing.T) {
	id, err := namespace.FromName("alice")
	require.NoError(t, err)
	tr, err := NewTransfer(address.NewAlias(id), nil, Message{})
	require.NoError(t, err)

	b, err := New(netmode.MainNet, testDeadline, 0, tr).Bytes()
	require.NoError(t, err)
	require.Len(t, b, BodyIndex+24+8)
	require.Equal(t, byte(netmode.MainNet)|0x01, b[BodyIndex])

	rcpt, err := address.UnresolvedFromBytes(b[BodyIndex : BodyIndex+24])
	require.NoError(t, err)
	alias, ok := rcpt.Alias()
	require.True(t, ok)
	require.Equal(t, id, alias)
}

func TestNewTransferErrors(t *testing.T) {
	mosaics := make([]mosaic.Mosaic, MaxTransferMosaics+1)
	_, err := NewTransfer(address.NewAlias(1), mosaics, Message{})
	require.ErrorIs(t, err, errs.ErrInputFormat)

	_, err = NewTransfer(address.NewAlias(1), nil, NewRawMessage(make([]byte, 1<<16)))
	require.ErrorIs(t, err, errs.ErrInputFormat)
}

func TestTransferEncodeLimits(t *testing.T) {
	tr := &Transfer{
		Recipient: address.NewAlias(1),
		Mosaics:   make([]mosaic.Mosaic, MaxTransferMosaics+1),
	}
	_, err := New(netmode.TestNet, testDeadline, 0, tr).Bytes()
	require.ErrorIs(t, err, errs.ErrInputFormat)

	tr = &Transfer{
		Recipient: address.NewAlias(1),
		Message:   NewRawMessage(make([]byte, 1<<16)),
	}
	_, err = New(netmode.TestNet, testDeadline, 0, tr).Bytes()
	require.ErrorIs(t, err, errs.ErrInputFormat)

	tr.Message = NewRawMessage(make([]byte, 1<<16-1))
	b, err := New(netmode.TestNet, testDeadline, 0, tr).Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF}, b[BodyIndex+24:BodyIndex+26])
}

func TestTransactionNoBody(t *testing.T) {
	_, err := New(netmode.TestNet, testDeadline, 0, nil).Bytes()
	require.Error(t, err)
}
