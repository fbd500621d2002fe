package transaction

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/errs"
)

// MessageType is the kind of a transfer message.
type MessageType byte

// Message types. Raw and Unknown have no wire prefix.
const (
	PlainMessage                          MessageType = 0x00
	EncryptedMessage                      MessageType = 0x01
	PersistentHarvestingDelegationMessage MessageType = 0xFE
	RawMessage                            MessageType = 0xF0
	UnknownMessage                        MessageType = 0xFF
)

// DelegationMarker starts every persistent harvesting delegation payload.
const DelegationMarker = "FE2A8061577301E2"

// delegationHexSize is the length of a delegation payload in hex characters.
const delegationHexSize = 264

var delegationMarker, _ = hex.DecodeString(DelegationMarker)

// String implements the stringer interface.
func (t MessageType) String() string {
	switch t {
	case PlainMessage:
		return "plain"
	case EncryptedMessage:
		return "encrypted"
	case PersistentHarvestingDelegationMessage:
		return "delegation"
	case RawMessage:
		return "raw"
	default:
		return "unknown"
	}
}

// Message is a transfer message. Payload holds the bytes following the
// type prefix, or the whole wire form for prefixless kinds.
type Message struct {
	Type    MessageType
	Payload []byte
}

// NewPlainMessage creates a plain text message.
func NewPlainMessage(text string) Message {
	return Message{Type: PlainMessage, Payload: []byte(text)}
}

// NewRawMessage creates a message written to the wire as is.
func NewRawMessage(payload []byte) Message {
	return Message{Type: RawMessage, Payload: append([]byte(nil), payload...)}
}

// NewEncryptedMessage wraps an already encrypted payload.
func NewEncryptedMessage(payload []byte) Message {
	return Message{Type: EncryptedMessage, Payload: append([]byte(nil), payload...)}
}

// NewDelegationMessage creates a persistent harvesting delegation message
// from its hex payload.
func NewDelegationMessage(payload string) (Message, error) {
	payload = strings.ToUpper(payload)
	if len(payload) != delegationHexSize {
		return Message{}, fmt.Errorf("%w: delegation payload must be %d hex characters, got %d",
			errs.ErrInputFormat, delegationHexSize, len(payload))
	}
	if !strings.HasPrefix(payload, DelegationMarker) {
		return Message{}, fmt.Errorf("%w: delegation payload does not start with %s", errs.ErrInputFormat, DelegationMarker)
	}
	b, err := hex.DecodeString(payload)
	if err != nil {
		return Message{}, fmt.Errorf("%w: delegation payload: %v", errs.ErrInputFormat, err)
	}
	return Message{Type: PersistentHarvestingDelegationMessage, Payload: b}, nil
}

// MessageFromBytes decodes a message from its wire form.
func MessageFromBytes(b []byte) Message {
	switch {
	case len(b) == 0:
		return Message{Type: PlainMessage}
	case bytes.HasPrefix(b, delegationMarker):
		return Message{Type: PersistentHarvestingDelegationMessage, Payload: append([]byte(nil), b...)}
	case b[0] == byte(PlainMessage), b[0] == byte(EncryptedMessage):
		return Message{Type: MessageType(b[0]), Payload: append([]byte(nil), b[1:]...)}
	default:
		return NewRawMessage(b)
	}
}

// Bytes returns the wire form of the message. An empty message has no
// bytes at all.
func (m Message) Bytes() []byte {
	switch m.Type {
	case PlainMessage, EncryptedMessage:
		if len(m.Payload) == 0 {
			return nil
		}
		return append([]byte{byte(m.Type)}, m.Payload...)
	default:
		return append([]byte(nil), m.Payload...)
	}
}

// String returns the text of a plain message or the hex of other kinds.
func (m Message) String() string {
	if m.Type == PlainMessage {
		return string(m.Payload)
	}
	return strings.ToUpper(hex.EncodeToString(m.Payload))
}
