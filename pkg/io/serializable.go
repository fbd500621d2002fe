package io

// Encodable defines the binary encoding interface.
type Encodable interface {
	EncodeBinary(*BinWriter)
}

// Decodable defines the binary decoding interface.
type Decodable interface {
	DecodeBinary(*BinReader)
}

// Serializable defines the binary encoding/decoding interface. Errors are
// returned via the BinReader/BinWriter Err field.
type Serializable interface {
	Encodable
	Decodable
}
