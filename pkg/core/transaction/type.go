package transaction

import "fmt"

// Type is the type of a transaction.
type Type uint16

// Transaction types known to the network.
const (
	TransferType                    Type = 0x4154
	NamespaceRegistrationType       Type = 0x414E
	AddressAliasType                Type = 0x424E
	MosaicAliasType                 Type = 0x434E
	MosaicDefinitionType            Type = 0x414D
	MosaicSupplyChangeType          Type = 0x424D
	MultisigAccountModificationType Type = 0x4155
	AggregateCompleteType           Type = 0x4141
	AggregateBondedType             Type = 0x4241
	HashLockType                    Type = 0x4148
	SecretLockType                  Type = 0x4152
	SecretProofType                 Type = 0x4252
	AccountAddressRestrictionType   Type = 0x4150
	AccountMosaicRestrictionType    Type = 0x4250
	AccountOperationRestrictionType Type = 0x4350
	MosaicAddressRestrictionType    Type = 0x4251
	MosaicGlobalRestrictionType     Type = 0x4151
	AccountMetadataType             Type = 0x4144
	MosaicMetadataType              Type = 0x4244
	NamespaceMetadataType           Type = 0x4344
	AccountKeyLinkType              Type = 0x414C
	VrfKeyLinkType                  Type = 0x4243
	VotingKeyLinkType               Type = 0x4143
	NodeKeyLinkType                 Type = 0x424C
)

// DefaultVersion is the entity version used by every transaction type.
const DefaultVersion byte = 1

var typeNames = map[Type]string{
	TransferType:                    "Transfer",
	NamespaceRegistrationType:       "NamespaceRegistration",
	AddressAliasType:                "AddressAlias",
	MosaicAliasType:                 "MosaicAlias",
	MosaicDefinitionType:            "MosaicDefinition",
	MosaicSupplyChangeType:          "MosaicSupplyChange",
	MultisigAccountModificationType: "MultisigAccountModification",
	AggregateCompleteType:           "AggregateComplete",
	AggregateBondedType:             "AggregateBonded",
	HashLockType:                    "HashLock",
	SecretLockType:                  "SecretLock",
	SecretProofType:                 "SecretProof",
	AccountAddressRestrictionType:   "AccountAddressRestriction",
	AccountMosaicRestrictionType:    "AccountMosaicRestriction",
	AccountOperationRestrictionType: "AccountOperationRestriction",
	MosaicAddressRestrictionType:    "MosaicAddressRestriction",
	MosaicGlobalRestrictionType:     "MosaicGlobalRestriction",
	AccountMetadataType:             "AccountMetadata",
	MosaicMetadataType:              "MosaicMetadata",
	NamespaceMetadataType:           "NamespaceMetadata",
	AccountKeyLinkType:              "AccountKeyLink",
	VrfKeyLinkType:                  "VrfKeyLink",
	VotingKeyLinkType:               "VotingKeyLink",
	NodeKeyLinkType:                 "NodeKeyLink",
}

// String implements the stringer interface.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint16(t))
}

// IsValid reports whether t is a known transaction type.
func (t Type) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// IsAggregate reports whether t is one of the aggregate types.
func (t Type) IsAggregate() bool {
	return t == AggregateCompleteType || t == AggregateBondedType
}
