package domain

import (
	interfaces "timecapsule/internal/domain/interfaces"
	types "timecapsule/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	LetterID      = types.LetterID
	Share         = types.Share
	Key           = types.Key
	Digest        = types.Digest
	Provider      = types.Provider
	ProofRecord   = types.ProofRecord
	Letter        = types.Letter
	CustodyRecord = types.CustodyRecord
)

// Provider values.
const (
	ProviderLocal          = types.ProviderLocal
	ProviderOpenTimestamps = types.ProviderOpenTimestamps
	ProviderBase           = types.ProviderBase
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ShareCombiner  = interfaces.ShareCombiner
	ProofGenerator = interfaces.ProofGenerator
	LetterService  = interfaces.LetterService
	SecretScheme   = interfaces.SecretScheme
	Clock          = interfaces.Clock
	LetterStore    = interfaces.LetterStore
	ShareStore     = interfaces.ShareStore
	ShareCustodian = interfaces.ShareCustodian
)
