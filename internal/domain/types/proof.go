package types

// Provider names the service that attested a proof.
type Provider string

// Only ProviderLocal is produced today; the others are reserved.
const (
	ProviderLocal          Provider = "local"
	ProviderOpenTimestamps Provider = "opentimestamps"
	ProviderBase           Provider = "base"
)

// Valid reports whether p is one of the known providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderLocal, ProviderOpenTimestamps, ProviderBase:
		return true
	}
	return false
}

// ProofRecord is the tamper-evidence record created when a letter is sealed.
type ProofRecord struct {
	Hash      Digest   `json:"hash" yaml:"hash"`
	Timestamp int64    `json:"timestamp" yaml:"timestamp"` // ms since epoch
	Provider  Provider `json:"provider" yaml:"provider"`
}
