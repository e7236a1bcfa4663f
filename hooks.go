package ghostcipher

// Hooks are callbacks for high-signal Sealer events.
// Implementations MUST be cheap and non-blocking; they run inline.
type Hooks interface {
	// A ledger record was deleted on read.
	// reason ∈ {"corrupt", "gen_mismatch"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set; the combined text was still returned
	// but Open will miss.
	ProviderSetRejected(storageKey string)

	// A ledger hit could not be revealed or decoded.
	// reason ∈ {"reveal", "value_decode"}
	OpenFailed(storageKey, reason string, err error)

	// GenStore errors (snapshot or bump).
	GenSnapshotError(storageKey string, err error)
	GenBumpError(storageKey string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)          {}
func (NopHooks) ProviderSetRejected(string)       {}
func (NopHooks) OpenFailed(string, string, error) {}
func (NopHooks) GenSnapshotError(string, error)   {}
func (NopHooks) GenBumpError(string, error)       {}
