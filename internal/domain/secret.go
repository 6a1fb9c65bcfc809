package domain

// SecretInfo is the projection of a vault record returned by
// getSecretInfo. IsAllowed reflects whether the authenticated caller may
// read the secret; an unsigned query always reports false because the
// contract sees msg.sender == address(0).
type SecretInfo struct {
	Version   uint64
	Exists    bool
	IsAllowed bool
}

// Readable reports whether a follow-up getSecret call can succeed for the
// caller. IsAllowed is meaningless on a record that does not exist.
func (i SecretInfo) Readable() bool {
	return i.Exists && i.IsAllowed
}
