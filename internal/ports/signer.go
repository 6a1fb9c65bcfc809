package ports

import "github.com/ethereum/go-ethereum/common"

// QuerySigner authenticates outgoing read calls. SignDigest produces a
// 65-byte [R || S || V] secp256k1 signature over a 32-byte digest.
type QuerySigner interface {
	Address() common.Address
	SignDigest(digest [32]byte) ([]byte, error)
}
