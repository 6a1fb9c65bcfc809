package domain

import "errors"

var (
	ErrConfig          = errors.New("configuration error")
	ErrNetwork         = errors.New("network error")
	ErrRPC             = errors.New("rpc error")
	ErrContractRevert  = errors.New("contract reverted")
	ErrDecode          = errors.New("decode error")
	ErrUnknownProvider = errors.New("unknown provider")
	ErrAliasNotFound   = errors.New("alias not found")
	ErrUsage           = errors.New("usage error")
)
