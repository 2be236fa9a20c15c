package knowledge

import "errors"

var (
	ErrIndexUnavailable = errors.New("semantic index unavailable")
	ErrIndexNotReady    = errors.New("semantic index not built")
	ErrEmptyCorpus      = errors.New("knowledge corpus is empty")
	ErrInvalidDocument  = errors.New("knowledge document requires id and text")
)
