package event

import "errors"

var (
	ErrLLMRequest = errors.New("llm request failed")
	ErrStoreFile  = errors.New("failed to store calendar file")
	ErrAppendLog  = errors.New("failed to append log row")
)
