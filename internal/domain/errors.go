package domain

import "errors"

var (
	ErrInvalidContainer = errors.New("invalid container")
	ErrBatchRejected    = errors.New("container rejected from batch")
	ErrNoFreeSlot       = errors.New("no free carrier slot")
	ErrMalformedProfile = errors.New("malformed dump profile")
	ErrSensorStalled    = errors.New("sensor threshold not reached")
	ErrUnknownBin       = errors.New("unknown bin")
)
