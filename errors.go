package sortedlist

import "errors"

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	ErrEmptyList = errors.New("there are no elements in the list")

	ErrInvalidCapacity = errors.New("capacity must be at least the size of the given collection")

	ErrListFull = errors.New("sortedlist/panic: no more elements are allowed in the list")

	ErrChecksum = errors.New("crc checksum error")

	ErrBadMagic = errors.New("snapshot magic number mismatch")
)
