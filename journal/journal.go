// Package journal makes a sortedlist durable by appending every mutation
// to a write-ahead log and replaying it on open. The list itself stays a
// plain in-memory structure; the journal is a thin single-writer wrapper.
package journal

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/wal"
	"github.com/xgzlucario/sortedlist"
	"github.com/xgzlucario/sortedlist/option"
)

// record op codes.
const (
	opAdd uint8 = iota + 1
	opRemove
	opSetOrder
	opClear
)

var ErrCorruptRecord = fmt.Errorf("journal: corrupt record")

// Codec encodes and decodes list elements for the log.
type Codec[T any] struct {
	Encode func(dst []byte, v T) []byte
	Decode func(src []byte) (T, error)
}

// Journal is a sortedlist whose mutations survive restarts.
type Journal[T any] struct {
	log   *wal.Log
	list  *sortedlist.List[T]
	codec Codec[T]
	next  uint64

	logger *slog.Logger
}

// Open opens (or creates) the log under dir and replays it into a fresh
// list built with cmp and opts.
func Open[T any](dir string, cmp func(a, b T) int, codec Codec[T], opts ...*option.Option) (*Journal[T], error) {
	os.MkdirAll(dir, 0755)

	log, err := wal.Open(dir, nil)
	if err != nil {
		return nil, err
	}

	j := &Journal[T]{
		log:    log,
		list:   sortedlist.New[T](cmp, opts...),
		codec:  codec,
		next:   1,
		logger: slog.Default(),
	}

	if err := j.replay(); err != nil {
		log.Close()
		return nil, err
	}
	return j, nil
}

// replay applies every logged record in order.
func (j *Journal[T]) replay() error {
	first, err := j.log.FirstIndex()
	if err != nil {
		return err
	}
	last, err := j.log.LastIndex()
	if err != nil {
		return err
	}
	if last == 0 {
		return nil
	}

	for i := first; i <= last; i++ {
		data, err := j.log.Read(i)
		if err != nil {
			return err
		}
		if err := j.apply(data); err != nil {
			return err
		}
	}
	j.next = last + 1

	j.logger.Info(fmt.Sprintf("[journal] replayed %d records, size %d", last-first+1, j.list.Size()))
	return nil
}

// apply mutates the list according to one record.
func (j *Journal[T]) apply(data []byte) error {
	if len(data) == 0 {
		return ErrCorruptRecord
	}

	switch data[0] {
	case opAdd:
		v, err := j.codec.Decode(data[1:])
		if err != nil {
			return err
		}
		j.list.Add(v)

	case opRemove:
		v, err := j.codec.Decode(data[1:])
		if err != nil {
			return err
		}
		j.list.Remove(v)

	case opSetOrder:
		if len(data) != 2 {
			return ErrCorruptRecord
		}
		j.list.SetOrder(data[1] == 1)

	case opClear:
		j.list.Clear()

	default:
		return ErrCorruptRecord
	}
	return nil
}

// append writes one record to the log.
func (j *Journal[T]) append(data []byte) error {
	if err := j.log.Write(j.next, data); err != nil {
		return err
	}
	j.next++
	return nil
}

// Add logs v, then adds it to the list.
func (j *Journal[T]) Add(v T) (sortedlist.Landing, error) {
	data := append([]byte{opAdd}, j.codec.Encode(nil, v)...)
	if err := j.append(data); err != nil {
		return 0, err
	}
	return j.list.Add(v), nil
}

// Remove logs the removal of v, then applies it.
func (j *Journal[T]) Remove(v T) (bool, error) {
	data := append([]byte{opRemove}, j.codec.Encode(nil, v)...)
	if err := j.append(data); err != nil {
		return false, err
	}
	return j.list.Remove(v), nil
}

// SetOrder logs the mode change, then applies it.
func (j *Journal[T]) SetOrder(ascending bool) error {
	var b byte
	if ascending {
		b = 1
	}
	if err := j.append([]byte{opSetOrder, b}); err != nil {
		return err
	}
	j.list.SetOrder(ascending)
	return nil
}

// Clear logs a clear, then applies it.
func (j *Journal[T]) Clear() error {
	if err := j.append([]byte{opClear}); err != nil {
		return err
	}
	j.list.Clear()
	return nil
}

// List returns the live list. Callers must not mutate it directly, or the
// log and the list will diverge.
func (j *Journal[T]) List() *sortedlist.List[T] {
	return j.list
}

// Close
func (j *Journal[T]) Close() error {
	return j.log.Close()
}
