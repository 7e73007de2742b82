// Package store persists the poll ledger in a cometbft-db key-value store.
// Polls are append-only; every registry operation is written as a single
// batch so partial writes are never observable.
package store

import (
	"encoding/binary"
	"encoding/json"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/crossgov/crossgov-core/poll"
)

var (
	pollPrefix    = []byte("poll/")
	receiptPrefix = []byte("receipt/")
	metaPrefix    = []byte("meta/")
	countKey      = []byte("poll_count")
)

// Store implements poll.Store on top of a dbm.DB
type Store struct {
	db dbm.DB
}

var _ poll.Store = &Store{}

// NewStore returns a store over the given database
func NewStore(db dbm.DB) *Store {
	return &Store{db: db}
}

// GetPoll returns the poll with the given id, if it exists
func (s *Store) GetPoll(id uint64) (poll.Poll, bool, error) {
	bz, err := s.db.Get(pollKey(id))
	if err != nil {
		return poll.Poll{}, false, err
	}
	if bz == nil {
		return poll.Poll{}, false, nil
	}

	var p poll.Poll
	if err := json.Unmarshal(bz, &p); err != nil {
		return poll.Poll{}, false, errors.Wrapf(err, "stored poll %d is corrupt", id)
	}

	return p, true, nil
}

// GetReceipt returns the receipt of the given voter on the given poll, if it exists
func (s *Store) GetReceipt(pollID uint64, voter common.Address) (poll.Receipt, bool, error) {
	bz, err := s.db.Get(receiptKey(pollID, voter))
	if err != nil {
		return poll.Receipt{}, false, err
	}
	if bz == nil {
		return poll.Receipt{}, false, nil
	}

	var r poll.Receipt
	if err := json.Unmarshal(bz, &r); err != nil {
		return poll.Receipt{}, false, errors.Wrapf(err, "stored receipt for %s on poll %d is corrupt", voter.Hex(), pollID)
	}

	return r, true, nil
}

// PollCount returns the high-water mark of assigned poll ids
func (s *Store) PollCount() (uint64, error) {
	bz, err := s.db.Get(countKey)
	if err != nil {
		return 0, err
	}
	if bz == nil {
		return 0, nil
	}

	return binary.BigEndian.Uint64(bz), nil
}

// CreatePoll writes the new poll and the updated poll count in one batch
func (s *Store) CreatePoll(p poll.Poll) error {
	bz, err := json.Marshal(p)
	if err != nil {
		return err
	}

	count := make([]byte, 8)
	binary.BigEndian.PutUint64(count, p.ID)

	batch := s.db.NewBatch()
	defer batch.Close()

	if err := batch.Set(pollKey(p.ID), bz); err != nil {
		return err
	}
	if err := batch.Set(countKey, count); err != nil {
		return err
	}

	return batch.WriteSync()
}

// RecordVote writes the updated tally and the voter's receipt in one batch
func (s *Store) RecordVote(p poll.Poll, voter common.Address, receipt poll.Receipt) error {
	pollBz, err := json.Marshal(p)
	if err != nil {
		return err
	}

	receiptBz, err := json.Marshal(receipt)
	if err != nil {
		return err
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	if err := batch.Set(pollKey(p.ID), pollBz); err != nil {
		return err
	}
	if err := batch.Set(receiptKey(p.ID, voter), receiptBz); err != nil {
		return err
	}

	return batch.WriteSync()
}

// ClosePoll persists the closed poll
func (s *Store) ClosePoll(p poll.Poll) error {
	bz, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return s.db.SetSync(pollKey(p.ID), bz)
}

// GetMeta returns the metadata value stored under the given key, if any
func (s *Store) GetMeta(key string) ([]byte, bool, error) {
	bz, err := s.db.Get(metaKey(key))
	if err != nil {
		return nil, false, err
	}

	return bz, bz != nil, nil
}

// SetMeta stores a metadata value under the given key
func (s *Store) SetMeta(key string, value []byte) error {
	return s.db.SetSync(metaKey(key), value)
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func pollKey(id uint64) []byte {
	key := make([]byte, len(pollPrefix)+8)
	copy(key, pollPrefix)
	binary.BigEndian.PutUint64(key[len(pollPrefix):], id)

	return key
}

func receiptKey(pollID uint64, voter common.Address) []byte {
	key := make([]byte, len(receiptPrefix)+8+common.AddressLength)
	copy(key, receiptPrefix)
	binary.BigEndian.PutUint64(key[len(receiptPrefix):], pollID)
	copy(key[len(receiptPrefix)+8:], voter.Bytes())

	return key
}

func metaKey(key string) []byte {
	return append(metaPrefix, key...)
}
