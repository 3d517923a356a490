// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package minerdb persists the per-notary last-mined/last-candidate height
// counters notary.Counters otherwise only keeps in memory, so the
// easy-mine eligibility window survives a node restart instead of
// resetting every eligible notary to "never mined".
package minerdb

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/galaxywarscoin/GalaxywarsOcean/notary"
)

// key prefixes distinguish the two counter families within one flat
// keyspace, the same single-bucket convention a metadata store built over
// a flat key-value backend uses for separate index families.
const (
	prefixLastMined  byte = 0x01
	prefixMayBeMined byte = 0x02
)

// Store wraps a goleveldb database holding notary election counters.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a leveldb database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordMined persists seat's last-mined height.
func (s *Store) RecordMined(seat int, height int64) error {
	return s.db.Put(counterKey(prefixLastMined, seat), encodeHeight(height), nil)
}

// RecordCandidate persists seat's last-considered-but-not-won height.
func (s *Store) RecordCandidate(seat int, height int64) error {
	return s.db.Put(counterKey(prefixMayBeMined, seat), encodeHeight(height), nil)
}

// LoadCounters rehydrates a notary.Counters from every persisted entry,
// for use seeding the in-memory election state at startup.
func (s *Store) LoadCounters() (*notary.Counters, error) {
	counters := notary.NewCounters()

	if err := s.iteratePrefix(prefixLastMined, func(seat int, height int64) {
		counters.RecordMined(seat, height)
	}); err != nil {
		return nil, err
	}
	if err := s.iteratePrefix(prefixMayBeMined, func(seat int, height int64) {
		counters.RecordCandidate(seat, height)
	}); err != nil {
		return nil, err
	}
	return counters, nil
}

func (s *Store) iteratePrefix(prefix byte, apply func(seat int, height int64)) error {
	iter := s.db.NewIterator(util.BytesPrefix([]byte{prefix}), nil)
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		if len(key) != 5 {
			continue
		}
		seat := int(binary.BigEndian.Uint32(key[1:5]))
		apply(seat, decodeHeight(iter.Value()))
	}
	return iter.Error()
}

func counterKey(prefix byte, seat int) []byte {
	key := make([]byte, 5)
	key[0] = prefix
	binary.BigEndian.PutUint32(key[1:], uint32(seat))
	return key
}

func encodeHeight(height int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(height))
	return buf
}

func decodeHeight(buf []byte) int64 {
	if len(buf) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(buf))
}
