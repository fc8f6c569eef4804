// SPDX-License-Identifier: MIT
// Package: spinfoam/store
//
// Package store persists evolution runs in BadgerDB.
//
// Key layout:
//
//	run/<runID>/info            → JSON runRecord
//	run/<runID>/frame/<%016d>   → JSON frameRecord, floats as bit patterns (step-ordered by key)
//
// An empty path opens an in-memory database. Store implements evolve.Recorder.
package store

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/spinfoam/evolve"
)

// ErrRunNotFound indicates a run id with no stored info record.
var ErrRunNotFound = errors.New("store: run not found")

const (
	runPrefix   = "run/"
	infoSuffix  = "/info"
	frameInfix  = "/frame/"
	dirFileMode = 0o750
)

// Store is a badger-backed evolve.Recorder. Safe for concurrent use.
type Store struct {
	db *badger.DB
}

var _ evolve.Recorder = (*Store)(nil)

// Open opens (creating if needed) the store at path, or an in-memory store
// when path is empty.
func Open(path string) (*Store, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, dirFileMode); err != nil {
			return nil, errors.Wrapf(err, "store: create %s", path)
		}
		opts = badger.DefaultOptions(path)
	}
	opts = opts.WithLogger(klogAdapter{})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "store: open badger")
	}
	klog.V(2).Infof("store: opened %q (in-memory=%v)", path, path == "")

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

// runRecord is the persisted form of evolve.RunInfo.
type runRecord struct {
	ID       string    `json:"id"`
	Network  string    `json:"network"`
	TimeStep float64   `json:"dt"`
	Steps    int       `json:"steps"`
	Started  time.Time `json:"started"`
}

// frameRecord is the persisted form of evolve.Frame. Complex values are split
// into real and imaginary parts and every float is kept as its IEEE-754 bit
// pattern, so NaN and ±Inf from a diverging run survive the round trip.
type frameRecord struct {
	Step   int    `json:"step"`
	AmpRe  uint64 `json:"amp_re"`
	AmpIm  uint64 `json:"amp_im"`
	Action uint64 `json:"action"`
	HamRe  uint64 `json:"ham_re"`
	HamIm  uint64 `json:"ham_im"`
}

func newFrameRecord(f evolve.Frame) frameRecord {
	return frameRecord{
		Step:   f.Step,
		AmpRe:  math.Float64bits(real(f.Amplitude)),
		AmpIm:  math.Float64bits(imag(f.Amplitude)),
		Action: math.Float64bits(f.Action),
		HamRe:  math.Float64bits(real(f.Hamiltonian)),
		HamIm:  math.Float64bits(imag(f.Hamiltonian)),
	}
}

func (r frameRecord) frame() evolve.Frame {
	return evolve.Frame{
		Step:        r.Step,
		Amplitude:   complex(math.Float64frombits(r.AmpRe), math.Float64frombits(r.AmpIm)),
		Action:      math.Float64frombits(r.Action),
		Hamiltonian: complex(math.Float64frombits(r.HamRe), math.Float64frombits(r.HamIm)),
	}
}

func infoKey(runID string) []byte {
	return []byte(runPrefix + runID + infoSuffix)
}

func framePrefix(runID string) []byte {
	return []byte(runPrefix + runID + frameInfix)
}

func frameKey(runID string, step int) []byte {
	return []byte(fmt.Sprintf("%s%s%s%016d", runPrefix, runID, frameInfix, step))
}

// BeginRun stores the run descriptor.
func (s *Store) BeginRun(info evolve.RunInfo) error {
	data, err := json.Marshal(runRecord(info))
	if err != nil {
		return errors.Wrap(err, "store: encode run")
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(infoKey(info.ID), data)
	})

	return errors.Wrapf(err, "store: begin run %s", info.ID)
}

// RecordFrame appends f to runID.
func (s *Store) RecordFrame(runID string, f evolve.Frame) error {
	data, err := json.Marshal(newFrameRecord(f))
	if err != nil {
		return errors.Wrap(err, "store: encode frame")
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(frameKey(runID, f.Step), data)
	})

	return errors.Wrapf(err, "store: record frame %d of %s", f.Step, runID)
}

// Run returns the descriptor of runID, or ErrRunNotFound.
func (s *Store) Run(runID string) (evolve.RunInfo, error) {
	var rec runRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(infoKey(runID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRunNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return evolve.RunInfo{}, errors.Wrapf(err, "store: run %s", runID)
	}

	return evolve.RunInfo(rec), nil
}

// Runs lists every stored run, ordered by start time then id.
func (s *Store) Runs() ([]evolve.RunInfo, error) {
	var out []evolve.RunInfo
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if !strings.HasSuffix(string(item.Key()), infoSuffix) {
				continue
			}
			var rec runRecord
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, evolve.RunInfo(rec))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "store: list runs")
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Started.Equal(out[j].Started) {
			return out[i].Started.Before(out[j].Started)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// Frames returns the frames of runID in step order. A run without frames
// yields an empty slice.
func (s *Store) Frames(runID string) ([]evolve.Frame, error) {
	prefix := framePrefix(runID)
	var out []evolve.Frame
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec frameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, rec.frame())
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "store: frames of %s", runID)
	}

	return out, nil
}
