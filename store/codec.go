// SPDX-License-Identifier: MIT
// Package: desdiag/store
//
// codec.go - wire format of a persisted automaton.
//
// A record is a CBOR map (Core Deterministic Encoding, integer keys) holding
// the envelope below, compressed as one snappy block. Equal records encode
// to identical bytes.

package store

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/snappy"
	"github.com/google/uuid"

	"github.com/katalvlaran/desdiag/automaton"
)

// Version is the envelope version written by Encode.
const Version = 1

var (
	// ErrUnsupportedVersion is returned when a record carries another version.
	ErrUnsupportedVersion = errors.New("store: unsupported record version")

	// ErrCorrupt is returned when a record cannot be decompressed or decoded.
	ErrCorrupt = errors.New("store: corrupt record")

	// ErrNilRecord is returned when a record without automaton or config is
	// encoded.
	ErrNilRecord = errors.New("store: record, automaton or config is nil")
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	opts.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = opts.EncMode()
	if err != nil {
		panic("store: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("store: CBOR decoder initialization failed: " + err.Error())
	}
}

// Record is one persisted (automaton, config) pair.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Automaton *automaton.Automaton
	Config    *automaton.Config
}

// NewRecord stamps a and cfg with a fresh ID and the current UTC time.
func NewRecord(a *automaton.Automaton, cfg *automaton.Config) *Record {
	return &Record{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Automaton: a,
		Config:    cfg,
	}
}

type envelope struct {
	Version   int                    `cbor:"1,keyasint"`
	ID        uuid.UUID              `cbor:"2,keyasint"`
	CreatedAt time.Time              `cbor:"3,keyasint"`
	Root      automaton.State        `cbor:"4,keyasint"`
	States    []automaton.State      `cbor:"5,keyasint"`
	Edges     []automaton.Transition `cbor:"6,keyasint"`
	Config    *automaton.Config      `cbor:"7,keyasint"`
}

// Marshal returns the compressed encoding of rec.
func Marshal(rec *Record) ([]byte, error) {
	if rec == nil || rec.Automaton == nil || rec.Config == nil {
		return nil, ErrNilRecord
	}
	env := envelope{
		Version:   Version,
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Root:      rec.Automaton.Root(),
		States:    rec.Automaton.States(),
		Edges:     rec.Automaton.Edges(),
		Config:    rec.Config,
	}
	data, err := encMode.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("store: Marshal: %w", err)
	}

	return snappy.Encode(nil, data), nil
}

// Unmarshal decodes a record produced by Marshal.
//
// Errors:
//   - ErrCorrupt for bad compression, bad CBOR or an inconsistent edge list.
//   - ErrUnsupportedVersion for any version other than Version.
func Unmarshal(data []byte) (*Record, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("store: Unmarshal: %v: %w", err, ErrCorrupt)
	}
	var env envelope
	if err := decMode.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("store: Unmarshal: %v: %w", err, ErrCorrupt)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("store: Unmarshal: version %d: %w", env.Version, ErrUnsupportedVersion)
	}
	if env.Config == nil {
		return nil, fmt.Errorf("store: Unmarshal: missing config: %w", ErrCorrupt)
	}
	a, err := automaton.FromEdges(env.Root, env.States, env.Edges)
	if err != nil {
		return nil, fmt.Errorf("store: Unmarshal: %v: %w", err, ErrCorrupt)
	}

	return &Record{ID: env.ID, CreatedAt: env.CreatedAt, Automaton: a, Config: env.Config}, nil
}

// Encode writes the encoding of rec to w.
func Encode(w io.Writer, rec *Record) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("store: Encode: %w", err)
	}

	return nil
}

// Decode reads one record from r until EOF.
func Decode(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("store: Decode: %w", err)
	}

	return Unmarshal(data)
}
