// Package cursor persists how many lines of the word list have been
// consumed, as a fixed 8-byte record of ASCII decimal digits.
//
// The record is rewritten in place at shutdown; the write is not atomic, so
// a crash mid-write can leave a mangled record. The loader tolerates that by
// extracting only digit bytes instead of failing on garbage.
package cursor

import (
	"fmt"
	"io"
	"os"
)

// RecordSize is the fixed width of the on-disk cursor record.
const RecordSize = 8

// Store reads and writes the cursor record. The backing file is held open
// read+write for the store's lifetime, matching the single-handle model the
// record format was designed around.
type Store struct {
	f *os.File
}

// Open opens an existing cursor record for read+write.
func Open(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open cursor record: %w", err)
	}
	return &Store{f: f}, nil
}

// OpenOrCreate opens the cursor record, creating a zeroed one if it does not
// exist yet.
func OpenOrCreate(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open cursor record: %w", err)
	}
	return &Store{f: f}, nil
}

// Load reads the record and decodes the cursor value. Non-digit bytes are
// skipped; the digits that remain are accumulated left to right. A short or
// empty record therefore decodes to whatever digits it holds, or zero.
func (s *Store) Load() (uint64, error) {
	buf := make([]byte, RecordSize)
	n, err := s.f.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read cursor record: %w", err)
	}
	return decode(buf[:n]), nil
}

// Save renders v as ASCII decimal digits and overwrites the record in
// place. The full fixed width is always written so digits of a previous,
// larger value cannot survive past the filler. Values wider than the record
// keep only their low-order digits, which cannot happen for line counts
// below 10^8.
func (s *Store) Save(v uint64) error {
	rec := Encode(v)
	if _, err := s.f.WriteAt(rec, 0); err != nil {
		return fmt.Errorf("failed to write cursor record: %w", err)
	}
	return nil
}

// Close releases the backing file.
func (s *Store) Close() error {
	return s.f.Close()
}

// decode extracts decimal digits from a record buffer, ignoring every other
// byte, and folds them into an integer left to right.
func decode(buf []byte) uint64 {
	var v uint64
	for _, b := range buf {
		if b >= '0' && b <= '9' {
			v = v*10 + uint64(b-'0')
		}
	}
	return v
}

// Encode renders v right-aligned as ASCII digits, then packs the digits to
// the front of a full-width record with NUL filler behind them. The filler
// bytes are not digits, so the decoder ignores them.
func Encode(v uint64) []byte {
	var buf [RecordSize]byte
	for i := RecordSize - 1; i >= 0; i-- {
		buf[i] = '0' + byte(v%10)
		v /= 10
		if v == 0 {
			break
		}
	}

	rec := make([]byte, RecordSize)
	n := 0
	for _, b := range buf {
		if b != 0 {
			rec[n] = b
			n++
		}
	}
	return rec
}
