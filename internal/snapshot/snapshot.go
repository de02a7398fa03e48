// Package snapshot moves the full farm state in and out of storage as
// zstd-compressed JSON lines: a header line, one season record and one
// record per ledger.
package snapshot

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

// Header is the first line of a snapshot
type Header struct {
	Version   int       `json:"version"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Ledgers   int       `json:"ledgers"`
}

// Record is one body line
type Record struct {
	Kind   string               `json:"kind"`
	Season *domain.SeasonClock  `json:"season,omitempty"`
	Ledger *domain.PlayerLedger `json:"ledger,omitempty"`
}

// Snapshot is the decoded form
type Snapshot struct {
	Header  Header
	Season  domain.SeasonClock
	Ledgers []*domain.PlayerLedger
}

// Write encodes snap to w. The header's ledger count is taken from snap.
func Write(w io.Writer, snap *Snapshot) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, bufferSize)
	je := json.NewEncoder(bw)

	h := snap.Header
	h.Version = FormatVersion
	h.Kind = HeaderKind
	h.Ledgers = len(snap.Ledgers)
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}

	err = je.Encode(h)
	if err == nil {
		season := snap.Season
		err = je.Encode(Record{Kind: RecordSeason, Season: &season})
	}
	for _, l := range snap.Ledgers {
		if err != nil {
			break
		}
		err = je.Encode(Record{Kind: RecordLedger, Ledger: l})
	}
	if err == nil {
		err = bw.Flush()
	}
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	return err
}

// Read decodes a snapshot written by Write
func Read(r io.Reader) (*Snapshot, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	jd := json.NewDecoder(bufio.NewReaderSize(dec, bufferSize))

	snap := &Snapshot{}
	if err := jd.Decode(&snap.Header); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBadHeader, err)
	}
	if snap.Header.Kind != HeaderKind {
		return nil, fmt.Errorf(ErrMsgWrongKind, HeaderKind, snap.Header.Kind)
	}
	if snap.Header.Version != FormatVersion {
		return nil, fmt.Errorf(ErrMsgUnsupported, snap.Header.Version)
	}

	seenSeason := false
	for line := 2; ; line++ {
		var rec Record
		if err := jd.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf(ErrMsgDecodeRecord, line, err)
		}

		switch {
		case rec.Kind == RecordSeason && rec.Season != nil:
			if seenSeason {
				return nil, errors.New(ErrMsgDuplicateSeason)
			}
			seenSeason = true
			snap.Season = *rec.Season
		case rec.Kind == RecordLedger && rec.Ledger != nil:
			snap.Ledgers = append(snap.Ledgers, rec.Ledger)
		default:
			return nil, fmt.Errorf(ErrMsgUnknownRecord, rec.Kind, line)
		}
	}

	if !seenSeason {
		return nil, errors.New(ErrMsgMissingSeason)
	}
	if len(snap.Ledgers) != snap.Header.Ledgers {
		return nil, fmt.Errorf(ErrMsgCountMismatch, snap.Header.Ledgers, len(snap.Ledgers))
	}
	return snap, nil
}

// WriteFile writes snap to path, creating parent directories
func WriteFile(path string, snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, snap); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads the snapshot at path
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
