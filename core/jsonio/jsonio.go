// Package jsonio reads and writes the record arrays exchanged with users.
package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cs2-localizer/core/match"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

var (
	// ErrInputMissing is returned when an input file does not exist.
	ErrInputMissing = errors.New("input file not found")
	// ErrMalformedInput is returned when an input file is not a JSON array.
	ErrMalformedInput = errors.New("input is not a JSON array")
)

// ReadRecords loads the array stored at path.
func ReadRecords(fs afero.Fs, path string) ([]match.Record, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return DecodeRecords(data)
}

// DecodeRecords parses a JSON array of records.
func DecodeRecords(data []byte) ([]match.Record, error) {
	recs, err := match.ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return recs, nil
}

// Encode renders records as an array indented by two spaces. Strings are re-emitted as UTF-8,
// so \uXXXX escapes in the input do not survive; key order is preserved.
func Encode(recs []match.Record) ([]byte, error) {
	w := newWriter()
	w.out.WriteByte('[')
	for i, rec := range recs {
		if i > 0 {
			w.out.WriteByte(',')
		}
		raw, err := rec.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if err := w.value(gjson.ParseBytes(raw)); err != nil {
			return nil, err
		}
	}
	w.out.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, w.out.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format records: %w", err)
	}
	return out.Bytes(), nil
}

// writer emits compact JSON with strings encoded without ASCII or HTML escaping.
type writer struct {
	out     bytes.Buffer
	scratch bytes.Buffer
	enc     *json.Encoder
}

func newWriter() *writer {
	w := &writer{}
	w.enc = json.NewEncoder(&w.scratch)
	w.enc.SetEscapeHTML(false)
	return w
}

func (w *writer) value(v gjson.Result) error {
	switch {
	case v.IsObject():
		return w.container(v, '{', '}', true)
	case v.IsArray():
		return w.container(v, '[', ']', false)
	case v.Type == gjson.String:
		return w.str(v.String())
	case v.Raw == "":
		w.out.WriteString("null")
	default:
		w.out.WriteString(v.Raw)
	}
	return nil
}

func (w *writer) container(v gjson.Result, open, end byte, keyed bool) error {
	var err error
	first := true
	w.out.WriteByte(open)
	v.ForEach(func(key, val gjson.Result) bool {
		if !first {
			w.out.WriteByte(',')
		}
		first = false
		if keyed {
			if err = w.str(key.String()); err != nil {
				return false
			}
			w.out.WriteByte(':')
		}
		err = w.value(val)
		return err == nil
	})
	w.out.WriteByte(end)
	return err
}

func (w *writer) str(s string) error {
	w.scratch.Reset()
	if err := w.enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode string: %w", err)
	}
	w.out.Write(bytes.TrimRight(w.scratch.Bytes(), "\n"))
	return nil
}

// WriteRecords writes records to path, creating parent directories.
func WriteRecords(fs afero.Fs, path string, recs []match.Record) ([]byte, error) {
	data, err := Encode(recs)
	if err != nil {
		return nil, err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return data, nil
}
