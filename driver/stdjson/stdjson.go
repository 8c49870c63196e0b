// Package stdjson provides a safenorm.JSONDriver backed by encoding/json, for
// callers that need byte-for-byte parity with the standard library encoder.
//
//	safenorm.SetJSONDriver(stdjson.Driver())
package stdjson

import (
	"bytes"
	"encoding/json"

	"github.com/reoring/safenorm"
)

// Driver returns the encoding/json driver.
func Driver() safenorm.JSONDriver { return driver{} }

type driver struct{}

func (driver) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (driver) MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (driver) Unmarshal(b []byte, mode safenorm.NumberMode) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	if mode == safenorm.NumberJSONNumber {
		dec.UseNumber()
	}
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (driver) Name() string { return "encoding/json" }
