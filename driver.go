package safenorm

import (
	"bytes"
	"sync"

	j "github.com/goccy/go-json"
)

// JSONDriver encodes normalized trees and decodes them back during the
// Normalize round trip. The default implementation is based on goccy/go-json
// and may be swapped with SetJSONDriver.
type JSONDriver interface {
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes b into a generic tree. With NumberJSONNumber numbers
	// decode as json.Number, otherwise as float64.
	Unmarshal(b []byte, mode NumberMode) (any, error)
	Name() string
}

// NoEscapeMarshaler is implemented by drivers that can encode without HTML
// escaping. JSONSize prefers it so '<', '>' and '&' count as one byte each.
type NoEscapeMarshaler interface {
	MarshalNoEscape(v any) ([]byte, error)
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the global JSON driver.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps goccy/go-json.
type defaultJSONDriver struct{}

func (defaultJSONDriver) Marshal(v any) ([]byte, error) { return j.Marshal(v) }

func (defaultJSONDriver) MarshalNoEscape(v any) ([]byte, error) { return j.MarshalNoEscape(v) }

func (defaultJSONDriver) Unmarshal(b []byte, mode NumberMode) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(b))
	if mode == NumberJSONNumber {
		dec.UseNumber()
	}
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (defaultJSONDriver) Name() string { return "go-json" }
