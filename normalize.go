package safenorm

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// DefaultDepth matches the default depth of the Node.js REPL.
	DefaultDepth = 3
	// DefaultMaxSize is half of a 200kB collector payload limit.
	DefaultMaxSize = 100 * 1024
	// Unlimited disables the depth budget.
	Unlimited = -1
)

// Normalizer converts arbitrary values into JSON-encodable trees. It holds
// only configuration and is safe for concurrent use.
type Normalizer struct {
	env           Environment
	isElement     func(any) bool
	formatElement ElementFormatter
	customEvent   reflect.Type
	driver        JSONDriver
	numberMode    NumberMode
	logger        *zap.Logger
}

// New returns a Normalizer configured by opts.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		isElement:     IsElement,
		formatElement: defaultElementPath,
		customEvent:   customEventIface,
		logger:        zap.NewNop(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

var defaultNormalizer = New()

func (n *Normalizer) jsonDriver() JSONDriver {
	if n.driver != nil {
		return n.driver
	}
	return CurrentJSONDriver()
}

// Normalize walks input with the given depth budget (Unlimited for none) and
// round-trips the result through the JSON driver. It never panics: any
// failure yields NonSerializable.
func (n *Normalizer) Normalize(input any, depth int) (out any) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Debug("normalize: recovered panic",
				zap.String("code", CodePanic), zap.String("panic", fmt.Sprint(r)))
			out = NonSerializable
		}
	}()

	walked, err := n.Walk("", input, depth)
	if err != nil {
		n.logger.Debug("normalize: value is not serializable", zap.Error(err))
		return NonSerializable
	}
	drv := n.jsonDriver()
	b, err := drv.Marshal(walked)
	if err != nil {
		n.logger.Debug("normalize: encode failed",
			zap.String("code", CodeEncodeFailed), zap.String("driver", drv.Name()), zap.Error(err))
		return NonSerializable
	}
	decoded, err := drv.Unmarshal(b, n.numberMode)
	if err != nil {
		n.logger.Debug("normalize: decode failed",
			zap.String("code", CodeDecodeFailed), zap.String("driver", drv.Name()), zap.Error(err))
		return NonSerializable
	}
	return decoded
}

// NormalizeToSize normalizes input and lowers the depth until the encoding
// fits in maxSize bytes. At depth 0 the result is returned regardless of size.
// An Unlimited depth is first replaced by the height of the full tree.
func (n *Normalizer) NormalizeToSize(input any, depth, maxSize int) any {
	if depth < 0 {
		serialized := n.Normalize(input, depth)
		size := n.JSONSize(serialized)
		if size <= maxSize {
			return serialized
		}
		depth = treeHeight(serialized) - 1
		if depth < 0 {
			return serialized
		}
		n.logger.Debug("normalize: reducing depth",
			zap.Int("depth", Unlimited), zap.Int("size", size), zap.Int("max_size", maxSize))
	}
	for {
		serialized := n.Normalize(input, depth)
		if depth <= 0 {
			return serialized
		}
		size := n.JSONSize(serialized)
		if size <= maxSize {
			return serialized
		}
		n.logger.Debug("normalize: reducing depth",
			zap.Int("depth", depth), zap.Int("size", size), zap.Int("max_size", maxSize))
		depth--
	}
}

// treeHeight is the smallest depth at which Walk reproduces the normalized
// tree v: 0 for scalars, one more than the tallest child for containers.
func treeHeight(v any) int {
	h := 0
	switch t := v.(type) {
	case []any:
		for _, c := range t {
			h = max(h, treeHeight(c))
		}
	case map[string]any:
		for _, c := range t {
			h = max(h, treeHeight(c))
		}
	default:
		return 0
	}
	return h + 1
}

// JSONSize returns the UTF-8 byte length of v's JSON encoding, or 0 if v
// cannot be encoded. HTML characters are measured unescaped when the driver
// implements NoEscapeMarshaler.
func (n *Normalizer) JSONSize(v any) int {
	drv := n.jsonDriver()
	var (
		b   []byte
		err error
	)
	if ne, ok := drv.(NoEscapeMarshaler); ok {
		b, err = ne.MarshalNoEscape(v)
	} else {
		b, err = drv.Marshal(v)
	}
	if err != nil {
		return 0
	}
	return UTF8Length(string(b))
}

// UTF8Length returns the UTF-8 byte length of s. Invalid bytes count as the
// three-byte replacement character they encode to.
func UTF8Length(s string) int {
	if utf8.ValidString(s) {
		return len(s)
	}
	n := 0
	for _, r := range s {
		n += utf8.RuneLen(r)
	}
	return n
}

// Normalize normalizes input with the default Normalizer.
func Normalize(input any, depth int) any { return defaultNormalizer.Normalize(input, depth) }

// NormalizeToSize normalizes input with the default Normalizer.
func NormalizeToSize(input any, depth, maxSize int) any {
	return defaultNormalizer.NormalizeToSize(input, depth, maxSize)
}

// JSONSize measures v with the default Normalizer.
func JSONSize(v any) int { return defaultNormalizer.JSONSize(v) }

// Walk walks value with the default Normalizer.
func Walk(key string, value any, depth int) (any, error) {
	return defaultNormalizer.Walk(key, value, depth)
}

// Classify classifies value with the default Normalizer.
func Classify(value any, key string) any { return defaultNormalizer.Classify(value, key) }

// WalkSource extracts the walk source of value with the default Normalizer.
func WalkSource(value any) any { return defaultNormalizer.WalkSource(value) }
