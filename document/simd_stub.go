//go:build !simdjson

package document

// ParseSIMD falls back to the streaming parser when the build excludes the
// SIMD backend.
func ParseSIMD(data []byte) (*Value, error) {
	return Parse(data)
}
