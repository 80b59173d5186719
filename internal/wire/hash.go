package wire

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes a stable, collision-resistant digest over the
// textual concatenation of a kind label and its payload-shaping fields.
// It is a cache key, not a security hash, and never depends on
// wall-clock time or process state.
//
// Two xxhash sums, one over the canonical bytes and one over the same
// bytes with a trailing 0x01, are concatenated to produce a 128-bit
// digest, since xxhash itself is only a 64-bit hash.
func ContentHash(kind string, fields map[string]string) string {
	buf := canonicalize(kind, fields)

	h1 := xxhash.Sum64(buf)
	h2 := xxhash.Sum64(append(buf, 0x01))

	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[:8], h1)
	binary.BigEndian.PutUint64(out[8:], h2)
	return hexEncode(out)
}

func canonicalize(kind string, fields map[string]string) []byte {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := make([]byte, 0, 64+len(fields)*16)
	buf = append(buf, kind...)
	buf = append(buf, 0)
	for _, k := range keys {
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = append(buf, fields[k]...)
		buf = append(buf, 0)
	}
	return buf
}

func hexEncode(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0x0f]
	}
	return string(out)
}
