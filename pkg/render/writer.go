// Package render walks a parsed classfile.ClassFile and produces the
// auditable JSON tree described for this tool: every constant-pool index
// is emitted alongside a "_deref" sibling holding the recursively
// rendered entry it points at.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/pretty"
)

// obj is an insertion-ordered JSON object. encoding/json's map support
// would sort keys alphabetically, which does not match the fixed field
// order this tool's output is defined by, so objects are built as an
// ordered slice of key/value pairs instead.
type obj []kv

type kv struct {
	key string
	val any
}

func (o obj) set(key string, val any) obj {
	return append(o, kv{key, val})
}

// marshal encodes v as compact JSON. Supported shapes: obj (ordered
// object), []any (array), string (HTML-escaped then JSON-escaped),
// the integer/float kinds used by this package, bool, and nil.
func marshal(v any) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.WriteString("null")
	case obj:
		writeObj(b, x)
	case []any:
		writeArr(b, x)
	case string:
		writeJSONString(b, htmlEscape(x))
	case rawString:
		writeJSONString(b, string(x))
	case bool:
		if x {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case int:
		b.WriteString(strconv.Itoa(x))
	case int32:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		b.WriteString(strconv.FormatInt(x, 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(x, 10))
	case float32:
		writeFloat(b, float64(x), 32)
	case float64:
		writeFloat(b, x, 64)
	default:
		panic(fmt.Sprintf("render: unsupported value type %T", v))
	}
}

func writeFloat(b *strings.Builder, f float64, bitSize int) {
	switch {
	case f != f: // NaN
		b.WriteString(`"NaN"`)
	case math.IsInf(f, 0):
		if f < 0 {
			b.WriteString(`"-Infinity"`)
		} else {
			b.WriteString(`"Infinity"`)
		}
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, bitSize))
	}
}

func writeObj(b *strings.Builder, o obj) {
	b.WriteByte('{')
	for i, pair := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSONString(b, pair.key)
		b.WriteByte(':')
		writeValue(b, pair.val)
	}
	b.WriteByte('}')
}

func writeArr(b *strings.Builder, a []any) {
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		writeValue(b, v)
	}
	b.WriteByte(']')
}

// rawString marks a value that has already been HTML-escaped (or must
// never be) so writeValue does not escape it a second time. Used for
// strings this package itself generates, such as mnemonic renderings
// and hex dumps, as opposed to strings decoded from the class file.
type rawString string

// writeJSONString walks s byte-wise rather than ranging over it as runes.
// Go's range-over-string decoder substitutes U+FFFD for any byte sequence
// it can't decode as valid UTF-8, which includes the 3-byte Modified-UTF-8
// encoding reader.go's utf16Encode deliberately produces for an unpaired
// surrogate. Copying the undecodable byte through verbatim instead of
// substituting keeps those bytes round-tripping into the JSON output.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				b.WriteString(`\"`)
			case '\\':
				b.WriteString(`\\`)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				if c < 0x20 {
					fmt.Fprintf(b, `\u%04x`, c)
				} else {
					b.WriteByte(c)
				}
			}
			i++
			continue
		}
		if r, size := utf8.DecodeRuneInString(s[i:]); r != utf8.RuneError || size != 1 {
			b.WriteString(s[i : i+size])
			i += size
		} else {
			b.WriteByte(c)
			i++
		}
	}
	b.WriteByte('"')
}

// htmlEscape applies the fixed escape set this tool's browser-side
// consumer requires, run before JSON string encoding. Like
// writeJSONString, it walks s byte-wise so undecodable byte sequences
// (the hand-encoded unpaired surrogates from reader.go) pass through
// unchanged instead of being collapsed to U+FFFD.
func htmlEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '&':
				b.WriteString("&amp;")
			case '<':
				b.WriteString("&lt;")
			case '>':
				b.WriteString("&gt;")
			case '"':
				b.WriteString("&quot;")
			case '\'':
				b.WriteString("&#39;")
			default:
				b.WriteByte(c)
			}
			i++
			continue
		}
		if r, size := utf8.DecodeRuneInString(s[i:]); r != utf8.RuneError || size != 1 {
			b.WriteString(s[i : i+size])
			i += size
		} else {
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// pretty reindents compact JSON with a two-space indent, preserving key
// order exactly as written.
func prettyPrint(compact string) []byte {
	return pretty.PrettyOptions([]byte(compact), &pretty.Options{Indent: "  "})
}
