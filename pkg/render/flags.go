package render

import (
	"strconv"
	"strings"
)

// mnemonicString renders an access-flag value as "<int> (<A | B | ...>)",
// or "<int> ()" when no bit in the table is set.
func mnemonicString(flags uint16, names []string) rawString {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(flags), 10))
	b.WriteString(" (")
	b.WriteString(strings.Join(names, " | "))
	b.WriteByte(')')
	return rawString(b.String())
}
