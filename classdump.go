// Package classdump decodes JVM class files into the pretty-printed
// JSON document described by this module's output contract.
package classdump

import (
	"fmt"

	"classdump/pkg/classfile"
	"classdump/pkg/render"
)

// Dump parses data as a JVM class file and renders it to JSON. Any
// parse failure is wrapped and returned; it is never a panic.
func Dump(data []byte) ([]byte, error) {
	cf, err := classfile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("classdump: %w", err)
	}
	return render.Render(cf), nil
}

// DumpString is Dump with its result converted to a string, for callers
// that don't want to handle a byte slice.
func DumpString(data []byte) (string, error) {
	out, err := Dump(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
