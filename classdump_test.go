package classdump

import (
	"strings"
	"testing"
)

func minimalClassBytes() []byte {
	return []byte{
		0xCA, 0xFE, 0xBA, 0xBE,
		0x00, 0x00,
		0x00, 0x34,
		0x00, 0x05,
		1, 0x00, 0x0A, 'H', 'e', 'l', 'l', 'o', 'W', 'o', 'r', 'l', 'd', // 1: Utf8
		7, 0x00, 0x01, // 2: Class -> 1
		1, 0x00, 0x10, 'j', 'a', 'v', 'a', '/', 'l', 'a', 'n', 'g', '/', 'O', 'b', 'j', 'e', 'c', 't', // 3: Utf8
		7, 0x00, 0x03, // 4: Class -> 3
		0x00, 0x20, // access_flags SUPER
		0x00, 0x02, // this_class
		0x00, 0x04, // super_class
		0x00, 0x00, // interfaces_count
		0x00, 0x00, // fields_count
		0x00, 0x00, // methods_count
		0x00, 0x00, // attributes_count
	}
}

func TestDumpProducesValidTopLevelShape(t *testing.T) {
	out, err := DumpString(minimalClassBytes())
	if err != nil {
		t.Fatalf("DumpString: %v", err)
	}
	if !strings.Contains(out, `"magic": "0xCAFEBABE"`) {
		t.Errorf("missing magic field:\n%s", out)
	}
	if !strings.Contains(out, `"thisClass_deref"`) {
		t.Errorf("missing deref sibling:\n%s", out)
	}
}

func TestDumpRejectsBadMagic(t *testing.T) {
	data := minimalClassBytes()
	data[0] = 0x00
	_, err := Dump(data)
	if err == nil {
		t.Fatal("expected an error for a corrupted magic number")
	}
}

func TestDumpRejectsTruncatedInput(t *testing.T) {
	_, err := Dump([]byte{0xCA, 0xFE})
	if err == nil {
		t.Fatal("expected an error for truncated input")
	}
}
