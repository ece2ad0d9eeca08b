package render

import (
	"strings"
	"testing"

	"classdump/pkg/classfile"
)

func buildMinimalClassFile(t *testing.T) *classfile.ClassFile {
	t.Helper()
	// Mirrors classfile's own minimal fixture: a one-constructor
	// "HelloWorld extends Object" class with a SourceFile attribute.
	data := []byte{
		0xCA, 0xFE, 0xBA, 0xBE, // magic
		0x00, 0x00, // minor
		0x00, 0x34, // major = 52
		0x00, 0x0A, // constant_pool_count = 10
		1, 0x00, 0x0A, 'H', 'e', 'l', 'l', 'o', 'W', 'o', 'r', 'l', 'd', // 1: Utf8 HelloWorld
		7, 0x00, 0x01, // 2: Class -> 1
		1, 0x00, 0x10, 'j', 'a', 'v', 'a', '/', 'l', 'a', 'n', 'g', '/', 'O', 'b', 'j', 'e', 'c', 't', // 3: Utf8
		7, 0x00, 0x03, // 4: Class -> 3
		1, 0x00, 0x06, '<', 'i', 'n', 'i', 't', '>', // 5: Utf8 <init>
		1, 0x00, 0x03, '(', ')', 'V', // 6: Utf8 ()V
		1, 0x00, 0x04, 'C', 'o', 'd', 'e', // 7: Utf8 Code
		1, 0x00, 0x0A, 'S', 'o', 'u', 'r', 'c', 'e', 'F', 'i', 'l', 'e', // 8: Utf8 SourceFile
		1, 0x00, 0x0A, 'H', 'e', 'l', 'l', 'o', '.', 'j', 'a', 'v', 'a', // 9: Utf8 Hello.java
		0x00, 0x21, // access_flags PUBLIC|SUPER
		0x00, 0x02, // this_class
		0x00, 0x04, // super_class
		0x00, 0x00, // interfaces_count
		0x00, 0x00, // fields_count
		0x00, 0x01, // methods_count
		0x00, 0x01, // method access_flags PUBLIC
		0x00, 0x05, // name_index
		0x00, 0x06, // descriptor_index
		0x00, 0x01, // attributes_count
		0x00, 0x07, // Code attribute_name_index
		0x00, 0x00, 0x00, 0x0D, // attribute_length = 13
		0x00, 0x01, // max_stack
		0x00, 0x01, // max_locals
		0x00, 0x00, 0x00, 0x01, // code_length
		0xB1,       // code: return
		0x00, 0x00, // exception_table_count
		0x00, 0x00, // attributes_count
		0x00, 0x01, // class attributes_count
		0x00, 0x08, // SourceFile attribute_name_index
		0x00, 0x00, 0x00, 0x02, // attribute_length
		0x00, 0x09, // sourceFileIndex
	}

	cf, err := classfile.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return cf
}

func TestRenderTopLevelShape(t *testing.T) {
	cf := buildMinimalClassFile(t)
	out := string(Render(cf))

	for _, want := range []string{
		`"magic": "0xCAFEBABE"`,
		`"majorVersion": 52`,
		`"constantPoolCount": 10`,
		`"accessFlags": "33 (PUBLIC | SUPER)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

func TestRenderHTMLEscapesInitName(t *testing.T) {
	cf := buildMinimalClassFile(t)
	out := string(Render(cf))
	if !strings.Contains(out, "&lt;init&gt;") {
		t.Errorf("expected HTML-escaped <init>, got:\n%s", out)
	}
	if strings.Contains(out, "<init>") {
		t.Errorf("raw <init> leaked into output")
	}
}

func TestRenderDerefSiblingMirrorsIndex(t *testing.T) {
	cf := buildMinimalClassFile(t)
	out := string(Render(cf))
	if !strings.Contains(out, `"thisClass": 2`) {
		t.Fatalf("expected thisClass index 2, got:\n%s", out)
	}
	if !strings.Contains(out, `"index": 2`) {
		t.Fatalf("expected thisClass_deref object carrying index 2, got:\n%s", out)
	}
}

func TestRenderCodeHexUppercase(t *testing.T) {
	cf := buildMinimalClassFile(t)
	out := string(Render(cf))
	if !strings.Contains(out, `"code": "B1"`) {
		t.Fatalf("expected uppercase hex bytecode, got:\n%s", out)
	}
}

func TestRenderIdempotent(t *testing.T) {
	cf := buildMinimalClassFile(t)
	first := Render(cf)
	second := Render(cf)
	if string(first) != string(second) {
		t.Fatal("expected identical output on repeated renders of the same model")
	}
}

func TestRenderPreservesUnpairedSurrogateBytes(t *testing.T) {
	// The class's own name carries a lone high surrogate (D83D), encoded
	// as reader.go's utf16Encode writes it: the original 3-byte Modified
	// UTF-8 sequence, not a � replacement.
	surrogate := []byte{0xED, 0xA0, 0xBD}
	name := append([]byte{'X'}, surrogate...)

	data := []byte{
		0xCA, 0xFE, 0xBA, 0xBE,
		0x00, 0x00,
		0x00, 0x34,
		0x00, 0x05,
	}
	data = append(data, 1, 0x00, byte(len(name)))
	data = append(data, name...) // 1: Utf8, the class name
	data = append(data, 7, 0x00, 0x01) // 2: Class -> 1
	data = append(data, 1, 0x00, 0x10, 'j', 'a', 'v', 'a', '/', 'l', 'a', 'n', 'g', '/', 'O', 'b', 'j', 'e', 'c', 't') // 3: Utf8
	data = append(data, 7, 0x00, 0x03) // 4: Class -> 3
	data = append(data,
		0x00, 0x20, // access_flags SUPER
		0x00, 0x02, // this_class
		0x00, 0x04, // super_class
		0x00, 0x00, // interfaces_count
		0x00, 0x00, // fields_count
		0x00, 0x00, // methods_count
		0x00, 0x00, // attributes_count
	)

	cf, err := classfile.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := string(Render(cf))

	if strings.Contains(out, "�") {
		t.Fatalf("unpaired surrogate collapsed to a replacement character:\n%s", out)
	}
	if !strings.Contains(out, string(append([]byte{'X'}, surrogate...))) {
		t.Fatalf("expected the raw surrogate bytes to survive rendering:\n%s", out)
	}
}
