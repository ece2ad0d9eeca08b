package classfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// fixtureBuilder assembles well-formed class-file byte streams for tests.
// No real .class binaries ship with this repo, so every fixture here is
// built by hand from the JVMS §4 grammar.
type fixtureBuilder struct {
	buf bytes.Buffer
}

func (b *fixtureBuilder) u8(v uint8) *fixtureBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *fixtureBuilder) u16(v uint16) *fixtureBuilder {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *fixtureBuilder) u32(v uint32) *fixtureBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *fixtureBuilder) u64(v uint64) *fixtureBuilder {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *fixtureBuilder) raw(v []byte) *fixtureBuilder {
	b.buf.Write(v)
	return b
}

func (b *fixtureBuilder) utf8Constant(s string) *fixtureBuilder {
	b.u8(TagUtf8)
	b.u16(uint16(len(s)))
	b.raw([]byte(s))
	return b
}

func (b *fixtureBuilder) bytes() []byte { return b.buf.Bytes() }

// buildMinimalClass assembles a one-method "HelloWorld extends Object"
// class carrying a trivial Code attribute and a SourceFile attribute.
func buildMinimalClass() []byte {
	var b fixtureBuilder
	b.u32(classMagic)
	b.u16(0)  // minor
	b.u16(52) // major

	// Constant pool: 9 entries, indices 1..9.
	b.u16(10) // constant_pool_count
	b.utf8Constant("HelloWorld")           // 1
	b.u8(TagClass).u16(1)                  // 2 -> HelloWorld
	b.utf8Constant("java/lang/Object")     // 3
	b.u8(TagClass).u16(3)                  // 4 -> Object
	b.utf8Constant("<init>")               // 5
	b.utf8Constant("()V")                  // 6
	b.utf8Constant("Code")                 // 7
	b.utf8Constant("SourceFile")            // 8
	b.utf8Constant("Hello.java")           // 9

	b.u16(AccPublic | AccSuper) // access_flags
	b.u16(2)                    // this_class
	b.u16(4)                    // super_class
	b.u16(0)                    // interfaces_count
	b.u16(0)                    // fields_count

	b.u16(1)          // methods_count
	b.u16(AccPublic)  // method access_flags
	b.u16(5)          // name_index -> <init>
	b.u16(6)          // descriptor_index -> ()V
	b.u16(1)          // attributes_count

	b.u16(7) // attribute_name_index -> Code
	codeBody := buildCodeBody()
	b.u32(uint32(len(codeBody)))
	b.raw(codeBody)

	b.u16(1) // class attributes_count
	b.u16(8) // SourceFile
	b.u32(2)
	b.u16(9) // Hello.java

	return b.bytes()
}

func buildCodeBody() []byte {
	var b fixtureBuilder
	b.u16(1)              // max_stack
	b.u16(1)              // max_locals
	b.u32(1)               // code_length
	b.raw([]byte{0xB1})   // return
	b.u16(0)              // exception_table_count
	b.u16(0)              // attributes_count
	return b.bytes()
}

func TestParseMinimalClass(t *testing.T) {
	cf, err := Parse(buildMinimalClass())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	name, err := cf.ClassName()
	if err != nil || name != "HelloWorld" {
		t.Fatalf("ClassName: got (%q, %v)", name, err)
	}

	super, err := cf.SuperClassName()
	if err != nil || super != "java/lang/Object" {
		t.Fatalf("SuperClassName: got (%q, %v)", super, err)
	}

	if len(cf.Methods) != 1 {
		t.Fatalf("Methods: got %d, want 1", len(cf.Methods))
	}
	m := &cf.Methods[0]
	mname, err := m.Name(cf.ConstantPool)
	if err != nil || mname != "<init>" {
		t.Fatalf("method name: got (%q, %v)", mname, err)
	}
	if !m.IsConstructor(cf.ConstantPool) {
		t.Fatal("expected IsConstructor true")
	}

	code := m.Code()
	if code == nil {
		t.Fatal("expected a Code attribute")
	}
	if code.MaxStack != 1 || code.MaxLocals != 1 || len(code.Code) != 1 {
		t.Fatalf("unexpected Code shape: %+v", code)
	}

	source, ok, err := cf.SourceFile()
	if err != nil || !ok || source != "Hello.java" {
		t.Fatalf("SourceFile: got (%q, %v, %v)", source, ok, err)
	}
}

func TestParseBadMagic(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	_, err := Parse(data)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != BadMagic {
		t.Fatalf("expected BadMagic, got %v", err)
	}
}

func TestParseTruncatedConstantPool(t *testing.T) {
	var b fixtureBuilder
	b.u32(classMagic)
	b.u16(0)
	b.u16(52)
	b.u16(3) // constant_pool_count, but no entries follow

	_, err := Parse(b.bytes())
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != Truncated {
		t.Fatalf("expected Truncated, got %v", err)
	}
}

func TestParseLongPhantomSlot(t *testing.T) {
	var b fixtureBuilder
	b.u32(classMagic)
	b.u16(0)
	b.u16(52)
	b.u16(4) // count: index 1 (Long, occupies 1 & 2), index 3 (Utf8)
	b.u8(TagLong).u64(42)
	b.utf8Constant("tail")

	b.u16(0) // access_flags
	b.u16(0) // this_class (unresolved, fine, we only inspect the pool)
	b.u16(0) // super_class
	b.u16(0) // interfaces_count
	b.u16(0) // fields_count
	b.u16(0) // methods_count
	b.u16(0) // attributes_count

	cf, err := Parse(b.bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cf.ConstantPool[2] != nil {
		t.Fatalf("expected phantom nil slot at index 2, got %#v", cf.ConstantPool[2])
	}
	long, ok := cf.ConstantPool[1].(*ConstantLong)
	if !ok || long.Value != 42 {
		t.Fatalf("expected ConstantLong{42} at index 1, got %#v", cf.ConstantPool[1])
	}
	str, err := Utf8At(cf.ConstantPool, 3)
	if err != nil || str != "tail" {
		t.Fatalf("Utf8At(3): got (%q, %v)", str, err)
	}
}

func TestParseUnknownAttributeIsNotFatal(t *testing.T) {
	var b fixtureBuilder
	b.u32(classMagic)
	b.u16(0)
	b.u16(52)
	b.u16(2)
	b.utf8Constant("x-vendor-extension")

	b.u16(0) // access_flags
	b.u16(0) // this_class
	b.u16(0) // super_class
	b.u16(0) // interfaces_count
	b.u16(0) // fields_count
	b.u16(0) // methods_count

	b.u16(1) // class attributes_count
	b.u16(1) // attribute_name_index -> x-vendor-extension
	b.u32(3)
	b.raw([]byte{0x01, 0x02, 0x03})

	cf, err := Parse(b.bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cf.Attributes) != 1 {
		t.Fatalf("Attributes: got %d, want 1", len(cf.Attributes))
	}
	unk, ok := cf.Attributes[0].(*UnknownAttribute)
	if !ok {
		t.Fatalf("expected *UnknownAttribute, got %T", cf.Attributes[0])
	}
	if !bytes.Equal(unk.Info, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("Info: got %v", unk.Info)
	}
}

func TestParseInvalidAttributeNameIndex(t *testing.T) {
	var b fixtureBuilder
	b.u32(classMagic)
	b.u16(0)
	b.u16(52)
	b.u16(1) // empty constant pool

	b.u16(0) // access_flags
	b.u16(0) // this_class
	b.u16(0) // super_class
	b.u16(0) // interfaces_count
	b.u16(0) // fields_count
	b.u16(0) // methods_count

	b.u16(1) // class attributes_count
	b.u16(1) // attribute_name_index -> out of range
	b.u32(0)

	_, err := Parse(b.bytes())
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != InvalidAttributeNameIndex {
		t.Fatalf("expected InvalidAttributeNameIndex, got %v", err)
	}
}
