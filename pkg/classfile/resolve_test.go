package classfile

import "testing"

func TestExpectWrongVariant(t *testing.T) {
	pool := []ConstantPoolEntry{nil, &ConstantInteger{Value: 1}}
	_, err := expect[*ConstantUtf8](pool, 1)
	rerr, ok := err.(*ResolveError)
	if !ok {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if rerr.Index != 1 || rerr.Got == "" {
		t.Fatalf("unexpected ResolveError: %+v", rerr)
	}
}

func TestExpectOutOfRange(t *testing.T) {
	pool := []ConstantPoolEntry{nil}
	_, err := expect[*ConstantUtf8](pool, 5)
	rerr, ok := err.(*ResolveError)
	if !ok {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if rerr.Got != "" {
		t.Fatalf("expected empty Got for out-of-range index, got %q", rerr.Got)
	}
}

func TestFieldConstantValue(t *testing.T) {
	pool := []ConstantPoolEntry{
		nil,
		&ConstantInteger{Value: 7},
	}
	f := &FieldInfo{
		Attributes: []AttributeInfo{
			&ConstantValueAttribute{ConstantValueIndex: 1},
		},
	}
	v, ok, err := f.ConstantValue(pool)
	if err != nil || !ok {
		t.Fatalf("ConstantValue: got (%v, %v, %v)", v, ok, err)
	}
	if v.(int32) != 7 {
		t.Fatalf("ConstantValue: got %v, want 7", v)
	}
}

func TestFieldConstantValueAbsent(t *testing.T) {
	f := &FieldInfo{}
	_, ok, err := f.ConstantValue(nil)
	if err != nil || ok {
		t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
	}
}

func TestMethodIsStaticInitializer(t *testing.T) {
	pool := []ConstantPoolEntry{nil, &ConstantUtf8{Value: "<clinit>"}}
	m := &MethodInfo{NameIndex: 1}
	if !m.IsStaticInitializer(pool) {
		t.Fatal("expected IsStaticInitializer true")
	}
	if m.IsConstructor(pool) {
		t.Fatal("expected IsConstructor false")
	}
}
