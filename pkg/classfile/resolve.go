package classfile

import "fmt"

// ResolveError is returned by the Resolver Scope's typed lookups when an
// index is out of range, points at the reserved null slot, or resolves
// to an entry of the wrong constant-pool variant.
type ResolveError struct {
	Index uint16
	Want  string
	Got   string
}

func (e *ResolveError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("constant pool index %d is invalid or empty (want %s)", e.Index, e.Want)
	}
	return fmt.Sprintf("constant pool index %d is %s, want %s", e.Index, e.Got, e.Want)
}

// expect is the generic core of the resolver: given an index and the
// expected constant-pool variant T, it returns the unwrapped entry or a
// ResolveError.
func expect[T ConstantPoolEntry](pool []ConstantPoolEntry, index uint16) (T, error) {
	var zero T
	if int(index) >= len(pool) || pool[index] == nil {
		return zero, &ResolveError{Index: index, Want: fmt.Sprintf("%T", zero)}
	}
	v, ok := pool[index].(T)
	if !ok {
		return zero, &ResolveError{Index: index, Want: fmt.Sprintf("%T", zero), Got: fmt.Sprintf("%T", pool[index])}
	}
	return v, nil
}

// Utf8At resolves a Utf8 entry and returns its string value.
func Utf8At(pool []ConstantPoolEntry, index uint16) (string, error) {
	u, err := expect[*ConstantUtf8](pool, index)
	if err != nil {
		return "", err
	}
	return u.Value, nil
}

// ClassInfoAt resolves a Class entry.
func ClassInfoAt(pool []ConstantPoolEntry, index uint16) (*ConstantClass, error) {
	return expect[*ConstantClass](pool, index)
}

// ClassNameAt resolves a Class entry and follows its name_index to the
// Utf8 it names.
func ClassNameAt(pool []ConstantPoolEntry, index uint16) (string, error) {
	c, err := ClassInfoAt(pool, index)
	if err != nil {
		return "", err
	}
	return Utf8At(pool, c.NameIndex)
}

// NameAndTypeAt resolves a NameAndType entry.
func NameAndTypeAt(pool []ConstantPoolEntry, index uint16) (*ConstantNameAndType, error) {
	return expect[*ConstantNameAndType](pool, index)
}

// ClassName returns the fully qualified internal name of this class.
func (cf *ClassFile) ClassName() (string, error) {
	return ClassNameAt(cf.ConstantPool, cf.ThisClass)
}

// SuperClassName returns the internal name of the super class, or ""
// with a nil error if SuperClass is 0 (only legal for java/lang/Object).
func (cf *ClassFile) SuperClassName() (string, error) {
	if cf.SuperClass == 0 {
		return "", nil
	}
	return ClassNameAt(cf.ConstantPool, cf.SuperClass)
}

// InterfaceNames resolves every entry of the interfaces table to its
// internal class name.
func (cf *ClassFile) InterfaceNames() ([]string, error) {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		name, err := ClassNameAt(cf.ConstantPool, idx)
		if err != nil {
			return nil, fmt.Errorf("resolving interface %d: %w", i, err)
		}
		names[i] = name
	}
	return names, nil
}

// SourceFile returns the decoded name from this class's SourceFile
// attribute. It returns "", false, nil if no such attribute is present;
// a non-nil error means the attribute exists but its SourceFileIndex
// does not resolve, distinguishing that case from "absent" the way
// ClassName and SuperClassName distinguish their own failure modes.
func (cf *ClassFile) SourceFile() (string, bool, error) {
	for _, attr := range cf.Attributes {
		if sf, ok := attr.(*SourceFileAttribute); ok {
			name, err := Utf8At(cf.ConstantPool, sf.SourceFileIndex)
			if err != nil {
				return "", true, err
			}
			return name, true, nil
		}
	}
	return "", false, nil
}

// Name resolves a field's name.
func (f *FieldInfo) Name(pool []ConstantPoolEntry) (string, error) {
	return Utf8At(pool, f.NameIndex)
}

// Descriptor resolves a field's descriptor string.
func (f *FieldInfo) Descriptor(pool []ConstantPoolEntry) (string, error) {
	return Utf8At(pool, f.DescriptorIndex)
}

// ConstantValue returns the decoded value of this field's ConstantValue
// attribute, if present: the underlying Go primitive for Integer/Float/
// Long/Double entries, or the decoded Utf8 string for a String constant.
func (f *FieldInfo) ConstantValue(pool []ConstantPoolEntry) (any, bool, error) {
	for _, attr := range f.Attributes {
		cv, ok := attr.(*ConstantValueAttribute)
		if !ok {
			continue
		}
		if int(cv.ConstantValueIndex) >= len(pool) || pool[cv.ConstantValueIndex] == nil {
			return nil, false, &ResolveError{Index: cv.ConstantValueIndex, Want: "constant"}
		}
		switch entry := pool[cv.ConstantValueIndex].(type) {
		case *ConstantInteger:
			return entry.Value, true, nil
		case *ConstantFloat:
			return entry.Value, true, nil
		case *ConstantLong:
			return entry.Value, true, nil
		case *ConstantDouble:
			return entry.Value, true, nil
		case *ConstantString:
			s, err := Utf8At(pool, entry.StringIndex)
			if err != nil {
				return nil, false, err
			}
			return s, true, nil
		default:
			return nil, false, &ResolveError{Index: cv.ConstantValueIndex, Want: "constant", Got: fmt.Sprintf("%T", entry)}
		}
	}
	return nil, false, nil
}

// Name resolves a method's name.
func (m *MethodInfo) Name(pool []ConstantPoolEntry) (string, error) {
	return Utf8At(pool, m.NameIndex)
}

// Descriptor resolves a method's descriptor string.
func (m *MethodInfo) Descriptor(pool []ConstantPoolEntry) (string, error) {
	return Utf8At(pool, m.DescriptorIndex)
}

// IsConstructor reports whether this method's name is "<init>".
func (m *MethodInfo) IsConstructor(pool []ConstantPoolEntry) bool {
	name, err := m.Name(pool)
	return err == nil && name == "<init>"
}

// IsStaticInitializer reports whether this method's name is "<clinit>".
func (m *MethodInfo) IsStaticInitializer(pool []ConstantPoolEntry) bool {
	name, err := m.Name(pool)
	return err == nil && name == "<clinit>"
}

// Code returns this method's Code attribute, if any.
func (m *MethodInfo) Code() *CodeAttribute {
	for _, attr := range m.Attributes {
		if code, ok := attr.(*CodeAttribute); ok {
			return code
		}
	}
	return nil
}

// RefClassInfo resolves the class_index carried by a Fieldref,
// Methodref, or InterfaceMethodref-shaped entry.
func RefClassInfo(pool []ConstantPoolEntry, classIndex uint16) (*ConstantClass, error) {
	return ClassInfoAt(pool, classIndex)
}

// RefNameAndType resolves the name_and_type_index carried by a Fieldref,
// Methodref, or InterfaceMethodref-shaped entry.
func RefNameAndType(pool []ConstantPoolEntry, natIndex uint16) (*ConstantNameAndType, error) {
	return NameAndTypeAt(pool, natIndex)
}
