package classfile

// AttributeInfo is implemented by every attribute variant. Dispatch is by
// the Utf8 name resolved through the constant pool (JVMS §4.7); a name
// that matches none of the predefined kinds becomes an Unknown carrying
// its raw bytes untouched.
type AttributeInfo interface {
	AttributeName() uint16
}

// attrBase carries the attribute_name_index every variant shares.
type attrBase struct {
	NameIndex uint16
}

func (a attrBase) AttributeName() uint16 { return a.NameIndex }

type ConstantValueAttribute struct {
	attrBase
	ConstantValueIndex uint16
}

type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16
}

type CodeAttribute struct {
	attrBase
	MaxStack      uint16
	MaxLocals     uint16
	Code          []byte
	ExceptionTable []ExceptionTableEntry
	Attributes    []AttributeInfo
}

type StackMapTableAttribute struct {
	attrBase
	Entries []StackMapFrame
}

// StackMapAttribute is the legacy, pre-Java-6 uncompressed StackMap
// attribute. Its entries are normalised to FullFrame with OffsetDelta
// set to the absolute offset; see DESIGN.md for why this repo keeps
// that normalisation instead of adding a dedicated variant.
type StackMapAttribute struct {
	attrBase
	Entries []StackMapFrame
}

type ExceptionsAttribute struct {
	attrBase
	ExceptionIndexTable []uint16
}

type InnerClassEntry struct {
	InnerClassInfoIndex uint16
	OuterClassInfoIndex uint16
	InnerNameIndex      uint16
	InnerClassAccessFlags uint16
}

type InnerClassesAttribute struct {
	attrBase
	Classes []InnerClassEntry
}

type EnclosingMethodAttribute struct {
	attrBase
	ClassIndex  uint16
	MethodIndex uint16
}

type SyntheticAttribute struct{ attrBase }

type SignatureAttribute struct {
	attrBase
	SignatureIndex uint16
}

type SourceFileAttribute struct {
	attrBase
	SourceFileIndex uint16
}

type SourceDebugExtensionAttribute struct {
	attrBase
	DebugExtension []byte
}

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LineNumberTableAttribute struct {
	attrBase
	Entries []LineNumberEntry
}

type LocalVariableEntry struct {
	StartPC         uint16
	Length          uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Index           uint16
}

type LocalVariableTableAttribute struct {
	attrBase
	Entries []LocalVariableEntry
}

type LocalVariableTypeEntry struct {
	StartPC        uint16
	Length         uint16
	NameIndex      uint16
	SignatureIndex uint16
	Index          uint16
}

type LocalVariableTypeTableAttribute struct {
	attrBase
	Entries []LocalVariableTypeEntry
}

type DeprecatedAttribute struct{ attrBase }

type RuntimeVisibleAnnotationsAttribute struct {
	attrBase
	Annotations []Annotation
}

type RuntimeInvisibleAnnotationsAttribute struct {
	attrBase
	Annotations []Annotation
}

type RuntimeVisibleParameterAnnotationsAttribute struct {
	attrBase
	ParameterAnnotations [][]Annotation
}

type RuntimeInvisibleParameterAnnotationsAttribute struct {
	attrBase
	ParameterAnnotations [][]Annotation
}

type RuntimeVisibleTypeAnnotationsAttribute struct {
	attrBase
	Annotations []TypeAnnotation
}

type RuntimeInvisibleTypeAnnotationsAttribute struct {
	attrBase
	Annotations []TypeAnnotation
}

type AnnotationDefaultAttribute struct {
	attrBase
	Value ElementValue
}

type BootstrapMethod struct {
	BootstrapMethodRef uint16
	BootstrapArguments []uint16
}

type BootstrapMethodsAttribute struct {
	attrBase
	Methods []BootstrapMethod
}

type MethodParameterEntry struct {
	NameIndex   uint16
	AccessFlags uint16
}

type MethodParametersAttribute struct {
	attrBase
	Parameters []MethodParameterEntry
}

type ModuleRequires struct {
	RequiresIndex   uint16
	RequiresFlags   uint16
	RequiresVersionIndex uint16
}

type ModuleExports struct {
	ExportsIndex    uint16
	ExportsFlags    uint16
	ExportsToIndex  []uint16
}

type ModuleOpens struct {
	OpensIndex   uint16
	OpensFlags   uint16
	OpensToIndex []uint16
}

type ModuleProvides struct {
	ProvidesIndex     uint16
	ProvidesWithIndex []uint16
}

type ModuleAttribute struct {
	attrBase
	ModuleNameIndex    uint16
	ModuleFlags        uint16
	ModuleVersionIndex uint16
	Requires           []ModuleRequires
	Exports            []ModuleExports
	Opens              []ModuleOpens
	Uses               []uint16
	Provides           []ModuleProvides
}

type ModulePackagesAttribute struct {
	attrBase
	PackageIndexes []uint16
}

type ModuleMainClassAttribute struct {
	attrBase
	MainClassIndex uint16
}

type NestHostAttribute struct {
	attrBase
	HostClassIndex uint16
}

type NestMembersAttribute struct {
	attrBase
	Classes []uint16
}

type RecordComponent struct {
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

type RecordAttribute struct {
	attrBase
	Components []RecordComponent
}

type PermittedSubclassesAttribute struct {
	attrBase
	Classes []uint16
}

// UnknownAttribute preserves the raw bytes of any attribute whose name
// does not match a predefined kind. This is not an error condition;
// an unrecognised name is not fatal.
type UnknownAttribute struct {
	attrBase
	Info []byte
}
