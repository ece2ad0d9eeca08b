package classfile

// Annotation is JVMS §4.7.16's annotation structure.
type Annotation struct {
	TypeIndex         uint16
	ElementValuePairs []ElementValuePair
}

type ElementValuePair struct {
	ElementNameIndex uint16
	Value            ElementValue
}

// ElementValue is implemented by the 5 element_value shapes selected by
// the 1-byte tag character (JVMS §4.7.16.1): the 8 primitive tags and
// 's' collapse to ConstValueElement, 'e' to EnumConstValueElement, 'c'
// to ClassInfoElement, '@' to AnnotationValueElement, and '[' to
// ArrayValueElement.
type ElementValue interface {
	ElementTag() byte
}

type ConstValueElement struct {
	Tag             byte
	ConstValueIndex uint16
}

func (e ConstValueElement) ElementTag() byte { return e.Tag }

type EnumConstValueElement struct {
	TypeNameIndex  uint16
	ConstNameIndex uint16
}

func (EnumConstValueElement) ElementTag() byte { return 'e' }

type ClassInfoElement struct {
	ClassInfoIndex uint16
}

func (ClassInfoElement) ElementTag() byte { return 'c' }

type AnnotationValueElement struct {
	Value Annotation
}

func (AnnotationValueElement) ElementTag() byte { return '@' }

type ArrayValueElement struct {
	Values []ElementValue
}

func (ArrayValueElement) ElementTag() byte { return '[' }

// TypePathEntry is one entry of a type_path (JVMS §4.7.20.2).
type TypePathEntry struct {
	TypePathKind      uint8
	TypeArgumentIndex uint8
}

// TypeAnnotation is JVMS §4.7.20's type_annotation structure.
type TypeAnnotation struct {
	TargetType        uint8
	TargetInfo        TargetInfo
	TargetPath        []TypePathEntry
	TypeIndex         uint16
	ElementValuePairs []ElementValuePair
}

// TargetInfo is implemented by the target_info shapes selected by
// target_type (JVMS §4.7.20.1); the mapping is reproduced in
// parse_annotations.go's targetInfoKind.
type TargetInfo interface {
	targetInfoMarker()
}

type TypeParameterTarget struct{ Index uint8 }

func (TypeParameterTarget) targetInfoMarker() {}

type SupertypeTarget struct{ Index uint16 }

func (SupertypeTarget) targetInfoMarker() {}

type TypeParameterBoundTarget struct {
	TypeParameterIndex uint8
	BoundIndex         uint8
}

func (TypeParameterBoundTarget) targetInfoMarker() {}

type EmptyTarget struct{}

func (EmptyTarget) targetInfoMarker() {}

type FormalParameterTarget struct{ Index uint8 }

func (FormalParameterTarget) targetInfoMarker() {}

type ThrowsTarget struct{ Index uint16 }

func (ThrowsTarget) targetInfoMarker() {}

type LocalvarTargetEntry struct {
	StartPC uint16
	Length  uint16
	Index   uint16
}

type LocalvarTarget struct{ Table []LocalvarTargetEntry }

func (LocalvarTarget) targetInfoMarker() {}

type CatchTarget struct{ ExceptionTableIndex uint16 }

func (CatchTarget) targetInfoMarker() {}

type OffsetTarget struct{ Offset uint16 }

func (OffsetTarget) targetInfoMarker() {}

type TypeArgumentTarget struct {
	Offset            uint16
	TypeArgumentIndex uint8
}

func (TypeArgumentTarget) targetInfoMarker() {}
