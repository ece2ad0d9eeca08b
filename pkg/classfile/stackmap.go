package classfile

// VerificationTypeInfo is implemented by the 9 defined verification-type
// variants (JVMS §4.7.4). UnknownVerificationType exists for forward
// compatibility, but the parser never constructs it today: tags 9 and
// above fall outside the defined range and are treated as fatal
// (UnknownVerificationTag).
type VerificationTypeInfo interface {
	verificationTag() uint8
}

type TopVariableInfo struct{}

func (TopVariableInfo) verificationTag() uint8 { return 0 }

type IntegerVariableInfo struct{}

func (IntegerVariableInfo) verificationTag() uint8 { return 1 }

type FloatVariableInfo struct{}

func (FloatVariableInfo) verificationTag() uint8 { return 2 }

type DoubleVariableInfo struct{}

func (DoubleVariableInfo) verificationTag() uint8 { return 3 }

type LongVariableInfo struct{}

func (LongVariableInfo) verificationTag() uint8 { return 4 }

type NullVariableInfo struct{}

func (NullVariableInfo) verificationTag() uint8 { return 5 }

type UninitializedThisVariableInfo struct{}

func (UninitializedThisVariableInfo) verificationTag() uint8 { return 6 }

type ObjectVariableInfo struct{ CPoolIndex uint16 }

func (ObjectVariableInfo) verificationTag() uint8 { return 7 }

type UninitializedVariableInfo struct{ Offset uint16 }

func (UninitializedVariableInfo) verificationTag() uint8 { return 8 }

// UnknownVerificationType is never constructed by this parser; see the
// type-level comment above.
type UnknownVerificationType struct{ Tag uint8 }

func (u UnknownVerificationType) verificationTag() uint8 { return u.Tag }

// StackMapFrame is implemented by the frame kinds selected by the first
// byte, frame_type (JVMS §4.7.4). UnknownFrame exists for the same
// forward-compatibility reason as UnknownVerificationType and is likewise
// never constructed: frame_type values 128–246 fall in an undefined gap
// and are treated as fatal (UnknownFrameType).
type StackMapFrame interface {
	FrameType() uint8
}

// SameFrame covers frame_type 0–63; offset_delta equals frame_type.
type SameFrame struct{ Type uint8 }

func (f SameFrame) FrameType() uint8 { return f.Type }

// SameLocals1StackItemFrame covers frame_type 64–127;
// offset_delta equals frame_type − 64.
type SameLocals1StackItemFrame struct {
	Type  uint8
	Stack VerificationTypeInfo
}

func (f SameLocals1StackItemFrame) FrameType() uint8 { return f.Type }

// SameLocals1StackItemFrameExtended is frame_type 247.
type SameLocals1StackItemFrameExtended struct {
	Type        uint8
	OffsetDelta uint16
	Stack       VerificationTypeInfo
}

func (f SameLocals1StackItemFrameExtended) FrameType() uint8 { return f.Type }

// ChopFrame covers frame_type 248–250; the number of locals chopped off
// is 251 − frame_type.
type ChopFrame struct {
	Type        uint8
	OffsetDelta uint16
}

func (f ChopFrame) FrameType() uint8 { return f.Type }

// SameFrameExtended is frame_type 251.
type SameFrameExtended struct {
	Type        uint8
	OffsetDelta uint16
}

func (f SameFrameExtended) FrameType() uint8 { return f.Type }

// AppendFrame covers frame_type 252–254; it carries (frame_type − 251)
// additional locals.
type AppendFrame struct {
	Type        uint8
	OffsetDelta uint16
	Locals      []VerificationTypeInfo
}

func (f AppendFrame) FrameType() uint8 { return f.Type }

// FullFrame is frame_type 255, and is also the normal form that the
// legacy uncompressed StackMap attribute is parsed into (with
// OffsetDelta set to the absolute offset; see StackMapAttribute).
type FullFrame struct {
	Type        uint8
	OffsetDelta uint16
	Locals      []VerificationTypeInfo
	Stack       []VerificationTypeInfo
}

func (f FullFrame) FrameType() uint8 { return f.Type }

type UnknownFrame struct{ Type uint8 }

func (f UnknownFrame) FrameType() uint8 { return f.Type }
