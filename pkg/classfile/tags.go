package classfile

// Constant pool tags (JVMS Table 4.4-A).
const (
	TagUtf8               = 1
	TagInteger            = 3
	TagFloat              = 4
	TagLong               = 5
	TagDouble             = 6
	TagClass              = 7
	TagString             = 8
	TagFieldref           = 9
	TagMethodref          = 10
	TagInterfaceMethodref = 11
	TagNameAndType        = 12
	TagMethodHandle       = 15
	TagMethodType         = 16
	TagDynamic            = 17
	TagInvokeDynamic      = 18
	TagModule             = 19
	TagPackage            = 20
)

// Class, field and method access flags (JVMS Tables 4.1-A, 4.5-A, 4.6-A).
const (
	AccPublic       = 0x0001
	AccPrivate      = 0x0002
	AccProtected    = 0x0004
	AccStatic       = 0x0008
	AccFinal        = 0x0010
	AccSuper        = 0x0020
	AccSynchronized = 0x0020
	AccVolatile     = 0x0040
	AccBridge       = 0x0040
	AccTransient    = 0x0080
	AccVarargs      = 0x0080
	AccNative       = 0x0100
	AccInterface    = 0x0200
	AccAbstract     = 0x0400
	AccStrict       = 0x0800
	AccSynthetic    = 0x1000
	AccAnnotation   = 0x2000
	AccEnum         = 0x4000
	AccModule       = 0x8000
)

type flagMnemonic struct {
	bit  uint16
	name string
}

var classAccessFlagTable = []flagMnemonic{
	{AccPublic, "PUBLIC"},
	{AccFinal, "FINAL"},
	{AccSuper, "SUPER"},
	{AccInterface, "INTERFACE"},
	{AccAbstract, "ABSTRACT"},
	{AccSynthetic, "SYNTHETIC"},
	{AccAnnotation, "ANNOTATION"},
	{AccEnum, "ENUM"},
	{AccModule, "MODULE"},
}

var fieldAccessFlagTable = []flagMnemonic{
	{AccPublic, "PUBLIC"},
	{AccPrivate, "PRIVATE"},
	{AccProtected, "PROTECTED"},
	{AccStatic, "STATIC"},
	{AccFinal, "FINAL"},
	{AccVolatile, "VOLATILE"},
	{AccTransient, "TRANSIENT"},
	{AccSynthetic, "SYNTHETIC"},
	{AccEnum, "ENUM"},
}

var methodAccessFlagTable = []flagMnemonic{
	{AccPublic, "PUBLIC"},
	{AccPrivate, "PRIVATE"},
	{AccProtected, "PROTECTED"},
	{AccStatic, "STATIC"},
	{AccFinal, "FINAL"},
	{AccSynchronized, "SYNCHRONIZED"},
	{AccBridge, "BRIDGE"},
	{AccVarargs, "VARARGS"},
	{AccNative, "NATIVE"},
	{AccAbstract, "ABSTRACT"},
	{AccStrict, "STRICT"},
	{AccSynthetic, "SYNTHETIC"},
}

// ClassAccessFlagNames returns the set mnemonic names from the class
// access-flag table, in table order.
func ClassAccessFlagNames(flags uint16) []string { return flagNames(flags, classAccessFlagTable) }

// FieldAccessFlagNames returns the set mnemonic names from the field
// access-flag table, in table order.
func FieldAccessFlagNames(flags uint16) []string { return flagNames(flags, fieldAccessFlagTable) }

// MethodAccessFlagNames returns the set mnemonic names from the method
// access-flag table, in table order.
func MethodAccessFlagNames(flags uint16) []string { return flagNames(flags, methodAccessFlagTable) }

func flagNames(flags uint16, table []flagMnemonic) []string {
	names := make([]string, 0, len(table))
	for _, m := range table {
		if flags&m.bit != 0 {
			names = append(names, m.name)
		}
	}
	return names
}

// Predefined attribute names, dispatched by the Utf8 string resolved from
// attribute_name_index (JVMS §4.7).
const (
	AttrConstantValue                        = "ConstantValue"
	AttrCode                                 = "Code"
	AttrStackMapTable                        = "StackMapTable"
	AttrStackMap                             = "StackMap"
	AttrExceptions                           = "Exceptions"
	AttrInnerClasses                         = "InnerClasses"
	AttrEnclosingMethod                      = "EnclosingMethod"
	AttrSynthetic                            = "Synthetic"
	AttrSignature                            = "Signature"
	AttrSourceFile                           = "SourceFile"
	AttrSourceDebugExtension                 = "SourceDebugExtension"
	AttrLineNumberTable                      = "LineNumberTable"
	AttrLocalVariableTable                   = "LocalVariableTable"
	AttrLocalVariableTypeTable               = "LocalVariableTypeTable"
	AttrDeprecated                           = "Deprecated"
	AttrRuntimeVisibleAnnotations            = "RuntimeVisibleAnnotations"
	AttrRuntimeInvisibleAnnotations          = "RuntimeInvisibleAnnotations"
	AttrRuntimeVisibleParameterAnnotations   = "RuntimeVisibleParameterAnnotations"
	AttrRuntimeInvisibleParameterAnnotations = "RuntimeInvisibleParameterAnnotations"
	AttrRuntimeVisibleTypeAnnotations        = "RuntimeVisibleTypeAnnotations"
	AttrRuntimeInvisibleTypeAnnotations      = "RuntimeInvisibleTypeAnnotations"
	AttrAnnotationDefault                    = "AnnotationDefault"
	AttrBootstrapMethods                     = "BootstrapMethods"
	AttrMethodParameters                     = "MethodParameters"
	AttrModule                               = "Module"
	AttrModulePackages                       = "ModulePackages"
	AttrModuleMainClass                      = "ModuleMainClass"
	AttrNestHost                             = "NestHost"
	AttrNestMembers                          = "NestMembers"
	AttrRecord                               = "Record"
	AttrPermittedSubclasses                  = "PermittedSubclasses"
)
