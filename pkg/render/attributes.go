package render

import (
	"encoding/hex"
	"fmt"
	"strings"

	"classdump/pkg/classfile"
)

// renderAttributeList renders an attribute_count-sized list, used for
// class-level, field-level, method-level, Code-nested, and
// RecordComponent-nested attribute sequences alike.
func renderAttributeList(attrs []classfile.AttributeInfo, pool []classfile.ConstantPoolEntry) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = renderAttribute(a, pool)
	}
	return out
}

// renderAttribute dispatches on the attribute's Go type (the model's own
// closed sum type, already resolved during parsing) rather than
// re-resolving the name from the pool a second time.
func renderAttribute(attr classfile.AttributeInfo, pool []classfile.ConstantPoolEntry) obj {
	nameIndex := attr.AttributeName()
	base := obj{}.
		set("attributeNameIndex", nameIndex).
		set("attributeNameIndex_deref", deref(pool, nameIndex))

	switch a := attr.(type) {
	case *classfile.ConstantValueAttribute:
		return base.
			set("attributeLength", 2).
			set("constantValueIndex", a.ConstantValueIndex).
			set("constantValueIndex_deref", deref(pool, a.ConstantValueIndex))

	case *classfile.CodeAttribute:
		return renderCodeAttribute(base, a, pool)

	case *classfile.StackMapTableAttribute:
		return renderElidedList(base, "StackMapFrame", len(a.Entries),
			"stack-map frames are parsed but not expanded in this output")

	case *classfile.StackMapAttribute:
		return renderElidedList(base, "StackMapFrame", len(a.Entries),
			"legacy StackMap frames are parsed but not expanded in this output")

	case *classfile.ExceptionsAttribute:
		return base.
			set("attributeLength", 2+2*len(a.ExceptionIndexTable)).
			set("numberOfExceptions", len(a.ExceptionIndexTable)).
			set("exceptionIndexTable", renderIndexList(pool, a.ExceptionIndexTable))

	case *classfile.InnerClassesAttribute:
		entries := make([]any, len(a.Classes))
		for i, c := range a.Classes {
			entries[i] = obj{}.
				set("innerClassInfoIndex", c.InnerClassInfoIndex).
				set("innerClassInfoIndex_deref", deref(pool, c.InnerClassInfoIndex)).
				set("outerClassInfoIndex", c.OuterClassInfoIndex).
				set("outerClassInfoIndex_deref", deref(pool, c.OuterClassInfoIndex)).
				set("innerNameIndex", c.InnerNameIndex).
				set("innerNameIndex_deref", deref(pool, c.InnerNameIndex)).
				set("innerClassAccessFlags", mnemonicString(c.InnerClassAccessFlags, classfile.ClassAccessFlagNames(c.InnerClassAccessFlags)))
		}
		return base.
			set("attributeLength", 2+8*len(a.Classes)).
			set("numberOfClasses", len(a.Classes)).
			set("classes", entries)

	case *classfile.EnclosingMethodAttribute:
		return base.
			set("attributeLength", 4).
			set("classIndex", a.ClassIndex).
			set("classIndex_deref", deref(pool, a.ClassIndex)).
			set("methodIndex", a.MethodIndex).
			set("methodIndex_deref", deref(pool, a.MethodIndex))

	case *classfile.SyntheticAttribute:
		return base.set("attributeLength", 0)

	case *classfile.SignatureAttribute:
		return base.
			set("attributeLength", 2).
			set("signatureIndex", a.SignatureIndex).
			set("signatureIndex_deref", deref(pool, a.SignatureIndex))

	case *classfile.SourceFileAttribute:
		return base.
			set("attributeLength", 2).
			set("sourceFileIndex", a.SourceFileIndex).
			set("sourceFileIndex_deref", deref(pool, a.SourceFileIndex))

	case *classfile.SourceDebugExtensionAttribute:
		return base.
			set("attributeLength", len(a.DebugExtension)).
			set("debugExtension", string(a.DebugExtension))

	case *classfile.LineNumberTableAttribute:
		entries := make([]any, len(a.Entries))
		for i, e := range a.Entries {
			entries[i] = obj{}.set("startPc", e.StartPC).set("lineNumber", e.LineNumber)
		}
		return base.
			set("attributeLength", 2+4*len(a.Entries)).
			set("lineNumberTableLength", len(a.Entries)).
			set("lineNumberTable", entries)

	case *classfile.LocalVariableTableAttribute:
		entries := make([]any, len(a.Entries))
		for i, e := range a.Entries {
			entries[i] = obj{}.
				set("startPc", e.StartPC).set("length", e.Length).
				set("nameIndex", e.NameIndex).set("nameIndex_deref", deref(pool, e.NameIndex)).
				set("descriptorIndex", e.DescriptorIndex).set("descriptorIndex_deref", deref(pool, e.DescriptorIndex)).
				set("index", e.Index)
		}
		return base.
			set("attributeLength", 2+10*len(a.Entries)).
			set("localVariableTableLength", len(a.Entries)).
			set("localVariableTable", entries)

	case *classfile.LocalVariableTypeTableAttribute:
		entries := make([]any, len(a.Entries))
		for i, e := range a.Entries {
			entries[i] = obj{}.
				set("startPc", e.StartPC).set("length", e.Length).
				set("nameIndex", e.NameIndex).set("nameIndex_deref", deref(pool, e.NameIndex)).
				set("signatureIndex", e.SignatureIndex).set("signatureIndex_deref", deref(pool, e.SignatureIndex)).
				set("index", e.Index)
		}
		return base.
			set("attributeLength", 2+10*len(a.Entries)).
			set("localVariableTypeTableLength", len(a.Entries)).
			set("localVariableTypeTable", entries)

	case *classfile.DeprecatedAttribute:
		return base.set("attributeLength", 0)

	case *classfile.RuntimeVisibleAnnotationsAttribute:
		return renderElidedList(base, "Annotation", len(a.Annotations),
			"annotations are parsed but not expanded in this output")

	case *classfile.RuntimeInvisibleAnnotationsAttribute:
		return renderElidedList(base, "Annotation", len(a.Annotations),
			"annotations are parsed but not expanded in this output")

	case *classfile.RuntimeVisibleParameterAnnotationsAttribute:
		return renderElidedParameterAnnotations(base, a.ParameterAnnotations)

	case *classfile.RuntimeInvisibleParameterAnnotationsAttribute:
		return renderElidedParameterAnnotations(base, a.ParameterAnnotations)

	case *classfile.RuntimeVisibleTypeAnnotationsAttribute:
		return renderElidedList(base, "TypeAnnotation", len(a.Annotations),
			"type annotations are parsed but not expanded in this output")

	case *classfile.RuntimeInvisibleTypeAnnotationsAttribute:
		return renderElidedList(base, "TypeAnnotation", len(a.Annotations),
			"type annotations are parsed but not expanded in this output")

	case *classfile.AnnotationDefaultAttribute:
		return base.
			set("attributeLength", 0).
			set("defaultValue", rawString("ElementValue")).
			set("note", "the annotation default value is parsed but not expanded in this output")

	case *classfile.BootstrapMethodsAttribute:
		entries := make([]any, len(a.Methods))
		length := 2
		for i, m := range a.Methods {
			entries[i] = obj{}.
				set("bootstrapMethodRef", m.BootstrapMethodRef).
				set("bootstrapMethodRef_deref", deref(pool, m.BootstrapMethodRef)).
				set("numBootstrapArguments", len(m.BootstrapArguments)).
				set("bootstrapArguments", renderIndexList(pool, m.BootstrapArguments))
			length += 4 + 2*len(m.BootstrapArguments)
		}
		return base.
			set("attributeLength", length).
			set("numBootstrapMethods", len(a.Methods)).
			set("bootstrapMethods", entries)

	case *classfile.MethodParametersAttribute:
		entries := make([]any, len(a.Parameters))
		for i, p := range a.Parameters {
			entries[i] = obj{}.
				set("nameIndex", p.NameIndex).set("nameIndex_deref", deref(pool, p.NameIndex)).
				set("accessFlags", mnemonicString(p.AccessFlags, classfile.MethodAccessFlagNames(p.AccessFlags)))
		}
		return base.
			set("attributeLength", 1+4*len(a.Parameters)).
			set("parametersCount", len(a.Parameters)).
			set("parameters", entries)

	case *classfile.ModuleAttribute:
		return renderModuleAttribute(base, a, pool)

	case *classfile.ModulePackagesAttribute:
		return base.
			set("attributeLength", 2+2*len(a.PackageIndexes)).
			set("packageCount", len(a.PackageIndexes)).
			set("packages", renderIndexList(pool, a.PackageIndexes))

	case *classfile.ModuleMainClassAttribute:
		return base.
			set("attributeLength", 2).
			set("mainClassIndex", a.MainClassIndex).
			set("mainClassIndex_deref", deref(pool, a.MainClassIndex))

	case *classfile.NestHostAttribute:
		return base.
			set("attributeLength", 2).
			set("hostClassIndex", a.HostClassIndex).
			set("hostClassIndex_deref", deref(pool, a.HostClassIndex))

	case *classfile.NestMembersAttribute:
		return base.
			set("attributeLength", 2+2*len(a.Classes)).
			set("numberOfClasses", len(a.Classes)).
			set("classes", renderIndexList(pool, a.Classes))

	case *classfile.RecordAttribute:
		return renderElidedList(base, "RecordComponent", len(a.Components),
			"record components are parsed but not expanded in this output")

	case *classfile.PermittedSubclassesAttribute:
		return base.
			set("attributeLength", 2+2*len(a.Classes)).
			set("numberOfClasses", len(a.Classes)).
			set("classes", renderIndexList(pool, a.Classes))

	case *classfile.UnknownAttribute:
		return base.
			set("attributeLength", len(a.Info)).
			set("info", fmt.Sprintf("Binary data (%d bytes)", len(a.Info))).
			set("note", "unrecognised attribute name; raw bytes preserved, not interpreted")

	default:
		return base.set("attributeLength", 0).set("note", "unhandled attribute variant")
	}
}

func renderCodeAttribute(base obj, a *classfile.CodeAttribute, pool []classfile.ConstantPoolEntry) obj {
	excEntries := make([]any, len(a.ExceptionTable))
	for i, e := range a.ExceptionTable {
		excEntries[i] = obj{}.
			set("startPc", e.StartPC).
			set("endPc", e.EndPC).
			set("handlerPc", e.HandlerPC).
			set("catchType", e.CatchType).
			set("catchType_deref", deref(pool, e.CatchType))
	}
	nested := renderAttributeList(a.Attributes, pool)

	length := 2 + 2 + 4 + len(a.Code) + 2 + 8*len(a.ExceptionTable) + 2
	for _, n := range nested {
		if no, ok := n.(obj); ok {
			for _, pair := range no {
				if pair.key == "attributeLength" {
					if l, ok := pair.val.(int); ok {
						length += 6 + l
					}
				}
			}
		}
	}

	return base.
		set("attributeLength", length).
		set("maxStack", a.MaxStack).
		set("maxLocals", a.MaxLocals).
		set("codeLength", len(a.Code)).
		set("code", rawString(strings.ToUpper(hex.EncodeToString(a.Code)))).
		set("exceptionTableLength", len(a.ExceptionTable)).
		set("exceptionTable", excEntries).
		set("attributesCount", len(a.Attributes)).
		set("attributes", nested)
}

func renderModuleAttribute(base obj, a *classfile.ModuleAttribute, pool []classfile.ConstantPoolEntry) obj {
	return base.
		set("attributeLength", 6+10).
		set("moduleNameIndex", a.ModuleNameIndex).
		set("moduleNameIndex_deref", deref(pool, a.ModuleNameIndex)).
		set("moduleFlags", mnemonicString(a.ModuleFlags, moduleFlagNames(a.ModuleFlags))).
		set("moduleVersionIndex", a.ModuleVersionIndex).
		set("moduleVersionIndex_deref", deref(pool, a.ModuleVersionIndex)).
		set("requiresCount", len(a.Requires)).
		set("requires", rawString("ModuleRequires")).
		set("exportsCount", len(a.Exports)).
		set("exports", rawString("ModuleExports")).
		set("opensCount", len(a.Opens)).
		set("opens", rawString("ModuleOpens")).
		set("usesCount", len(a.Uses)).
		set("uses", rawString("ModuleUses")).
		set("providesCount", len(a.Provides)).
		set("provides", rawString("ModuleProvides")).
		set("note", "the module's requires/exports/opens/uses/provides tables are parsed but not expanded in this output")
}

func moduleFlagNames(flags uint16) []string {
	const (
		open        = 0x0020
		synthetic   = 0x1000
		mandated    = 0x8000
	)
	var names []string
	if flags&open != 0 {
		names = append(names, "OPEN")
	}
	if flags&synthetic != 0 {
		names = append(names, "SYNTHETIC")
	}
	if flags&mandated != 0 {
		names = append(names, "MANDATED")
	}
	return names
}

func renderElidedList(base obj, placeholder string, count int, note string) obj {
	entries := make([]any, count)
	for i := range entries {
		entries[i] = rawString(placeholder)
	}
	return base.
		set("attributeLength", 2).
		set("count", count).
		set("entries", entries).
		set("note", note)
}

func renderElidedParameterAnnotations(base obj, lists [][]classfile.Annotation) obj {
	entries := make([]any, len(lists))
	for i, l := range lists {
		entries[i] = rawString(fmt.Sprintf("%d annotations", len(l)))
	}
	return base.
		set("attributeLength", 1).
		set("numParameters", len(lists)).
		set("parameterAnnotations", entries).
		set("note", "parameter annotations are parsed but not expanded in this output")
}

func renderIndexList(pool []classfile.ConstantPoolEntry, indexes []uint16) []any {
	out := make([]any, len(indexes))
	for i, idx := range indexes {
		out[i] = obj{}.set("index", idx).set("index_deref", deref(pool, idx))
	}
	return out
}
