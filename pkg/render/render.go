package render

import (
	"fmt"

	"classdump/pkg/classfile"
)

// Render walks cf and produces its pretty-printed JSON document: the
// fixed-order tree described by this tool's output contract, with a
// "_deref" sibling beside every constant-pool index.
func Render(cf *classfile.ClassFile) []byte {
	o := obj{}.
		set("magic", rawString(fmt.Sprintf("0x%08X", cf.Magic))).
		set("minorVersion", cf.MinorVersion).
		set("majorVersion", cf.MajorVersion).
		set("constantPoolCount", len(cf.ConstantPool)).
		set("constantPool", renderConstantPool(cf.ConstantPool)).
		set("accessFlags", mnemonicString(cf.AccessFlags, classfile.ClassAccessFlagNames(cf.AccessFlags))).
		set("thisClass", cf.ThisClass).
		set("thisClass_deref", deref(cf.ConstantPool, cf.ThisClass)).
		set("superClass", cf.SuperClass).
		set("superClass_deref", deref(cf.ConstantPool, cf.SuperClass)).
		set("interfacesCount", len(cf.Interfaces)).
		set("interfaces", renderIndexList(cf.ConstantPool, cf.Interfaces)).
		set("fieldsCount", len(cf.Fields)).
		set("fields", renderFields(cf.Fields, cf.ConstantPool)).
		set("methodsCount", len(cf.Methods)).
		set("methods", renderMethods(cf.Methods, cf.ConstantPool)).
		set("attributesCount", len(cf.Attributes)).
		set("attributes", renderAttributeList(cf.Attributes, cf.ConstantPool))

	return prettyPrint(marshal(o))
}

func renderFields(fields []classfile.FieldInfo, pool []classfile.ConstantPoolEntry) []any {
	out := make([]any, len(fields))
	for i := range fields {
		f := &fields[i]
		out[i] = obj{}.
			set("accessFlags", mnemonicString(f.AccessFlags, classfile.FieldAccessFlagNames(f.AccessFlags))).
			set("nameIndex", f.NameIndex).
			set("nameIndex_deref", deref(pool, f.NameIndex)).
			set("descriptorIndex", f.DescriptorIndex).
			set("descriptorIndex_deref", deref(pool, f.DescriptorIndex)).
			set("attributesCount", len(f.Attributes)).
			set("attributes", renderAttributeList(f.Attributes, pool))
	}
	return out
}

func renderMethods(methods []classfile.MethodInfo, pool []classfile.ConstantPoolEntry) []any {
	out := make([]any, len(methods))
	for i := range methods {
		m := &methods[i]
		out[i] = obj{}.
			set("accessFlags", mnemonicString(m.AccessFlags, classfile.MethodAccessFlagNames(m.AccessFlags))).
			set("nameIndex", m.NameIndex).
			set("nameIndex_deref", deref(pool, m.NameIndex)).
			set("descriptorIndex", m.DescriptorIndex).
			set("descriptorIndex_deref", deref(pool, m.DescriptorIndex)).
			set("attributesCount", len(m.Attributes)).
			set("attributes", renderAttributeList(m.Attributes, pool))
	}
	return out
}
