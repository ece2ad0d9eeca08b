package render

import "classdump/pkg/classfile"

// renderConstantPool renders the full constant-pool array in index
// order, including the sentinel null at index 0.
func renderConstantPool(pool []classfile.ConstantPoolEntry) []any {
	out := make([]any, len(pool))
	for i := range pool {
		out[i] = renderPoolEntry(pool, uint16(i))
	}
	return out
}

// deref renders the entry at index, or nil if the index is 0, out of
// range, or points at an unoccupied (phantom) slot.
func deref(pool []classfile.ConstantPoolEntry, index uint16) any {
	if index == 0 || int(index) >= len(pool) || pool[index] == nil {
		return nil
	}
	return renderPoolEntry(pool, index)
}

func renderPoolEntry(pool []classfile.ConstantPoolEntry, index uint16) any {
	if int(index) >= len(pool) || pool[index] == nil {
		return nil
	}
	entry := pool[index]
	o := obj{}.set("index", int(index)).set("tag", constantTagName(entry))

	switch e := entry.(type) {
	case *classfile.ConstantUtf8:
		o = o.set("value", e.Value)

	case *classfile.ConstantInteger:
		o = o.set("value", e.Value)

	case *classfile.ConstantFloat:
		o = o.set("value", e.Value)

	case *classfile.ConstantLong:
		o = o.set("value", e.Value)

	case *classfile.ConstantDouble:
		o = o.set("value", e.Value)

	case *classfile.ConstantClass:
		o = o.set("nameIndex", e.NameIndex).set("nameIndex_deref", deref(pool, e.NameIndex))

	case *classfile.ConstantString:
		o = o.set("stringIndex", e.StringIndex).set("stringIndex_deref", deref(pool, e.StringIndex))

	case *classfile.ConstantFieldref:
		o = o.set("classIndex", e.ClassIndex).set("classIndex_deref", deref(pool, e.ClassIndex)).
			set("nameAndTypeIndex", e.NameAndTypeIndex).set("nameAndTypeIndex_deref", deref(pool, e.NameAndTypeIndex))

	case *classfile.ConstantMethodref:
		o = o.set("classIndex", e.ClassIndex).set("classIndex_deref", deref(pool, e.ClassIndex)).
			set("nameAndTypeIndex", e.NameAndTypeIndex).set("nameAndTypeIndex_deref", deref(pool, e.NameAndTypeIndex))

	case *classfile.ConstantInterfaceMethodref:
		o = o.set("classIndex", e.ClassIndex).set("classIndex_deref", deref(pool, e.ClassIndex)).
			set("nameAndTypeIndex", e.NameAndTypeIndex).set("nameAndTypeIndex_deref", deref(pool, e.NameAndTypeIndex))

	case *classfile.ConstantNameAndType:
		o = o.set("nameIndex", e.NameIndex).set("nameIndex_deref", deref(pool, e.NameIndex)).
			set("descriptorIndex", e.DescriptorIndex).set("descriptorIndex_deref", deref(pool, e.DescriptorIndex))

	case *classfile.ConstantMethodHandle:
		o = o.set("referenceKind", e.ReferenceKind).
			set("referenceIndex", e.ReferenceIndex).set("referenceIndex_deref", deref(pool, e.ReferenceIndex))

	case *classfile.ConstantMethodType:
		o = o.set("descriptorIndex", e.DescriptorIndex).set("descriptorIndex_deref", deref(pool, e.DescriptorIndex))

	case *classfile.ConstantDynamic:
		// bootstrapMethodAttrIndex indexes the class's BootstrapMethods
		// table, not the constant pool, so it has no _deref sibling here.
		o = o.set("bootstrapMethodAttrIndex", e.BootstrapMethodAttrIndex).
			set("nameAndTypeIndex", e.NameAndTypeIndex).set("nameAndTypeIndex_deref", deref(pool, e.NameAndTypeIndex))

	case *classfile.ConstantInvokeDynamic:
		o = o.set("bootstrapMethodAttrIndex", e.BootstrapMethodAttrIndex).
			set("nameAndTypeIndex", e.NameAndTypeIndex).set("nameAndTypeIndex_deref", deref(pool, e.NameAndTypeIndex))

	case *classfile.ConstantModule:
		o = o.set("nameIndex", e.NameIndex).set("nameIndex_deref", deref(pool, e.NameIndex))

	case *classfile.ConstantPackage:
		o = o.set("nameIndex", e.NameIndex).set("nameIndex_deref", deref(pool, e.NameIndex))
	}

	return o
}

func constantTagName(entry classfile.ConstantPoolEntry) string {
	switch entry.(type) {
	case *classfile.ConstantUtf8:
		return "CONSTANT_Utf8"
	case *classfile.ConstantInteger:
		return "CONSTANT_Integer"
	case *classfile.ConstantFloat:
		return "CONSTANT_Float"
	case *classfile.ConstantLong:
		return "CONSTANT_Long"
	case *classfile.ConstantDouble:
		return "CONSTANT_Double"
	case *classfile.ConstantClass:
		return "CONSTANT_Class"
	case *classfile.ConstantString:
		return "CONSTANT_String"
	case *classfile.ConstantFieldref:
		return "CONSTANT_Fieldref"
	case *classfile.ConstantMethodref:
		return "CONSTANT_Methodref"
	case *classfile.ConstantInterfaceMethodref:
		return "CONSTANT_InterfaceMethodref"
	case *classfile.ConstantNameAndType:
		return "CONSTANT_NameAndType"
	case *classfile.ConstantMethodHandle:
		return "CONSTANT_MethodHandle"
	case *classfile.ConstantMethodType:
		return "CONSTANT_MethodType"
	case *classfile.ConstantDynamic:
		return "CONSTANT_Dynamic"
	case *classfile.ConstantInvokeDynamic:
		return "CONSTANT_InvokeDynamic"
	case *classfile.ConstantModule:
		return "CONSTANT_Module"
	case *classfile.ConstantPackage:
		return "CONSTANT_Package"
	default:
		return "CONSTANT_Unknown"
	}
}
