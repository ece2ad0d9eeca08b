package classfile

// parseAttributes reads an attribute_count-prefixed sequence of
// attributes, dispatching each by its resolved Utf8 name (JVMS §4.7).
// For a name that matches a predefined kind, the parser consumes the
// structured grammar directly and does not re-check the declared
// attribute_length, which is only used, verbatim, as the byte count for
// Unknown attributes and for the few kinds whose payload is itself an
// uninterpreted blob (SourceDebugExtension). Known attributes are
// trusted to match their grammar; the parser does not attempt to
// resynchronise.
func parseAttributes(r *reader, pool []ConstantPoolEntry) ([]AttributeInfo, error) {
	count, err := r.u16()
	if err != nil {
		return nil, err
	}
	attrs := make([]AttributeInfo, count)
	for i := uint16(0); i < count; i++ {
		attr, err := parseOneAttribute(r, pool)
		if err != nil {
			return nil, err
		}
		attrs[i] = attr
	}
	return attrs, nil
}

func parseOneAttribute(r *reader, pool []ConstantPoolEntry) (AttributeInfo, error) {
	nameIndex, err := r.u16()
	if err != nil {
		return nil, err
	}
	length, err := r.u32()
	if err != nil {
		return nil, err
	}
	name, err := Utf8At(pool, nameIndex)
	if err != nil {
		return nil, newInvalidAttributeNameIndex(nameIndex)
	}

	base := attrBase{NameIndex: nameIndex}

	switch name {
	case AttrConstantValue:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return &ConstantValueAttribute{attrBase: base, ConstantValueIndex: idx}, nil

	case AttrCode:
		return parseCodeAttribute(r, pool, base)

	case AttrStackMapTable:
		entries, err := parseStackMapEntries(r)
		if err != nil {
			return nil, err
		}
		return &StackMapTableAttribute{attrBase: base, Entries: entries}, nil

	case AttrStackMap:
		entries, err := parseLegacyStackMapEntries(r)
		if err != nil {
			return nil, err
		}
		return &StackMapAttribute{attrBase: base, Entries: entries}, nil

	case AttrExceptions:
		table, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		return &ExceptionsAttribute{attrBase: base, ExceptionIndexTable: table}, nil

	case AttrInnerClasses:
		n, err := r.u16()
		if err != nil {
			return nil, err
		}
		classes := make([]InnerClassEntry, n)
		for i := range classes {
			inner, outer, nameIdx, err := readThreeU16(r)
			if err != nil {
				return nil, err
			}
			flags, err := r.u16()
			if err != nil {
				return nil, err
			}
			classes[i] = InnerClassEntry{
				InnerClassInfoIndex:   inner,
				OuterClassInfoIndex:   outer,
				InnerNameIndex:        nameIdx,
				InnerClassAccessFlags: flags,
			}
		}
		return &InnerClassesAttribute{attrBase: base, Classes: classes}, nil

	case AttrEnclosingMethod:
		classIdx, methodIdx, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		return &EnclosingMethodAttribute{attrBase: base, ClassIndex: classIdx, MethodIndex: methodIdx}, nil

	case AttrSynthetic:
		return &SyntheticAttribute{attrBase: base}, nil

	case AttrSignature:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return &SignatureAttribute{attrBase: base, SignatureIndex: idx}, nil

	case AttrSourceFile:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return &SourceFileAttribute{attrBase: base, SourceFileIndex: idx}, nil

	case AttrSourceDebugExtension:
		data, err := r.bytes(int(length))
		if err != nil {
			return nil, err
		}
		return &SourceDebugExtensionAttribute{attrBase: base, DebugExtension: append([]byte(nil), data...)}, nil

	case AttrLineNumberTable:
		n, err := r.u16()
		if err != nil {
			return nil, err
		}
		entries := make([]LineNumberEntry, n)
		for i := range entries {
			startPC, lineNum, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			entries[i] = LineNumberEntry{StartPC: startPC, LineNumber: lineNum}
		}
		return &LineNumberTableAttribute{attrBase: base, Entries: entries}, nil

	case AttrLocalVariableTable:
		entries, err := parseLocalVariableEntries(r)
		if err != nil {
			return nil, err
		}
		return &LocalVariableTableAttribute{attrBase: base, Entries: entries}, nil

	case AttrLocalVariableTypeTable:
		entries, err := parseLocalVariableTypeEntries(r)
		if err != nil {
			return nil, err
		}
		return &LocalVariableTypeTableAttribute{attrBase: base, Entries: entries}, nil

	case AttrDeprecated:
		return &DeprecatedAttribute{attrBase: base}, nil

	case AttrRuntimeVisibleAnnotations:
		list, err := parseAnnotationList(r)
		if err != nil {
			return nil, err
		}
		return &RuntimeVisibleAnnotationsAttribute{attrBase: base, Annotations: list}, nil

	case AttrRuntimeInvisibleAnnotations:
		list, err := parseAnnotationList(r)
		if err != nil {
			return nil, err
		}
		return &RuntimeInvisibleAnnotationsAttribute{attrBase: base, Annotations: list}, nil

	case AttrRuntimeVisibleParameterAnnotations:
		lists, err := parseParameterAnnotationLists(r)
		if err != nil {
			return nil, err
		}
		return &RuntimeVisibleParameterAnnotationsAttribute{attrBase: base, ParameterAnnotations: lists}, nil

	case AttrRuntimeInvisibleParameterAnnotations:
		lists, err := parseParameterAnnotationLists(r)
		if err != nil {
			return nil, err
		}
		return &RuntimeInvisibleParameterAnnotationsAttribute{attrBase: base, ParameterAnnotations: lists}, nil

	case AttrRuntimeVisibleTypeAnnotations:
		list, err := parseTypeAnnotationList(r)
		if err != nil {
			return nil, err
		}
		return &RuntimeVisibleTypeAnnotationsAttribute{attrBase: base, Annotations: list}, nil

	case AttrRuntimeInvisibleTypeAnnotations:
		list, err := parseTypeAnnotationList(r)
		if err != nil {
			return nil, err
		}
		return &RuntimeInvisibleTypeAnnotationsAttribute{attrBase: base, Annotations: list}, nil

	case AttrAnnotationDefault:
		value, err := parseElementValue(r)
		if err != nil {
			return nil, err
		}
		return &AnnotationDefaultAttribute{attrBase: base, Value: value}, nil

	case AttrBootstrapMethods:
		methods, err := parseBootstrapMethods(r)
		if err != nil {
			return nil, err
		}
		return &BootstrapMethodsAttribute{attrBase: base, Methods: methods}, nil

	case AttrMethodParameters:
		n, err := r.u8()
		if err != nil {
			return nil, err
		}
		params := make([]MethodParameterEntry, n)
		for i := range params {
			nameIdx, flags, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			params[i] = MethodParameterEntry{NameIndex: nameIdx, AccessFlags: flags}
		}
		return &MethodParametersAttribute{attrBase: base, Parameters: params}, nil

	case AttrModule:
		return parseModuleAttribute(r, base)

	case AttrModulePackages:
		table, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		return &ModulePackagesAttribute{attrBase: base, PackageIndexes: table}, nil

	case AttrModuleMainClass:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return &ModuleMainClassAttribute{attrBase: base, MainClassIndex: idx}, nil

	case AttrNestHost:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return &NestHostAttribute{attrBase: base, HostClassIndex: idx}, nil

	case AttrNestMembers:
		table, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		return &NestMembersAttribute{attrBase: base, Classes: table}, nil

	case AttrRecord:
		components, err := parseRecordComponents(r, pool)
		if err != nil {
			return nil, err
		}
		return &RecordAttribute{attrBase: base, Components: components}, nil

	case AttrPermittedSubclasses:
		table, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		return &PermittedSubclassesAttribute{attrBase: base, Classes: table}, nil

	default:
		data, err := r.bytes(int(length))
		if err != nil {
			return nil, err
		}
		return &UnknownAttribute{attrBase: base, Info: append([]byte(nil), data...)}, nil
	}
}

func readU16Table(r *reader) ([]uint16, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	table := make([]uint16, n)
	for i := range table {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		table[i] = v
	}
	return table, nil
}

func readThreeU16(r *reader) (uint16, uint16, uint16, error) {
	a, err := r.u16()
	if err != nil {
		return 0, 0, 0, err
	}
	b, err := r.u16()
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := r.u16()
	if err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

func parseLocalVariableEntries(r *reader) ([]LocalVariableEntry, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	entries := make([]LocalVariableEntry, n)
	for i := range entries {
		startPC, length, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		nameIdx, descIdx, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		index, err := r.u16()
		if err != nil {
			return nil, err
		}
		entries[i] = LocalVariableEntry{
			StartPC: startPC, Length: length,
			NameIndex: nameIdx, DescriptorIndex: descIdx, Index: index,
		}
	}
	return entries, nil
}

func parseLocalVariableTypeEntries(r *reader) ([]LocalVariableTypeEntry, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	entries := make([]LocalVariableTypeEntry, n)
	for i := range entries {
		startPC, length, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		nameIdx, sigIdx, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		index, err := r.u16()
		if err != nil {
			return nil, err
		}
		entries[i] = LocalVariableTypeEntry{
			StartPC: startPC, Length: length,
			NameIndex: nameIdx, SignatureIndex: sigIdx, Index: index,
		}
	}
	return entries, nil
}

func parseBootstrapMethods(r *reader) ([]BootstrapMethod, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	methods := make([]BootstrapMethod, n)
	for i := range methods {
		ref, err := r.u16()
		if err != nil {
			return nil, err
		}
		args, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		methods[i] = BootstrapMethod{BootstrapMethodRef: ref, BootstrapArguments: args}
	}
	return methods, nil
}

func parseRecordComponents(r *reader, pool []ConstantPoolEntry) ([]RecordComponent, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	components := make([]RecordComponent, n)
	for i := range components {
		nameIdx, descIdx, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		attrs, err := parseAttributes(r, pool)
		if err != nil {
			return nil, err
		}
		components[i] = RecordComponent{NameIndex: nameIdx, DescriptorIndex: descIdx, Attributes: attrs}
	}
	return components, nil
}
