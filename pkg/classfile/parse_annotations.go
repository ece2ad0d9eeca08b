package classfile

// parseAnnotationList reads a num_annotations-prefixed table of
// annotation structures (JVMS §4.7.16, §4.7.17).
func parseAnnotationList(r *reader) ([]Annotation, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	list := make([]Annotation, n)
	for i := range list {
		a, err := parseAnnotation(r)
		if err != nil {
			return nil, err
		}
		list[i] = a
	}
	return list, nil
}

func parseAnnotation(r *reader) (Annotation, error) {
	typeIndex, err := r.u16()
	if err != nil {
		return Annotation{}, err
	}
	pairs, err := parseElementValuePairs(r)
	if err != nil {
		return Annotation{}, err
	}
	return Annotation{TypeIndex: typeIndex, ElementValuePairs: pairs}, nil
}

func parseElementValuePairs(r *reader) ([]ElementValuePair, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	pairs := make([]ElementValuePair, n)
	for i := range pairs {
		nameIndex, err := r.u16()
		if err != nil {
			return nil, err
		}
		value, err := parseElementValue(r)
		if err != nil {
			return nil, err
		}
		pairs[i] = ElementValuePair{ElementNameIndex: nameIndex, Value: value}
	}
	return pairs, nil
}

// parseElementValue reads one element_value, dispatching on its leading
// tag byte (JVMS §4.7.16.1). The 8 primitive-constant tags (B C D F I J S
// Z) and 's' (a Utf8-valued String) all carry the same const_value_index
// shape and collapse to ConstValueElement.
func parseElementValue(r *reader) (ElementValue, error) {
	tagOffset := r.offset()
	tag, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's':
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return ConstValueElement{Tag: tag, ConstValueIndex: idx}, nil

	case 'e':
		typeNameIndex, constNameIndex, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		return EnumConstValueElement{TypeNameIndex: typeNameIndex, ConstNameIndex: constNameIndex}, nil

	case 'c':
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return ClassInfoElement{ClassInfoIndex: idx}, nil

	case '@':
		a, err := parseAnnotation(r)
		if err != nil {
			return nil, err
		}
		return AnnotationValueElement{Value: a}, nil

	case '[':
		n, err := r.u16()
		if err != nil {
			return nil, err
		}
		values := make([]ElementValue, n)
		for i := range values {
			v, err := parseElementValue(r)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return ArrayValueElement{Values: values}, nil

	default:
		return nil, newUnknownElementValueTag(tag, tagOffset)
	}
}

// parseParameterAnnotationLists reads the num_parameters-prefixed table
// of RuntimeVisible/InvisibleParameterAnnotations (JVMS §4.7.18, §4.7.19):
// an 8-bit count of formal parameters, each followed by its own
// num_annotations-prefixed annotation list.
func parseParameterAnnotationLists(r *reader) ([][]Annotation, error) {
	numParams, err := r.u8()
	if err != nil {
		return nil, err
	}
	lists := make([][]Annotation, numParams)
	for i := range lists {
		list, err := parseAnnotationList(r)
		if err != nil {
			return nil, err
		}
		lists[i] = list
	}
	return lists, nil
}

// parseTypeAnnotationList reads a num_annotations-prefixed table of
// type_annotation structures (JVMS §4.7.20).
func parseTypeAnnotationList(r *reader) ([]TypeAnnotation, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	list := make([]TypeAnnotation, n)
	for i := range list {
		ta, err := parseTypeAnnotation(r)
		if err != nil {
			return nil, err
		}
		list[i] = ta
	}
	return list, nil
}

func parseTypeAnnotation(r *reader) (TypeAnnotation, error) {
	targetTypeOffset := r.offset()
	targetType, err := r.u8()
	if err != nil {
		return TypeAnnotation{}, err
	}
	targetInfo, err := parseTargetInfo(r, targetType, targetTypeOffset)
	if err != nil {
		return TypeAnnotation{}, err
	}
	path, err := parseTypePath(r)
	if err != nil {
		return TypeAnnotation{}, err
	}
	typeIndex, err := r.u16()
	if err != nil {
		return TypeAnnotation{}, err
	}
	pairs, err := parseElementValuePairs(r)
	if err != nil {
		return TypeAnnotation{}, err
	}
	return TypeAnnotation{
		TargetType:        targetType,
		TargetInfo:        targetInfo,
		TargetPath:        path,
		TypeIndex:         typeIndex,
		ElementValuePairs: pairs,
	}, nil
}

// parseTargetInfo dispatches on target_type per the table in JVMS
// §4.7.20.1. Values outside that table are fatal.
func parseTargetInfo(r *reader, targetType uint8, offset int64) (TargetInfo, error) {
	switch targetType {
	case 0x00, 0x01:
		idx, err := r.u8()
		if err != nil {
			return nil, err
		}
		return TypeParameterTarget{Index: idx}, nil

	case 0x10:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return SupertypeTarget{Index: idx}, nil

	case 0x11, 0x12:
		paramIdx, err := r.u8()
		if err != nil {
			return nil, err
		}
		boundIdx, err := r.u8()
		if err != nil {
			return nil, err
		}
		return TypeParameterBoundTarget{TypeParameterIndex: paramIdx, BoundIndex: boundIdx}, nil

	case 0x13, 0x14, 0x15:
		return EmptyTarget{}, nil

	case 0x16:
		idx, err := r.u8()
		if err != nil {
			return nil, err
		}
		return FormalParameterTarget{Index: idx}, nil

	case 0x17:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return ThrowsTarget{Index: idx}, nil

	case 0x40, 0x41:
		n, err := r.u16()
		if err != nil {
			return nil, err
		}
		table := make([]LocalvarTargetEntry, n)
		for i := range table {
			startPC, length, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			index, err := r.u16()
			if err != nil {
				return nil, err
			}
			table[i] = LocalvarTargetEntry{StartPC: startPC, Length: length, Index: index}
		}
		return LocalvarTarget{Table: table}, nil

	case 0x42:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return CatchTarget{ExceptionTableIndex: idx}, nil

	case 0x43, 0x44, 0x45, 0x46:
		offset, err := r.u16()
		if err != nil {
			return nil, err
		}
		return OffsetTarget{Offset: offset}, nil

	case 0x47, 0x48, 0x49, 0x4A, 0x4B:
		off, err := r.u16()
		if err != nil {
			return nil, err
		}
		argIdx, err := r.u8()
		if err != nil {
			return nil, err
		}
		return TypeArgumentTarget{Offset: off, TypeArgumentIndex: argIdx}, nil

	default:
		return nil, newUnknownTypeAnnotationTarget(targetType, offset)
	}
}

func parseTypePath(r *reader) ([]TypePathEntry, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	path := make([]TypePathEntry, n)
	for i := range path {
		kind, err := r.u8()
		if err != nil {
			return nil, err
		}
		argIndex, err := r.u8()
		if err != nil {
			return nil, err
		}
		path[i] = TypePathEntry{TypePathKind: kind, TypeArgumentIndex: argIndex}
	}
	return path, nil
}
