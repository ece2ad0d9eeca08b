package classfile

// parseVerificationTypeInfo reads one verification_type_info (JVMS
// §4.7.4). Tags 9 and above are undefined and fatal; see stackmap.go's
// comment on UnknownVerificationType.
func parseVerificationTypeInfo(r *reader) (VerificationTypeInfo, error) {
	tagOffset := r.offset()
	tag, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return TopVariableInfo{}, nil
	case 1:
		return IntegerVariableInfo{}, nil
	case 2:
		return FloatVariableInfo{}, nil
	case 3:
		return DoubleVariableInfo{}, nil
	case 4:
		return LongVariableInfo{}, nil
	case 5:
		return NullVariableInfo{}, nil
	case 6:
		return UninitializedThisVariableInfo{}, nil
	case 7:
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		return ObjectVariableInfo{CPoolIndex: idx}, nil
	case 8:
		offset, err := r.u16()
		if err != nil {
			return nil, err
		}
		return UninitializedVariableInfo{Offset: offset}, nil
	default:
		return nil, newUnknownVerificationTag(tag, tagOffset)
	}
}

func parseVerificationTypeList(r *reader, n int) ([]VerificationTypeInfo, error) {
	list := make([]VerificationTypeInfo, n)
	for i := range list {
		v, err := parseVerificationTypeInfo(r)
		if err != nil {
			return nil, err
		}
		list[i] = v
	}
	return list, nil
}

// parseStackMapEntries reads the number_of_entries-prefixed sequence of
// a StackMapTable attribute, dispatching each frame by its frame_type
// byte (JVMS §4.7.4). frame_type values 128–246 are undefined and fatal.
func parseStackMapEntries(r *reader) ([]StackMapFrame, error) {
	count, err := r.u16()
	if err != nil {
		return nil, err
	}
	frames := make([]StackMapFrame, count)
	for i := range frames {
		frame, err := parseStackMapFrame(r)
		if err != nil {
			return nil, err
		}
		frames[i] = frame
	}
	return frames, nil
}

func parseStackMapFrame(r *reader) (StackMapFrame, error) {
	typeOffset := r.offset()
	frameType, err := r.u8()
	if err != nil {
		return nil, err
	}

	switch {
	case frameType <= 63:
		return SameFrame{Type: frameType}, nil

	case frameType <= 127:
		stack, err := parseVerificationTypeInfo(r)
		if err != nil {
			return nil, err
		}
		return SameLocals1StackItemFrame{Type: frameType, Stack: stack}, nil

	case frameType == 247:
		offsetDelta, err := r.u16()
		if err != nil {
			return nil, err
		}
		stack, err := parseVerificationTypeInfo(r)
		if err != nil {
			return nil, err
		}
		return SameLocals1StackItemFrameExtended{Type: frameType, OffsetDelta: offsetDelta, Stack: stack}, nil

	case frameType >= 248 && frameType <= 250:
		offsetDelta, err := r.u16()
		if err != nil {
			return nil, err
		}
		return ChopFrame{Type: frameType, OffsetDelta: offsetDelta}, nil

	case frameType == 251:
		offsetDelta, err := r.u16()
		if err != nil {
			return nil, err
		}
		return SameFrameExtended{Type: frameType, OffsetDelta: offsetDelta}, nil

	case frameType >= 252 && frameType <= 254:
		offsetDelta, err := r.u16()
		if err != nil {
			return nil, err
		}
		locals, err := parseVerificationTypeList(r, int(frameType)-251)
		if err != nil {
			return nil, err
		}
		return AppendFrame{Type: frameType, OffsetDelta: offsetDelta, Locals: locals}, nil

	case frameType == 255:
		offsetDelta, err := r.u16()
		if err != nil {
			return nil, err
		}
		numLocals, err := r.u16()
		if err != nil {
			return nil, err
		}
		locals, err := parseVerificationTypeList(r, int(numLocals))
		if err != nil {
			return nil, err
		}
		numStack, err := r.u16()
		if err != nil {
			return nil, err
		}
		stack, err := parseVerificationTypeList(r, int(numStack))
		if err != nil {
			return nil, err
		}
		return FullFrame{Type: frameType, OffsetDelta: offsetDelta, Locals: locals, Stack: stack}, nil

	default:
		return nil, newUnknownFrameType(frameType, typeOffset)
	}
}

// parseLegacyStackMapEntries reads the pre-Java-6 uncompressed StackMap
// attribute's table and normalises every entry to a FullFrame, with
// OffsetDelta set to the absolute offset field the legacy format carries
// (rather than a delta from the previous frame). This keeps StackMapFrame
// a single closed set of shapes instead of adding a twin legacy variant.
func parseLegacyStackMapEntries(r *reader) ([]StackMapFrame, error) {
	count, err := r.u16()
	if err != nil {
		return nil, err
	}
	frames := make([]StackMapFrame, count)
	for i := range frames {
		offset, err := r.u16()
		if err != nil {
			return nil, err
		}
		numLocals, err := r.u16()
		if err != nil {
			return nil, err
		}
		locals, err := parseVerificationTypeList(r, int(numLocals))
		if err != nil {
			return nil, err
		}
		numStack, err := r.u16()
		if err != nil {
			return nil, err
		}
		stack, err := parseVerificationTypeList(r, int(numStack))
		if err != nil {
			return nil, err
		}
		frames[i] = FullFrame{Type: 255, OffsetDelta: offset, Locals: locals, Stack: stack}
	}
	return frames, nil
}
