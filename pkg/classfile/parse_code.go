package classfile

// parseCodeAttribute reads the Code attribute body (JVMS §4.7.3): two
// 16-bit counts, the code array itself, the exception table, and a
// nested attribute list that may recursively contain a StackMapTable,
// LineNumberTable, LocalVariable(Type)Table, or any other attribute
// legal on Code.
func parseCodeAttribute(r *reader, pool []ConstantPoolEntry, base attrBase) (*CodeAttribute, error) {
	maxStack, err := r.u16()
	if err != nil {
		return nil, err
	}
	maxLocals, err := r.u16()
	if err != nil {
		return nil, err
	}
	codeLength, err := r.u32()
	if err != nil {
		return nil, err
	}
	code, err := r.bytes(int(codeLength))
	if err != nil {
		return nil, err
	}

	excCount, err := r.u16()
	if err != nil {
		return nil, err
	}
	exceptionTable := make([]ExceptionTableEntry, excCount)
	for i := range exceptionTable {
		startPC, endPC, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		handlerPC, catchType, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		exceptionTable[i] = ExceptionTableEntry{
			StartPC: startPC, EndPC: endPC, HandlerPC: handlerPC, CatchType: catchType,
		}
	}

	attrs, err := parseAttributes(r, pool)
	if err != nil {
		return nil, err
	}

	return &CodeAttribute{
		attrBase:       base,
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           append([]byte(nil), code...),
		ExceptionTable: exceptionTable,
		Attributes:     attrs,
	}, nil
}
