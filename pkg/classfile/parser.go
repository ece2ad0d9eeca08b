package classfile

// Parse decodes a complete .class file from data into a ClassFile tree.
// It drives the grammar of JVMS chapter 4 top to bottom: magic, version,
// constant pool, access flags, this/super class, interfaces, fields,
// methods, and the class's own attribute list. It returns the first
// error encountered. There is no partial result on error: a class file
// either decodes whole or not at all.
func Parse(data []byte) (*ClassFile, error) {
	r := newReader(data)

	magic, err := r.u32()
	if err != nil {
		return nil, err
	}
	if magic != classMagic {
		return nil, newBadMagic(magic)
	}

	minor, err := r.u16()
	if err != nil {
		return nil, err
	}
	major, err := r.u16()
	if err != nil {
		return nil, err
	}

	poolCount, err := r.u16()
	if err != nil {
		return nil, err
	}
	pool, err := parseConstantPool(r, poolCount)
	if err != nil {
		return nil, err
	}

	accessFlags, err := r.u16()
	if err != nil {
		return nil, err
	}
	thisClass, superClass, err := readTwoU16(r)
	if err != nil {
		return nil, err
	}

	interfaces, err := readU16Table(r)
	if err != nil {
		return nil, err
	}

	fields, err := parseFields(r, pool)
	if err != nil {
		return nil, err
	}
	methods, err := parseMethods(r, pool)
	if err != nil {
		return nil, err
	}
	attrs, err := parseAttributes(r, pool)
	if err != nil {
		return nil, err
	}

	return &ClassFile{
		Magic:        magic,
		MinorVersion: minor,
		MajorVersion: major,
		ConstantPool: pool,
		AccessFlags:  accessFlags,
		ThisClass:    thisClass,
		SuperClass:   superClass,
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Attributes:   attrs,
	}, nil
}

func parseFields(r *reader, pool []ConstantPoolEntry) ([]FieldInfo, error) {
	count, err := r.u16()
	if err != nil {
		return nil, err
	}
	fields := make([]FieldInfo, count)
	for i := range fields {
		accessFlags, nameIndex, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		descIndex, err := r.u16()
		if err != nil {
			return nil, err
		}
		attrs, err := parseAttributes(r, pool)
		if err != nil {
			return nil, err
		}
		fields[i] = FieldInfo{
			AccessFlags:     accessFlags,
			NameIndex:       nameIndex,
			DescriptorIndex: descIndex,
			Attributes:      attrs,
		}
	}
	return fields, nil
}

func parseMethods(r *reader, pool []ConstantPoolEntry) ([]MethodInfo, error) {
	count, err := r.u16()
	if err != nil {
		return nil, err
	}
	methods := make([]MethodInfo, count)
	for i := range methods {
		accessFlags, nameIndex, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		descIndex, err := r.u16()
		if err != nil {
			return nil, err
		}
		attrs, err := parseAttributes(r, pool)
		if err != nil {
			return nil, err
		}
		methods[i] = MethodInfo{
			AccessFlags:     accessFlags,
			NameIndex:       nameIndex,
			DescriptorIndex: descIndex,
			Attributes:      attrs,
		}
	}
	return methods, nil
}
