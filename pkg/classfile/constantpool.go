package classfile

// ConstantPoolEntry is implemented by all 17 constant-pool variants. Each
// variant stores only leaf data and/or indices to other entries. There
// are no owning pointers between entries; cross-references are resolved
// later, by index, by the resolver or serializer.
type ConstantPoolEntry interface {
	Tag() uint8
}

type ConstantUtf8 struct{ Value string }

func (c *ConstantUtf8) Tag() uint8 { return TagUtf8 }

type ConstantInteger struct{ Value int32 }

func (c *ConstantInteger) Tag() uint8 { return TagInteger }

type ConstantFloat struct{ Value float32 }

func (c *ConstantFloat) Tag() uint8 { return TagFloat }

type ConstantLong struct{ Value int64 }

func (c *ConstantLong) Tag() uint8 { return TagLong }

type ConstantDouble struct{ Value float64 }

func (c *ConstantDouble) Tag() uint8 { return TagDouble }

type ConstantClass struct{ NameIndex uint16 }

func (c *ConstantClass) Tag() uint8 { return TagClass }

type ConstantString struct{ StringIndex uint16 }

func (c *ConstantString) Tag() uint8 { return TagString }

type ConstantFieldref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantFieldref) Tag() uint8 { return TagFieldref }

type ConstantMethodref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantMethodref) Tag() uint8 { return TagMethodref }

type ConstantInterfaceMethodref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantInterfaceMethodref) Tag() uint8 { return TagInterfaceMethodref }

type ConstantNameAndType struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndType) Tag() uint8 { return TagNameAndType }

// ConstantMethodHandle is JVMS CONSTANT_MethodHandle_info (tag 15).
type ConstantMethodHandle struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

func (c *ConstantMethodHandle) Tag() uint8 { return TagMethodHandle }

// ConstantMethodType is JVMS CONSTANT_MethodType_info (tag 16).
type ConstantMethodType struct{ DescriptorIndex uint16 }

func (c *ConstantMethodType) Tag() uint8 { return TagMethodType }

// ConstantDynamic is JVMS CONSTANT_Dynamic_info (tag 17).
type ConstantDynamic struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantDynamic) Tag() uint8 { return TagDynamic }

// ConstantInvokeDynamic is JVMS CONSTANT_InvokeDynamic_info (tag 18).
type ConstantInvokeDynamic struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantInvokeDynamic) Tag() uint8 { return TagInvokeDynamic }

// ConstantModule is JVMS CONSTANT_Module_info (tag 19).
type ConstantModule struct{ NameIndex uint16 }

func (c *ConstantModule) Tag() uint8 { return TagModule }

// ConstantPackage is JVMS CONSTANT_Package_info (tag 20).
type ConstantPackage struct{ NameIndex uint16 }

func (c *ConstantPackage) Tag() uint8 { return TagPackage }

// parseConstantPool reads constant_pool_count entries from r. The
// returned slice is exactly count elements long; index 0 is the reserved
// sentinel and is always nil. Long and Double entries occupy two slots:
// the entry lands at index i and index i+1 is left nil (Go's zero value
// for an interface), the JVMS "phantom slot" rule.
func parseConstantPool(r *reader, count uint16) ([]ConstantPoolEntry, error) {
	pool := make([]ConstantPoolEntry, count)

	for i := uint16(1); i < count; i++ {
		tagOffset := r.offset()
		tag, err := r.u8()
		if err != nil {
			return nil, err
		}

		switch tag {
		case TagUtf8:
			s, err := r.modifiedUTF8()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantUtf8{Value: s}

		case TagInteger:
			v, err := r.i32()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantInteger{Value: v}

		case TagFloat:
			v, err := r.f32()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantFloat{Value: v}

		case TagLong:
			v, err := r.i64()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantLong{Value: v}
			i++

		case TagDouble:
			v, err := r.f64()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantDouble{Value: v}
			i++

		case TagClass:
			nameIndex, err := r.u16()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantClass{NameIndex: nameIndex}

		case TagString:
			stringIndex, err := r.u16()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantString{StringIndex: stringIndex}

		case TagFieldref:
			classIndex, natIndex, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantFieldref{ClassIndex: classIndex, NameAndTypeIndex: natIndex}

		case TagMethodref:
			classIndex, natIndex, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantMethodref{ClassIndex: classIndex, NameAndTypeIndex: natIndex}

		case TagInterfaceMethodref:
			classIndex, natIndex, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantInterfaceMethodref{ClassIndex: classIndex, NameAndTypeIndex: natIndex}

		case TagNameAndType:
			nameIndex, descIndex, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantNameAndType{NameIndex: nameIndex, DescriptorIndex: descIndex}

		case TagMethodHandle:
			kind, err := r.u8()
			if err != nil {
				return nil, err
			}
			refIndex, err := r.u16()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantMethodHandle{ReferenceKind: kind, ReferenceIndex: refIndex}

		case TagMethodType:
			descIndex, err := r.u16()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantMethodType{DescriptorIndex: descIndex}

		case TagDynamic:
			bootstrapIndex, natIndex, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantDynamic{BootstrapMethodAttrIndex: bootstrapIndex, NameAndTypeIndex: natIndex}

		case TagInvokeDynamic:
			bootstrapIndex, natIndex, err := readTwoU16(r)
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantInvokeDynamic{BootstrapMethodAttrIndex: bootstrapIndex, NameAndTypeIndex: natIndex}

		case TagModule:
			nameIndex, err := r.u16()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantModule{NameIndex: nameIndex}

		case TagPackage:
			nameIndex, err := r.u16()
			if err != nil {
				return nil, err
			}
			pool[i] = &ConstantPackage{NameIndex: nameIndex}

		default:
			return nil, newUnknownConstantTag(tag, tagOffset)
		}
	}

	return pool, nil
}

func readTwoU16(r *reader) (uint16, uint16, error) {
	a, err := r.u16()
	if err != nil {
		return 0, 0, err
	}
	b, err := r.u16()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
