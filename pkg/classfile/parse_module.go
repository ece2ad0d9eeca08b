package classfile

// parseModuleAttribute reads the Module attribute's body (JVMS §4.7.25):
// the module's own name/flags/version followed by five independently
// counted tables.
func parseModuleAttribute(r *reader, base attrBase) (*ModuleAttribute, error) {
	nameIndex, flags, err := readTwoU16(r)
	if err != nil {
		return nil, err
	}
	versionIndex, err := r.u16()
	if err != nil {
		return nil, err
	}

	requires, err := parseModuleRequires(r)
	if err != nil {
		return nil, err
	}
	exports, err := parseModuleExports(r)
	if err != nil {
		return nil, err
	}
	opens, err := parseModuleOpens(r)
	if err != nil {
		return nil, err
	}
	uses, err := readU16Table(r)
	if err != nil {
		return nil, err
	}
	provides, err := parseModuleProvides(r)
	if err != nil {
		return nil, err
	}

	return &ModuleAttribute{
		attrBase:           base,
		ModuleNameIndex:    nameIndex,
		ModuleFlags:        flags,
		ModuleVersionIndex: versionIndex,
		Requires:           requires,
		Exports:            exports,
		Opens:              opens,
		Uses:               uses,
		Provides:           provides,
	}, nil
}

func parseModuleRequires(r *reader) ([]ModuleRequires, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	table := make([]ModuleRequires, n)
	for i := range table {
		idx, flags, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		versionIdx, err := r.u16()
		if err != nil {
			return nil, err
		}
		table[i] = ModuleRequires{RequiresIndex: idx, RequiresFlags: flags, RequiresVersionIndex: versionIdx}
	}
	return table, nil
}

func parseModuleExports(r *reader) ([]ModuleExports, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	table := make([]ModuleExports, n)
	for i := range table {
		idx, flags, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		to, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		table[i] = ModuleExports{ExportsIndex: idx, ExportsFlags: flags, ExportsToIndex: to}
	}
	return table, nil
}

func parseModuleOpens(r *reader) ([]ModuleOpens, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	table := make([]ModuleOpens, n)
	for i := range table {
		idx, flags, err := readTwoU16(r)
		if err != nil {
			return nil, err
		}
		to, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		table[i] = ModuleOpens{OpensIndex: idx, OpensFlags: flags, OpensToIndex: to}
	}
	return table, nil
}

func parseModuleProvides(r *reader) ([]ModuleProvides, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	table := make([]ModuleProvides, n)
	for i := range table {
		idx, err := r.u16()
		if err != nil {
			return nil, err
		}
		with, err := readU16Table(r)
		if err != nil {
			return nil, err
		}
		table[i] = ModuleProvides{ProvidesIndex: idx, ProvidesWithIndex: with}
	}
	return table, nil
}
