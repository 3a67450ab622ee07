package shape

// Property identifies one column of the AISC shapes database.
// Constants are declared in CSV column order, starting at column 1.
type Property int

// Kind is the value type a property holds.
type Kind int

const (
	KindFloat Kind = iota
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "float"
	}
}

const (
	EDINomenclature Property = iota
	AISCManualLabel
	SpecialNote
	W
	A
	DLower
	Ddet
	Ht
	HLower
	OD
	Bf
	Bfdet
	BUpper
	BLower
	ID
	Tw
	Twdet
	TwdetHalf
	Tf
	Tfdet
	TLower
	Tnom
	Tdes
	Kdes
	Kdet
	K1
	X
	Y
	Eo
	Xp
	Yp
	BfTwoTf
	BT
	BTdes
	HTw
	HTdes
	DT
	Ix
	Zx
	Sx
	Rx
	Iy
	Zy
	Sy
	Ry
	Iz
	Rz
	Sz
	JUpper
	Cw
	CUpper
	Wno
	Sw1
	Sw2
	Sw3
	Qf
	Qw
	Ro
	HUpper
	TanA
	Iw
	ZA
	ZB
	ZC
	WA
	WB
	WC
	SwA
	SwB
	SwC
	SzA
	SzB
	SzC
	Rts
	Ho
	PA
	PA2
	PB
	PC
	PD
	TUpper
	WGi
	WGo

	// NumProperties is the size of the superset.
	NumProperties = int(iota)
)

type propertyInfo struct {
	name    string // column name in the store; unique ignoring case
	display string // engineering symbol, identical to the CSV header
	kind    Kind
}

var properties = [NumProperties]propertyInfo{
	EDINomenclature: {"edi_std_nomenclature", "EDI_Std_Nomenclature", KindText},
	AISCManualLabel: {"aisc_manual_label", "AISC_Manual_Label", KindText},
	SpecialNote:     {"t_f", "T_F", KindBool},
	W:               {"w", "W", KindFloat},
	A:               {"a", "A", KindFloat},
	DLower:          {"d_lower", "d", KindFloat},
	Ddet:            {"ddet", "ddet", KindFloat},
	Ht:              {"ht", "Ht", KindFloat},
	HLower:          {"h_lower", "h", KindFloat},
	OD:              {"od", "OD", KindFloat},
	Bf:              {"bf", "bf", KindFloat},
	Bfdet:           {"bfdet", "bfdet", KindFloat},
	BUpper:          {"b_upper", "B", KindFloat},
	BLower:          {"b_lower", "b", KindFloat},
	ID:              {"id_upper", "ID", KindFloat},
	Tw:              {"tw", "tw", KindFloat},
	Twdet:           {"twdet", "twdet", KindFloat},
	TwdetHalf:       {"twdet_2", "twdet/2", KindFloat},
	Tf:              {"tf", "tf", KindFloat},
	Tfdet:           {"tfdet", "tfdet", KindFloat},
	TLower:          {"t_lower", "t", KindFloat},
	Tnom:            {"tnom", "tnom", KindFloat},
	Tdes:            {"tdes", "tdes", KindFloat},
	Kdes:            {"kdes", "kdes", KindFloat},
	Kdet:            {"kdet", "kdet", KindFloat},
	K1:              {"k1", "k1", KindFloat},
	X:               {"x", "x", KindFloat},
	Y:               {"y", "y", KindFloat},
	Eo:              {"eo", "eo", KindFloat},
	Xp:              {"xp", "xp", KindFloat},
	Yp:              {"yp", "yp", KindFloat},
	BfTwoTf:         {"bf_2tf", "bf/2tf", KindFloat},
	BT:              {"b_t", "b/t", KindFloat},
	BTdes:           {"b_tdes", "b/tdes", KindFloat},
	HTw:             {"h_tw", "h/tw", KindFloat},
	HTdes:           {"h_tdes", "h/tdes", KindFloat},
	DT:              {"d_t", "D/t", KindFloat},
	Ix:              {"ix", "Ix", KindFloat},
	Zx:              {"zx", "Zx", KindFloat},
	Sx:              {"sx", "Sx", KindFloat},
	Rx:              {"rx", "rx", KindFloat},
	Iy:              {"iy", "Iy", KindFloat},
	Zy:              {"zy", "Zy", KindFloat},
	Sy:              {"sy", "Sy", KindFloat},
	Ry:              {"ry", "ry", KindFloat},
	Iz:              {"iz", "Iz", KindFloat},
	Rz:              {"rz", "rz", KindFloat},
	Sz:              {"sz", "Sz", KindFloat},
	JUpper:          {"j_upper", "J", KindFloat},
	Cw:              {"cw", "Cw", KindFloat},
	CUpper:          {"c_upper", "C", KindFloat},
	Wno:             {"wno", "Wno", KindFloat},
	Sw1:             {"sw1", "Sw1", KindFloat},
	Sw2:             {"sw2", "Sw2", KindFloat},
	Sw3:             {"sw3", "Sw3", KindFloat},
	Qf:              {"qf", "Qf", KindFloat},
	Qw:              {"qw", "Qw", KindFloat},
	Ro:              {"ro", "ro", KindFloat},
	HUpper:          {"h_upper", "H", KindFloat},
	TanA:            {"tan_a", "tan(α)", KindFloat},
	Iw:              {"iw", "Iw", KindFloat},
	ZA:              {"za", "zA", KindFloat},
	ZB:              {"zb", "zB", KindFloat},
	ZC:              {"zc", "zC", KindFloat},
	WA:              {"wa", "wA", KindFloat},
	WB:              {"wb", "wB", KindFloat},
	WC:              {"wc", "wC", KindFloat},
	SwA:             {"swa", "SwA", KindFloat},
	SwB:             {"swb", "SwB", KindFloat},
	SwC:             {"swc", "SwC", KindFloat},
	SzA:             {"sza", "SzA", KindFloat},
	SzB:             {"szb", "SzB", KindFloat},
	SzC:             {"szc", "SzC", KindFloat},
	Rts:             {"rts", "rts", KindFloat},
	Ho:              {"ho", "ho", KindFloat},
	PA:              {"pa", "PA", KindFloat},
	PA2:             {"pa2", "PA2", KindFloat},
	PB:              {"pb", "PB", KindFloat},
	PC:              {"pc", "PC", KindFloat},
	PD:              {"pd", "PD", KindFloat},
	TUpper:          {"t_upper", "T", KindFloat},
	WGi:             {"wgi", "WGi", KindFloat},
	WGo:             {"wgo", "WGo", KindFloat},
}

var byName, byDisplay = indexProperties()

func indexProperties() (map[string]Property, map[string]Property) {
	names := make(map[string]Property, NumProperties)
	displays := make(map[string]Property, NumProperties)
	for i, info := range properties {
		names[info.name] = Property(i)
		displays[info.display] = Property(i)
	}
	return names, displays
}

// AllProperties returns the superset in column order.
func AllProperties() []Property {
	all := make([]Property, NumProperties)
	for i := range all {
		all[i] = Property(i)
	}
	return all
}

// PropertyByName looks up a property by its internal name (e.g. "j_upper").
func PropertyByName(name string) (Property, bool) {
	p, ok := byName[name]
	return p, ok
}

// PropertyByDisplay looks up a property by its display name (e.g. "J").
func PropertyByDisplay(display string) (Property, bool) {
	p, ok := byDisplay[display]
	return p, ok
}

// Valid reports whether p is one of the declared properties.
func (p Property) Valid() bool {
	return p >= 0 && int(p) < NumProperties
}

// Name returns the internal identifier, also used as the store column name.
func (p Property) Name() string {
	if !p.Valid() {
		return ""
	}
	return properties[p].name
}

// Display returns the conventional engineering symbol.
func (p Property) Display() string {
	if !p.Valid() {
		return ""
	}
	return properties[p].display
}

// Kind returns the value type of the property.
func (p Property) Kind() Kind {
	if !p.Valid() {
		return KindFloat
	}
	return properties[p].kind
}

func (p Property) String() string {
	if !p.Valid() {
		return "Property(invalid)"
	}
	return properties[p].display
}
