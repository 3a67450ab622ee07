package shape

// Record field declarations define each family's property partition.
// The aisc tag names the property; plain fields are mandatory, pointer
// fields are family-optional. Fields are declared in CSV column order,
// which is also the order missing properties are reported in.
// Dimensions are in inches, weights in lb/ft, as in the source database.

// Identity is the pair that identifies a shape within its family.
type Identity struct {
	Nomenclature string `aisc:"edi_std_nomenclature"`
	Label        string `aisc:"aisc_manual_label"`
}

// Ident returns the identity of the record it is embedded in.
func (i Identity) Ident() Identity { return i }

// Record is a fully populated shape of one family.
type Record interface {
	Family() Family
	Ident() Identity
}

// WideFlange is a W-shape.
type WideFlange struct {
	Identity
	SpecialNote bool     `aisc:"t_f"`
	W           float64  `aisc:"w"` // nominal weight, lb/ft
	A           float64  `aisc:"a"` // cross-sectional area, in²
	DLower      float64  `aisc:"d_lower"`
	Ddet        *float64 `aisc:"ddet"`
	Bf          float64  `aisc:"bf"`
	Bfdet       *float64 `aisc:"bfdet"`
	Tw          float64  `aisc:"tw"`
	Twdet       *float64 `aisc:"twdet"`
	TwdetHalf   *float64 `aisc:"twdet_2"`
	Tf          float64  `aisc:"tf"`
	Tfdet       *float64 `aisc:"tfdet"`
	Kdes        float64  `aisc:"kdes"`
	Kdet        *float64 `aisc:"kdet"`
	K1          float64  `aisc:"k1"`
	BfTwoTf     float64  `aisc:"bf_2tf"`
	HTw         float64  `aisc:"h_tw"`
	Ix          float64  `aisc:"ix"`
	Zx          float64  `aisc:"zx"`
	Sx          float64  `aisc:"sx"`
	Rx          float64  `aisc:"rx"`
	Iy          float64  `aisc:"iy"`
	Zy          float64  `aisc:"zy"`
	Sy          float64  `aisc:"sy"`
	Ry          float64  `aisc:"ry"`
	JUpper      float64  `aisc:"j_upper"`
	Cw          float64  `aisc:"cw"`
	Wno         float64  `aisc:"wno"`
	Sw1         float64  `aisc:"sw1"`
	Qf          float64  `aisc:"qf"`
	Qw          float64  `aisc:"qw"`
	Rts         float64  `aisc:"rts"`
	Ho          float64  `aisc:"ho"`
	PA          float64  `aisc:"pa"`
	PB          float64  `aisc:"pb"`
	PC          float64  `aisc:"pc"`
	PD          float64  `aisc:"pd"`
	TUpper      *float64 `aisc:"t_upper"`
	WGi         float64  `aisc:"wgi"`
	WGo         *float64 `aisc:"wgo"` // outer workable gage, wide flanges only
}

func (WideFlange) Family() Family { return FamilyWideFlange }

// MiscBeam is an M-shape.
type MiscBeam struct {
	Identity
	SpecialNote bool     `aisc:"t_f"`
	W           float64  `aisc:"w"`
	A           float64  `aisc:"a"`
	DLower      float64  `aisc:"d_lower"`
	Ddet        *float64 `aisc:"ddet"`
	Bf          float64  `aisc:"bf"`
	Bfdet       *float64 `aisc:"bfdet"`
	Tw          float64  `aisc:"tw"`
	Twdet       *float64 `aisc:"twdet"`
	TwdetHalf   *float64 `aisc:"twdet_2"`
	Tf          float64  `aisc:"tf"`
	Tfdet       *float64 `aisc:"tfdet"`
	Kdes        float64  `aisc:"kdes"`
	Kdet        *float64 `aisc:"kdet"`
	K1          *float64 `aisc:"k1"`
	BfTwoTf     float64  `aisc:"bf_2tf"`
	HTw         float64  `aisc:"h_tw"`
	Ix          float64  `aisc:"ix"`
	Zx          float64  `aisc:"zx"`
	Sx          float64  `aisc:"sx"`
	Rx          float64  `aisc:"rx"`
	Iy          float64  `aisc:"iy"`
	Zy          float64  `aisc:"zy"`
	Sy          float64  `aisc:"sy"`
	Ry          float64  `aisc:"ry"`
	JUpper      float64  `aisc:"j_upper"`
	Cw          float64  `aisc:"cw"`
	Wno         float64  `aisc:"wno"`
	Sw1         float64  `aisc:"sw1"`
	Qf          float64  `aisc:"qf"`
	Qw          float64  `aisc:"qw"`
	Rts         float64  `aisc:"rts"`
	Ho          float64  `aisc:"ho"`
	PA          float64  `aisc:"pa"`
	PB          float64  `aisc:"pb"`
	PC          float64  `aisc:"pc"`
	PD          float64  `aisc:"pd"`
	TUpper      *float64 `aisc:"t_upper"`
	WGi         *float64 `aisc:"wgi"`
}

func (MiscBeam) Family() Family { return FamilyMiscBeam }

// StructuralBeam is an S-shape.
type StructuralBeam struct {
	Identity
	SpecialNote bool     `aisc:"t_f"`
	W           float64  `aisc:"w"`
	A           float64  `aisc:"a"`
	DLower      float64  `aisc:"d_lower"`
	Ddet        *float64 `aisc:"ddet"`
	Bf          float64  `aisc:"bf"`
	Bfdet       *float64 `aisc:"bfdet"`
	Tw          float64  `aisc:"tw"`
	Twdet       *float64 `aisc:"twdet"`
	TwdetHalf   *float64 `aisc:"twdet_2"`
	Tf          float64  `aisc:"tf"`
	Tfdet       *float64 `aisc:"tfdet"`
	Kdes        float64  `aisc:"kdes"`
	Kdet        float64  `aisc:"kdet"`
	K1          *float64 `aisc:"k1"`
	BfTwoTf     float64  `aisc:"bf_2tf"`
	HTw         float64  `aisc:"h_tw"`
	Ix          float64  `aisc:"ix"`
	Zx          float64  `aisc:"zx"`
	Sx          float64  `aisc:"sx"`
	Rx          float64  `aisc:"rx"`
	Iy          float64  `aisc:"iy"`
	Zy          float64  `aisc:"zy"`
	Sy          float64  `aisc:"sy"`
	Ry          float64  `aisc:"ry"`
	JUpper      float64  `aisc:"j_upper"`
	Cw          float64  `aisc:"cw"`
	Wno         float64  `aisc:"wno"`
	Sw1         float64  `aisc:"sw1"`
	Qf          float64  `aisc:"qf"`
	Qw          float64  `aisc:"qw"`
	Rts         float64  `aisc:"rts"`
	Ho          float64  `aisc:"ho"`
	PA          float64  `aisc:"pa"`
	PB          float64  `aisc:"pb"`
	PC          float64  `aisc:"pc"`
	PD          float64  `aisc:"pd"`
	TUpper      *float64 `aisc:"t_upper"`
	WGi         *float64 `aisc:"wgi"`
}

func (StructuralBeam) Family() Family { return FamilyStructuralBeam }

// HPile is an HP-shape.
type HPile struct {
	Identity
	SpecialNote bool     `aisc:"t_f"`
	W           float64  `aisc:"w"`
	A           float64  `aisc:"a"`
	DLower      float64  `aisc:"d_lower"`
	Ddet        *float64 `aisc:"ddet"`
	Bf          float64  `aisc:"bf"`
	Bfdet       *float64 `aisc:"bfdet"`
	Tw          float64  `aisc:"tw"`
	Twdet       *float64 `aisc:"twdet"`
	TwdetHalf   *float64 `aisc:"twdet_2"`
	Tf          float64  `aisc:"tf"`
	Tfdet       *float64 `aisc:"tfdet"`
	Kdes        float64  `aisc:"kdes"`
	Kdet        float64  `aisc:"kdet"`
	K1          float64  `aisc:"k1"`
	BfTwoTf     float64  `aisc:"bf_2tf"`
	HTw         float64  `aisc:"h_tw"`
	Ix          float64  `aisc:"ix"`
	Zx          float64  `aisc:"zx"`
	Sx          float64  `aisc:"sx"`
	Rx          float64  `aisc:"rx"`
	Iy          float64  `aisc:"iy"`
	Zy          float64  `aisc:"zy"`
	Sy          float64  `aisc:"sy"`
	Ry          float64  `aisc:"ry"`
	JUpper      float64  `aisc:"j_upper"`
	Cw          float64  `aisc:"cw"`
	Wno         float64  `aisc:"wno"`
	Sw1         float64  `aisc:"sw1"`
	Qf          float64  `aisc:"qf"`
	Qw          float64  `aisc:"qw"`
	Rts         float64  `aisc:"rts"`
	Ho          float64  `aisc:"ho"`
	PA          float64  `aisc:"pa"`
	PB          float64  `aisc:"pb"`
	PC          float64  `aisc:"pc"`
	PD          float64  `aisc:"pd"`
	TUpper      float64  `aisc:"t_upper"`
	WGi         float64  `aisc:"wgi"`
}

func (HPile) Family() Family { return FamilyHPile }

// CeeChannel is a C- or MC-shape.
type CeeChannel struct {
	Identity
	SpecialNote *bool    `aisc:"t_f"`
	W           float64  `aisc:"w"`
	A           float64  `aisc:"a"`
	DLower      float64  `aisc:"d_lower"`
	Ddet        *float64 `aisc:"ddet"`
	Bf          float64  `aisc:"bf"`
	Bfdet       *float64 `aisc:"bfdet"`
	Tw          float64  `aisc:"tw"`
	Twdet       *float64 `aisc:"twdet"`
	TwdetHalf   *float64 `aisc:"twdet_2"`
	Tf          float64  `aisc:"tf"`
	Tfdet       *float64 `aisc:"tfdet"`
	Kdes        float64  `aisc:"kdes"`
	Kdet        *float64 `aisc:"kdet"`
	X           float64  `aisc:"x"`
	Eo          float64  `aisc:"eo"` // shear center offset
	Xp          float64  `aisc:"xp"`
	BT          float64  `aisc:"b_t"`
	HTw         float64  `aisc:"h_tw"`
	Ix          float64  `aisc:"ix"`
	Zx          float64  `aisc:"zx"`
	Sx          float64  `aisc:"sx"`
	Rx          float64  `aisc:"rx"`
	Iy          float64  `aisc:"iy"`
	Zy          float64  `aisc:"zy"`
	Sy          float64  `aisc:"sy"`
	Ry          float64  `aisc:"ry"`
	JUpper      float64  `aisc:"j_upper"`
	Cw          float64  `aisc:"cw"`
	Wno         float64  `aisc:"wno"`
	Sw1         float64  `aisc:"sw1"`
	Sw2         float64  `aisc:"sw2"`
	Sw3         float64  `aisc:"sw3"`
	Qf          float64  `aisc:"qf"`
	Qw          float64  `aisc:"qw"`
	Ro          float64  `aisc:"ro"`
	HUpper      float64  `aisc:"h_upper"`
	Rts         float64  `aisc:"rts"`
	Ho          float64  `aisc:"ho"`
	PA          float64  `aisc:"pa"`
	PB          float64  `aisc:"pb"`
	PC          float64  `aisc:"pc"`
	PD          float64  `aisc:"pd"`
	TUpper      *float64 `aisc:"t_upper"`
	WGi         *float64 `aisc:"wgi"`
}

func (CeeChannel) Family() Family { return FamilyCeeChannel }

// Angle is a single L-shape.
type Angle struct {
	Identity
	W      float64  `aisc:"w"`
	A      float64  `aisc:"a"`
	DLower float64  `aisc:"d_lower"` // long leg
	BLower float64  `aisc:"b_lower"` // short leg
	TLower float64  `aisc:"t_lower"`
	Kdes   float64  `aisc:"kdes"`
	Kdet   float64  `aisc:"kdet"`
	X      float64  `aisc:"x"`
	Y      float64  `aisc:"y"`
	Xp     float64  `aisc:"xp"`
	Yp     float64  `aisc:"yp"`
	BT     float64  `aisc:"b_t"`
	Ix     float64  `aisc:"ix"`
	Zx     float64  `aisc:"zx"`
	Sx     float64  `aisc:"sx"`
	Rx     float64  `aisc:"rx"`
	Iy     float64  `aisc:"iy"`
	Zy     float64  `aisc:"zy"`
	Sy     float64  `aisc:"sy"`
	Ry     float64  `aisc:"ry"`
	Iz     float64  `aisc:"iz"`
	Rz     float64  `aisc:"rz"`
	Sz     float64  `aisc:"sz"`
	JUpper float64  `aisc:"j_upper"`
	Cw     float64  `aisc:"cw"`
	Ro     float64  `aisc:"ro"`
	HUpper *float64 `aisc:"h_upper"` // flexural constant
	TanA   float64  `aisc:"tan_a"`
	Iw     float64  `aisc:"iw"`
	ZA     float64  `aisc:"za"`
	ZB     float64  `aisc:"zb"`
	ZC     float64  `aisc:"zc"`
	WA     float64  `aisc:"wa"`
	WB     float64  `aisc:"wb"`
	WC     float64  `aisc:"wc"`
	SwA    float64  `aisc:"swa"`
	SwB    *float64 `aisc:"swb"`
	SwC    float64  `aisc:"swc"`
	SzA    float64  `aisc:"sza"`
	SzB    float64  `aisc:"szb"`
	SzC    float64  `aisc:"szc"`
	PA     float64  `aisc:"pa"`
	PA2    float64  `aisc:"pa2"`
	PB     float64  `aisc:"pb"`
}

func (Angle) Family() Family { return FamilyAngle }

// DoubleAngle is a 2L-shape; each spacing and leg orientation is its own row.
type DoubleAngle struct {
	Identity
	W      float64 `aisc:"w"`
	A      float64 `aisc:"a"`
	DLower float64 `aisc:"d_lower"`
	BLower float64 `aisc:"b_lower"`
	TLower float64 `aisc:"t_lower"`
	Y      float64 `aisc:"y"`
	Yp     float64 `aisc:"yp"`
	BT     float64 `aisc:"b_t"`
	Ix     float64 `aisc:"ix"`
	Zx     float64 `aisc:"zx"`
	Sx     float64 `aisc:"sx"`
	Rx     float64 `aisc:"rx"`
	Iy     float64 `aisc:"iy"`
	Zy     float64 `aisc:"zy"`
	Sy     float64 `aisc:"sy"`
	Ry     float64 `aisc:"ry"`
	Ro     float64 `aisc:"ro"`
	HUpper float64 `aisc:"h_upper"`
}

func (DoubleAngle) Family() Family { return FamilyDoubleAngle }

// tee holds the property set shared by WT-, MT- and ST-shapes.
type tee struct {
	SpecialNote *bool    `aisc:"t_f"`
	W           float64  `aisc:"w"`
	A           float64  `aisc:"a"`
	DLower      float64  `aisc:"d_lower"`
	Ddet        *float64 `aisc:"ddet"`
	Bf          float64  `aisc:"bf"`
	Bfdet       *float64 `aisc:"bfdet"`
	Tw          float64  `aisc:"tw"`
	Twdet       *float64 `aisc:"twdet"`
	TwdetHalf   *float64 `aisc:"twdet_2"`
	Tf          float64  `aisc:"tf"`
	Tfdet       *float64 `aisc:"tfdet"`
	Kdes        float64  `aisc:"kdes"`
	Kdet        *float64 `aisc:"kdet"`
	K1          *float64 `aisc:"k1"`
	Y           float64  `aisc:"y"`
	Yp          float64  `aisc:"yp"`
	BfTwoTf     float64  `aisc:"bf_2tf"`
	Ix          float64  `aisc:"ix"`
	Zx          float64  `aisc:"zx"`
	Sx          float64  `aisc:"sx"`
	Rx          float64  `aisc:"rx"`
	Iy          float64  `aisc:"iy"`
	Zy          float64  `aisc:"zy"`
	Sy          float64  `aisc:"sy"`
	Ry          float64  `aisc:"ry"`
	JUpper      float64  `aisc:"j_upper"`
	Cw          float64  `aisc:"cw"`
	Ro          float64  `aisc:"ro"`
	HUpper      float64  `aisc:"h_upper"`
	PA          float64  `aisc:"pa"`
	PB          float64  `aisc:"pb"`
	PC          float64  `aisc:"pc"`
	PD          float64  `aisc:"pd"`
	WGi         *float64 `aisc:"wgi"`
}

// WideFlangeTee is a WT-shape.
type WideFlangeTee struct {
	Identity
	tee
}

func (WideFlangeTee) Family() Family { return FamilyWideFlangeTee }

// MiscTee is an MT-shape.
type MiscTee struct {
	Identity
	tee
}

func (MiscTee) Family() Family { return FamilyMiscTee }

// StructuralTee is an ST-shape.
type StructuralTee struct {
	Identity
	tee
}

func (StructuralTee) Family() Family { return FamilyStructuralTee }

// HollowStructuralSection is a rectangular or square HSS.
type HollowStructuralSection struct {
	Identity
	W      float64 `aisc:"w"`
	A      float64 `aisc:"a"`
	Ht     float64 `aisc:"ht"`
	HLower float64 `aisc:"h_lower"`
	BUpper float64 `aisc:"b_upper"`
	BLower float64 `aisc:"b_lower"`
	Tnom   float64 `aisc:"tnom"`
	Tdes   float64 `aisc:"tdes"` // design wall thickness, 0.93 tnom
	BTdes  float64 `aisc:"b_tdes"`
	HTdes  float64 `aisc:"h_tdes"`
	Ix     float64 `aisc:"ix"`
	Zx     float64 `aisc:"zx"`
	Sx     float64 `aisc:"sx"`
	Rx     float64 `aisc:"rx"`
	Iy     float64 `aisc:"iy"`
	Zy     float64 `aisc:"zy"`
	Sy     float64 `aisc:"sy"`
	Ry     float64 `aisc:"ry"`
	JUpper float64 `aisc:"j_upper"`
	CUpper float64 `aisc:"c_upper"`
	PA     float64 `aisc:"pa"`
	PB     float64 `aisc:"pb"`
}

func (HollowStructuralSection) Family() Family { return FamilyHollowStructuralSection }

// RoundHollowStructuralSection is a round HSS.
type RoundHollowStructuralSection struct {
	Identity
	W      float64 `aisc:"w"`
	A      float64 `aisc:"a"`
	OD     float64 `aisc:"od"`
	Tnom   float64 `aisc:"tnom"`
	Tdes   float64 `aisc:"tdes"`
	DT     float64 `aisc:"d_t"`
	Ix     float64 `aisc:"ix"`
	Zx     float64 `aisc:"zx"`
	Sx     float64 `aisc:"sx"`
	Rx     float64 `aisc:"rx"`
	JUpper float64 `aisc:"j_upper"`
	CUpper float64 `aisc:"c_upper"`
	PA     float64 `aisc:"pa"`
}

func (RoundHollowStructuralSection) Family() Family { return FamilyRoundHollowStructuralSection }

// Pipe is a standard, extra-strong or double-extra-strong pipe.
type Pipe struct {
	Identity
	W      float64 `aisc:"w"`
	A      float64 `aisc:"a"`
	OD     float64 `aisc:"od"`
	ID     float64 `aisc:"id_upper"`
	Tnom   float64 `aisc:"tnom"`
	Tdes   float64 `aisc:"tdes"`
	DT     float64 `aisc:"d_t"`
	Ix     float64 `aisc:"ix"`
	Zx     float64 `aisc:"zx"`
	Sx     float64 `aisc:"sx"`
	Rx     float64 `aisc:"rx"`
	JUpper float64 `aisc:"j_upper"`
	CUpper float64 `aisc:"c_upper"`
}

func (Pipe) Family() Family { return FamilyPipe }
