package shape

import (
	"fmt"
	"strings"
)

// Family is one AISC profile category.
type Family int

const (
	FamilyWideFlange Family = iota
	FamilyMiscBeam
	FamilyStructuralBeam
	FamilyHPile
	FamilyCeeChannel
	FamilyAngle
	FamilyDoubleAngle
	FamilyWideFlangeTee
	FamilyMiscTee
	FamilyStructuralTee
	FamilyHollowStructuralSection
	FamilyRoundHollowStructuralSection
	FamilyPipe

	// NumFamilies is the number of shape families.
	NumFamilies = int(iota)
)

type familyInfo struct {
	slug   string
	title  string
	codes  []string
	table  string
	record Record
}

var families = [NumFamilies]familyInfo{
	FamilyWideFlange:                   {"wide-flange", "W-shapes (wide-flange beams)", []string{"W"}, "w_shapes", WideFlange{}},
	FamilyMiscBeam:                     {"misc-beam", "M-shapes (miscellaneous beams)", []string{"M"}, "m_shapes", MiscBeam{}},
	FamilyStructuralBeam:               {"structural-beam", "S-shapes (American standard beams)", []string{"S"}, "s_shapes", StructuralBeam{}},
	FamilyHPile:                        {"h-pile", "HP-shapes (bearing piles)", []string{"HP"}, "hp_shapes", HPile{}},
	FamilyCeeChannel:                   {"channel", "C- and MC-shapes (channels)", []string{"C", "MC"}, "c_shapes", CeeChannel{}},
	FamilyAngle:                        {"angle", "L-shapes (angles)", []string{"L"}, "l_shapes", Angle{}},
	FamilyDoubleAngle:                  {"double-angle", "2L-shapes (double angles)", []string{"2L"}, "double_l_shapes", DoubleAngle{}},
	FamilyWideFlangeTee:                {"wide-flange-tee", "WT-shapes (tees cut from W-shapes)", []string{"WT"}, "wt_shapes", WideFlangeTee{}},
	FamilyMiscTee:                      {"misc-tee", "MT-shapes (tees cut from M-shapes)", []string{"MT"}, "mt_shapes", MiscTee{}},
	FamilyStructuralTee:                {"structural-tee", "ST-shapes (tees cut from S-shapes)", []string{"ST"}, "st_shapes", StructuralTee{}},
	FamilyHollowStructuralSection:      {"hss", "Rectangular and square HSS", []string{"HSS"}, "hss_shapes", HollowStructuralSection{}},
	FamilyRoundHollowStructuralSection: {"round-hss", "Round HSS", []string{"HSS"}, "round_hss_shapes", RoundHollowStructuralSection{}},
	FamilyPipe:                         {"pipe", "Pipes", []string{"PIPE"}, "pipe_shapes", Pipe{}},
}

// AllFamilies returns every family in declaration order.
func AllFamilies() []Family {
	all := make([]Family, NumFamilies)
	for i := range all {
		all[i] = Family(i)
	}
	return all
}

// ParseFamily resolves a family from its slug ("wide-flange") or one of its
// type codes ("W"). The shared "HSS" code resolves to the rectangular family.
func ParseFamily(s string) (Family, error) {
	s = strings.TrimSpace(s)
	for i, info := range families {
		if strings.EqualFold(s, info.slug) {
			return Family(i), nil
		}
	}
	for i, info := range families {
		for _, code := range info.codes {
			if strings.EqualFold(s, code) {
				return Family(i), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown shape family %q", s)
}

// FamiliesForCode returns the families whose rows carry the given type code.
func FamiliesForCode(code string) []Family {
	var out []Family
	for i, info := range families {
		for _, c := range info.codes {
			if c == code {
				out = append(out, Family(i))
			}
		}
	}
	return out
}

// Valid reports whether f is a declared family.
func (f Family) Valid() bool {
	return f >= 0 && int(f) < NumFamilies
}

// Slug is the command-line name of the family.
func (f Family) Slug() string {
	if !f.Valid() {
		return ""
	}
	return families[f].slug
}

// Title is a human-readable description.
func (f Family) Title() string {
	if !f.Valid() {
		return ""
	}
	return families[f].title
}

// Codes returns the CSV type codes of the family.
func (f Family) Codes() []string {
	if !f.Valid() {
		return nil
	}
	return append([]string(nil), families[f].codes...)
}

// Table is the store table holding the family's records.
func (f Family) Table() string {
	if !f.Valid() {
		return ""
	}
	return families[f].table
}

func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return families[f].slug
}
