package shape

import "fmt"

// value is one populated builder slot.
type value struct {
	kind Kind
	num  float64
	text string
	flag bool
}

// Builder accumulates superset properties from a source row before the row
// is converted into a family record. Every slot starts unset. Mutators
// return the builder so calls can be chained; setting a slot twice keeps
// the last value.
type Builder struct {
	slots map[Property]value
}

// NewBuilder returns a builder with every property unset.
func NewBuilder() *Builder {
	return &Builder{slots: make(map[Property]value)}
}

func (b *Builder) set(p Property, v value) *Builder {
	if !p.Valid() {
		panic(fmt.Sprintf("shape: invalid property %d", int(p)))
	}
	if p.Kind() != v.kind {
		panic(fmt.Sprintf("shape: property %s holds %s values, not %s", p.Display(), p.Kind(), v.kind))
	}
	b.slots[p] = v
	return b
}

// WithFloat sets a numeric property.
func (b *Builder) WithFloat(p Property, v float64) *Builder {
	return b.set(p, value{kind: KindFloat, num: v})
}

// WithOptionalFloat sets a numeric property when v is non-nil.
func (b *Builder) WithOptionalFloat(p Property, v *float64) *Builder {
	if v == nil {
		return b
	}
	return b.WithFloat(p, *v)
}

// WithText sets a text property.
func (b *Builder) WithText(p Property, s string) *Builder {
	return b.set(p, value{kind: KindText, text: s})
}

// WithBool sets a boolean property.
func (b *Builder) WithBool(p Property, v bool) *Builder {
	return b.set(p, value{kind: KindBool, flag: v})
}

// WithOptionalBool sets a boolean property when v is non-nil.
func (b *Builder) WithOptionalBool(p Property, v *bool) *Builder {
	if v == nil {
		return b
	}
	return b.WithBool(p, *v)
}

// WithNomenclature sets the EDI standard nomenclature.
func (b *Builder) WithNomenclature(s string) *Builder {
	return b.WithText(EDINomenclature, s)
}

// WithLabel sets the AISC manual label.
func (b *Builder) WithLabel(s string) *Builder {
	return b.WithText(AISCManualLabel, s)
}

// WithSpecialNote sets the T_F flag.
func (b *Builder) WithSpecialNote(v bool) *Builder {
	return b.WithBool(SpecialNote, v)
}

// IsSet reports whether p has been given a value.
func (b *Builder) IsSet(p Property) bool {
	_, ok := b.slots[p]
	return ok
}

// Len returns the number of populated slots.
func (b *Builder) Len() int {
	return len(b.slots)
}

// Float returns the value of a numeric property.
func (b *Builder) Float(p Property) (float64, bool) {
	v, ok := b.slots[p]
	if !ok || v.kind != KindFloat {
		return 0, false
	}
	return v.num, true
}

// Text returns the value of a text property.
func (b *Builder) Text(p Property) (string, bool) {
	v, ok := b.slots[p]
	if !ok || v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Bool returns the value of a boolean property.
func (b *Builder) Bool(p Property) (bool, bool) {
	v, ok := b.slots[p]
	if !ok || v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}
