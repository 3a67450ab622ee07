package shape

import (
	"fmt"
	"reflect"
)

// MissingPropertyError reports the first mandatory property absent from a
// builder at conversion time. Property holds the display name.
type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("The required property %s was missing.", e.Property)
}

// Rule is the property partition of one family, in declared order.
type Rule struct {
	Family   Family
	Required []Property
	Optional []Property
}

// Properties returns every property of the rule in declared order.
func (r Rule) Properties() []Property {
	if !r.Family.Valid() {
		return nil
	}
	l := layouts[r.Family]
	out := make([]Property, len(l.bindings))
	for i, bd := range l.bindings {
		out[i] = bd.prop
	}
	return out
}

// Has reports whether p belongs to the family, mandatory or optional.
func (r Rule) Has(p Property) bool {
	if !r.Family.Valid() {
		return false
	}
	for _, bd := range layouts[r.Family].bindings {
		if bd.prop == p {
			return true
		}
	}
	return false
}

// IsOptional reports whether p is family-optional.
func (r Rule) IsOptional(p Property) bool {
	for _, q := range r.Optional {
		if q == p {
			return true
		}
	}
	return false
}

// binding ties one record field to one property.
type binding struct {
	prop     Property
	index    []int
	optional bool
}

type layout struct {
	family   Family
	typ      reflect.Type
	bindings []binding
}

var (
	layouts  [NumFamilies]*layout
	byRecord = make(map[reflect.Type]*layout, NumFamilies)
)

func init() {
	for i, info := range families {
		f := Family(i)
		if info.record.Family() != f {
			panic(fmt.Sprintf("shape: %T reports family %s, registered as %s", info.record, info.record.Family(), f))
		}
		l := buildLayout(f, reflect.TypeOf(info.record))
		layouts[f] = l
		byRecord[l.typ] = l
	}
}

func buildLayout(f Family, typ reflect.Type) *layout {
	l := &layout{family: f, typ: typ}
	seen := make(map[Property]bool)
	walkFields(typ, nil, func(field reflect.StructField, index []int) {
		tag, ok := field.Tag.Lookup("aisc")
		if !ok {
			return
		}
		p, ok := PropertyByName(tag)
		if !ok {
			panic(fmt.Sprintf("shape: %s.%s: unknown property %q", typ.Name(), field.Name, tag))
		}
		if seen[p] {
			panic(fmt.Sprintf("shape: %s declares %s twice", typ.Name(), p.Display()))
		}
		seen[p] = true

		optional := field.Type.Kind() == reflect.Pointer
		elem := field.Type
		if optional {
			elem = elem.Elem()
		}
		if !kindMatches(p.Kind(), elem.Kind()) || (optional && p.Kind() == KindText) {
			panic(fmt.Sprintf("shape: %s.%s has type %s, property %s holds %s", typ.Name(), field.Name, field.Type, p.Display(), p.Kind()))
		}
		l.bindings = append(l.bindings, binding{prop: p, index: index, optional: optional})
	})
	return l
}

func walkFields(typ reflect.Type, prefix []int, fn func(reflect.StructField, []int)) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		index := append(append([]int(nil), prefix...), i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			walkFields(field.Type, index, fn)
			continue
		}
		fn(field, index)
	}
}

func kindMatches(k Kind, rk reflect.Kind) bool {
	switch k {
	case KindText:
		return rk == reflect.String
	case KindBool:
		return rk == reflect.Bool
	default:
		return rk == reflect.Float64
	}
}

// Rules returns the property partition of f.
func Rules(f Family) Rule {
	r := Rule{Family: f}
	if !f.Valid() {
		return r
	}
	for _, bd := range layouts[f].bindings {
		if bd.optional {
			r.Optional = append(r.Optional, bd.prop)
		} else {
			r.Required = append(r.Required, bd.prop)
		}
	}
	return r
}

// ConvertFamily converts b into a record of family f. It fails with a
// *MissingPropertyError naming the first absent mandatory property.
func ConvertFamily(f Family, b *Builder) (Record, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("unknown shape family %d", int(f))
	}
	v, err := convert(layouts[f], b)
	if err != nil {
		return nil, err
	}
	return v.Interface().(Record), nil
}

// Convert converts b into the record type T.
func Convert[T Record](b *Builder) (T, error) {
	var zero T
	l, ok := byRecord[reflect.TypeOf(zero)]
	if !ok {
		panic(fmt.Sprintf("shape: %T is not a registered record type", zero))
	}
	v, err := convert(l, b)
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}

func convert(l *layout, b *Builder) (reflect.Value, error) {
	for _, bd := range l.bindings {
		if !bd.optional && !b.IsSet(bd.prop) {
			return reflect.Value{}, &MissingPropertyError{Property: bd.prop.Display()}
		}
	}

	out := reflect.New(l.typ).Elem()
	for _, bd := range l.bindings {
		if !b.IsSet(bd.prop) {
			continue
		}
		field := out.FieldByIndex(bd.index)
		var v reflect.Value
		switch bd.prop.Kind() {
		case KindText:
			s, _ := b.Text(bd.prop)
			v = reflect.ValueOf(s)
		case KindBool:
			flag, _ := b.Bool(bd.prop)
			v = reflect.ValueOf(flag)
		default:
			num, _ := b.Float(bd.prop)
			v = reflect.ValueOf(num)
		}
		if bd.optional {
			ptr := reflect.New(v.Type())
			ptr.Elem().Set(v)
			v = ptr
		}
		field.Set(v)
	}
	return out, nil
}

// Field is one property of a record.
type Field struct {
	Property Property
	Optional bool
	// Set is false only for an absent family-optional property.
	Set   bool
	Float float64
	Text  string
	Bool  bool
}

// Value returns the field value as float64, string or bool, or nil when
// the field is unset.
func (f Field) Value() any {
	if !f.Set {
		return nil
	}
	switch f.Property.Kind() {
	case KindText:
		return f.Text
	case KindBool:
		return f.Bool
	default:
		return f.Float
	}
}

// Fields lists the properties of rec in declared order.
func Fields(rec Record) []Field {
	l := layoutFor(rec)
	rv := reflect.ValueOf(rec)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	out := make([]Field, 0, len(l.bindings))
	for _, bd := range l.bindings {
		fv := rv.FieldByIndex(bd.index)
		f := Field{Property: bd.prop, Optional: bd.optional, Set: true}
		if bd.optional {
			if fv.IsNil() {
				f.Set = false
				out = append(out, f)
				continue
			}
			fv = fv.Elem()
		}
		switch bd.prop.Kind() {
		case KindText:
			f.Text = fv.String()
		case KindBool:
			f.Bool = fv.Bool()
		default:
			f.Float = fv.Float()
		}
		out = append(out, f)
	}
	return out
}

// Lookup returns the field of rec holding p.
func Lookup(rec Record, p Property) (Field, bool) {
	for _, f := range Fields(rec) {
		if f.Property == p {
			return f, true
		}
	}
	return Field{}, false
}

// ToBuilder copies every populated field of rec into a fresh builder.
func ToBuilder(rec Record) *Builder {
	b := NewBuilder()
	for _, f := range Fields(rec) {
		if !f.Set {
			continue
		}
		switch f.Property.Kind() {
		case KindText:
			b.WithText(f.Property, f.Text)
		case KindBool:
			b.WithBool(f.Property, f.Bool)
		default:
			b.WithFloat(f.Property, f.Float)
		}
	}
	return b
}

func layoutFor(rec Record) *layout {
	t := reflect.TypeOf(rec)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if l, ok := byRecord[t]; ok {
		return l
	}
	return layouts[rec.Family()]
}

// Per-family conversions.

func ToWideFlange(b *Builder) (WideFlange, error)         { return Convert[WideFlange](b) }
func ToMiscBeam(b *Builder) (MiscBeam, error)             { return Convert[MiscBeam](b) }
func ToStructuralBeam(b *Builder) (StructuralBeam, error) { return Convert[StructuralBeam](b) }
func ToHPile(b *Builder) (HPile, error)                   { return Convert[HPile](b) }
func ToCeeChannel(b *Builder) (CeeChannel, error)         { return Convert[CeeChannel](b) }
func ToAngle(b *Builder) (Angle, error)                   { return Convert[Angle](b) }
func ToDoubleAngle(b *Builder) (DoubleAngle, error)       { return Convert[DoubleAngle](b) }
func ToWideFlangeTee(b *Builder) (WideFlangeTee, error)   { return Convert[WideFlangeTee](b) }
func ToMiscTee(b *Builder) (MiscTee, error)               { return Convert[MiscTee](b) }
func ToStructuralTee(b *Builder) (StructuralTee, error)   { return Convert[StructuralTee](b) }
func ToHollowStructuralSection(b *Builder) (HollowStructuralSection, error) {
	return Convert[HollowStructuralSection](b)
}
func ToRoundHollowStructuralSection(b *Builder) (RoundHollowStructuralSection, error) {
	return Convert[RoundHollowStructuralSection](b)
}
func ToPipe(b *Builder) (Pipe, error) { return Convert[Pipe](b) }
