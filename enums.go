package genopts

import "strconv"

// The option enums are closed sets with fixed numeric discriminants,
// but the codec is tolerant: a decoded value outside the declared set
// is stored as-is with Known() == false, never coerced and never an
// error, so old readers survive schema growth.

// FieldType selects the in-memory representation of a field.
type FieldType int32

const (
	FieldTypeDefault  FieldType = 0
	FieldTypeCallback FieldType = 1
	FieldTypeStatic   FieldType = 2
	FieldTypeIgnore   FieldType = 3
	FieldTypePointer  FieldType = 4
	FieldTypeInline   FieldType = 5
)

// Known reports whether t is one of the declared discriminants.
func (t FieldType) Known() bool {
	return t >= FieldTypeDefault && t <= FieldTypeInline
}

func (t FieldType) String() string {
	switch t {
	case FieldTypeDefault:
		return "default"
	case FieldTypeCallback:
		return "callback"
	case FieldTypeStatic:
		return "static"
	case FieldTypeIgnore:
		return "ignore"
	case FieldTypePointer:
		return "pointer"
	case FieldTypeInline:
		return "inline"
	default:
		return "fieldtype(" + strconv.FormatInt(int64(t), 10) + ")"
	}
}

// IntSize forces integer fields to a specific width.
type IntSize int32

const (
	IntSizeDefault IntSize = 0
	IntSize8       IntSize = 8
	IntSize16      IntSize = 16
	IntSize32      IntSize = 32
	IntSize64      IntSize = 64
)

// Known reports whether s is one of the declared discriminants.
func (s IntSize) Known() bool {
	switch s {
	case IntSizeDefault, IntSize8, IntSize16, IntSize32, IntSize64:
		return true
	}
	return false
}

func (s IntSize) String() string {
	switch s {
	case IntSizeDefault:
		return "default"
	case IntSize8, IntSize16, IntSize32, IntSize64:
		return "int" + strconv.FormatInt(int64(s), 10)
	default:
		return "intsize(" + strconv.FormatInt(int64(s), 10) + ")"
	}
}

// TypenameMangling controls how generated identifiers are derived from
// fully qualified schema names.
type TypenameMangling int32

const (
	MangleNone            TypenameMangling = 0
	MangleStripPackage    TypenameMangling = 1
	MangleFlatten         TypenameMangling = 2
	ManglePackageInitials TypenameMangling = 3
)

// Known reports whether m is one of the declared discriminants.
func (m TypenameMangling) Known() bool {
	return m >= MangleNone && m <= ManglePackageInitials
}

func (m TypenameMangling) String() string {
	switch m {
	case MangleNone:
		return "none"
	case MangleStripPackage:
		return "strip_package"
	case MangleFlatten:
		return "flatten"
	case ManglePackageInitials:
		return "package_initials"
	default:
		return "mangling(" + strconv.FormatInt(int64(m), 10) + ")"
	}
}

// DescriptorSize selects the width of generated descriptor entries.
type DescriptorSize int32

const (
	DescriptorSizeAuto DescriptorSize = 0
	DescriptorSize1    DescriptorSize = 1
	DescriptorSize2    DescriptorSize = 2
	DescriptorSize4    DescriptorSize = 4
	DescriptorSize8    DescriptorSize = 8
)

// Known reports whether d is one of the declared discriminants.
func (d DescriptorSize) Known() bool {
	switch d {
	case DescriptorSizeAuto, DescriptorSize1, DescriptorSize2, DescriptorSize4, DescriptorSize8:
		return true
	}
	return false
}

func (d DescriptorSize) String() string {
	if d == DescriptorSizeAuto {
		return "auto"
	}
	if d.Known() {
		return strconv.FormatInt(int64(d), 10)
	}
	return "descriptorsize(" + strconv.FormatInt(int64(d), 10) + ")"
}

// DescriptorType mirrors the host schema's field type enum; it is the
// value space of the type_override option.
type DescriptorType int32

const (
	TypeDouble   DescriptorType = 1
	TypeFloat    DescriptorType = 2
	TypeInt64    DescriptorType = 3
	TypeUint64   DescriptorType = 4
	TypeInt32    DescriptorType = 5
	TypeFixed64  DescriptorType = 6
	TypeFixed32  DescriptorType = 7
	TypeBool     DescriptorType = 8
	TypeString   DescriptorType = 9
	TypeGroup    DescriptorType = 10
	TypeMessage  DescriptorType = 11
	TypeBytes    DescriptorType = 12
	TypeUint32   DescriptorType = 13
	TypeEnum     DescriptorType = 14
	TypeSfixed32 DescriptorType = 15
	TypeSfixed64 DescriptorType = 16
	TypeSint32   DescriptorType = 17
	TypeSint64   DescriptorType = 18
)

// Known reports whether t is one of the declared discriminants.
func (t DescriptorType) Known() bool {
	return t >= TypeDouble && t <= TypeSint64
}

func (t DescriptorType) String() string {
	switch t {
	case TypeDouble:
		return "double"
	case TypeFloat:
		return "float"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeInt32:
		return "int32"
	case TypeFixed64:
		return "fixed64"
	case TypeFixed32:
		return "fixed32"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeGroup:
		return "group"
	case TypeMessage:
		return "message"
	case TypeBytes:
		return "bytes"
	case TypeUint32:
		return "uint32"
	case TypeEnum:
		return "enum"
	case TypeSfixed32:
		return "sfixed32"
	case TypeSfixed64:
		return "sfixed64"
	case TypeSint32:
		return "sint32"
	case TypeSint64:
		return "sint64"
	default:
		return "type(" + strconv.FormatInt(int64(t), 10) + ")"
	}
}
