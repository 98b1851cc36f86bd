package genopts

// Resolved is the effective view of an Options value: every absent
// field replaced by its documented default. Presence information stays
// on the Options itself; resolution is a read-time substitution, not a
// mutation, so callers that need to distinguish "explicitly set to the
// default" keep that answer.
type Resolved struct {
	MaxSize   int32
	MaxLength int32
	MaxCount  int32

	IntSize IntSize
	Type    FieldType

	LongNames          bool
	PackedStruct       bool
	PackedEnum         bool
	SkipMessage        bool
	NoUnions           bool
	MsgID              uint32
	AnonymousOneof     bool
	Proto3             bool
	Proto3SingularMsgs bool
	EnumToString       bool
	FixedLength        bool
	FixedCount         bool
	SubmsgCallback     bool

	MangleNames      TypenameMangling
	CallbackDatatype string
	CallbackFunction string
	DescriptorSize   DescriptorSize
	DefaultHas       bool
	Package          string
	TypeOverride     DescriptorType
	SortByTag        bool
	FallbackType     FieldType

	Include []string
	Exclude []string
}

// Resolve substitutes the per-field documented defaults for absent
// fields and returns the effective options. Fields without a
// documented default resolve to their zero value. The repeated lists
// are shared with o, not copied.
//
// MaxSize/MaxLength and FixedLength/FixedCount can express conflicting
// bounds; the codec does not arbitrate between them, it hands both to
// the generator as stored.
func (o *Options) Resolve() Resolved {
	return Resolved{
		MaxSize:   o.MaxSize.Or(0),
		MaxLength: o.MaxLength.Or(0),
		MaxCount:  o.MaxCount.Or(0),

		IntSize: o.IntSize.Or(IntSizeDefault),
		Type:    o.Type.Or(FieldTypeDefault),

		LongNames:          o.LongNames.Or(true),
		PackedStruct:       o.PackedStruct.Or(false),
		PackedEnum:         o.PackedEnum.Or(false),
		SkipMessage:        o.SkipMessage.Or(false),
		NoUnions:           o.NoUnions.Or(false),
		MsgID:              o.MsgID.Or(0),
		AnonymousOneof:     o.AnonymousOneof.Or(false),
		Proto3:             o.Proto3.Or(false),
		Proto3SingularMsgs: o.Proto3SingularMsgs.Or(false),
		EnumToString:       o.EnumToString.Or(false),
		FixedLength:        o.FixedLength.Or(false),
		FixedCount:         o.FixedCount.Or(false),
		SubmsgCallback:     o.SubmsgCallback.Or(false),

		MangleNames:      o.MangleNames.Or(MangleNone),
		CallbackDatatype: o.CallbackDatatype.Or(DefaultCallbackDatatype),
		CallbackFunction: o.CallbackFunction.Or(DefaultCallbackFunction),
		DescriptorSize:   o.DescriptorSize.Or(DescriptorSizeAuto),
		DefaultHas:       o.DefaultHas.Or(false),
		Package:          o.Package.Or(""),
		TypeOverride:     o.TypeOverride.Or(0),
		SortByTag:        o.SortByTag.Or(true),
		FallbackType:     o.FallbackType.Or(FieldTypeCallback),

		Include: o.Include,
		Exclude: o.Exclude,
	}
}
