package genopts

// Field numbers of the options message. This table is the single
// source of truth for decode dispatch: a record whose tag is absent
// here goes to the unknown-fields list untouched. Numbers are fixed by
// the published schema and have historical gaps.
const (
	tagMaxSize            = 1  // optional int32
	tagMaxCount           = 2  // optional int32
	tagType               = 3  // optional FieldType
	tagLongNames          = 4  // optional bool, default true
	tagPackedStruct       = 5  // optional bool
	tagSkipMessage        = 6  // optional bool
	tagIntSize            = 7  // optional IntSize
	tagNoUnions           = 8  // optional bool
	tagMsgID              = 9  // optional uint32
	tagPackedEnum         = 10 // optional bool
	tagAnonymousOneof     = 11 // optional bool
	tagProto3             = 12 // optional bool
	tagEnumToString       = 13 // optional bool
	tagMaxLength          = 14 // optional int32
	tagFixedLength        = 15 // optional bool
	tagFixedCount         = 16 // optional bool
	tagMangleNames        = 17 // optional TypenameMangling
	tagCallbackDatatype   = 18 // optional string, default DefaultCallbackDatatype
	tagCallbackFunction   = 19 // optional string, default DefaultCallbackFunction
	tagDescriptorSize     = 20 // optional DescriptorSize
	tagProto3SingularMsgs = 21 // optional bool
	tagSubmsgCallback     = 22 // optional bool
	tagDefaultHas         = 23 // optional bool
	tagInclude            = 24 // repeated string
	tagPackage            = 25 // optional string
	tagExclude            = 26 // repeated string
	tagTypeOverride       = 27 // optional DescriptorType
	tagSortByTag          = 28 // optional bool, default true
	tagFallbackType       = 29 // optional FieldType, default callback
)

// Documented defaults that are not the zero value of their type. They
// belong to the field site, not to the enum or string type, and are
// substituted only by Resolve, never during decode.
const (
	DefaultCallbackDatatype = "pb_callback_t"
	DefaultCallbackFunction = "pb_default_field_callback"
)
