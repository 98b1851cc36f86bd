package genopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumKnown(t *testing.T) {
	assert.True(t, FieldTypeDefault.Known())
	assert.True(t, FieldTypeInline.Known())
	assert.False(t, FieldType(6).Known())
	assert.False(t, FieldType(-1).Known())

	assert.True(t, IntSize64.Known())
	assert.False(t, IntSize(24).Known())

	assert.True(t, ManglePackageInitials.Known())
	assert.False(t, TypenameMangling(4).Known())

	assert.True(t, DescriptorSize8.Known())
	assert.False(t, DescriptorSize(3).Known())

	assert.True(t, TypeDouble.Known())
	assert.True(t, TypeSint64.Known())
	assert.False(t, DescriptorType(0).Known())
	assert.False(t, DescriptorType(19).Known())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "callback", FieldTypeCallback.String())
	assert.Equal(t, "fieldtype(42)", FieldType(42).String())
	assert.Equal(t, "int16", IntSize16.String())
	assert.Equal(t, "default", IntSizeDefault.String())
	assert.Equal(t, "strip_package", MangleStripPackage.String())
	assert.Equal(t, "auto", DescriptorSizeAuto.String())
	assert.Equal(t, "4", DescriptorSize4.String())
	assert.Equal(t, "sint32", TypeSint32.String())
}

func TestScope(t *testing.T) {
	assert.Equal(t, "file", ScopeFile.String())
	assert.Equal(t, "message", ScopeMessage.String())
	assert.Equal(t, "field", ScopeField.String())

	s, err := ParseScope("message")
	require.NoError(t, err)
	assert.Equal(t, ScopeMessage, s)

	_, err = ParseScope("oneof")
	require.Error(t, err)
}

func TestOpt(t *testing.T) {
	var o Opt[int32]
	assert.False(t, o.IsSet())
	assert.Equal(t, int32(0), o.Value())
	assert.Equal(t, int32(7), o.Or(7))

	o = Some(int32(3))
	assert.True(t, o.IsSet())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, int32(3), v)
	assert.Equal(t, int32(3), o.Or(7))
}
