package genopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	r := (&Options{}).Resolve()

	assert.Equal(t, int32(0), r.MaxSize)
	assert.Equal(t, int32(0), r.MaxCount)
	assert.True(t, r.LongNames)
	assert.True(t, r.SortByTag)
	assert.False(t, r.PackedStruct)
	assert.False(t, r.Proto3)
	assert.Equal(t, IntSizeDefault, r.IntSize)
	assert.Equal(t, FieldTypeDefault, r.Type)
	assert.Equal(t, FieldTypeCallback, r.FallbackType)
	assert.Equal(t, MangleNone, r.MangleNames)
	assert.Equal(t, DescriptorSizeAuto, r.DescriptorSize)
	assert.Equal(t, DefaultCallbackDatatype, r.CallbackDatatype)
	assert.Equal(t, DefaultCallbackFunction, r.CallbackFunction)
	assert.Empty(t, r.Package)
	assert.Equal(t, DescriptorType(0), r.TypeOverride)
}

func TestResolveExplicitWins(t *testing.T) {
	o := &Options{
		LongNames:        Some(false),
		SortByTag:        Some(false),
		FallbackType:     Some(FieldTypeStatic),
		CallbackDatatype: Some("my_cb_t"),
		MaxSize:          Some(int32(128)),
	}
	r := o.Resolve()
	assert.False(t, r.LongNames)
	assert.False(t, r.SortByTag)
	assert.Equal(t, FieldTypeStatic, r.FallbackType)
	assert.Equal(t, "my_cb_t", r.CallbackDatatype)
	assert.Equal(t, int32(128), r.MaxSize)
}

func TestResolveDoesNotMutate(t *testing.T) {
	o := &Options{}
	_ = o.Resolve()
	// presence is still reportable after resolution
	assert.False(t, o.LongNames.IsSet())
	assert.False(t, o.CallbackDatatype.IsSet())
	require.Equal(t, &Options{}, o)
}

func TestResolveKeepsConflictingBounds(t *testing.T) {
	// max_size and max_length both set: no arbitration here, the
	// generator sees both.
	o := &Options{
		MaxSize:     Some(int32(32)),
		MaxLength:   Some(int32(31)),
		FixedLength: Some(true),
		FixedCount:  Some(true),
	}
	r := o.Resolve()
	assert.Equal(t, int32(32), r.MaxSize)
	assert.Equal(t, int32(31), r.MaxLength)
	assert.True(t, r.FixedLength)
	assert.True(t, r.FixedCount)
}

func TestResolveSharesLists(t *testing.T) {
	o := &Options{Include: []string{"a.h"}}
	r := o.Resolve()
	require.Equal(t, o.Include, r.Include)
}
