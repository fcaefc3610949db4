package columnar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

func int32List(t *testing.T, values ...*int32) columnar.ListRef {
	t.Helper()
	return columnar.ListRefOf(columnar.FromOptions(columnar.Int32Type, nil, values))
}

func TestListBuilder(t *testing.T) {
	alloc := memory.NewAllocator(nil)

	builder := columnar.NewListBuilder(alloc, columnar.KindInt32)
	builder.Push(int32List(t, ptr[int32](1), ptr[int32](2)), true)
	builder.Push(columnar.ListRef{}, false)
	builder.Push(int32List(t), true)
	require.Equal(t, 3, builder.Len())

	arr := builder.Build()
	require.Equal(t, 3, arr.Len())
	require.Equal(t, []int32{0, 2, 2, 2}, arr.Offsets())
	require.Equal(t, 2, arr.Child().Len())

	var nulls []bool
	for i := range arr.Len() {
		nulls = append(nulls, arr.IsNull(i))
	}
	require.Equal(t, []bool{false, true, false}, nulls)

	first, ok := arr.Get(0)
	require.True(t, ok)
	require.Equal(t, "[1 2]", first.String())

	empty, ok := arr.Get(2)
	require.True(t, ok)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, "[]", empty.String())
}

func TestListBuilder_InfersChildKind(t *testing.T) {
	builder := columnar.NewListBuilder(nil, columnar.KindInvalid)
	builder.AppendNull()
	builder.AppendValue(columnar.ListRefOf(columnar.FromValues(columnar.UTF8Type, nil, []string{"a", "b"}, nil)))
	require.Equal(t, columnar.KindUTF8, builder.ChildKind())

	err := columnar.WrapListBuilder(builder).Push(columnar.NewListRef(int32List(t, ptr[int32](1))), true)
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)

	arr := builder.Build()
	require.Equal(t, 2, arr.Len())
	require.Equal(t, columnar.KindUTF8, arr.Child().Kind())
}

func TestListBuilder_EmptyHasChildOfDeclaredKind(t *testing.T) {
	arr := columnar.NewListBuilder(nil, columnar.KindFloat64).Build()
	require.Equal(t, 0, arr.Len())
	require.Equal(t, columnar.KindFloat64, arr.Child().Kind())
	require.Equal(t, []int32{0}, arr.Offsets())
}

func TestListBuilder_AppendOptional(t *testing.T) {
	builder := columnar.NewListBuilder(nil, columnar.KindInvalid)

	err := builder.AppendOptional([]columnar.ScalarRefImpl{
		{},
		columnar.NewInt64Ref(5),
	}, []bool{false, true})
	require.NoError(t, err)
	require.Equal(t, columnar.KindInt64, builder.ChildKind())

	err = builder.AppendOptional([]columnar.ScalarRefImpl{columnar.NewBoolRef(true)}, nil)
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)
	require.Equal(t, 1, builder.Len())

	require.ErrorIs(t, columnar.NewListBuilder(nil, columnar.KindInvalid).AppendOptional(
		[]columnar.ScalarRefImpl{{}}, []bool{false},
	), columnar.ErrUnknownChildKind)

	arr := builder.Build()
	require.Equal(t, "[null 5]", arr.Value(0).String())
}

func TestListRef_Slice(t *testing.T) {
	ref := int32List(t, ptr[int32](1), nil, ptr[int32](3), ptr[int32](4))

	sliced := ref.Slice(1, 3)
	require.Equal(t, 2, sliced.Len())
	require.Equal(t, "[null 3]", sliced.String())

	v, ok := sliced.Get(1)
	require.True(t, ok)
	got, err := v.AsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(3), got)

	require.Panics(t, func() { ref.Slice(3, 5) })
	require.Panics(t, func() { sliced.Get(2) })
}

func TestListRef_ToOwned(t *testing.T) {
	builder := columnar.NewListBuilder(nil, columnar.KindInt32)
	builder.AppendValue(int32List(t, ptr[int32](1), ptr[int32](2)))
	builder.AppendValue(int32List(t, ptr[int32](3), nil, ptr[int32](5)))
	arr := builder.Build()

	ref := arr.Value(1)
	owned := ref.ToOwned()
	require.Equal(t, 3, owned.Len())
	require.True(t, owned.AsRef().Equal(ref))

	// The owned list holds its own copy of the range.
	require.Equal(t, 3, owned.Array().Len())
	require.Equal(t, 5, arr.Child().Len())
	require.Equal(t, "[3 null 5]", owned.AsRef().String())
}

func TestList_Nested(t *testing.T) {
	inner := columnar.NewListBuilder(nil, columnar.KindInt32)
	inner.AppendValue(int32List(t, ptr[int32](1)))
	inner.AppendNull()

	outer := columnar.NewListBuilder(nil, columnar.KindInvalid)
	outer.AppendValue(columnar.ListRefOf(inner.Finish()))
	arr := outer.Build()

	require.Equal(t, columnar.KindList, arr.Child().Kind())
	require.Equal(t, "[[1] null]", arr.Value(0).String())

	rebuilt, err := columnar.Rebuild(columnar.ListType, nil, columnar.WrapList(arr))
	require.NoError(t, err)
	require.True(t, columnar.Equal(columnar.WrapList(arr), rebuilt))
}

func TestListBuilder_RejectedNestedListLeavesBuilderIntact(t *testing.T) {
	int16Lists := columnar.NewListBuilder(nil, columnar.KindInt16)
	int16Lists.AppendValue(columnar.ListRefOf(columnar.FromValues(columnar.Int16Type, nil, []int16{1}, nil)))
	ones := columnar.ListRefOf(int16Lists.Finish())

	int32Lists := columnar.NewListBuilder(nil, columnar.KindInt32)
	int32Lists.AppendValue(int32List(t))
	int32Lists.AppendValue(int32List(t, ptr[int32](7)))
	mixed := columnar.ListRefOf(int32Lists.Finish())

	builder := columnar.NewListBuilder(nil, columnar.KindInvalid)
	wrapped := columnar.WrapListBuilder(builder)
	require.NoError(t, wrapped.Push(columnar.NewListRef(ones), true))

	err := wrapped.Push(columnar.NewListRef(mixed), true)
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)
	require.Equal(t, 1, builder.Len())

	require.NoError(t, wrapped.Push(columnar.NewListRef(ones), true))

	arr := builder.Build()
	require.Equal(t, []int32{0, 1, 2}, arr.Offsets())
	require.Equal(t, 2, arr.Child().Len())
	require.Equal(t, "[[1]]", arr.Value(0).String())
	require.Equal(t, "[[1]]", arr.Value(1).String())
}

func TestListBuilder_ResetForgetsInferredChildKind(t *testing.T) {
	builder := columnar.NewListBuilder(nil, columnar.KindInvalid)
	builder.AppendValue(int32List(t, ptr[int32](1)))
	require.Equal(t, columnar.KindInt32, builder.Build().Child().Kind())
	require.Equal(t, columnar.KindInvalid, builder.ChildKind())

	builder.AppendValue(columnar.ListRefOf(columnar.FromValues(columnar.UTF8Type, nil, []string{"a"}, nil)))
	require.Equal(t, columnar.KindUTF8, builder.Build().Child().Kind())

	declared := columnar.NewListBuilder(nil, columnar.KindInt32)
	declared.AppendValue(int32List(t, ptr[int32](1)))
	declared.Build()
	require.Equal(t, columnar.KindInt32, declared.ChildKind())
}

func TestNewList_InvalidOffsets(t *testing.T) {
	child := columnar.FromValues(columnar.Int16Type, nil, []int16{1, 2}, nil)

	require.Panics(t, func() { columnar.NewList(child, []int32{0, 2, 1}, memory.Bitmap{}) })
	require.Panics(t, func() { columnar.NewList(child, []int32{0, 3}, memory.Bitmap{}) })

	arr := columnar.NewList(child, []int32{0, 1, 2}, memory.Bitmap{})
	require.Equal(t, 2, arr.Len())
	require.Equal(t, 0, arr.Nulls())
}
