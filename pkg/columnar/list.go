package columnar

import (
	"fmt"
	"iter"
	"strings"

	"github.com/grafana/colexpr/pkg/memory"
)

// List is an array whose elements are variable-length sequences of values of
// a single child kind. Elements are stored as offsets into one shared child
// array: element i spans child[offsets[i]:offsets[i+1]].
type List struct {
	offsets  []int32
	child    ArrayImpl
	validity memory.Bitmap
	nulls    int
}

var _ TypedArray[ListRef] = (*List)(nil)

// NewList creates a new List array from a child array, offsets and optional
// validity bitmap. offsets must have one more element than the array has
// elements, must be non-decreasing and must not exceed the child length.
func NewList(child ArrayImpl, offsets []int32, validity memory.Bitmap) *List {
	if len(offsets) == 0 {
		offsets = []int32{0}
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			panic(fmt.Sprintf("list offsets must be non-decreasing: offsets[%d]=%d < offsets[%d]=%d", i, offsets[i], i-1, offsets[i-1]))
		}
	}
	if int(offsets[len(offsets)-1]) > child.Len() {
		panic("list offsets exceed child length")
	}
	if validity.Len() > 0 && validity.Len() != len(offsets)-1 {
		panic("validity bitmap length mismatch")
	}
	return &List{
		offsets:  offsets,
		child:    child,
		validity: validity,
		nulls:    validity.Len() - validity.SetCount(),
	}
}

// Len implements [Array]. Len returns the number of lists in arr, not the
// number of child values.
func (arr *List) Len() int { return len(arr.offsets) - 1 }

// Nulls implements [Array].
func (arr *List) Nulls() int { return arr.nulls }

// IsNull implements [Array].
func (arr *List) IsNull(i int) bool {
	checkIndex(i, arr.Len())
	return isNull(arr.validity, i)
}

// Validity implements [Array].
func (arr *List) Validity() memory.Bitmap { return arr.validity }

// Kind implements [Array].
func (arr *List) Kind() Kind { return KindList }

// Get implements [TypedArray].
func (arr *List) Get(i int) (ListRef, bool) {
	checkIndex(i, arr.Len())
	return arr.Value(i), !isNull(arr.validity, i)
}

// Value implements [TypedArray]. The range of a null element is empty.
func (arr *List) Value(i int) ListRef {
	return ListRef{
		array: arr.child,
		start: int(arr.offsets[i]),
		end:   int(arr.offsets[i+1]),
	}
}

// All implements [TypedArray].
func (arr *List) All() iter.Seq2[ListRef, bool] { return iterate(arr.Len(), arr.Get) }

// Offsets returns the offsets of arr.
func (arr *List) Offsets() []int32 { return arr.offsets }

// Child returns the child array holding the values of every list.
func (arr *List) Child() ArrayImpl { return arr.child }

// ListRef is a read-only view of the range [start, end) of a child array.
// The zero value is an empty list.
type ListRef struct {
	array      ArrayImpl
	start, end int
}

// ListRefOf returns a view covering all of arr.
func ListRefOf(arr ArrayImpl) ListRef {
	return ListRef{array: arr, start: 0, end: arr.Len()}
}

// Len returns the number of values in the list.
func (ref ListRef) Len() int { return ref.end - ref.start }

// ChildKind returns the kind of the values in the list.
func (ref ListRef) ChildKind() Kind { return ref.array.Kind() }

// Get returns the value at index i of the list. Get panics if i is out of
// range.
func (ref ListRef) Get(i int) (ScalarRefImpl, bool) {
	checkIndex(i, ref.Len())
	return ref.array.Get(ref.start + i)
}

// All returns an iterator over the values of the list.
func (ref ListRef) All() iter.Seq2[ScalarRefImpl, bool] { return iterate(ref.Len(), ref.Get) }

// Slice returns a view of the values in [from, to) of the list.
func (ref ListRef) Slice(from, to int) ListRef {
	if from < 0 || to > ref.Len() || from > to {
		panic(fmt.Sprintf("slice [%d, %d) out of range [0, %d)", from, to, ref.Len()))
	}
	return ListRef{array: ref.array, start: ref.start + from, end: ref.start + to}
}

// ToOwned copies the values of the list into a new [ListValue].
func (ref ListRef) ToOwned() ListValue {
	if ref.array.Kind() == KindInvalid {
		return ListValue{}
	}

	builder := ref.array.NewBuilder(nil, ref.Len())
	for v, ok := range ref.All() {
		// Values come from an array of the builder's own kind, so Push
		// cannot fail.
		_ = builder.Push(v, ok)
	}
	return ListValue{array: builder.Finish()}
}

// Equal reports whether ref and other hold the same kind and values.
func (ref ListRef) Equal(other ListRef) bool {
	if ref.Len() != other.Len() {
		return false
	}
	if ref.Len() > 0 && ref.ChildKind() != other.ChildKind() {
		return false
	}
	for i := range ref.Len() {
		a, aok := ref.Get(i)
		b, bok := other.Get(i)
		if aok != bok || (aok && !a.Equal(b)) {
			return false
		}
	}
	return true
}

// String renders the list as "[1 2 null]".
func (ref ListRef) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range ref.Len() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v, ok := ref.Get(i)
		if !ok {
			sb.WriteString("null")
			continue
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ListValue is an owned list: a standalone array of values.
type ListValue struct {
	array ArrayImpl
}

// NewListValue returns a ListValue holding arr.
func NewListValue(arr ArrayImpl) ListValue { return ListValue{array: arr} }

// Len returns the number of values in the list.
func (v ListValue) Len() int { return v.array.Len() }

// Array returns the values of the list.
func (v ListValue) Array() ArrayImpl { return v.array }

// AsRef returns a view over the whole list.
func (v ListValue) AsRef() ListRef { return ListRefOf(v.array) }

// ListBuilder builds [List] arrays.
type ListBuilder struct {
	alloc     *memory.Allocator
	declared  Kind
	childKind Kind
	child     BuilderImpl
	hasChild  bool
	offsets   memory.Buffer[int32]
	validity  validityBuilder
}

var _ Builder[ListRef] = (*ListBuilder)(nil)

// NewListBuilder returns a builder of List arrays whose values are of kind
// child. If child is [KindInvalid], the child kind is taken from the first
// appended non-empty list; a list array built without ever learning its
// child kind has a zero [ArrayImpl] as child. An inferred child kind is
// forgotten once the builder is reset by [ListBuilder.Build].
func NewListBuilder(alloc *memory.Allocator, child Kind) *ListBuilder {
	b := &ListBuilder{
		alloc:    alloc,
		declared: child,
		validity: validityBuilder{alloc: alloc},
	}
	b.reset()
	return b
}

func (b *ListBuilder) reset() {
	b.offsets = memory.MakeBuffer[int32](b.alloc, 1)
	b.offsets.Append(0)
	b.childKind = b.declared
	b.hasChild = false
	b.child = BuilderImpl{}
}

// ChildKind returns the kind of the values of the lists being built.
func (b *ListBuilder) ChildKind() Kind { return b.childKind }

// AppendValue implements [Builder]. The values viewed by value are copied
// into the child builder. AppendValue panics with a [*TypeMismatchError] if
// value holds values of a different kind than the builder; use
// [BuilderImpl.Push] to get an error instead.
func (b *ListBuilder) AppendValue(value ListRef) {
	if err := b.appendRef(value); err != nil {
		panic(err)
	}
}

func (b *ListBuilder) appendRef(value ListRef) error {
	if value.Len() > 0 {
		// Nested lists are checked in full before anything is pushed so
		// that a rejected value leaves the child builder untouched.
		if err := b.shape().accept(value); err != nil {
			return err
		}
		if err := b.ensureChild(value.array); err != nil {
			return err
		}
		for v, ok := range value.All() {
			if err := b.child.Push(v, ok); err != nil {
				return err
			}
		}
	}

	b.offsets.Append(offsetOf(int(b.offsets.Get(b.offsets.Len()-1)) + value.Len()))
	b.validity.appendValid()
	return nil
}

func (b *ListBuilder) ensureChild(like ArrayImpl) error {
	if b.childKind == KindInvalid {
		b.childKind = like.Kind()
	}
	if like.Kind() != b.childKind {
		return &TypeMismatchError{Want: b.childKind, Got: like.Kind()}
	}
	if !b.hasChild {
		b.child = like.NewBuilder(b.alloc, 0)
		b.hasChild = true
	}
	return nil
}

// listShape is the child kind accepted by a list builder and, when the
// child is itself a list, the shape of the child builder.
type listShape struct {
	kind  Kind
	child *listShape
}

func (b *ListBuilder) shape() *listShape {
	s := &listShape{kind: b.childKind}
	if b.hasChild {
		if child, err := b.child.AsListBuilder(); err == nil {
			s.child = child.shape()
		}
	}
	return s
}

// accept records the kinds found in ref into s. It returns a
// [*TypeMismatchError] if ref, or any list nested in it, holds values of a
// kind other than the one already recorded at that depth.
func (s *listShape) accept(ref ListRef) error {
	if ref.Len() == 0 {
		return nil
	}

	kind := ref.ChildKind()
	if s.kind == KindInvalid {
		s.kind = kind
	}
	if kind != s.kind {
		return &TypeMismatchError{Want: s.kind, Got: kind}
	}
	if kind != KindList {
		return nil
	}

	if s.child == nil {
		// A new child builder takes the child kind of the first list array
		// appended to it.
		list, _ := ref.array.AsList()
		s.child = &listShape{kind: list.Child().Kind()}
	}
	for v, ok := range ref.All() {
		if !ok {
			continue
		}
		inner, _ := v.AsList()
		if err := s.child.accept(inner); err != nil {
			return err
		}
	}
	return nil
}

// AppendOptional appends a single list holding values. values[i] is null
// when valid[i] is false; valid may be nil if every value is valid.
// AppendOptional returns a [*TypeMismatchError] if any value is not of the
// child kind of b, in which case b is left unchanged, and
// [ErrUnknownChildKind] if the child kind is unknown and every value is null.
func (b *ListBuilder) AppendOptional(values []ScalarRefImpl, valid []bool) error {
	if valid != nil && len(valid) != len(values) {
		panic("columnar: values and validity have different lengths")
	}

	kind := b.childKind
	if kind == KindInvalid {
		for i, v := range values {
			if valid == nil || valid[i] {
				kind = v.Kind()
				break
			}
		}
	}
	if kind == KindInvalid {
		if len(values) > 0 {
			return ErrUnknownChildKind
		}
		return b.appendRef(ListRef{})
	}

	items := NewBuilderImpl(b.alloc, kind)
	for i, v := range values {
		if err := items.Push(v, valid == nil || valid[i]); err != nil {
			return err
		}
	}
	return b.appendRef(ListRefOf(items.Finish()))
}

// AppendNull implements [Builder]. A null list occupies an empty range of
// the child array.
func (b *ListBuilder) AppendNull() { b.AppendNulls(1) }

// AppendNulls implements [Builder].
func (b *ListBuilder) AppendNulls(count int) {
	if count <= 0 {
		return
	}
	end := b.offsets.Get(b.offsets.Len() - 1)
	for range count {
		b.offsets.Append(end)
	}
	b.validity.appendNulls(count)
}

// Push implements [Builder].
func (b *ListBuilder) Push(value ListRef, valid bool) {
	if valid {
		b.AppendValue(value)
	} else {
		b.AppendNull()
	}
}

// Len implements [Builder].
func (b *ListBuilder) Len() int { return b.offsets.Len() - 1 }

// Grow implements [Builder].
func (b *ListBuilder) Grow(n int) {
	b.offsets.Grow(n)
	b.validity.grow(n)
}

// Build returns the built array and resets b.
func (b *ListBuilder) Build() *List {
	var child ArrayImpl
	switch {
	case b.hasChild:
		child = b.child.Finish()
	case b.childKind != KindInvalid:
		child = NewBuilderImpl(b.alloc, b.childKind).Finish()
	}

	validity, nulls := b.validity.finish()
	arr := &List{
		offsets:  b.offsets.Take(),
		child:    child,
		validity: validity,
		nulls:    nulls,
	}
	b.reset()
	return arr
}

// Finish implements [Builder].
func (b *ListBuilder) Finish() ArrayImpl { return WrapList(b.Build()) }
