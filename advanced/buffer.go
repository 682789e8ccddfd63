package advanced

import "github.com/pkg/errors"

// BufferProxy is a bounds-checked view over caller-owned data, letting the
// triangulators read vertex positions and face indices without caring how the
// backing storage is laid out. Element i of a strided view lives at
// data[i*stride]; a field view reaches into an array of structs.
//
// A proxy never allocates, copies or frees the data it refers to, and must not
// outlive it. The zero value is an invalid, empty buffer.
type BufferProxy[T any] struct {
	ref    func(i int) *T
	count  int
	stride int
}

// View all of data, one element per slot. A nil slice gives the invalid
// buffer; an empty one gives a valid, empty buffer.
func NewBufferProxy[T any](data []T) BufferProxy[T] {
	if data == nil {
		return BufferProxy[T]{}
	}
	return BufferProxy[T]{
		ref:    func(i int) *T { return &data[i] },
		count:  len(data),
		stride: 1,
	}
}

// View count elements of data, each stride slots apart. A nil slice gives the
// invalid buffer.
func NewStridedBufferProxy[T any](data []T, count, stride int) (BufferProxy[T], error) {
	if data == nil {
		return BufferProxy[T]{}, nil
	}
	if stride < 1 {
		return BufferProxy[T]{}, errors.Wrapf(ErrOutOfRange, "stride %d", stride)
	}
	if count < 0 || (count > 0 && (count-1)*stride >= len(data)) {
		return BufferProxy[T]{}, errors.Wrapf(ErrOutOfRange, "%d elements with stride %d over %d slots", count, stride, len(data))
	}
	return BufferProxy[T]{
		ref:    func(i int) *T { return &data[i*stride] },
		count:  count,
		stride: stride,
	}, nil
}

// View one field of every element of an array of structs, e.g. the position
// inside a mesh vertex record.
func NewFieldBufferProxy[S, T any](data []S, field func(*S) *T) BufferProxy[T] {
	if data == nil || field == nil {
		return BufferProxy[T]{}
	}
	return BufferProxy[T]{
		ref:    func(i int) *T { return field(&data[i]) },
		count:  len(data),
		stride: 1,
	}
}

func (b BufferProxy[T]) IsValid() bool {
	return b.ref != nil
}

func (b BufferProxy[T]) IsEmpty() bool {
	return b.count == 0
}

func (b BufferProxy[T]) Count() int {
	return b.count
}

// Distance between consecutive elements, in slots of the backing slice.
func (b BufferProxy[T]) Stride() int {
	return b.stride
}

func (b BufferProxy[T]) check(i int) error {
	if !b.IsValid() {
		return ErrInvalidBuffer
	}
	if i < 0 || i >= b.count {
		return errors.Wrapf(ErrOutOfRange, "index %d of %d", i, b.count)
	}
	return nil
}

// Pointer to element i, for callers that write through the view.
func (b BufferProxy[T]) Ref(i int) (*T, error) {
	if err := b.check(i); err != nil {
		return nil, err
	}
	return b.ref(i), nil
}

func (b BufferProxy[T]) At(i int) (T, error) {
	p, err := b.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (b BufferProxy[T]) Set(i int, v T) error {
	p, err := b.Ref(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Like At, but an invalid buffer or out of range index is a programming error
// and panics.
func (b BufferProxy[T]) MustAt(i int) T {
	v, err := b.At(i)
	if err != nil {
		fatal(err)
	}
	return v
}
