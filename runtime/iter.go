package runtime

// FieldIter is a finite, forward-only cursor over the readable field values
// of a record. Every call to a generated PyIter or PyReversed slot returns
// a fresh, independent cursor; exhausting one never affects another.
type FieldIter struct {
	values []any
	idx    int
}

// NewFieldIter returns a cursor over the given values in order.
func NewFieldIter(values ...any) *FieldIter {
	return &FieldIter{values: values}
}

// NewReversedIter returns a cursor over the given values in reverse order.
// Callers pass values in declaration order; the cursor walks them backward.
func NewReversedIter(values ...any) *FieldIter {
	rev := make([]any, len(values))
	for i, v := range values {
		rev[len(values)-1-i] = v
	}
	return &FieldIter{values: rev}
}

// Next returns the next value. ok is false once the cursor is exhausted.
func (it *FieldIter) Next() (v any, ok bool) {
	if it.idx >= len(it.values) {
		return nil, false
	}
	v = it.values[it.idx]
	it.idx++
	return v, true
}

// Remaining reports how many values are left to yield.
func (it *FieldIter) Remaining() int {
	return len(it.values) - it.idx
}

// Collect drains the cursor and returns the remaining values.
func (it *FieldIter) Collect() []any {
	out := make([]any, 0, it.Remaining())
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
