package style

// Kind classifies one argument of a write.
type Kind uint8

const (
	// KindText is a string or number. It is substituted before dispatch.
	KindText Kind = iota
	// KindScalar is a bool. It is plain content that substitution leaves alone.
	KindScalar
	// KindAbsent is a nil argument.
	KindAbsent
	// KindOpaque is any other value. It reaches the sink untouched.
	KindOpaque
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindScalar:
		return "scalar"
	case KindAbsent:
		return "absent"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Item is one element of a write: plain content or an opaque value.
type Item struct {
	kind  Kind
	text  string
	value any
}

// Text returns a text item.
func Text(s string) Item {
	return Item{kind: KindText, text: s}
}

// Opaque returns an item carrying v as-is.
func Opaque(v any) Item {
	return Item{kind: KindOpaque, value: v}
}

// Classify wraps a raw argument in an item of the matching kind.
func Classify(v any) Item {
	if v == nil {
		return Item{kind: KindAbsent}
	}
	if text, ok := textOf(v); ok {
		return Text(text)
	}
	if isScalar(v) {
		return Item{kind: KindScalar, value: v}
	}
	return Opaque(v)
}

// Items classifies every argument in order.
func Items(args []any) []Item {
	items := make([]Item, len(args))
	for i, arg := range args {
		items[i] = Classify(arg)
	}
	return items
}

// Kind returns the item's kind.
func (it Item) Kind() Kind { return it.kind }

// IsOpaque reports whether the item is handed to the sink unmodified.
func (it Item) IsOpaque() bool { return it.kind == KindOpaque }

// IsAbsent reports whether the item came from a nil argument.
func (it Item) IsAbsent() bool { return it.kind == KindAbsent }

// Value returns the argument to hand to a sink.
func (it Item) Value() any {
	switch it.kind {
	case KindText:
		return it.text
	case KindAbsent:
		return nil
	default:
		return it.value
	}
}

// Substitute applies ref to the item. Absent items become text; scalars
// and opaque values are returned unchanged.
func (it Item) Substitute(ref *Reference) Item {
	switch it.kind {
	case KindText:
		return Text(ref.Apply(it.text))
	case KindAbsent:
		return Text(ref.Apply(AbsentText))
	default:
		return it
	}
}

// Values unpacks items into sink arguments.
func Values(items []Item) []any {
	args := make([]any, len(items))
	for i, it := range items {
		args[i] = it.Value()
	}
	return args
}
