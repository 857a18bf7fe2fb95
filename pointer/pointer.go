package pointer

func FromAny[T any](v T) *T {
	return &v
}

func ToString(p *string) string {
	return ToValueOrDefault(p, "")
}

// ToValueOrDefault dereferences p, falling back to def for nil.
func ToValueOrDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}
