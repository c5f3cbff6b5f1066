package specification

// Specification defines the interface for query specifications
type Specification[T any] interface {
	IsSatisfiedBy(item *T) bool
}

// SatisfiesAll reports whether item passes every spec. No specs means true.
func SatisfiesAll[T any](item *T, specs ...Specification[T]) bool {
	for _, s := range specs {
		if !s.IsSatisfiedBy(item) {
			return false
		}
	}
	return true
}
