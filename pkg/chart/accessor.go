package chart

// Func computes a property of a chart from the datum bound to it. Every
// per-datum property is evaluated again on each render.
type Func[T any] func(datum any) T

// Const returns a Func that ignores the datum and always yields v.
func Const[T any](v T) Func[T] {
	return func(any) T { return v }
}
