package force

// Seq fully forces a, discards its result, and hands back b. b itself is
// left unforced; the only guarantee is that a is completely forced before b
// is returned. Ordering inside a's own sub-forcing is unspecified.
func Seq[B any](a any, b B) B {
	Deep(a)

	return b
}

// Apply forces x fully, then applies f to it. The application result is not
// forced.
func Apply[A, B any](f func(A) B, x A) B {
	Deep(x)

	return f(x)
}

// Value forces x fully and returns it, for expressions that need both the
// forcing effect and the value. The value is returned as-is: no structural
// copy is made.
func Value[T any](x T) T {
	Deep(x)

	return x
}
