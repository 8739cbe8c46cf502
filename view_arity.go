package depot

// ViewWith borrows A exclusively and views every entity holding an A.
func ViewWith[A any](w *World) (*View, *Writer[A]) {
	v := newView(w)
	defer v.abortOnPanic()
	a := acquireWriter[A](v)
	return v, a
}

// ViewWith2 borrows A and B exclusively and views every entity holding both.
func ViewWith2[A, B any](w *World) (*View, *Writer[A], *Writer[B]) {
	v := newView(w)
	defer v.abortOnPanic()
	a := acquireWriter[A](v)
	b := acquireWriter[B](v)
	return v, a, b
}

func ViewWith3[A, B, C any](w *World) (*View, *Writer[A], *Writer[B], *Writer[C]) {
	v := newView(w)
	defer v.abortOnPanic()
	a := acquireWriter[A](v)
	b := acquireWriter[B](v)
	c := acquireWriter[C](v)
	return v, a, b, c
}

func ViewWith4[A, B, C, D any](w *World) (*View, *Writer[A], *Writer[B], *Writer[C], *Writer[D]) {
	v := newView(w)
	defer v.abortOnPanic()
	a := acquireWriter[A](v)
	b := acquireWriter[B](v)
	c := acquireWriter[C](v)
	d := acquireWriter[D](v)
	return v, a, b, c, d
}
