package depot

// releaser is anything a view must hand back when it is done.
type releaser interface {
	Release()
}

// View selects the live entities whose mask holds every included component
// and none of the excluded ones. It owns the write guards it was built with;
// Release hands them back. Cursors taken from a view must not outlive it.
type View struct {
	world   *World
	include Bitmask
	exclude Bitmask
	filter  QueryNode
	guards  []releaser
}

func newView(w *World) *View {
	return &View{world: w}
}

// acquireWriter borrows T exclusively for v and adds T to its query.
func acquireWriter[T any](v *View) *Writer[T] {
	g := WriteArena[T](v.world)
	v.include.Set(lookup[T](v.world).cid)
	v.guards = append(v.guards, g)
	return g
}

// abortOnPanic must be deferred while guards are being acquired: a failed
// acquisition releases the ones already taken before the panic continues.
func (v *View) abortOnPanic() {
	if r := recover(); r != nil {
		v.Release()
		panic(r)
	}
}

// Where narrows the view to entities that also hold ids, without borrowing
// their arenas.
func (v *View) Where(ids ...ComponentID) *View {
	for _, id := range ids {
		v.include.Set(id)
	}
	return v
}

// Without drops entities holding any of ids from the view.
func (v *View) Without(ids ...ComponentID) *View {
	for _, id := range ids {
		v.exclude.Set(id)
	}
	return v
}

// Filter adds an arbitrary predicate, built with And, Or and Not, on top
// of the include and exclude masks.
func (v *View) Filter(q QueryNode) *View {
	v.filter = q
	return v
}

// Include returns the query mask.
func (v *View) Include() Bitmask {
	return v.include
}

// Exclude returns the exclusion mask.
func (v *View) Exclude() Bitmask {
	return v.exclude
}

// Cursor starts a walk over the matching entities in ascending index order.
func (v *View) Cursor() *Cursor {
	return newCursor(v.world, v.include, v.exclude, v.filter, v.world.handles.Iter())
}

// Len counts the matching entities.
func (v *View) Len() int {
	return v.Cursor().Remaining()
}

// Release hands back every guard the view holds.
func (v *View) Release() {
	for _, g := range v.guards {
		g.Release()
	}
	v.guards = nil
}
