package depot

// EntityBuilder assembles an entity fluently:
//
//	e := depot.With(depot.With(w.NewEntity(), Position{}), Velocity{X: 1}).Build()
//
// The entity is created when the builder is, so an abandoned builder still
// leaves a live entity behind.
type EntityBuilder struct {
	world  *World
	entity Entity
	built  bool
}

// NewEntity creates an entity and returns a builder for its components.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.Create(),
	}
}

func (b *EntityBuilder) checkOpen() {
	if b.built {
		panic(BuilderSealedError{Entity: b.entity})
	}
}

// With assigns v to the entity being built.
func With[T any](b *EntityBuilder, v T) *EntityBuilder {
	b.checkOpen()
	Assign(b.world, b.entity, v)
	return b
}

// WithDefault assigns the zero T to the entity being built.
func WithDefault[T any](b *EntityBuilder) *EntityBuilder {
	b.checkOpen()
	AssignDefault[T](b.world, b.entity)
	return b
}

// Entity returns the entity under construction.
func (b *EntityBuilder) Entity() Entity {
	return b.entity
}

// Build seals the builder and returns the entity.
func (b *EntityBuilder) Build() Entity {
	b.checkOpen()
	b.built = true
	return b.entity
}
