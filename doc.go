/*
Package depot provides the storage core of an Entity-Component-System (ECS).

Depot keeps one arena per component type, indexed by entity slot, and a
presence mask per entity. Entities are generational handles: freeing one
bumps its slot version so stale copies stop resolving. Arena access is
borrow-checked at runtime, which lets a view hand out mutable access to
several arenas and still be split across goroutines safely.

Core Concepts:

  - Entity: A generational handle (index, version) into the world.
  - Component: Any Go type registered with the world. A registered type
    gets a ComponentID and an arena of the chosen StorageKind.
  - Arena: Per-type storage keyed by entity index (Dense, Sparse, Column).
  - View: The entities holding a set of components, with borrowed arenas.
  - Cursor: A splittable walk over a view.

Basic Usage:

	w := depot.Factory.NewWorld()
	depot.Register[Position](w, depot.Dense)
	depot.Register[Velocity](w, depot.Sparse)

	e := w.Create()
	depot.Assign(w, e, Position{})
	depot.Assign(w, e, Velocity{X: 1})

	view, pos, vel := depot.ViewWith2[Position, Velocity](w)
	defer view.Release()

	err := depot.ForEachParallel(view.Cursor(), 0, func(c *depot.Cursor) error {
		for c.Next() {
			p, _ := pos.GetMut(c.Entity())
			v, _ := vel.Get(c.Entity())
			p.X += v.X
		}
		return nil
	})

Register, Create and Free change the world's shape and need exclusive
access. Changes decided during a parallel pass go through a CommandBuffer
and are applied once the view is released.
*/
package depot
