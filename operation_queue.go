package depot

import "reflect"

type operationType int

const (
	opCreate operationType = iota
	opFree
	opAssign
	opRemove
)

type operation struct {
	typ    operationType
	entity Entity
	build  func(*EntityBuilder)
	apply  func(*World, Entity)
}

type opKey struct {
	entity Entity
	typ    reflect.Type
}

// CommandBuffer records structural changes while views are outstanding and
// replays them later with Apply. Creates run first, then component changes,
// then frees. A buffer is not safe for concurrent use; give each worker its
// own.
type CommandBuffer struct {
	createOps    []operation
	componentOps []operation
	freeOps      []operation
	pendingFree  map[Entity]struct{}
	pendingMods  map[opKey]int
}

func newCommandBuffer() *CommandBuffer {
	return &CommandBuffer{
		pendingFree: make(map[Entity]struct{}),
		pendingMods: make(map[opKey]int),
	}
}

// Create queues a new entity. build, when non-nil, runs on its builder at
// Apply time.
func (b *CommandBuffer) Create(build func(*EntityBuilder)) {
	b.createOps = append(b.createOps, operation{typ: opCreate, build: build})
}

// Free queues e for release. Queuing the same entity twice frees it once.
func (b *CommandBuffer) Free(e Entity) {
	if _, ok := b.pendingFree[e]; ok {
		return
	}
	b.pendingFree[e] = struct{}{}
	b.freeOps = append(b.freeOps, operation{typ: opFree, entity: e})
}

// enqueueComponentOp keeps at most one pending change per entity and
// component type; a later change replaces an earlier one.
func (b *CommandBuffer) enqueueComponentOp(op operation, t reflect.Type) {
	if _, ok := b.pendingFree[op.entity]; ok {
		return
	}
	key := opKey{entity: op.entity, typ: t}
	if i, ok := b.pendingMods[key]; ok {
		b.componentOps[i] = op
		return
	}
	b.pendingMods[key] = len(b.componentOps)
	b.componentOps = append(b.componentOps, op)
}

// EnqueueAssign queues Assign(w, e, v).
func EnqueueAssign[T any](b *CommandBuffer, e Entity, v T) {
	b.enqueueComponentOp(operation{
		typ:    opAssign,
		entity: e,
		apply: func(w *World, e Entity) {
			Assign(w, e, v)
		},
	}, typeOf[T]())
}

// EnqueueRemove queues Remove[T](w, e). The removed value is discarded
// without being dropped.
func EnqueueRemove[T any](b *CommandBuffer, e Entity) {
	b.enqueueComponentOp(operation{
		typ:    opRemove,
		entity: e,
		apply: func(w *World, e Entity) {
			Remove[T](w, e)
		},
	}, typeOf[T]())
}

// Len returns the number of queued operations.
func (b *CommandBuffer) Len() int {
	return len(b.createOps) + len(b.componentOps) + len(b.freeOps)
}

// Apply replays the buffer against w and empties it. It returns the
// entities it created, in queue order. Component changes aimed at entities
// that are dead or queued for release are skipped.
func (b *CommandBuffer) Apply(w *World) []Entity {
	if b.Len() == 0 {
		return nil
	}
	created := make([]Entity, 0, len(b.createOps))
	for _, op := range b.createOps {
		eb := w.NewEntity()
		if op.build != nil {
			op.build(eb)
		}
		created = append(created, eb.entity)
	}

	skipped := 0
	for _, op := range b.componentOps {
		if _, ok := b.pendingFree[op.entity]; ok || !w.IsAlive(op.entity) {
			skipped++
			continue
		}
		op.apply(w, op.entity)
	}

	freed := 0
	for _, op := range b.freeOps {
		if w.Free(op.entity) {
			freed++
		}
	}

	w.logger.Debug("applied command buffer",
		"created", len(created),
		"components", len(b.componentOps)-skipped,
		"skipped", skipped,
		"freed", freed,
	)
	b.Reset()
	return created
}

// Reset discards every queued operation.
func (b *CommandBuffer) Reset() {
	clear(b.createOps)
	clear(b.componentOps)
	clear(b.freeOps)
	b.createOps = b.createOps[:0]
	b.componentOps = b.componentOps[:0]
	b.freeOps = b.freeOps[:0]
	clear(b.pendingFree)
	clear(b.pendingMods)
}
