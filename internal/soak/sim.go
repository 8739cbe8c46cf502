// Package soak drives a depot world through a spawn/move/expire cycle and
// reports what happened each round.
package soak

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/TheBitDrifter/depot"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

// Lifetime counts down once per round. Its entity is freed at zero.
type Lifetime struct {
	TTL     int
	dropped *atomic.Int64
}

func (l *Lifetime) Drop() {
	if l.dropped != nil {
		l.dropped.Add(1)
	}
}

// RoundStats is what one round did.
type RoundStats struct {
	Round   int
	Spawned int
	Moved   int
	Expired int
	Live    int
}

// Summary totals a run.
type Summary struct {
	Created int
	Freed   int
	Dropped int
	Retired int
	Live    int
	Rounds  []RoundStats
}

type simulation struct {
	load    *Workload
	world   *depot.World
	seq     int
	dropped atomic.Int64
	logger  *slog.Logger
}

// Run executes the workload, writing one report line per round and a final
// total line to out.
func Run(ctx context.Context, load *Workload, out io.Writer, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &simulation{
		load:   load,
		world:  depot.Factory.NewWorld(depot.WithCapacity(load.Entities), depot.WithLogger(logger)),
		logger: logger,
	}
	depot.Register[Position](s.world, load.kind("position"))
	depot.Register[Velocity](s.world, load.kind("velocity"))
	depot.Register[Lifetime](s.world, load.kind("lifetime"))

	sum := &Summary{}
	for r := 1; r <= load.Rounds; r++ {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("soak interrupted before round %d: %w", r, err)
		}
		stats, err := s.round(r)
		if err != nil {
			return sum, fmt.Errorf("round %d: %w", r, err)
		}
		sum.Rounds = append(sum.Rounds, stats)
		sum.Created += stats.Spawned
		sum.Freed += stats.Expired
		fmt.Fprintf(out, "round=%d spawned=%d moved=%d expired=%d live=%d\n",
			stats.Round, stats.Spawned, stats.Moved, stats.Expired, stats.Live)
		logger.Debug("round complete", "round", r, "live", stats.Live)
	}
	sum.Dropped = int(s.dropped.Load())
	sum.Retired = s.world.Retired()
	sum.Live = s.world.Len()
	fmt.Fprintf(out, "total created=%d freed=%d dropped=%d retired=%d live=%d\n",
		sum.Created, sum.Freed, sum.Dropped, sum.Retired, sum.Live)
	return sum, nil
}

func (s *simulation) round(r int) (RoundStats, error) {
	stats := RoundStats{Round: r}
	stats.Spawned = s.spawn()

	moved, err := s.move()
	if err != nil {
		return stats, err
	}
	stats.Moved = moved

	expired, err := s.age()
	if err != nil {
		return stats, err
	}
	stats.Expired = expired
	stats.Live = s.world.Len()
	return stats, nil
}

// spawn tops the population up to the workload's target.
func (s *simulation) spawn() int {
	n := 0
	for s.world.Len() < s.load.Entities {
		seq := s.seq
		s.seq++
		b := depot.With(s.world.NewEntity(), Position{})
		depot.With(b, Lifetime{TTL: 1 + seq%s.load.MaxTTL, dropped: &s.dropped})
		if seq%s.load.VelocityEvery == 0 {
			depot.With(b, Velocity{X: 1})
		}
		b.Build()
		n++
	}
	return n
}

// move integrates velocity into position.
func (s *simulation) move() (int, error) {
	view, pos, vel := depot.ViewWith2[Position, Velocity](s.world)
	defer view.Release()

	var moved atomic.Int64
	err := depot.ForEachParallel(view.Cursor(), s.load.Workers, func(c *depot.Cursor) error {
		for c.Next() {
			e := c.Entity()
			p, ok := pos.GetMut(e)
			if !ok {
				return fmt.Errorf("entity %v lost its position", e)
			}
			v, _ := vel.Get(e)
			p.X += v.X
			p.Y += v.Y
			moved.Add(1)
		}
		return nil
	})
	return int(moved.Load()), err
}

// age counts lifetimes down and frees the entities that reach zero once
// the view is released.
func (s *simulation) age() (int, error) {
	view, life := depot.ViewWith[Lifetime](s.world)

	var (
		mu      sync.Mutex
		buffers []*depot.CommandBuffer
	)
	err := depot.ForEachParallel(view.Cursor(), s.load.Workers, func(c *depot.Cursor) error {
		buf := depot.Factory.NewCommandBuffer()
		for c.Next() {
			l, _ := life.GetMut(c.Entity())
			l.TTL--
			if l.TTL <= 0 {
				buf.Free(c.Entity())
			}
		}
		mu.Lock()
		buffers = append(buffers, buf)
		mu.Unlock()
		return nil
	})
	view.Release()
	if err != nil {
		return 0, err
	}

	before := s.world.Len()
	for _, buf := range buffers {
		buf.Apply(s.world)
	}
	return before - s.world.Len(), nil
}
