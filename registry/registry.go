// Package registry owns every live entity of a session. Entities are never
// removed while a tick is running: callers mark them dead and PurgeDead
// drops them once all passes are done.
package registry

import (
	"sort"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/automoto/bunnyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	kindTags = map[cfg.EntityKind]*donburi.ComponentType[donburi.Tag]{
		cfg.KindPlayer:   tags.Player,
		cfg.KindPlatform: tags.Platform,
		cfg.KindMob:      tags.Mob,
		cfg.KindPowerup:  tags.Powerup,
	}
	resolvTags = map[cfg.EntityKind]string{
		cfg.KindPlayer:   tags.ResolvPlayer,
		cfg.KindPlatform: tags.ResolvPlatform,
		cfg.KindMob:      tags.ResolvMob,
		cfg.KindPowerup:  tags.ResolvPowerup,
	}
	kindQueries = map[cfg.EntityKind]*donburi.Query{}
	allQuery    = donburi.NewQuery(filter.Contains(components.Entity))
)

func init() {
	for kind, tag := range kindTags {
		kindQueries[kind] = donburi.NewQuery(filter.Contains(tag, components.Entity))
	}
}

// Setup installs the registry singleton. The broadphase space covers the
// world plus margin on every side so entities just off screen still register.
func Setup(w donburi.World, width, height int) *components.RegistryData {
	margin := cfg.Collision.Margin
	space := resolv.NewSpace(
		width+2*int(margin),
		height+2*int(margin),
		cfg.Collision.CellSize,
		cfg.Collision.CellSize,
	)

	entry, ok := components.Registry.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Registry))
	}
	components.Registry.SetValue(entry, components.RegistryData{
		Space:  space,
		Margin: margin,
	})
	return components.Registry.Get(entry)
}

// Get returns the registry singleton, installing a world-sized one if missing.
func Get(w donburi.World) *components.RegistryData {
	if entry, ok := components.Registry.First(w); ok {
		return components.Registry.Get(entry)
	}
	return Setup(w, cfg.World.Width, cfg.World.Height)
}

// Add registers an entity spawned with the Entity, Bounds and Object components.
func Add(w donburi.World, entry *donburi.Entry, kind cfg.EntityKind, layer int, bounds gamemath.Rect) {
	reg := Get(w)
	reg.NextSeq++

	components.Entity.SetValue(entry, components.EntityData{
		Kind:  kind,
		Layer: layer,
		Seq:   reg.NextSeq,
		Alive: true,
	})
	components.Bounds.SetValue(entry, bounds)

	obj := resolv.NewObject(bounds.X+reg.Margin, bounds.Y+reg.Margin, bounds.W, bounds.H, resolvTags[kind])
	obj.SetShape(resolv.NewRectangle(0, 0, bounds.W, bounds.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	reg.Space.Add(obj)
}

// EachOfKind calls fn for every live entity of kind in insertion order.
// fn may mark entities dead or add new ones; neither affects this pass.
func EachOfKind(w donburi.World, kind cfg.EntityKind, fn func(*donburi.Entry)) {
	for _, entry := range live(w, kindQueries[kind]) {
		if components.Entity.Get(entry).Alive {
			fn(entry)
		}
	}
}

// All returns every live entity in insertion order.
func All(w donburi.World) []*donburi.Entry {
	return live(w, allQuery)
}

func live(w donburi.World, q *donburi.Query) []*donburi.Entry {
	var entries []*donburi.Entry
	q.Each(w, func(entry *donburi.Entry) {
		if components.Entity.Get(entry).Alive {
			entries = append(entries, entry)
		}
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Entity.Get(entries[i]).Seq < components.Entity.Get(entries[j]).Seq
	})
	return entries
}

// Count returns the number of live entities of kind.
func Count(w donburi.World, kind cfg.EntityKind) int {
	n := 0
	kindQueries[kind].Each(w, func(entry *donburi.Entry) {
		if components.Entity.Get(entry).Alive {
			n++
		}
	})
	return n
}

// IsLive reports whether entity is registered, of kind, and not marked dead.
func IsLive(w donburi.World, entity donburi.Entity, kind cfg.EntityKind) bool {
	if !w.Valid(entity) {
		return false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.Entity) {
		return false
	}
	data := components.Entity.Get(entry)
	return data.Alive && data.Kind == kind
}

// MarkDead flags an entity for removal at the next purge and takes it out of
// the broadphase so later passes in the same tick no longer see it.
func MarkDead(entry *donburi.Entry) {
	data := components.Entity.Get(entry)
	if !data.Alive {
		return
	}
	data.Alive = false
	if obj := components.Object.Get(entry).Object; obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
}

// PurgeDead removes every entity marked dead and returns how many were removed.
// A second call with no marks in between removes nothing.
func PurgeDead(w donburi.World) int {
	var dead []*donburi.Entry
	allQuery.Each(w, func(entry *donburi.Entry) {
		if !components.Entity.Get(entry).Alive {
			dead = append(dead, entry)
		}
	})
	for _, entry := range dead {
		entry.Remove()
	}
	return len(dead)
}

// SetBounds replaces an entity's rect and keeps the broadphase in step.
func SetBounds(w donburi.World, entry *donburi.Entry, r gamemath.Rect) {
	components.Bounds.SetValue(entry, r)

	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}
	margin := Get(w).Margin
	resized := obj.W != r.W || obj.H != r.H
	obj.X = r.X + margin
	obj.Y = r.Y + margin
	obj.W = r.W
	obj.H = r.H
	if resized {
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	}
	if obj.Space != nil {
		obj.Update()
	}
}

// Move translates an entity's rect.
func Move(w donburi.World, entry *donburi.Entry, dx, dy float64) {
	SetBounds(w, entry, components.Bounds.Get(entry).Translate(dx, dy))
}

// Overlapping returns the live entities of kind whose rects overlap entry's
// rect shifted by (dx, dy), in insertion order. The broadphase narrows the
// candidates; the exact rect test decides.
func Overlapping(w donburi.World, entry *donburi.Entry, kind cfg.EntityKind, dx, dy float64) []*donburi.Entry {
	obj := components.Object.Get(entry).Object
	if obj == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(dx, dy, resolvTags[kind])
	if check == nil {
		return nil
	}

	probe := components.Bounds.Get(entry).Translate(dx, dy)
	var hits []*donburi.Entry
	seen := map[donburi.Entity]bool{}
	for _, o := range check.ObjectsByTags(resolvTags[kind]) {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other.Entity() == entry.Entity() || !other.Valid() || seen[other.Entity()] {
			continue
		}
		seen[other.Entity()] = true
		if !components.Entity.Get(other).Alive {
			continue
		}
		if probe.Overlaps(*components.Bounds.Get(other)) {
			hits = append(hits, other)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return components.Entity.Get(hits[i]).Seq < components.Entity.Get(hits[j]).Seq
	})
	return hits
}
