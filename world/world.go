package world

import (
	"log"
	"shapeanim/batch"
)

// World is an ordered collection of entities. Update and Draw both walk the
// collection in insertion order, so later entities paint over earlier ones.
type World struct {
	entities []*Entity
	byID     map[string]*Entity
}

func NewWorld() *World {
	return &World{
		byID: make(map[string]*Entity),
	}
}

// AddEntity appends e to the collection.
func (w *World) AddEntity(e *Entity) {
	if _, ok := w.byID[e.ID]; ok {
		log.Fatalf("%s already exists", e.ID)
	}
	w.byID[e.ID] = e
	w.entities = append(w.entities, e)
}

// Update advances every entity by one tick.
func (w *World) Update() {
	for _, entity := range w.entities {
		entity.Advance()
	}
}

// Draw renders every entity onto dst in insertion order.
func (w *World) Draw(dst batch.Canvas) {
	for _, entity := range w.entities {
		entity.Draw(dst)
	}
}

func (w *World) Entity(ID string) *Entity {
	return w.byID[ID]
}

func (w *World) Len() int {
	return len(w.entities)
}

// Entities returns the collection in insertion order.
func (w *World) Entities() []*Entity {
	return w.entities
}

func (w *World) ForEachEntity(callback func(*Entity)) {
	for _, entity := range w.entities {
		callback(entity)
	}
}
