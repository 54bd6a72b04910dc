package game

// registry owns the mutable set of live troops for one match. Troops are
// keyed by id, with an insertion-order index so that every scan (movement,
// targeting, snapshots) walks the troops in a fixed, deterministic order.
type registry struct {
	troops map[string]*Troop
	order  []string
}

func newRegistry() *registry {
	return &registry{
		troops: make(map[string]*Troop),
	}
}

// add inserts a troop at the end of the scan order
func (r *registry) add(t *Troop) {
	r.troops[t.ID] = t
	r.order = append(r.order, t.ID)
}

// remove deletes a troop by id
func (r *registry) remove(id string) {
	if _, ok := r.troops[id]; !ok {
		return
	}
	delete(r.troops, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// get returns the troop with the given id, or nil
func (r *registry) get(id string) *Troop {
	return r.troops[id]
}

// all returns the live troops in insertion order
func (r *registry) all() []*Troop {
	troops := make([]*Troop, 0, len(r.order))
	for _, id := range r.order {
		troops = append(troops, r.troops[id])
	}
	return troops
}

// count returns the number of live troops
func (r *registry) count() int {
	return len(r.troops)
}
