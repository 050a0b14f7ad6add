package game

// World owns every body in the flight simulation. Bodies live in one flat
// ordered collection used for pairwise gravity; the enemy and bullet pools
// are index sets over the same arena, so a single Remove keeps every view in
// sync and the dual-pool invariant holds by construction.
type World struct {
	Config Config

	Bodies []*Body
	byID   map[EntityID]*Body

	EnemyIDs  []EntityID
	BulletIDs []EntityID

	RocketID EntityID
	StarID   EntityID
}

// NewWorld creates an empty world with the given configuration.
func NewWorld(config Config) *World {
	return &World{
		Config: config,
		Bodies: make([]*Body, 0, 64),
		byID:   make(map[EntityID]*Body, 64),
	}
}

// Add registers a body in the flat collection and in its kind's pool.
func (w *World) Add(body *Body) {
	w.Bodies = append(w.Bodies, body)
	w.byID[body.ID] = body

	switch body.Kind {
	case KindEnemy:
		w.EnemyIDs = append(w.EnemyIDs, body.ID)
	case KindBullet:
		w.BulletIDs = append(w.BulletIDs, body.ID)
	case KindRocket:
		w.RocketID = body.ID
	case KindStar:
		w.StarID = body.ID
	}
}

// Remove deletes a body from the flat collection and from every pool in one
// operation. Removing an unknown ID is a no-op.
func (w *World) Remove(id EntityID) {
	body, ok := w.byID[id]
	if !ok {
		return
	}
	delete(w.byID, id)

	for i, b := range w.Bodies {
		if b == body {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			break
		}
	}

	switch body.Kind {
	case KindEnemy:
		w.EnemyIDs = removeID(w.EnemyIDs, id)
	case KindBullet:
		w.BulletIDs = removeID(w.BulletIDs, id)
	}
}

// Get resolves an EntityID, returning nil for absent or invalid IDs.
func (w *World) Get(id EntityID) *Body {
	if id == InvalidEntityID {
		return nil
	}
	return w.byID[id]
}

// Rocket returns the player's body, or nil before the session is populated.
func (w *World) Rocket() *Body {
	return w.Get(w.RocketID)
}

// EnemyCount returns the number of enemies currently alive.
func (w *World) EnemyCount() int {
	return len(w.EnemyIDs)
}

// Enemies returns a snapshot of the enemy pool. The snapshot is safe to
// iterate while removing from the live world.
func (w *World) Enemies() []*Body {
	return w.resolve(w.EnemyIDs)
}

// Bullets returns a snapshot of the bullet pool.
func (w *World) Bullets() []*Body {
	return w.resolve(w.BulletIDs)
}

func (w *World) resolve(ids []EntityID) []*Body {
	bodies := make([]*Body, 0, len(ids))
	for _, id := range ids {
		if b := w.byID[id]; b != nil {
			bodies = append(bodies, b)
		}
	}
	return bodies
}

func removeID(ids []EntityID, id EntityID) []EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
