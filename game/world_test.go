package game

import "testing"

// checkPoolInvariant verifies that every pooled ID resolves to a body in the
// flat collection and that every enemy/bullet in the flat collection is
// pooled — no orphans in either direction.
func checkPoolInvariant(t *testing.T, w *World) {
	t.Helper()

	inFlat := make(map[EntityID]*Body, len(w.Bodies))
	for _, body := range w.Bodies {
		inFlat[body.ID] = body
	}

	for _, id := range w.EnemyIDs {
		body, ok := inFlat[id]
		if !ok {
			t.Errorf("enemy %d pooled but missing from the flat collection", id)
			continue
		}
		if body.Kind != KindEnemy {
			t.Errorf("enemy pool holds a %s", body.Kind)
		}
	}
	for _, id := range w.BulletIDs {
		body, ok := inFlat[id]
		if !ok {
			t.Errorf("bullet %d pooled but missing from the flat collection", id)
			continue
		}
		if body.Kind != KindBullet {
			t.Errorf("bullet pool holds a %s", body.Kind)
		}
	}

	pooledEnemies := make(map[EntityID]bool)
	for _, id := range w.EnemyIDs {
		pooledEnemies[id] = true
	}
	pooledBullets := make(map[EntityID]bool)
	for _, id := range w.BulletIDs {
		pooledBullets[id] = true
	}
	for _, body := range w.Bodies {
		switch body.Kind {
		case KindEnemy:
			if !pooledEnemies[body.ID] {
				t.Errorf("enemy %d in flat collection but not pooled", body.ID)
			}
		case KindBullet:
			if !pooledBullets[body.ID] {
				t.Errorf("bullet %d in flat collection but not pooled", body.ID)
			}
		}
	}
}

func TestDualPoolInvariant(t *testing.T) {
	config := DefaultConfig()
	rng := testRNG()
	w := NewWorld(config)

	rocket := NewRocket(Vec2{}, config)
	w.Add(rocket)

	// Arbitrary interleaved spawn/despawn sequence.
	var enemies, bullets []EntityID
	for i := 0; i < 10; i++ {
		e := NewEnemy(Vec2{X: float64(i) * 100}, rocket.ID, config, rng)
		w.Add(e)
		enemies = append(enemies, e.ID)

		b := NewBullet(Vec2{Y: float64(i) * 50}, Vec2{}, rocket.ID, config)
		w.Add(b)
		bullets = append(bullets, b.ID)
	}
	checkPoolInvariant(t, w)

	w.Remove(enemies[3])
	w.Remove(bullets[7])
	w.Remove(enemies[0])
	checkPoolInvariant(t, w)

	if w.EnemyCount() != 8 {
		t.Errorf("EnemyCount = %d, want 8", w.EnemyCount())
	}
	if len(w.BulletIDs) != 9 {
		t.Errorf("bullet pool size = %d, want 9", len(w.BulletIDs))
	}

	for _, id := range append(enemies, bullets...) {
		w.Remove(id)
	}
	checkPoolInvariant(t, w)
	if w.EnemyCount() != 0 || len(w.BulletIDs) != 0 {
		t.Error("pools not empty after removing everything")
	}
	if len(w.Bodies) != 1 {
		t.Errorf("flat collection holds %d bodies, want just the rocket", len(w.Bodies))
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.Add(NewRocket(Vec2{}, DefaultConfig()))
	w.Remove(EntityID(99999999))
	if len(w.Bodies) != 1 {
		t.Error("removing an unknown ID mutated the world")
	}
}

func TestGetInvalidID(t *testing.T) {
	w := NewWorld(DefaultConfig())
	if w.Get(InvalidEntityID) != nil {
		t.Error("Get(InvalidEntityID) returned a body")
	}
}

func TestRemovedIDStopsResolving(t *testing.T) {
	config := DefaultConfig()
	w := NewWorld(config)
	enemy := NewEnemy(Vec2{}, InvalidEntityID, config, testRNG())
	w.Add(enemy)
	w.Remove(enemy.ID)
	if w.Get(enemy.ID) != nil {
		t.Error("removed body still resolves")
	}
}
