package domain

import (
	"math/rand"
)

type FoodSpawner interface {
	Spawn(field Field) Coord
}

type SpawnerFunc func(field Field) Coord

func (f SpawnerFunc) Spawn(field Field) Coord {
	return f(field)
}

// RandomSpawner draws column and row independently and uniformly. It does
// not avoid cells the snake occupies.
type RandomSpawner struct {
	rng *rand.Rand
}

func NewRandomSpawner(seed int64) *RandomSpawner {
	return &RandomSpawner{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomSpawner) Spawn(field Field) Coord {
	cols, rows := field.Cols(), field.Rows()
	if cols <= 0 || rows <= 0 {
		return Coord{}
	}
	return field.Origin(r.rng.Intn(cols), r.rng.Intn(rows))
}
