package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"
)

// Snapshot contains the simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Clock       time.Duration
	Killed      int
	PlayerX     float64
	PlayerY     float64
	PlayerDead  bool
	DeathReason string

	// Each enemy is 4 floats: X, Y, DirX, DirY
	EnemyData   []float64
	EnemyLabels []string

	BulletCount   int
	ParticleCount int
	DeadCount     int
}

// Snapshot returns the current simulation state as a Snapshot.
func (s *Sim) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(s.Enemies)*4)
	labels := make([]string, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		enemyData = append(enemyData, e.Pos.X, e.Pos.Y, e.Dir.X, e.Dir.Y)
		labels = append(labels, e.Text)
	}

	return Snapshot{
		Clock:         s.clock,
		Killed:        s.Killed,
		PlayerX:       s.Player.Pos.X,
		PlayerY:       s.Player.Pos.Y,
		PlayerDead:    s.Player.Dead,
		DeathReason:   s.Player.DeathReason,
		EnemyData:     enemyData,
		EnemyLabels:   labels,
		BulletCount:   len(s.Bullets.Projectiles),
		ParticleCount: len(s.Bullets.Particles),
		DeadCount:     len(s.DeadEnemies),
	}
}

// Hash returns an FNV-1a hash of the snapshot for quick comparison.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	writeF := func(f float64) { writeU(math.Float64bits(f)) }

	writeU(uint64(snap.Clock))
	writeU(uint64(snap.Killed))
	writeF(snap.PlayerX)
	writeF(snap.PlayerY)
	if snap.PlayerDead {
		writeU(1)
	} else {
		writeU(0)
	}
	_, _ = h.Write([]byte(snap.DeathReason))
	for _, f := range snap.EnemyData {
		writeF(f)
	}
	for _, l := range snap.EnemyLabels {
		_, _ = h.Write([]byte(l))
	}
	writeU(uint64(snap.BulletCount))
	writeU(uint64(snap.ParticleCount))
	writeU(uint64(snap.DeadCount))

	return h.Sum64()
}
