package sim

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

const frame = 16 * time.Millisecond

// cueRecorder records every cue it is asked to play.
type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(c core.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c core.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestSim(t *testing.T) (*Sim, *cueRecorder) {
	t.Helper()
	rec := &cueRecorder{}
	return New(config.DefaultQuickMathsConfig(), core.NewRandom(42), rec), rec
}

// activeEnemy builds a stationary enemy that can collide immediately.
func activeEnemy(x, y float64, number int, text string) Enemy {
	return Enemy{
		Pos:    core.V(x, y),
		Radius: 3,
		Number: number,
		Text:   text,
	}
}

func near(a, b core.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestTouchNonHazardDestroysEnemy(t *testing.T) {
	s, rec := newTestSim(t)
	s.Player.Pos = core.V(50, 50)
	s.AddEnemy(activeEnemy(50, 50, 14, "14"))
	before := s.Killed

	s.Update(core.NewInputFrame(), time.Millisecond)

	if len(s.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, expected 0", len(s.Enemies))
	}
	if s.Killed != before+1 {
		t.Errorf("Killed = %d, expected %d", s.Killed, before+1)
	}
	if len(s.DeadEnemies) != 1 {
		t.Fatalf("len(DeadEnemies) = %d, expected 1", len(s.DeadEnemies))
	}
	if d := s.DeadEnemies[0]; !near(d.Pos, core.V(50, 50), 0.1) || d.Text != "14" {
		t.Errorf("DeadEnemy = %+v, expected near (50, 50) with text 14", d)
	}
	if s.Player.Dead {
		t.Error("touching a non-hazard should not kill the player")
	}
	if rec.count(core.CueHit) != 1 {
		t.Errorf("hit cues = %d, expected 1", rec.count(core.CueHit))
	}
}

func TestTouchHazardKillsPlayer(t *testing.T) {
	s, _ := newTestSim(t)
	s.AddEnemy(activeEnemy(s.Player.Pos.X, s.Player.Pos.Y, 13, "9+4"))

	s.Update(core.NewInputFrame(), frame)

	if !s.Player.Dead {
		t.Fatal("Player.Dead = false, expected true")
	}
	if s.Player.DeathReason != "you touched 9+4!" {
		t.Errorf("DeathReason = %q, expected %q", s.Player.DeathReason, "you touched 9+4!")
	}
	if len(s.Enemies) != 1 {
		t.Errorf("hazard should stay in play, len(Enemies) = %d", len(s.Enemies))
	}
}

func TestShootHazard(t *testing.T) {
	s, rec := newTestSim(t)
	s.AddEnemy(activeEnemy(20, 20, 13, "13"))
	s.AddEnemy(activeEnemy(80, 20, 14, "14"))
	s.Bullets.Spawn(core.V(20, 20), -math.Pi/2)

	s.Update(core.NewInputFrame(), frame)

	if len(s.Enemies) != 1 || s.Enemies[0].Number != 14 {
		t.Fatalf("Enemies = %+v, expected only the 14 left", s.Enemies)
	}
	if s.Killed != 1 {
		t.Errorf("Killed = %d, expected 1", s.Killed)
	}
	dead := 0
	for _, b := range s.Bullets.Projectiles {
		if b.Dead {
			dead++
		}
	}
	if dead != 1 {
		t.Errorf("dead bullets = %d, expected 1", dead)
	}
	if s.Player.Dead {
		t.Error("shooting the hazard should not kill the player")
	}
	if rec.count(core.CueHit) != 1 {
		t.Errorf("hit cues = %d, expected 1", rec.count(core.CueHit))
	}

	// The dead bullet is dropped by the next prune.
	s.Update(core.NewInputFrame(), frame)
	if len(s.Bullets.Projectiles) != 0 {
		t.Errorf("len(Projectiles) = %d, expected 0 after prune", len(s.Bullets.Projectiles))
	}
}

func TestShootNonHazardKillsPlayer(t *testing.T) {
	s, _ := newTestSim(t)
	s.AddEnemy(activeEnemy(20, 20, 14, "7+7"))
	s.Bullets.Spawn(core.V(20, 20), 0)

	s.Update(core.NewInputFrame(), frame)

	if !s.Player.Dead {
		t.Fatal("Player.Dead = false, expected true")
	}
	if s.Player.DeathReason != "you shot 7+7!" {
		t.Errorf("DeathReason = %q, expected %q", s.Player.DeathReason, "you shot 7+7!")
	}
	if len(s.Enemies) != 1 {
		t.Errorf("len(Enemies) = %d, expected the shot enemy to remain", len(s.Enemies))
	}
	if s.Killed != 0 {
		t.Errorf("Killed = %d, expected 0", s.Killed)
	}
	if s.Bullets.Projectiles[0].Dead {
		t.Error("bullet should stay live after hitting a non-hazard")
	}
}

func TestOneHitPerBulletNewestFirst(t *testing.T) {
	s, _ := newTestSim(t)
	s.AddEnemy(activeEnemy(21, 20, 13, "older"))
	s.AddEnemy(activeEnemy(21, 20, 13, "newer"))
	s.Bullets.Spawn(core.V(20, 20), 0)

	s.bulletsHitEnemies()

	if len(s.Enemies) != 1 || s.Enemies[0].Text != "older" {
		t.Errorf("Enemies = %+v, expected only the older enemy to survive", s.Enemies)
	}
	if s.Killed != 1 {
		t.Errorf("Killed = %d, expected 1", s.Killed)
	}
}

func TestTouchReasonOverwritesShotReason(t *testing.T) {
	s, _ := newTestSim(t)
	s.AddEnemy(activeEnemy(20, 20, 14, "14"))
	s.AddEnemy(activeEnemy(s.Player.Pos.X, s.Player.Pos.Y, 13, "13"))
	s.Bullets.Spawn(core.V(20, 20), 0)

	s.Update(core.NewInputFrame(), frame)

	if s.Player.DeathReason != "you touched 13!" {
		t.Errorf("DeathReason = %q, expected the touch to win", s.Player.DeathReason)
	}
}

func TestTouchProcessesAllOverlaps(t *testing.T) {
	s, rec := newTestSim(t)
	p := s.Player.Pos
	s.AddEnemy(activeEnemy(p.X-1, p.Y, 11, "11"))
	s.AddEnemy(activeEnemy(p.X+1, p.Y, 13, "13"))
	s.AddEnemy(activeEnemy(p.X, p.Y+1, 12, "12"))

	s.playerTouchesEnemies()

	if s.Killed != 2 {
		t.Errorf("Killed = %d, expected 2", s.Killed)
	}
	if !s.Player.Dead {
		t.Error("hazard in the same frame should kill the player")
	}
	if len(s.Enemies) != 1 || s.Enemies[0].Number != 13 {
		t.Errorf("Enemies = %+v, expected only the hazard left", s.Enemies)
	}
	if rec.count(core.CueHit) != 3 {
		t.Errorf("hit cues = %d, expected 3", rec.count(core.CueHit))
	}
}

func TestPendingEnemyIsInert(t *testing.T) {
	s, _ := newTestSim(t)
	e := NumberEnemy(s.Config(), core.NewRandom(3))
	e.Pos = s.Player.Pos
	e.Number, e.Text = 13, "13"
	s.AddEnemy(e)
	s.Bullets.Spawn(s.Player.Pos, 0)

	for i := 0; i < 10; i++ {
		s.Update(core.NewInputFrame(), frame)
	}

	if s.Enemies[0].Pos != e.Pos {
		t.Errorf("pending enemy moved from %v to %v", e.Pos, s.Enemies[0].Pos)
	}
	if s.Player.Dead {
		t.Error("pending hazard should not collide")
	}
	if want := e.TimeToSpawn - 10*frame; s.Enemies[0].TimeToSpawn != want {
		t.Errorf("TimeToSpawn = %v, expected %v", s.Enemies[0].TimeToSpawn, want)
	}
}

func TestSeparationMovesFirstEnemyOnly(t *testing.T) {
	s, _ := newTestSim(t)
	s.AddEnemy(activeEnemy(50, 30, 14, "14"))
	s.AddEnemy(activeEnemy(53, 30, 15, "15"))

	s.Update(core.NewInputFrame(), 0)

	if !near(s.Enemies[0].Pos, core.V(47, 30), 1e-9) {
		t.Errorf("first enemy at %v, expected (47, 30)", s.Enemies[0].Pos)
	}
	if s.Enemies[1].Pos != core.V(53, 30) {
		t.Errorf("second enemy at %v, expected it to stay at (53, 30)", s.Enemies[1].Pos)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		delta   core.Vec2
	}{
		{"left", []core.Action{core.ActionLeft}, core.V(-15, 0)},
		{"right", []core.Action{core.ActionRight}, core.V(15, 0)},
		{"up", []core.Action{core.ActionUp}, core.V(0, -15)},
		{"down", []core.Action{core.ActionDown}, core.V(0, 15)},
		{"diagonal is not normalised", []core.Action{core.ActionUp, core.ActionRight}, core.V(15, -15)},
		{"opposites cancel", []core.Action{core.ActionLeft, core.ActionRight}, core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t)
			start := s.Player.Pos
			in := core.NewInputFrame()
			for _, a := range tc.actions {
				in.Set(a)
			}

			s.Update(in, 500*time.Millisecond)

			if !near(s.Player.Pos, start.Add(tc.delta), 1e-9) {
				t.Errorf("Player.Pos = %v, expected %v", s.Player.Pos, start.Add(tc.delta))
			}
			moved := tc.delta != core.V(0, 0)
			if moved && s.Player.Angle == 0 {
				t.Error("moving player should tilt")
			}
			if !moved && s.Player.Angle != 0 {
				t.Errorf("stationary player Angle = %v, expected 0", s.Player.Angle)
			}
		})
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	s, _ := newTestSim(t)
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)

	s.Update(in, 10*time.Second)

	if s.Player.Pos != core.V(2, 2) {
		t.Errorf("Player.Pos = %v, expected (2, 2)", s.Player.Pos)
	}
}

func TestShootSpawnsBulletWithRecoil(t *testing.T) {
	s, rec := newTestSim(t)
	start := s.Player.Pos
	in := core.NewInputFrame()
	in.Click(start.Add(core.V(10, 0)))

	s.Update(in, 0)

	if len(s.Bullets.Projectiles) != 1 {
		t.Fatalf("len(Projectiles) = %d, expected 1", len(s.Bullets.Projectiles))
	}
	b := s.Bullets.Projectiles[0]
	if b.Pos != start || !near(b.Dir, core.V(1, 0), 1e-9) {
		t.Errorf("bullet = %+v, expected at %v heading right", b, start)
	}
	if !near(s.Player.Pos, start.Sub(core.V(0.5, 0)), 1e-9) {
		t.Errorf("Player.Pos = %v, expected recoil to %v", s.Player.Pos, start.Sub(core.V(0.5, 0)))
	}
	if rec.count(core.CueShoot) != 1 {
		t.Errorf("shoot cues = %d, expected 1", rec.count(core.CueShoot))
	}
}

func TestDeadPlayerFreezesAndReloads(t *testing.T) {
	s, _ := newTestSim(t)
	s.Player.Kill("you touched 13!")
	start := s.Player.Pos

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Click(core.V(0, 0))
	s.Update(in, 500*time.Millisecond)
	s.Update(in, 500*time.Millisecond)

	if s.Player.Pos != start {
		t.Errorf("dead player moved to %v", s.Player.Pos)
	}
	if len(s.Bullets.Projectiles) != 0 {
		t.Error("dead player should not shoot")
	}
	if s.ReloadDue() {
		t.Error("ReloadDue() = true at exactly the reload delay, expected false")
	}

	s.Update(in, time.Millisecond)
	if !s.ReloadDue() {
		t.Error("ReloadDue() = false past the reload delay, expected true")
	}
}

func TestDeadEnemiesDecay(t *testing.T) {
	s, _ := newTestSim(t)
	s.Player.Pos = core.V(50, 50)
	s.AddEnemy(activeEnemy(50, 50, 14, "14"))

	s.Update(core.NewInputFrame(), 100*time.Millisecond)
	if len(s.DeadEnemies) != 1 {
		t.Fatalf("len(DeadEnemies) = %d, expected 1", len(s.DeadEnemies))
	}
	if a := s.DeadEnemies[0].Alpha(); math.Abs(a-0.8) > 1e-9 {
		t.Errorf("Alpha() = %v, expected 0.8", a)
	}

	s.Update(core.NewInputFrame(), 400*time.Millisecond)
	if len(s.DeadEnemies) != 0 {
		t.Errorf("len(DeadEnemies) = %d, expected 0 once life is spent", len(s.DeadEnemies))
	}
}

func TestSimDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := New(config.DefaultQuickMathsConfig(), core.NewRandom(12345), nil)
		for i := 0; i < 600; i++ {
			if i%60 == 0 {
				s.SpawnRandom()
			}
			in := core.NewInputFrame()
			if i%7 < 3 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionUp)
			}
			if i%45 == 0 {
				in.Click(core.V(float64(i%100), 10))
			}
			s.Update(in, frame)
		}
		return s.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Clock != 600*frame {
		t.Errorf("Clock = %v, expected %v", snap1.Clock, 600*frame)
	}
}
