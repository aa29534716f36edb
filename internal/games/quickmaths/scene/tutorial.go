package scene

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/sim"
)

// Tutorial step indices.
const (
	StepMove = iota
	StepTouch
	StepShoot
)

// scriptedSpots are the fixed positions of the tutorial's enemies.
var scriptedSpots = []core.Vec2{
	core.V(25, 90),
	core.V(25, 60),
	core.V(75, 90),
	core.V(75, 60),
}

type tutorialStep struct {
	help    string
	numbers []int // enemies spawned once the help text is revealed
}

var tutorialSteps = []tutorialStep{
	StepMove:  {help: "WASD or arrow keys to move"},
	StepTouch: {help: "touch non-13 numbers", numbers: []int{11, 12, 14, 15}},
	StepShoot: {help: "shoot 13s by clicking", numbers: []int{13, 13, 13, 13}},
}

// Tutorial teaches movement, touching and shooting in three scripted
// steps, then wipes out into the level.
type Tutorial struct {
	Sim    *sim.Sim
	FadeIn Transition
	Exit   Transition

	Step           int
	StepProgress   float64
	VisualProgress float64
	DistanceMoved  float64

	HelpText   string
	CharsShown int
	Finished   bool

	env        Env
	timeAtStep time.Duration
	spawned    bool
	finishedAt time.Duration // time since Finished latched
}

// NewTutorial creates the tutorial scene at its first step.
func NewTutorial(env Env) *Tutorial {
	t := &Tutorial{
		Sim:    sim.New(env.Config, env.Rand, env.Cues),
		FadeIn: NewTransition(env.Config.Scenes.TransitionDuration, WipeIn),
		Exit:   NewTransition(env.Config.Scenes.TransitionDuration, WipeOut),
		env:    env,
	}
	t.startStep(StepMove)
	return t
}

// Kind implements Scene.
func (t *Tutorial) Kind() Kind { return KindTutorial }

// Simulation implements Simulated.
func (t *Tutorial) Simulation() *sim.Sim { return t.Sim }

// VisibleHelp returns the revealed prefix of the help text.
func (t *Tutorial) VisibleHelp() string {
	n := 0
	for i := range t.HelpText {
		if n == t.CharsShown {
			return t.HelpText[:i]
		}
		n++
	}
	return t.HelpText
}

// HelpRevealed reports whether the whole help text is visible.
func (t *Tutorial) HelpRevealed() bool {
	return t.CharsShown == utf8.RuneCountInString(t.HelpText)
}

// Exiting reports whether the closing wipe has started.
func (t *Tutorial) Exiting() bool {
	return t.Finished && t.finishedAt >= t.env.Config.Scenes.TutorialExitDelay
}

// Update implements Scene.
func (t *Tutorial) Update(sw Switcher, in core.InputFrame, dt time.Duration) {
	t.FadeIn.Update(dt)
	t.updateHelpText(dt)

	prev := t.Sim.Player.Pos
	t.Sim.Update(in, dt)
	t.DistanceMoved += prev.Dist(t.Sim.Player.Pos)

	if !t.Finished {
		switch t.Step {
		case StepMove:
			t.updateMove()
		default:
			t.updateClear()
		}
	}
	t.animateProgress(dt)

	if t.Sim.ReloadDue() {
		sw.ReloadScene()
		return
	}

	if t.Finished {
		if t.Exiting() {
			t.Exit.Update(dt)
			if t.Exit.Done() {
				sw.ChangeScene(KindLevel)
			}
		}
		t.finishedAt += dt
	}
}

func (t *Tutorial) startStep(step int) {
	t.Step = step
	t.StepProgress = 0
	t.HelpText = tutorialSteps[step].help
	t.CharsShown = 0
	t.timeAtStep = -t.env.Config.Scenes.RevealDelay
	t.spawned = false
}

func (t *Tutorial) advance() {
	t.env.Cues.Play(core.CueDing)
	if t.Step+1 >= len(tutorialSteps) {
		t.Finished = true
		return
	}
	t.startStep(t.Step + 1)
}

func (t *Tutorial) updateHelpText(dt time.Duration) {
	prev := t.CharsShown
	t.timeAtStep += dt

	shown := 0
	if t.timeAtStep > 0 {
		shown = int(t.timeAtStep / t.env.Config.Scenes.LetterInterval)
	}
	if total := utf8.RuneCountInString(t.HelpText); shown > total {
		shown = total
	}
	t.CharsShown = shown

	for i := prev; i < shown; i++ {
		t.env.Cues.Play(core.CueLetter)
	}
}

func (t *Tutorial) updateMove() {
	t.StepProgress = min(t.DistanceMoved/t.env.Config.Scenes.MoveDistance, 1)
	if t.StepProgress >= 1 {
		t.advance()
	}
}

// updateClear spawns the step's enemies once its help text is readable and
// completes when all of them are gone.
func (t *Tutorial) updateClear() {
	step := tutorialSteps[t.Step]
	if !t.spawned {
		if !t.HelpRevealed() {
			return
		}
		for i, n := range step.numbers {
			t.Sim.SpawnAt(scriptedSpots[i%len(scriptedSpots)], n)
		}
		t.spawned = true
	}

	total := float64(len(step.numbers))
	alive := float64(len(t.Sim.Enemies))
	t.StepProgress = 1 - alive/total
	if alive == 0 {
		t.advance()
	}
}

// animateProgress eases the bar towards the true progress. The factor is
// capped at 1 so a long frame lands on the target instead of overshooting.
func (t *Tutorial) animateProgress(dt time.Duration) {
	ms := float64(dt) / float64(time.Millisecond)
	factor := min(t.env.Config.Scenes.ProgressRate*ms, 1)
	t.VisualProgress += (t.StepProgress - t.VisualProgress) * factor
}
