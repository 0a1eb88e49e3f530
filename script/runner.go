package script

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/SvenDH/go-card-hand/config"
	"github.com/SvenDH/go-card-hand/hand"
)

// ErrExpectation is wrapped by every failed expect command.
var ErrExpectation = errors.New("expectation failed")

const (
	frameRate        = 60
	defaultTolerance = 0.5
)

// Step is the state of the hand after one command.
type Step struct {
	Line     int
	Command  string
	Order    []string
	Selected int
	Total    int
	Dragging string
	Err      error
}

// Runner executes scenarios against a hand it owns. It is the hand's
// container and pointer source.
type Runner struct {
	cfg    config.Config
	logger *log.Logger

	group   *hand.Group
	cards   []*hand.Card
	width   float64
	pointer hand.Vec2
	hasPtr  bool
	pressed *hand.Card

	Steps []Step
}

func NewRunner(cfg config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	r := &Runner{cfg: cfg, logger: logger, width: cfg.Window.HandWidth}
	r.reset(0)
	return r
}

func (r *Runner) Group() *hand.Group { return r.group }

// Width implements hand.Container.
func (r *Runner) Width() float64 { return r.width }

// PointerPosition implements hand.PointerSource.
func (r *Runner) PointerPosition() (hand.Vec2, bool) { return r.pointer, r.hasPtr }

// Run parses src and executes it, stopping at the first failing command.
func (r *Runner) Run(name, src string) error {
	s, err := Parse(name, src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	for _, line := range s.Lines {
		err := line.Cmd.exec(r)
		step := r.snapshot(line.Pos.Line, sourceLine(src, line.Pos.Line))
		step.Err = err
		r.Steps = append(r.Steps, step)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, line.Pos.Line, err)
		}
		r.logger.Debug("step", "line", step.Line, "cmd", step.Command, "order", step.Order)
	}
	return nil
}

func (r *Runner) reset(n int) {
	r.group = r.cfg.NewGroup(hand.WithContainer(r), hand.WithPointer(r), hand.WithLogger(r.logger))
	r.cards = nil
	r.pressed = nil
	for i := 0; i < n; i++ {
		r.add()
	}
}

func (r *Runner) add() *hand.Card {
	c := r.cfg.NewCard("card" + strconv.Itoa(len(r.cards)))
	r.cards = append(r.cards, c)
	r.group.Register(c)
	return c
}

func (r *Runner) card(i int) (*hand.Card, error) {
	if i < 0 || i >= len(r.cards) {
		return nil, fmt.Errorf("no card %d", i)
	}
	return r.cards[i], nil
}

func (r *Runner) index(c *hand.Card) int {
	return slices.Index(r.cards, c)
}

func (r *Runner) snapshot(line int, cmd string) Step {
	cards := r.group.Cards()
	order := make([]string, len(cards))
	for i, c := range cards {
		order[i] = c.Name
	}
	sel, total := r.group.Counts()
	step := Step{Line: line, Command: cmd, Order: order, Selected: sel, Total: total}
	if d := r.group.Dragging(); d != nil {
		step.Dragging = d.Name
	}
	return step
}

func (c Cards) exec(r *Runner) error {
	if c.Count < 0 {
		return fmt.Errorf("negative card count %d", c.Count)
	}
	r.reset(c.Count)
	return nil
}

func (Add) exec(r *Runner) error {
	r.add()
	return nil
}

func (c Remove) exec(r *Runner) error {
	card, err := r.card(c.Card)
	if err != nil {
		return err
	}
	if r.pressed == card {
		r.pressed = nil
	}
	if !r.group.Remove(card) {
		r.logger.Debug("card not in hand", "card", card.Name)
	}
	return nil
}

func (c Set) exec(r *Runner) error {
	switch c.Key {
	case "spacing", "width", "maxdelta":
		if c.Value == nil {
			return fmt.Errorf("set %s needs a number", c.Key)
		}
	default:
		if c.Flag == "" {
			return fmt.Errorf("set %s needs on or off", c.Key)
		}
	}
	// settings also go to the config so a later cards command keeps them
	switch c.Key {
	case "spacing":
		r.cfg.Group.Spacing = *c.Value
		r.group.SetSpacing(*c.Value)
	case "width":
		r.width = *c.Value
		r.group.Layout()
	case "maxdelta":
		r.cfg.Group.MaxDelta = *c.Value
		r.logger.Debug("max delta applies to the next cards command", "maxdelta", *c.Value)
	case "auto":
		r.cfg.Group.AutoSpacing = c.Flag == "on"
		r.group.SetAutoSpacing(r.cfg.Group.AutoSpacing)
	case "reorder":
		r.cfg.Group.AllowReorder = c.Flag == "on"
		r.group.SetAllowReorder(r.cfg.Group.AllowReorder)
	}
	return nil
}

func (c Press) exec(r *Runner) error {
	card, err := r.card(c.Card)
	if err != nil {
		return err
	}
	at := card.Position()
	if c.At != nil {
		at = hand.Vec2{X: c.At.X, Y: c.At.Y}
	}
	r.pointer, r.hasPtr = at, true
	r.pressed = card
	card.Press(hand.PointerEvent{Pos: at})
	return nil
}

func (c Move) exec(r *Runner) error {
	r.pointer, r.hasPtr = hand.Vec2{X: c.To.X, Y: c.To.Y}, true
	if r.pressed != nil {
		r.pressed.Move(hand.PointerEvent{Pos: r.pointer})
	}
	return nil
}

func (c Release) exec(r *Runner) error {
	if c.At != nil {
		r.pointer, r.hasPtr = hand.Vec2{X: c.At.X, Y: c.At.Y}, true
	}
	if r.pressed == nil {
		r.logger.Debug("release without press")
		return nil
	}
	card := r.pressed
	r.pressed = nil
	card.Release(hand.PointerEvent{Pos: r.pointer})
	return nil
}

func (c Enter) exec(r *Runner) error {
	card, err := r.card(c.Card)
	if err != nil {
		return err
	}
	card.Enter(hand.PointerEvent{Pos: r.pointer})
	return nil
}

func (c Exit) exec(r *Runner) error {
	card, err := r.card(c.Card)
	if err != nil {
		return err
	}
	card.Exit(hand.PointerEvent{Pos: r.pointer})
	return nil
}

func (c Select) exec(r *Runner) error {
	card, err := r.card(c.Card)
	if err != nil {
		return err
	}
	card.SetSelected(c.Flag == "on")
	return nil
}

func (c Effect) exec(r *Runner) error {
	card, err := r.card(c.Card)
	if err != nil {
		return err
	}
	card.SetInEffect(c.Flag == "on")
	return nil
}

func (c Tick) exec(r *Runner) error {
	if c.Seconds < 0 || c.Times < 0 {
		return fmt.Errorf("tick must not be negative")
	}
	if c.Times > 0 {
		for i := 0; i < c.Times; i++ {
			r.group.Update(c.Seconds)
		}
		return nil
	}
	frames := int(math.Ceil(c.Seconds * frameRate))
	if frames == 0 {
		r.group.Update(0)
		return nil
	}
	dt := c.Seconds / float64(frames)
	for i := 0; i < frames; i++ {
		r.group.Update(dt)
	}
	return nil
}

func (c ExpectOrder) exec(r *Runner) error {
	var got []int
	for _, card := range r.group.Cards() {
		got = append(got, r.index(card))
	}
	if !slices.Equal(got, c.Cards) {
		return fmt.Errorf("%w: order is %v, want %v", ErrExpectation, got, c.Cards)
	}
	return nil
}

func (c ExpectSelected) exec(r *Runner) error {
	var got []int
	for _, card := range r.group.Cards() {
		if card.Selected() {
			got = append(got, r.index(card))
		}
	}
	want := c.Cards
	if c.None {
		want = nil
	}
	slices.Sort(got)
	want = slices.Sorted(slices.Values(want))
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: selected %v, want %v", ErrExpectation, got, want)
	}
	return nil
}

func (c ExpectDragging) exec(r *Runner) error {
	got := -1
	if d := r.group.Dragging(); d != nil {
		got = r.index(d)
	}
	want := -1
	if c.Card != nil {
		want = *c.Card
	}
	if got != want {
		return fmt.Errorf("%w: dragging %s, want %s", ErrExpectation, cardLabel(got), cardLabel(want))
	}
	return nil
}

func (c ExpectPosition) exec(r *Runner) error {
	card, err := r.card(c.Card)
	if err != nil {
		return err
	}
	want := hand.Vec2{X: c.At.X, Y: c.At.Y}
	if card.Position().Sub(want).Len() > 1e-6 {
		return fmt.Errorf("%w: card %d at %v, want %v", ErrExpectation, c.Card, card.Position(), want)
	}
	return nil
}

func (c ExpectSettled) exec(r *Runner) error {
	tol := defaultTolerance
	if c.Tolerance != nil {
		tol = *c.Tolerance
	}
	for _, card := range r.group.Cards() {
		v := card.Visual()
		if d := v.Position().Sub(card.Position()).Len(); d > tol {
			return fmt.Errorf("%w: %s is %.2f from its card", ErrExpectation, card.Name, d)
		}
	}
	return nil
}

func cardLabel(i int) string {
	if i < 0 {
		return "none"
	}
	return strconv.Itoa(i)
}
