// Package script runs headless pointer scenarios against a hand.
//
//	# drag the first card across the hand
//	cards 3
//	press 0
//	move 10 0
//	expect order 1 0 2
//	move 60 0
//	release
//	expect order 1 2 0
//
// Cards are referred to by creation index. Coordinates are on the layout plane.
package script

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Script struct {
	Lines []*Line `@@*`
}

type Line struct {
	Pos lexer.Position

	Cmd Command `@@`
}

type Command interface {
	exec(r *Runner) error
}

type Point struct {
	X float64 `@Number`
	Y float64 `@Number`
}

type Cards struct {
	Count int `"cards" @Number`
}

type Add struct {
	Add bool `@"add"`
}

type Remove struct {
	Card int `"remove" @Number`
}

type Set struct {
	Key   string   `"set" @("spacing"|"width"|"auto"|"reorder"|"maxdelta")`
	Value *float64 `( @Number`
	Flag  string   `| @("on"|"off") )`
}

type Press struct {
	Card int    `"press" @Number`
	At   *Point `("at" @@)?`
}

type Move struct {
	To Point `"move" @@`
}

type Release struct {
	At *Point `"release" @@?`
}

type Enter struct {
	Card int `"enter" @Number`
}

type Exit struct {
	Card int `"exit" @Number`
}

type Select struct {
	Card int    `"select" @Number`
	Flag string `@("on"|"off")`
}

type Effect struct {
	Card int    `"effect" @Number`
	Flag string `@("on"|"off")`
}

type Tick struct {
	Seconds float64 `"tick" @Number`
	Times   int     `("times" @Number)?`
}

type ExpectOrder struct {
	Cards []int `"expect" "order" @Number*`
}

type ExpectSelected struct {
	None  bool  `"expect" "selected" ( @"none"`
	Cards []int `| @Number+ )`
}

type ExpectDragging struct {
	None bool `"expect" "dragging" ( @"none"`
	Card *int `| @Number )`
}

type ExpectPosition struct {
	Card int   `"expect" "position" @Number`
	At   Point `@@`
}

type ExpectSettled struct {
	Tolerance *float64 `"expect" "settled" @Number?`
}

var parser = participle.MustBuild[Script](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "whitespace", Pattern: `[\s]+`},
		{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	})),
	participle.Elide("Comment", "whitespace"),
	participle.Union[Command](
		Cards{},
		Add{},
		Remove{},
		Set{},
		Press{},
		Move{},
		Release{},
		Enter{},
		Exit{},
		Select{},
		Effect{},
		Tick{},
		ExpectOrder{},
		ExpectSelected{},
		ExpectDragging{},
		ExpectPosition{},
		ExpectSettled{},
	),
	participle.UseLookahead(2),
)

// Parse parses a scenario. name is used in error positions.
func Parse(name, src string) (*Script, error) {
	return parser.ParseString(name, src)
}

func sourceLine(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	text := lines[line-1]
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
