package interp

import (
	"strconv"
	"strings"

	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/shape"
)

// Command is one parsed instruction.
type Command interface {
	Name() string

	isCommand()
}

type Add struct {
	Shape shape.Shape
}

type Delete struct {
	Index int
}

type List struct{}

type Save struct{}

// Export renders the registry to Path in the format given by its extension.
type Export struct {
	Path string
}

type Help struct{}

type Exit struct{}

func (Add) Name() string    { return "add" }
func (Delete) Name() string { return "del" }
func (List) Name() string   { return "list" }
func (Save) Name() string   { return "save" }
func (Export) Name() string { return "export" }
func (Help) Name() string   { return "help" }
func (Exit) Name() string   { return "exit" }

func (Add) isCommand()    {}
func (Delete) isCommand() {}
func (List) isCommand()   {}
func (Save) isCommand()   {}
func (Export) isCommand() {}
func (Help) isCommand()   {}
func (Exit) isCommand()   {}

// shapeSpec describes how "add <token> ..." builds a shape.
type shapeSpec struct {
	token string
	kind  shape.Kind
	args  string
	build func(v []float64) (shape.Shape, error)
}

func (ss shapeSpec) arity() int {
	return len(strings.Fields(ss.args))
}

var shapeSpecs = []shapeSpec{
	{
		token: "p",
		kind:  shape.POINT_TYPE,
		args:  "<x> <y>",
		build: func(v []float64) (shape.Shape, error) {
			return shape.Point{X: v[0], Y: v[1]}, nil
		},
	},
	{
		token: "l",
		kind:  shape.LINE_TYPE,
		args:  "<x1> <y1> <x2> <y2>",
		build: func(v []float64) (shape.Shape, error) {
			return shape.Line{Start: geo.Point{X: v[0], Y: v[1]}, End: geo.Point{X: v[2], Y: v[3]}}, nil
		},
	},
	{
		token: "cir",
		kind:  shape.CIRCLE_TYPE,
		args:  "<x> <y> <radius>",
		build: func(v []float64) (shape.Shape, error) {
			if err := nonNegative("radius", v[2]); err != nil {
				return nil, err
			}
			return shape.Circle{Center: geo.Point{X: v[0], Y: v[1]}, Radius: v[2]}, nil
		},
	},
	{
		token: "sq",
		kind:  shape.SQUARE_TYPE,
		args:  "<x> <y> <side>",
		build: func(v []float64) (shape.Shape, error) {
			if err := nonNegative("side", v[2]); err != nil {
				return nil, err
			}
			return shape.Square{TopLeft: geo.Point{X: v[0], Y: v[1]}, Side: v[2]}, nil
		},
	},
	{
		token: "rec",
		kind:  shape.RECTANGLE_TYPE,
		args:  "<x> <y> <sideA> <sideB>",
		build: func(v []float64) (shape.Shape, error) {
			if err := nonNegative("sideA", v[2]); err != nil {
				return nil, err
			}
			if err := nonNegative("sideB", v[3]); err != nil {
				return nil, err
			}
			return shape.Rectangle{TopLeft: geo.Point{X: v[0], Y: v[1]}, SideA: v[2], SideB: v[3]}, nil
		},
	},
	{
		token: "oval",
		kind:  shape.OVAL_TYPE,
		args:  "<x> <y> <width> <height>",
		build: func(v []float64) (shape.Shape, error) {
			if err := nonNegative("width", v[2]); err != nil {
				return nil, err
			}
			if err := nonNegative("height", v[3]); err != nil {
				return nil, err
			}
			return shape.Oval{Center: geo.Point{X: v[0], Y: v[1]}, Width: v[2], Height: v[3]}, nil
		},
	},
	{
		token: "tr",
		kind:  shape.TRIANGLE_TYPE,
		args:  "<x1> <y1> <x2> <y2> <x3> <y3>",
		build: func(v []float64) (shape.Shape, error) {
			return shape.Triangle{
				P1: geo.Point{X: v[0], Y: v[1]},
				P2: geo.Point{X: v[2], Y: v[3]},
				P3: geo.Point{X: v[4], Y: v[5]},
			}, nil
		},
	},
}

func lookupShape(token string) (shapeSpec, bool) {
	for _, ss := range shapeSpecs {
		if ss.token == token {
			return ss, true
		}
	}
	return shapeSpec{}, false
}

func shapeTokens() []string {
	tokens := make([]string, 0, len(shapeSpecs))
	for _, ss := range shapeSpecs {
		tokens = append(tokens, ss.token)
	}
	return tokens
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return errorf(ValidationError, "%s must be non-negative, got %v", name, v)
	}
	return nil
}

// Parse turns one input line into a Command. A blank line yields a nil
// Command and a nil error. Any returned error is an *Error.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, nil
	}

	args := tokens[1:]
	switch tokens[0] {
	case "add":
		return parseAdd(args)
	case "del":
		return parseDelete(args)
	case "export":
		if len(args) != 1 {
			return nil, errorf(ArityError, "export takes 1 argument <path>, got %d", len(args))
		}
		return Export{Path: args[0]}, nil
	case "list":
		return List{}, nil
	case "save":
		return Save{}, nil
	case "help":
		return Help{}, nil
	case "exit":
		return Exit{}, nil
	}
	return nil, errorf(UnknownCommandError, "unknown command %q (help for usage)", tokens[0])
}

func parseAdd(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, errorf(ArityError, "not enough arguments: add <%s> ...", strings.Join(shapeTokens(), "|"))
	}
	ss, ok := lookupShape(args[0])
	if !ok {
		return nil, errorf(UnknownShapeKindError, "unknown shape kind %q, expected one of %s", args[0], strings.Join(shapeTokens(), ", "))
	}
	args = args[1:]
	if len(args) != ss.arity() {
		return nil, errorf(ArityError, "%s takes %d arguments %s, got %d", ss.kind, ss.arity(), ss.args, len(args))
	}

	v := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil || !geo.IsFinite(f) {
			return nil, errorf(ParseError, "argument %d of %s is not a number: %q", i+1, ss.kind, a)
		}
		v[i] = f
	}

	s, err := ss.build(v)
	if err != nil {
		return nil, err
	}
	return Add{Shape: s}, nil
}

func parseDelete(args []string) (Command, error) {
	if len(args) != 1 {
		return nil, errorf(ArityError, "del takes 1 argument <index>, got %d", len(args))
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, errorf(ParseError, "index must be an integer: %q", args[0])
	}
	return Delete{Index: i}, nil
}
