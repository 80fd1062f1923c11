package aureolin

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SegmentKind represents the kind of a path segment.
type SegmentKind int

const (
	StaticSegment SegmentKind = iota
	ParamSegment
	WildcardSegment
)

// Segment is a single parsed part of a route pattern. For static segments
// Value holds the literal text; for parameter segments it holds the parameter
// name and ParamType the declared type (empty when untyped).
type Segment struct {
	Kind      SegmentKind
	Value     string
	ParamType string
}

// RoutePattern is a parsed route path in Aureolin syntax, e.g.
// "/users/{id:int}/posts/{slug}" or "/files/{*}".
type RoutePattern struct {
	raw      string
	segments []Segment
}

// patternAST is the participle grammar for route patterns.
type patternAST struct {
	Parts []patternPart `parser:"@@*"`
}

type patternPart struct {
	Param  *patternParam `parser:"@@"`
	Static string        `parser:"| @(Text | Ident | Colon)"`
}

type patternParam struct {
	Wildcard bool   `parser:"'{' ( @'*'"`
	Name     string `parser:"| @Ident ( ':'"`
	Type     string `parser:"@Ident )? ) '}'"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Text", Pattern: `[^{}:*A-Za-z_]+`},
})

var patternParser = participle.MustBuild[patternAST](
	participle.Lexer(patternLexer),
	participle.UseLookahead(2),
)

// ParsePattern parses a route path in Aureolin syntax. Malformed parameter
// syntax (unbalanced braces, empty parameter names) is an error.
func ParsePattern(raw string) (RoutePattern, error) {
	if raw == "" {
		raw = "/"
	}

	ast, err := patternParser.ParseString("", raw)
	if err != nil {
		return RoutePattern{}, fmt.Errorf("invalid route pattern %q: %w", raw, err)
	}

	var segments []Segment
	for _, part := range ast.Parts {
		if part.Param != nil {
			if part.Param.Wildcard {
				segments = append(segments, Segment{Kind: WildcardSegment, Value: "*"})
			} else {
				segments = append(segments, Segment{
					Kind:      ParamSegment,
					Value:     part.Param.Name,
					ParamType: part.Param.Type,
				})
			}
			continue
		}
		// Collapse consecutive static tokens into a single segment.
		if n := len(segments); n > 0 && segments[n-1].Kind == StaticSegment {
			segments[n-1].Value += part.Static
		} else {
			segments = append(segments, Segment{Kind: StaticSegment, Value: part.Static})
		}
	}

	return RoutePattern{raw: raw, segments: segments}, nil
}

// MustPattern is like ParsePattern but panics on error. Intended for
// statically known patterns in tests and examples.
func MustPattern(raw string) RoutePattern {
	p, err := ParsePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Raw returns the original pattern text.
func (p RoutePattern) Raw() string {
	return p.raw
}

// Segments returns the parsed segments in order.
func (p RoutePattern) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// ParamNames returns the parameter names in path order, excluding wildcards.
func (p RoutePattern) ParamNames() []string {
	var names []string
	for _, s := range p.segments {
		if s.Kind == ParamSegment {
			names = append(names, s.Value)
		}
	}
	return names
}

// ParamTypes maps parameter names to their declared types. Untyped
// parameters default to "string".
func (p RoutePattern) ParamTypes() map[string]string {
	types := make(map[string]string)
	for _, s := range p.segments {
		if s.Kind == ParamSegment {
			t := s.ParamType
			if t == "" {
				t = "string"
			}
			types[s.Value] = t
		}
	}
	return types
}

// Convert rewrites the pattern using an adapter's native parameter syntax.
// param receives each parameter name, wildcard replaces {*} segments.
func (p RoutePattern) Convert(param func(name string) string, wildcard string) string {
	out := ""
	for _, s := range p.segments {
		switch s.Kind {
		case ParamSegment:
			out += param(s.Value)
		case WildcardSegment:
			out += wildcard
		default:
			out += s.Value
		}
	}
	return out
}

// joinPath computes the effective path for an endpoint: base path plus sub
// path, with exactly one trailing separator stripped when the result is
// longer than "/".
func joinPath(basePath, subPath string) string {
	path := basePath + subPath
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	if path == "" {
		path = "/"
	}
	return path
}
