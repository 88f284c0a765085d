package emit

import (
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"
)

// NamePolicy escapes identifiers that the host language reserves.
type NamePolicy interface {
	Escape(name string) string
}

// GoNamePolicy escapes Go keywords and predeclared identifiers with a
// trailing underscore.
type GoNamePolicy struct{}

// Escape implements NamePolicy.
func (GoNamePolicy) Escape(name string) string {
	if token.IsKeyword(name) || types.Universe.Lookup(name) != nil {
		return name + "_"
	}

	return name
}

// Namespace hands out identifiers unique within one scope.
type Namespace struct {
	taken map[string]struct{}
}

// NewNamespace creates a Namespace in which the given names are already in use.
func NewNamespace(taken ...string) *Namespace {
	ns := &Namespace{taken: make(map[string]struct{}, len(taken))}
	for _, name := range taken {
		ns.taken[name] = struct{}{}
	}

	return ns
}

// Claim returns name if it is free, or the first free name2, name3, ...
func (n *Namespace) Claim(name string) string {
	if _, ok := n.taken[name]; !ok {
		n.taken[name] = struct{}{}
		return name
	}

	st := stem{taken: n.taken, stem: name, last: 1}

	return st.next()
}

// Taken reports whether name is in use.
func (n *Namespace) Taken(name string) bool {
	_, ok := n.taken[name]
	return ok
}

type stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

func (s *stem) next() string {
	for {
		s.last++
		name := s.stem + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}

// SnakeCase converts a Go identifier to snake_case, keeping acronyms whole
// ("HTTPServer" -> "http_server").
func SnakeCase(s string) string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// tokenizeCamelCase splits an identifier into its camel case words.
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken splits "orderID" before 'I' and "XMLParser" before 'P'.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if unicode.IsUpper(r) && !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}
