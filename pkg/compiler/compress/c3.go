package compress

import (
	"regexp"
	"strings"

	"github.com/stevenic/llmdc/pkg/compiler/dict"
)

// namespaceMatcher applies one dictionary namespace's entries to individual
// tokens, honoring the dictionary's case and match-mode policy.
type namespaceMatcher struct {
	entries []dict.Entry
	index   map[string]string // lookup keyed by fold(key) when smart case
	smart   bool
}

func newNamespaceMatcher(m map[string]string, p dict.Policy) namespaceMatcher {
	entries := dict.BuildLongestMatchEntries(m)
	idx := make(map[string]string, len(entries))
	smart := p.Case == "smart"
	for _, e := range entries {
		k := e.Key
		if smart {
			k = strings.ToLower(k)
		}
		if _, ok := idx[k]; !ok {
			idx[k] = e.Value
		}
	}
	return namespaceMatcher{entries: entries, index: idx, smart: smart}
}

// lookup resolves tok against the namespace, returning the replacement and
// whether one was found. It respects "token" matching (the whole token must
// equal a key).
func (m namespaceMatcher) lookup(tok string) (string, bool) {
	if len(m.index) == 0 {
		return "", false
	}
	key := tok
	if m.smart {
		key = strings.ToLower(tok)
	}
	v, ok := m.index[key]
	return v, ok
}

var digitStartRe = regexp.MustCompile(`^[0-9]`)
var urlRe = regexp.MustCompile(`^https?://`)
var valuePieceRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

func isProtectedToken(tok string, protected map[string]bool) bool {
	if digitStartRe.MatchString(tok) {
		return true
	}
	form := strings.ToLower(nonAlphaRe.ReplaceAllString(tok, ""))
	return protected[form]
}

// C3 applies dictionary substitution for up to min(d.Policy.MaxPasses, 10)
// passes. Protection checks run before any substitution or removal, since
// checking after would let a protected word get replaced by an earlier pass
// and then slip through.
func C3(lines []string, d dict.Dictionary) []string {
	protected := map[string]bool{}
	for k := range builtinProtected {
		protected[k] = true
	}
	if d.Policy.Protect.Negations {
		for _, w := range []string{"no", "not", "never"} {
			protected[w] = true
		}
	}
	if d.Policy.Protect.Modals {
		for _, w := range []string{"must", "should", "may"} {
			protected[w] = true
		}
	}

	scopeM := newNamespaceMatcher(d.Maps.Scope, d.Policy)
	keyM := newNamespaceMatcher(d.Maps.Key, d.Policy)
	valueM := newNamespaceMatcher(d.Maps.Value, d.Policy)
	textM := newNamespaceMatcher(d.Maps.Text, d.Policy)
	typeM := newNamespaceMatcher(d.Maps.Type, d.Policy)

	stopSet := map[string]bool{}
	if d.Stop != nil {
		for _, w := range d.Stop.C3 {
			stopSet[strings.ToLower(w)] = true
		}
	}

	passes := d.Policy.MaxPasses
	if passes <= 0 {
		passes = 1
	}
	if passes > 10 {
		passes = 10
	}

	out := lines
	for p := 0; p < passes; p++ {
		next := codeRegions(out, func(line string, inCode bool) (string, bool) {
			if inCode {
				return line, true
			}
			return applyC3Line(line, scopeM, keyM, valueM, textM, typeM, protected, stopSet), true
		})
		if equalLines(next, out) {
			out = next
			break
		}
		out = next
	}
	return out
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func applyC3Line(line string, scopeM, keyM, valueM, textM, typeM namespaceMatcher, protected, stop map[string]bool) string {
	switch {
	case strings.HasPrefix(line, "@"):
		name := line[1:]
		return "@" + substituteToken(name, scopeM, protected)

	case strings.HasPrefix(line, "::"):
		tag := line[2:]
		return "::" + substituteToken(tag, typeM, protected)

	case strings.HasPrefix(line, "->"):
		target := line[2:]
		return "->" + substituteToken(target, scopeM, protected)

	case strings.HasPrefix(line, ":"):
		return applyKVLine(line[1:], keyM, valueM, protected)

	default:
		return applyTextLine(line, textM, protected, stop)
	}
}

func substituteToken(tok string, m namespaceMatcher, protected map[string]bool) string {
	if isProtectedToken(tok, protected) {
		return tok
	}
	if v, ok := m.lookup(tok); ok {
		return v
	}
	return tok
}

// applyKVLine rewrites a ":k=v k2=v2 ..." payload: each key via the key map,
// each value's "|"/","-delimited pieces via the value map when the piece
// looks like a bare identifier (not a URL, digit-led, or quoted).
func applyKVLine(payload string, keyM, valueM namespaceMatcher, protected map[string]bool) string {
	pairs := strings.Split(payload, " ")
	for i, pair := range pairs {
		eq := strings.IndexByte(pair, '=')
		if eq < 0 {
			continue
		}
		key, val := pair[:eq], pair[eq+1:]
		key = substituteToken(key, keyM, protected)
		val = applyValue(val, valueM, protected)
		pairs[i] = key + "=" + val
	}
	return ":" + strings.Join(pairs, " ")
}

func applyValue(val string, valueM namespaceMatcher, protected map[string]bool) string {
	return splitDelimPreserving(val, func(piece string) string {
		if !valuePieceRe.MatchString(piece) {
			return piece
		}
		if urlRe.MatchString(piece) {
			return piece
		}
		if digitStartRe.MatchString(piece) {
			return piece
		}
		return substituteToken(piece, valueM, protected)
	})
}

// splitDelimPreserving splits s on "|" or "," while keeping the delimiters
// in the output, applying fn to each non-delimiter piece.
func splitDelimPreserving(s string, fn func(string) string) string {
	var b strings.Builder
	var piece strings.Builder
	flush := func() {
		b.WriteString(fn(piece.String()))
		piece.Reset()
	}
	for _, r := range s {
		if r == '|' || r == ',' {
			flush()
			b.WriteRune(r)
			continue
		}
		piece.WriteRune(r)
	}
	flush()
	return b.String()
}

func applyTextLine(line string, textM namespaceMatcher, protected, stop map[string]bool) string {
	tokens := strings.Fields(line)
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if isProtectedToken(t, protected) {
			kept = append(kept, t)
			continue
		}
		if v, ok := textM.lookup(t); ok {
			t = v
		}
		form := strings.ToLower(nonAlphaRe.ReplaceAllString(t, ""))
		if stop[form] {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}
