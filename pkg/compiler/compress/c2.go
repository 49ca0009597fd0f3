package compress

import (
	"regexp"
	"sort"
	"strings"
)

// builtinProtected are always exempt from stopword removal and c3 text
// substitution, regardless of configuration.
var builtinProtected = map[string]bool{
	"no": true, "not": true, "never": true,
	"must": true, "should": true, "may": true,
}

// Options configures the c2 pass.
type Options struct {
	PhraseMap    map[string]string
	Units        map[string]string
	Stopwords    []string
	ProtectWords []string
}

var nonAlphaRe = regexp.MustCompile(`[^a-zA-Z]`)

// C2 applies, in order, phrase substitution, unit abbreviation, stopword
// removal (prose/list lines only), and trailing-period stripping (prose/list
// lines only). It never touches lines inside a code block, scope anchors, or
// block-tag lines.
func C2(lines []string, opts Options) []string {
	protected := map[string]bool{}
	for k, v := range builtinProtected {
		protected[k] = v
	}
	for _, w := range opts.ProtectWords {
		protected[strings.ToLower(w)] = true
	}
	stop := map[string]bool{}
	for _, w := range opts.Stopwords {
		stop[strings.ToLower(w)] = true
	}
	phraseRe, phraseMap := buildPhraseMatcher(opts.PhraseMap)
	unitRes := buildUnitMatchers(opts.Units)

	return codeRegions(lines, func(line string, inCode bool) (string, bool) {
		if inCode {
			return line, true
		}
		if isScopeLine(line) || isBlockTagLine(line) {
			return line, true
		}

		out := line
		if phraseRe != nil {
			out = phraseRe.ReplaceAllStringFunc(out, func(m string) string {
				return phraseMap[strings.ToLower(m)]
			})
		}
		for _, ur := range unitRes {
			out = ur.digitForm.ReplaceAllString(out, "${1}"+ur.abbr)
			out = ur.bareForm.ReplaceAllString(out, ur.abbr)
		}

		if isProseOrListLine(out) {
			out = removeStopwords(out, stop, protected)
			out = stripTrailingPeriod(out)
		}
		if out == "" {
			return "", false
		}
		return out, true
	})
}

func buildPhraseMatcher(phraseMap map[string]string) (*regexp.Regexp, map[string]string) {
	if len(phraseMap) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(phraseMap))
	lowerMap := make(map[string]string, len(phraseMap))
	for k, v := range phraseMap {
		keys = append(keys, k)
		lowerMap[strings.ToLower(k)] = v
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = regexp.QuoteMeta(k)
	}
	re := regexp.MustCompile(`(?i)` + strings.Join(parts, "|"))
	return re, lowerMap
}

type unitMatcher struct {
	digitForm *regexp.Regexp
	bareForm  *regexp.Regexp
	abbr      string
}

func buildUnitMatchers(units map[string]string) []unitMatcher {
	if len(units) == 0 {
		return nil
	}
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	matchers := make([]unitMatcher, 0, len(units))
	for _, name := range names {
		q := regexp.QuoteMeta(name)
		matchers = append(matchers, unitMatcher{
			digitForm: regexp.MustCompile(`(?i)(\d+)\s+` + q + `\b`),
			bareForm:  regexp.MustCompile(`(?i)\b` + q + `\b`),
			abbr:      units[name],
		})
	}
	return matchers
}

// removeStopwords tokenizes on whitespace and drops tokens whose lowercase
// alphabetic-only form is a stopword, unless that form is protected.
func removeStopwords(line string, stop, protected map[string]bool) string {
	if len(stop) == 0 {
		return line
	}
	tokens := strings.Fields(line)
	kept := tokens[:0:0]
	for _, t := range tokens {
		form := strings.ToLower(nonAlphaRe.ReplaceAllString(t, ""))
		if stop[form] && !protected[form] {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

var preservedEndings = []string{"...", "e.g.", "i.e.", "etc."}

// stripTrailingPeriod removes a single trailing "." unless the line ends
// with "...", "e.g.", "i.e.", or "etc.".
func stripTrailingPeriod(line string) string {
	if !strings.HasSuffix(line, ".") {
		return line
	}
	for _, ending := range preservedEndings {
		if strings.HasSuffix(line, ending) {
			return line
		}
	}
	return line[:len(line)-1]
}
