package emit

import (
	"fmt"
	"strings"
)

// KVPair is one normalized key/value pair awaiting emission.
type KVPair struct {
	Key   string
	Value string
}

// PrefixOptions controls the shared key-prefix extraction heuristic.
type PrefixOptions struct {
	Enabled bool
	MinLen  int
	MinPct  float64
}

// FlushKV renders a buffered run of key-value pairs into ":" lines. At
// compression 0 it emits one pair per line; at compression >= 1 it groups up
// to maxPerLine pairs per line and, with at least 3 pairs, may first emit a
// ":_pfx=" directive and strip the shared prefix from matching keys.
func FlushKV(pairs []KVPair, compression, maxPerLine int, prefix PrefixOptions) []string {
	if len(pairs) == 0 {
		return nil
	}
	if compression == 0 {
		lines := make([]string, len(pairs))
		for i, p := range pairs {
			lines[i] = ":" + p.Key + "=" + p.Value
		}
		return lines
	}

	var out []string
	working := pairs
	if prefix.Enabled && len(pairs) >= 3 {
		if pfx, ok := extractPrefix(pairs, prefix.MinLen, prefix.MinPct); ok {
			out = append(out, ":_pfx="+pfx)
			working = make([]KVPair, len(pairs))
			for i, p := range pairs {
				if strings.HasPrefix(p.Key, pfx) {
					working[i] = KVPair{Key: strings.TrimPrefix(p.Key, pfx), Value: p.Value}
				} else {
					working[i] = p
				}
			}
		}
	}

	if maxPerLine <= 0 {
		maxPerLine = len(working)
	}
	for start := 0; start < len(working); start += maxPerLine {
		end := start + maxPerLine
		if end > len(working) {
			end = len(working)
		}
		segs := make([]string, 0, end-start)
		for _, p := range working[start:end] {
			segs = append(segs, p.Key+"="+p.Value)
		}
		out = append(out, ":"+strings.Join(segs, " "))
	}
	return out
}

// extractPrefix finds the longest common prefix of all keys, trimmed to the
// last "-", "_", or "." it contains, and reports whether it clears the
// configured length and coverage thresholds.
func extractPrefix(pairs []KVPair, minLen int, minPct float64) (string, bool) {
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	lcp := commonPrefix(keys)

	idx := lastSeparator(lcp)
	if idx < 0 {
		return "", false
	}
	pfx := lcp[:idx+1]
	if len(pfx) < minLen {
		return "", false
	}

	matching := 0
	for _, k := range keys {
		if strings.HasPrefix(k, pfx) {
			matching++
		}
	}
	pct := float64(matching) / float64(len(keys))
	if pct < minPct {
		return "", false
	}
	return pfx, true
}

func commonPrefix(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	prefix := keys[0]
	for _, k := range keys[1:] {
		prefix = commonPrefixOf(prefix, k)
		if prefix == "" {
			return ""
		}
	}
	return prefix
}

func commonPrefixOf(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func lastSeparator(s string) int {
	idx := -1
	for i, r := range s {
		if r == '-' || r == '_' || r == '.' {
			idx = i
		}
	}
	return idx
}

// BadKVFallback renders a key-value pair whose key normalized to empty
// string as plain prose text instead of dropping it.
func BadKVFallback(originalKey, value string) string {
	return fmt.Sprintf("%s: %s", originalKey, value)
}
