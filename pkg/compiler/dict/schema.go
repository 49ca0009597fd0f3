// Package dict implements the dictionary schema used by the c3 compression
// pass: loading, merging multiple dictionary files, and deterministic entry
// ordering for longest-match substitution.
package dict

// ProtectPolicy names token classes c3 never substitutes. C3 always protects
// the negations and modals, so these flags add no protection beyond that
// built-in set.
type ProtectPolicy struct {
	Negations bool `json:"negations"`
	Modals    bool `json:"modals"`
}

// Policy is the merged substitution policy for a dictionary (or set of
// merged dictionaries).
type Policy struct {
	Case             string        `json:"case"`  // "preserve" | "smart"
	Match            string        `json:"match"` // "token" | "word"
	LongestMatch     bool          `json:"longest_match"`
	NormalizeUnicode bool          `json:"normalize_unicode"`
	MaxPasses        int           `json:"max_passes"`
	EnableGlobal     bool          `json:"enable_global"`
	Protect          ProtectPolicy `json:"protect"`
}

// Maps holds the five substitution namespaces a dictionary defines.
type Maps struct {
	Scope map[string]string `json:"scope"`
	Key   map[string]string `json:"key"`
	Value map[string]string `json:"value"`
	Text  map[string]string `json:"text"`
	Type  map[string]string `json:"type"`
}

// Stop holds the per-dictionary c3 stopword list.
type Stop struct {
	C3 []string `json:"c3"`
}

// Dictionary is one loaded dictionary JSON document.
type Dictionary struct {
	Version string `json:"version"`
	Policy  Policy `json:"policy"`
	Maps    Maps   `json:"maps"`
	Stop    *Stop  `json:"stop,omitempty"`
}

// DefaultPolicy returns the policy applied when a dictionary omits a field.
func DefaultPolicy() Policy {
	return Policy{
		Case:         "smart",
		Match:        "token",
		LongestMatch: true,
		MaxPasses:    1,
	}
}

// Merge combines dictionaries in load order. Maps namespaces are unioned;
// when the same source key appears in more than one dictionary's namespace,
// the earliest-loaded dictionary wins. The policy is taken whole from the
// first dictionary whose policy is not entirely zero, with an empty Case or
// Match and a zero MaxPasses filled from DefaultPolicy; later dictionaries'
// policies are not consulted. When no dictionary sets a policy, the result
// is DefaultPolicy.
func Merge(dicts []Dictionary) Dictionary {
	merged := Dictionary{Policy: DefaultPolicy()}
	merged.Maps = Maps{
		Scope: map[string]string{},
		Key:   map[string]string{},
		Value: map[string]string{},
		Text:  map[string]string{},
		Type:  map[string]string{},
	}
	var stop []string
	seenStop := map[string]bool{}

	firstPolicySeen := false
	for _, d := range dicts {
		if d.Version != "" && merged.Version == "" {
			merged.Version = d.Version
		}
		if !firstPolicySeen && (d.Policy != Policy{}) {
			merged.Policy = fillPolicy(d.Policy)
			firstPolicySeen = true
		}
		mergeNamespace(merged.Maps.Scope, d.Maps.Scope)
		mergeNamespace(merged.Maps.Key, d.Maps.Key)
		mergeNamespace(merged.Maps.Value, d.Maps.Value)
		mergeNamespace(merged.Maps.Text, d.Maps.Text)
		mergeNamespace(merged.Maps.Type, d.Maps.Type)
		if d.Stop != nil {
			for _, w := range d.Stop.C3 {
				if !seenStop[w] {
					seenStop[w] = true
					stop = append(stop, w)
				}
			}
		}
	}
	if len(stop) > 0 {
		merged.Stop = &Stop{C3: stop}
	}
	return merged
}

func mergeNamespace(dst, src map[string]string) {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
}

func fillPolicy(p Policy) Policy {
	d := DefaultPolicy()
	if p.Case == "" {
		p.Case = d.Case
	}
	if p.Match == "" {
		p.Match = d.Match
	}
	if p.MaxPasses == 0 {
		p.MaxPasses = d.MaxPasses
	}
	return p
}
