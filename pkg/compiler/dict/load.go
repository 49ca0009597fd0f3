package dict

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and merges one or more dictionary JSON files, in the order
// given. A malformed JSON file is a fatal input error; callers should
// surface it to the user with a non-zero exit code.
func Load(paths []string) (Dictionary, error) {
	if len(paths) == 0 {
		return Merge(nil), nil
	}
	dicts := make([]Dictionary, 0, len(paths))
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return Dictionary{}, fmt.Errorf("reading dictionary %s: %w", p, err)
		}
		var d Dictionary
		if err := json.Unmarshal(raw, &d); err != nil {
			return Dictionary{}, fmt.Errorf("parsing dictionary %s: %w", p, err)
		}
		dicts = append(dicts, d)
	}
	return Merge(dicts), nil
}
