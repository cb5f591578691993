package synonym

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"sync"
)

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// Dictionary maps lowercase alias strings to canonical grocery names. It is a
// derived cache of the grocery_items table, rebuilt wholesale by Reload and
// never patched in place. Readers during a rebuild see either the previous or
// the new snapshot, always a complete one.
//
// The substring scan in Resolve walks alias keys in the order they were
// loaded, so which key wins for an ambiguous name depends on the last reload.
type Dictionary struct {
	synonymRepository SynonymRepository

	mu       sync.RWMutex
	snapshot *dictionarySnapshot
}

type dictionarySnapshot struct {
	keys      []string
	canonical map[string]string
}

func NewDictionary(synonymRepository SynonymRepository) *Dictionary {
	return &Dictionary{
		synonymRepository: synonymRepository,
		snapshot: &dictionarySnapshot{
			canonical: map[string]string{},
		},
	}
}

func (d *Dictionary) Reload(ctx context.Context) error {
	entries, err := d.synonymRepository.GetAllEntries(ctx)
	if err != nil {
		return err
	}

	snapshot := &dictionarySnapshot{
		canonical: make(map[string]string),
	}

	for _, entry := range entries {
		if entry.CommonName == "" {
			continue
		}

		var aliases []string
		if err := json.Unmarshal([]byte(entry.Synonyms), &aliases); err != nil {
			log.Printf("skipping malformed synonyms for %q: %v", entry.CommonName, err)
			continue
		}

		for _, alias := range aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				continue
			}
			if _, exists := snapshot.canonical[key]; !exists {
				snapshot.keys = append(snapshot.keys, key)
			}
			snapshot.canonical[key] = entry.CommonName
		}
	}

	d.mu.Lock()
	d.snapshot = snapshot
	d.mu.Unlock()

	return nil
}

// Resolve maps a raw receipt name to its canonical grocery name. Match order:
// exact lookup of the cleaned name, substring scan over alias keys, then a
// per-word exact lookup. Returns false when nothing matches; callers drop
// such items rather than storing an unresolved name.
func (d *Dictionary) Resolve(rawName string) (string, bool) {
	cleaned := CleanName(rawName)
	if cleaned == "" {
		return "", false
	}

	d.mu.RLock()
	snapshot := d.snapshot
	d.mu.RUnlock()

	if canonical, ok := snapshot.canonical[cleaned]; ok {
		return canonical, true
	}

	for _, key := range snapshot.keys {
		if strings.Contains(cleaned, key) {
			return snapshot.canonical[key], true
		}
	}

	for _, word := range strings.Fields(cleaned) {
		if canonical, ok := snapshot.canonical[word]; ok {
			return canonical, true
		}
	}

	return "", false
}

// Size reports how many alias keys are loaded, mainly for startup logging.
func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.snapshot.keys)
}

// CleanName lowercases a raw item name and strips everything that is not a
// word character or whitespace.
func CleanName(name string) string {
	cleaned := strings.ToLower(name)
	cleaned = nonWordChars.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
