package javac

import (
	"regexp"
	"sort"
	"strings"
)

// missingSymbolPatterns match javac phrasings that name an unresolved symbol.
// Each captures exactly one name. Supporting a new phrasing means adding a
// pattern here.
var missingSymbolPatterns = []*regexp.Regexp{
	regexp.MustCompile(`package ([\w.$*]+) does not exist`),
	regexp.MustCompile(`cannot access ([\w.$*]+)`),
	regexp.MustCompile(`symbol:\s*class\s+([\w.$*]+)`),
}

// SymbolSet is an unordered set of symbol names.
type SymbolSet map[string]struct{}

// NewSymbolSet builds a set from names.
func NewSymbolSet(names ...string) SymbolSet {
	set := make(SymbolSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts name.
func (s SymbolSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is in the set.
func (s SymbolSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names.
func (s SymbolSet) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order.
func (s SymbolSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindFailedImports scans compiler diagnostics for symbols reported as
// missing. Lines in no known phrasing are skipped; it never fails.
func FindFailedImports(diagnostics string) SymbolSet {
	missing := make(SymbolSet)
	for _, line := range strings.Split(diagnostics, "\n") {
		line = strings.TrimSuffix(line, "\r")
		for _, pattern := range missingSymbolPatterns {
			if match := pattern.FindStringSubmatch(line); match != nil {
				missing.Add(match[1])
			}
		}
	}
	return missing
}
