package javac

import (
	"context"
	"sort"
	"strings"

	"github.com/viant/afs"
)

// ClassUsageFileWriter persists class-usage information after a successful
// compilation. It is never called for a failed one.
type ClassUsageFileWriter interface {
	WriteFile(ctx context.Context, fs afs.Service, outputDirectory string) error
}

// NoOpClassUsageFileWriter writes nothing.
type NoOpClassUsageFileWriter struct{}

// WriteFile implements ClassUsageFileWriter.
func (NoOpClassUsageFileWriter) WriteFile(context.Context, afs.Service, string) error { return nil }

// BuildRuleSuggester maps missing symbols to build rules that would provide
// them.
type BuildRuleSuggester interface {
	SuggestRules(ctx context.Context, missing SymbolSet) ([]string, error)
}

// SuggesterFunc adapts a function to BuildRuleSuggester.
type SuggesterFunc func(ctx context.Context, missing SymbolSet) ([]string, error)

// SuggestRules implements BuildRuleSuggester.
func (f SuggesterFunc) SuggestRules(ctx context.Context, missing SymbolSet) ([]string, error) {
	return f(ctx, missing)
}

// PackageIndexSuggester suggests rules from a static index of package or
// class prefixes to build targets. The longest matching prefix wins.
type PackageIndexSuggester struct {
	Index map[string]string
}

// SuggestRules implements BuildRuleSuggester. Results are sorted and unique.
func (s PackageIndexSuggester) SuggestRules(_ context.Context, missing SymbolSet) ([]string, error) {
	rules := make(map[string]struct{})
	for _, symbol := range missing.Sorted() {
		if rule, ok := s.lookup(symbol); ok {
			rules[rule] = struct{}{}
		}
	}

	result := make([]string, 0, len(rules))
	for rule := range rules {
		result = append(result, rule)
	}
	sort.Strings(result)
	return result, nil
}

func (s PackageIndexSuggester) lookup(symbol string) (string, bool) {
	best := ""
	rule := ""
	for prefix, target := range s.Index {
		if symbol != prefix && !strings.HasPrefix(symbol, prefix+".") {
			continue
		}
		if len(prefix) > len(best) {
			best, rule = prefix, target
		}
	}
	return rule, best != ""
}
