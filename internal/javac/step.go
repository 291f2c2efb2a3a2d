// Package javac runs the Java compiler as a build step and interprets its
// diagnostics.
package javac

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/alexisbeaulieu97/javacstep/internal/ports"
	"github.com/alexisbeaulieu97/javacstep/internal/step"
	javacerrors "github.com/alexisbeaulieu97/javacstep/pkg/errors"
)

// Params configures a Step.
type Params struct {
	// Target names the build rule the step compiles, e.g. //foo:bar.
	Target          string
	Compiler        string
	Sources         []string
	OutputDirectory string
	Classpath       []string
	Options         Options
	// PathToSourcesList, when set, receives the source paths one per line and
	// is passed to the compiler as an @argfile.
	PathToSourcesList string
	UsageWriter       ClassUsageFileWriter
	Suggester         BuildRuleSuggester
	FS                afs.Service
}

// Step compiles a set of Java sources with an external compiler.
type Step struct {
	target            string
	compiler          string
	sources           []string
	outputDirectory   string
	classpath         []string
	options           Options
	pathToSourcesList string
	usageWriter       ClassUsageFileWriter
	suggester         BuildRuleSuggester
	fs                afs.Service
}

// New creates a Step. Sources and classpath entries are deduplicated and
// sorted so equal configurations yield identical command lines.
func New(p Params) *Step {
	usageWriter := p.UsageWriter
	if usageWriter == nil {
		usageWriter = NoOpClassUsageFileWriter{}
	}
	fs := p.FS
	if fs == nil {
		fs = afs.New()
	}
	options := p.Options
	options.ExtraArguments = append([]string(nil), p.Options.ExtraArguments...)

	return &Step{
		target:            p.Target,
		compiler:          p.Compiler,
		sources:           sortedUnique(p.Sources),
		outputDirectory:   p.OutputDirectory,
		classpath:         sortedUnique(p.Classpath),
		options:           options,
		pathToSourcesList: p.PathToSourcesList,
		usageWriter:       usageWriter,
		suggester:         p.Suggester,
		fs:                fs,
	}
}

// ShortName implements step.Step.
func (s *Step) ShortName() string { return "javac" }

// Description implements step.Step.
func (s *Step) Description(*step.ExecutionContext) string {
	return shellescape.QuoteCommand(s.Command())
}

// Command assembles the compiler invocation.
func (s *Step) Command() []string {
	cmd := []string{s.compiler}
	cmd = append(cmd, s.options.arguments()...)
	cmd = append(cmd, "-d", s.outputDirectory)
	if len(s.classpath) > 0 {
		cmd = append(cmd, "-classpath", strings.Join(s.classpath, string(os.PathListSeparator)))
	}
	cmd = append(cmd, s.options.ExtraArguments...)
	if s.pathToSourcesList != "" {
		return append(cmd, "@"+s.pathToSourcesList)
	}
	return append(cmd, s.sources...)
}

// Execute implements step.Step.
func (s *Step) Execute(ec *step.ExecutionContext) (step.ExecutionResult, error) {
	ctx := ec.Ctx()
	log := ec.Log().With("component", "javac", "target", s.target)

	if len(s.sources) == 0 {
		log.Debug(ctx, "no sources to compile")
		return step.Success{}, nil
	}
	if ec.Executor == nil {
		return nil, javacerrors.NewExecutionError(s.target, fmt.Errorf("no process executor configured"))
	}
	if err := s.prepare(ctx, ec); err != nil {
		return nil, javacerrors.NewExecutionError(s.target, err)
	}

	out, err := ec.Executor.Execute(ctx, ports.ProcessParams{
		Command: s.Command(),
		Dir:     ec.WorkDir,
		Env:     ec.Env,
	})
	if err != nil {
		log.Error(ctx, "compiler did not run", "error", err)
		return nil, err
	}

	result := step.ResultOf(out.ExitCode, out.Stderr)
	switch r := result.(type) {
	case step.Success:
		if err := s.usageWriter.WriteFile(ctx, s.fs, ec.Resolve(s.outputDirectory)); err != nil {
			return nil, javacerrors.NewExecutionError(s.target, fmt.Errorf("write class usage file: %w", err))
		}
	case step.Failure:
		log.Info(ctx, "compilation failed", "exit_code", r.Code)
		s.reportFailure(ec, out)
	default:
		return nil, javacerrors.NewExecutionError(s.target, fmt.Errorf("unexpected result %T", result))
	}
	return result, nil
}

// prepare creates the output directory and writes the sources list.
func (s *Step) prepare(ctx context.Context, ec *step.ExecutionContext) error {
	if err := s.ensureDir(ctx, ec.Resolve(s.outputDirectory)); err != nil {
		return err
	}
	if s.pathToSourcesList == "" {
		return nil
	}

	listPath := ec.Resolve(s.pathToSourcesList)
	if err := s.ensureDir(ctx, filepath.Dir(listPath)); err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, source := range s.sources {
		buf.WriteString(source)
		buf.WriteByte('\n')
	}
	if err := s.fs.Upload(ctx, listPath, file.DefaultFileOsMode, &buf); err != nil {
		return fmt.Errorf("write sources list %s: %w", listPath, err)
	}
	return nil
}

func (s *Step) ensureDir(ctx context.Context, dir string) error {
	exists, err := s.fs.Exists(ctx, dir)
	if err != nil {
		return fmt.Errorf("check %s: %w", dir, err)
	}
	if exists {
		return nil
	}
	if err := s.fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

// reportFailure forwards stdout and then stderr as separate console messages,
// each only when non-empty, followed by rule suggestions when available.
func (s *Step) reportFailure(ec *step.ExecutionContext, out ports.ProcessResult) {
	ctx := ec.Ctx()
	log := ec.Log().With("component", "javac", "target", s.target)

	if out.Stdout != "" {
		if err := ec.PostConsoleMessage(ports.LogLevelInfo, out.Stdout); err != nil {
			log.Warn(ctx, "could not forward compiler stdout", "error", err)
		}
	}
	if out.Stderr != "" {
		if err := ec.PostConsoleMessage(ports.LogLevelError, out.Stderr); err != nil {
			log.Warn(ctx, "could not forward compiler stderr", "error", err)
		}
	}

	if s.suggester == nil {
		return
	}
	missing := FindFailedImports(out.Stderr)
	if missing.Len() == 0 {
		return
	}
	rules, err := s.suggester.SuggestRules(ctx, missing)
	if err != nil {
		log.Warn(ctx, "rule suggestion failed", "error", err)
		return
	}
	if len(rules) == 0 {
		return
	}
	message := fmt.Sprintf("Rule %s has failed to build.\nTry adding the following deps:\n%s\n",
		s.target, strings.Join(rules, "\n"))
	if err := ec.PostConsoleMessage(ports.LogLevelWarning, message); err != nil {
		log.Warn(ctx, "could not forward rule suggestions", "error", err)
	}
}

func sortedUnique(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	unique := sorted[:1]
	for _, v := range sorted[1:] {
		if v != unique[len(unique)-1] {
			unique = append(unique, v)
		}
	}
	return unique
}

var _ step.Step = (*Step)(nil)
