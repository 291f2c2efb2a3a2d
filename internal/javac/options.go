package javac

// Options holds the language-level settings passed to the compiler.
type Options struct {
	SourceLevel   string
	TargetLevel   string
	Bootclasspath string
	// Debug adds -g so class files carry full debugging information.
	Debug bool
	// ExtraArguments are passed through after the generated flags, in order.
	ExtraArguments []string
}

// arguments renders the language-level flags.
func (o Options) arguments() []string {
	var args []string
	if o.SourceLevel != "" {
		args = append(args, "-source", o.SourceLevel)
	}
	if o.TargetLevel != "" {
		args = append(args, "-target", o.TargetLevel)
	}
	if o.Bootclasspath != "" {
		args = append(args, "-bootclasspath", o.Bootclasspath)
	}
	if o.Debug {
		args = append(args, "-g")
	}
	return args
}
