package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/ablescan/ablescan/config"
	"github.com/ablescan/ablescan/match"
	"github.com/ablescan/ablescan/render"
)

// conf lazily loads the layered configuration (user file, project file).
// Environment variables and flags take precedence over it.
var conf = sync.OnceValue(func() *config.Config {
	c, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return c
})

func defaultDocPath() string {
	if v := os.Getenv("ABLESCAN_DOC_PATH"); v != "" {
		return v
	}
	return conf().Docs.Path
}

func defaultLexiconPath() string {
	if v := os.Getenv("ABLESCAN_LEXICON_PATH"); v != "" {
		return v
	}
	return conf().Lexicon.Path
}

func defaultFormat() string {
	if f := conf().Render.Format; f != "" {
		return f
	}
	return render.Defaultformat
}

// Option structs for subcommands that have flags
type ScanOptions struct {
	Labels      []string
	Properties  []string
	JSON        bool
	Highlight   bool
	NoColor     bool
	Format      string
	LexiconPath string
	DocPath     string
	Doc         *int // nil = not set
	Sent        *int // nil = not set
}

type DocOptions struct {
	Start   int
	Count   int
	DocPath string
}

type SentenceOptions struct {
	DocPath string
}

type QueryOptions struct {
	NoColor     bool
	NoPrefix    bool
	Format      string
	LexiconPath string
	DocPath     string
}

type EditOptions struct {
	LexiconPath string
}

type StatOptions struct {
	DocPath     string
	LexiconPath string
}

type LsLabelsOptions struct {
	Match   string
	DocPath string
}

type ImportDocOptions struct {
	From string
	To   string
}

type ExportDocOptions struct {
	From string
	To   string
}

// stringSliceFlag implements flag.Value for multi-value strings
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// optionalInt implements flag.Value for optional integer flags
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

var digitRegex = regexp.MustCompile(`^\d+$`)

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("ablescan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseScanArgs(args []string, ui UI) (ScanOptions, []string, error) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ScanOptions
	labels := (*stringSliceFlag)(&opts.Labels)
	fs.Var(labels, "label", "Only scan docs whose labels match (contains)")
	fs.Var(labels, "l", "alias for -label")

	props := (*stringSliceFlag)(&opts.Properties)
	fs.Var(props, "property", "Match property to report (repeatable). Default: phrase, lemma, position, alternatives, example")
	fs.Var(props, "p", "alias for -property")

	fs.BoolVar(&opts.JSON, "json", false, "Output matches as JSON")
	fs.BoolVar(&opts.JSON, "j", false, "alias for -json")

	fs.BoolVar(&opts.Highlight, "highlight", false, "Show matched sentences with the flagged words highlighted instead of the report")
	fs.BoolVar(&opts.Highlight, "H", false, "alias for -highlight")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show matched sentences without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	var docOpt, sentOpt optionalInt
	fs.Var(&docOpt, "doc", "Limit the scan to the doc specified by this number")
	fs.Var(&docOpt, "d", "alias for -doc")

	fs.Var(&sentOpt, "sent", "Limit the scan to the sentence specified by this number. Needs --doc")
	fs.Var(&sentOpt, "s", "alias for -sent")

	opts.Format = defaultFormat()
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "With -highlight: show whole sentence (all), only surrounding of matched words (part) or only matched words (lemma)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.StringVar(&opts.LexiconPath, "lexicon-path", defaultLexiconPath(), "Path to the lexicon directory with the word lists")
	fs.StringVar(&opts.LexiconPath, "lp", defaultLexiconPath(), "alias for -lexicon-path")

	fs.StringVar(&opts.DocPath, "doc-path", defaultDocPath(), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "dp", defaultDocPath(), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s scan [options] [file_path ...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Scan parsed job descriptions for ableist language.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Without file arguments the doc repository is scanned.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, nil, err
	}

	opts.Doc = docOpt.value
	opts.Sent = sentOpt.value

	if opts.Sent != nil && opts.Doc == nil {
		return opts, nil, errors.New("--sent flag given but no --doc")
	}

	if opts.LexiconPath == "" {
		return opts, nil, errors.New("Lexicon path must be specified via -lp or ABLESCAN_LEXICON_PATH")
	}

	if len(opts.Properties) == 0 {
		opts.Properties = render.DefaultProperties
	} else {
		for _, p := range opts.Properties {
			if !match.KnownProperty(p) {
				fmt.Fprintf(ui.Err, "note: %q will be reported as %q\n", p, match.NotAvailable)
			}
		}
	}

	sources := fs.Args()

	// A single directory argument is a doc repository.
	if len(sources) == 1 {
		if info, err := os.Stat(sources[0]); err == nil && info.IsDir() {
			opts.DocPath = sources[0]
			sources = nil
		}
	}

	if len(sources) == 0 && opts.DocPath == "" {
		return opts, nil, errors.New("Doc path must be specified via -dp or ABLESCAN_DOC_PATH when no files are given")
	}

	for _, source := range sources {
		if info, err := os.Stat(source); err != nil || info.IsDir() {
			return opts, nil, fmt.Errorf("file not found: %s", source)
		}
	}

	return opts, sources, nil
}

func parseDocArgs(args []string, ui UI) (DocOptions, string, bool, bool, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DocOptions
	fs.IntVar(&opts.Start, "start", 0, "Index of the first sentence to show")
	fs.IntVar(&opts.Count, "n", -1, "Number of sentences to show (-1 for all)")
	fs.StringVar(&opts.DocPath, "doc-path", defaultDocPath(), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", defaultDocPath(), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] [file_path|db_id]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show contents of a document file or DB entry.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", false, false, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", false, false, err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", false, false, errors.New("doc command accepts at most one argument")
	}

	arg := fs.Arg(0)
	isArgFile := false

	if arg != "" {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			isArgFile = true
		} else if !digitRegex.MatchString(arg) {
			return opts, "", false, false, fmt.Errorf("file not found and not a valid DB ID: %s", arg)
		}
	}

	isRepoFile := false
	if !isArgFile {
		if opts.DocPath == "" {
			return opts, "", false, false, errors.New("Doc path must be specified via -d or ABLESCAN_DOC_PATH when not reading from a file")
		}
		info, err := os.Stat(opts.DocPath)
		if err != nil {
			return opts, "", false, false, fmt.Errorf("Doc path not found: %s", opts.DocPath)
		}
		isRepoFile = !info.IsDir()
	}

	return opts, arg, isArgFile, isRepoFile, nil
}

func parseSentenceArgs(args []string, ui UI) (SentenceOptions, string, int, bool, error) {
	fs := flag.NewFlagSet("sentence", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SentenceOptions
	fs.StringVar(&opts.DocPath, "doc-path", defaultDocPath(), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", defaultDocPath(), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s sentence <source> <sentenceId>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show a specific sentence details. <source> can be a file path or a DB ID.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", 0, false, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", 0, false, err
	}

	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", 0, false, errors.New("sentence command needs exactly two arguments: <source> <sentenceId>")
	}

	source := fs.Arg(0)
	sentId, sentErr := strconv.Atoi(fs.Arg(1))
	if sentErr != nil {
		return opts, "", 0, false, fmt.Errorf("invalid sentenceId: %v", sentErr)
	}

	isFile := false
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		isFile = true
	} else if !digitRegex.MatchString(source) {
		return opts, "", 0, false, fmt.Errorf("source not found and not a valid DB ID: %s", source)
	}

	if !isFile && opts.DocPath == "" {
		return opts, "", 0, false, errors.New("Doc path must be specified via -d or ABLESCAN_DOC_PATH when not reading from a file")
	}

	return opts, source, sentId, isFile, nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, bool, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	fs.BoolVar(&opts.NoColor, "no-color", false, "Show matched sentences without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Show matched sentences without prefixes with metadata")
	fs.BoolVar(&opts.NoPrefix, "x", false, "alias for -no-prefix")

	opts.Format = defaultFormat()
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Show whole sentence (all), only surrounding of matched words (part) or only matched words (lemma)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.StringVar(&opts.LexiconPath, "lexicon-path", defaultLexiconPath(), "Path to the lexicon directory with the word lists")
	fs.StringVar(&opts.LexiconPath, "lp", defaultLexiconPath(), "alias for -lexicon-path")

	fs.StringVar(&opts.DocPath, "doc-path", defaultDocPath(), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", defaultDocPath(), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive query mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, false, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, false, err
	}

	if opts.LexiconPath == "" {
		return opts, false, errors.New("Lexicon path must be specified via -lp or ABLESCAN_LEXICON_PATH")
	}

	if opts.DocPath == "" {
		return opts, false, errors.New("Doc path must be specified via -d or ABLESCAN_DOC_PATH")
	}

	dinfo, err := os.Stat(opts.DocPath)
	if err != nil {
		return opts, false, fmt.Errorf("Doc path not found: %s", opts.DocPath)
	}

	return opts, !dinfo.IsDir(), nil
}

func parseEditArgs(args []string, ui UI) (EditOptions, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts EditOptions
	fs.StringVar(&opts.LexiconPath, "lexicon-path", defaultLexiconPath(), "Path to the lexicon directory with the word lists")
	fs.StringVar(&opts.LexiconPath, "lp", defaultLexiconPath(), "alias for -lexicon-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s edit [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive lexicon edit mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.LexiconPath == "" {
		return opts, errors.New("Lexicon path must be specified via -lp or ABLESCAN_LEXICON_PATH")
	}

	info, err := os.Stat(opts.LexiconPath)
	if err != nil || !info.IsDir() {
		return opts, fmt.Errorf("Lexicon path is not a directory: %s", opts.LexiconPath)
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, string, *int, bool, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.DocPath, "doc-path", defaultDocPath(), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", defaultDocPath(), "alias for -doc-path")

	fs.StringVar(&opts.LexiconPath, "lexicon-path", defaultLexiconPath(), "Path to the lexicon directory with the word lists")
	fs.StringVar(&opts.LexiconPath, "lp", defaultLexiconPath(), "alias for -lexicon-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat <source> [sentenceId]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show statistics for a document or sentence. <source> can be a file path or a DB ID.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", nil, false, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", nil, false, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", nil, false, errors.New("stat command needs at least one argument")
	}

	source := fs.Arg(0)
	var sentId *int
	if fs.NArg() > 1 {
		v, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			return opts, "", nil, false, fmt.Errorf("invalid sentenceId: %v", err)
		}
		sentId = &v
	}

	isFile := false
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		isFile = true
	} else if !digitRegex.MatchString(source) {
		return opts, "", nil, false, fmt.Errorf("source not found and not a valid DB ID: %s", source)
	}

	if !isFile && opts.DocPath == "" {
		return opts, "", nil, false, errors.New("Doc path must be specified via -d or ABLESCAN_DOC_PATH when not reading from a file")
	}

	return opts, source, sentId, isFile, nil
}

func parseLsLabelsArgs(args []string, ui UI) (LsLabelsOptions, error) {
	fs := flag.NewFlagSet("ls-labels", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LsLabelsOptions
	fs.StringVar(&opts.Match, "match", "", "Only show labels containing this string")
	fs.StringVar(&opts.Match, "m", "", "alias for -match")

	fs.StringVar(&opts.DocPath, "doc-path", defaultDocPath(), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", defaultDocPath(), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s ls-labels [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the labels of all docs in the repository.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.DocPath == "" {
		return opts, errors.New("Doc path must be specified via -d or ABLESCAN_DOC_PATH")
	}

	return opts, nil
}

func parseImportDocArgs(args []string, ui UI) (ImportDocOptions, error) {
	fs := flag.NewFlagSet("import-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportDocOptions
	fs.StringVar(&opts.From, "from", "", "Source directory with JSON docs")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import-doc --from <dir> --to <sqlite_file>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseExportDocArgs(args []string, ui UI) (ExportDocOptions, error) {
	fs := flag.NewFlagSet("export-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportDocOptions
	fs.StringVar(&opts.From, "from", "", "Source SQLite database file")
	fs.StringVar(&opts.To, "to", "", "Target directory for JSON docs")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export-doc --from <sqlite_file> --to <dir>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseMigrateArgs(args []string, ui UI) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts migrateOptions
	fs.StringVar(&opts.From, "from", "", "Source directory with legacy JSON docs")
	fs.StringVar(&opts.To, "to", "", "Target directory for migrated JSON docs")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s migrate --from <dir> --to <dir>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Ableist language detector for parsed job descriptions\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  scan        Scan job descriptions for ableist language.\n")
		_, _ = fmt.Fprintf(output, "  doc         Show contents of a document file or DB entry.\n")
		_, _ = fmt.Fprintf(output, "  sentence    Show a specific sentence details.\n")
		_, _ = fmt.Fprintf(output, "  query       Enter interactive query mode.\n")
		_, _ = fmt.Fprintf(output, "  edit        Enter interactive lexicon edit mode.\n")
		_, _ = fmt.Fprintf(output, "  stat        Show statistics for a document or sentence.\n")
		_, _ = fmt.Fprintf(output, "  ls-labels   List the labels of all docs.\n")
		_, _ = fmt.Fprintf(output, "  import-doc  Import docs from filesystem to SQLite.\n")
		_, _ = fmt.Fprintf(output, "  export-doc  Export docs from SQLite to filesystem.\n")
		_, _ = fmt.Fprintf(output, "  migrate     Migrate legacy doc files to the current format.\n")
		_, _ = fmt.Fprintf(output, "  bash        Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version     Show version information.\n")
		_, _ = fmt.Fprintf(output, "  help        Show help for a command.\n")
	}
}
