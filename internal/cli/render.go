package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/richmd/internal/configloader"
	"github.com/yaklabco/richmd/internal/logging"
	"github.com/yaklabco/richmd/pkg/config"
	"github.com/yaklabco/richmd/pkg/fsutil"
	"github.com/yaklabco/richmd/pkg/highlight"
	"github.com/yaklabco/richmd/pkg/langdetect"
	goldmarkparser "github.com/yaklabco/richmd/pkg/parser/goldmark"
	"github.com/yaklabco/richmd/pkg/reporter"
	"github.com/yaklabco/richmd/pkg/richtext"
)

type renderFlags struct {
	format   string
	flavor   string
	codeLang string
	mentions []string
	output   string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Compile a Markdown document into annotated text",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "",
		"output format: text, ansi, json, spans")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "",
		"markdown flavor: commonmark or gfm")
	cmd.Flags().StringVar(&flags.codeLang, "code-lang", "",
		"default language for untagged code blocks ('auto' to detect)")
	cmd.Flags().StringArrayVar(&flags.mentions, "mention", nil,
		"mention byte range in the source as start-end[:self] (repeatable)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to a file instead of stdout")

	return cmd
}

const renderLongDescription = `Compile a Markdown document into flattened text plus annotations.

Reads from a file argument, or from stdin when no file (or "-") is given.
Mention byte ranges refer to offsets in the Markdown source; they are
spliced into the output text with their positions remapped.

Examples:
  richmd render README.md              # Plain flattened text
  richmd render --format ansi doc.md   # Styled terminal output
  richmd render --format json doc.md   # Text plus annotations as JSON
  richmd render --format spans doc.md  # Annotation table for inspection
  richmd render --mention 10-14 doc.md # Mark bytes 10..14 as a mention
  cat doc.md | richmd render --flavor gfm`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadRenderConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	mentions, err := parseMentions(flags.mentions)
	if err != nil {
		return err
	}

	source, inputPath, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldInput, inputPath,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldFormat, cfg.Format,
		logging.FieldCodeLanguage, cfg.CodeLanguage,
	)

	parser := goldmarkparser.New(string(cfg.Flavor))
	events := parser.Events(source)

	registry := highlight.NewRegistry()
	doc := richtext.Render(events, mentions, registry, defaultLanguage(cfg.CodeLanguage, registry))

	logger.Debug("document compiled",
		logging.FieldBytesIn, len(source),
		logging.FieldTextLen, len(doc.Text),
		logging.FieldSpans, len(doc.Spans),
		logging.FieldLinks, len(doc.LinkRanges),
		logging.FieldMentions, len(mentions),
	)

	return writeOutput(ctx, cmd, cfg, &doc)
}

// loadRenderConfig merges config sources with the render command's flags.
func loadRenderConfig(ctx context.Context, cmd *cobra.Command, flags *renderFlags) (*config.Config, error) {
	cliCfg := &config.Config{
		Flavor:       config.Flavor(flags.flavor),
		CodeLanguage: flags.codeLang,
		Format:       config.OutputFormat(flags.format),
		Output:       flags.output,
	}

	// The color flag carries a default, so copying it unconditionally
	// would shadow RICHMD_COLOR and every config file layer.
	if cmd.Flags().Changed("color") {
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(colorMode)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logging.Default().Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// readInput reads the Markdown source from the file argument or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return source, "stdin", nil
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return source, args[0], nil
}

// writeOutput renders the document to stdout or the --output file.
func writeOutput(ctx context.Context, cmd *cobra.Command, cfg *config.Config, doc *richtext.RichText) error {
	opts := reporter.Options{
		Format: reporter.Format(cfg.Format),
		Color:  string(cfg.Color),
	}

	if cfg.Output == "" {
		opts.Writer = cmd.OutOrStdout()
		renderer, err := reporter.New(opts)
		if err != nil {
			return err
		}
		return renderer.Render(ctx, doc)
	}

	// File output is never a TTY; only "always" keeps color.
	if cfg.Color != config.ColorAlways {
		opts.Color = string(config.ColorNever)
	}

	var buf bytes.Buffer
	opts.Writer = &buf
	renderer, err := reporter.New(opts)
	if err != nil {
		return err
	}
	if err := renderer.Render(ctx, doc); err != nil {
		return err
	}

	if err := fsutil.WriteAtomic(ctx, cfg.Output, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logging.Default().Debug("output written", logging.FieldOutput, cfg.Output)
	return nil
}

// defaultLanguage resolves the configured default code block language.
func defaultLanguage(name string, registry *highlight.Registry) richtext.Language {
	switch name {
	case "":
		return nil
	case config.CodeLanguageAuto:
		return &autoLanguage{registry: registry}
	default:
		if lang, ok := registry.TryLanguage(name); ok {
			return lang
		}
		logging.Default().Warn("unknown default code language", logging.FieldCodeLanguage, name)
		return nil
	}
}

// autoLanguage guesses the language of each untagged code block before
// delegating to the highlighter.
type autoLanguage struct {
	registry *highlight.Registry
}

func (a *autoLanguage) HighlightText(code string) []richtext.SyntaxToken {
	name := langdetect.Detect([]byte(code))
	if name == "" {
		return nil
	}
	lang, ok := a.registry.TryLanguage(name)
	if !ok {
		return nil
	}
	return lang.HighlightText(code)
}
