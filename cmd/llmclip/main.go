package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Populated at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	ignorePatterns []string
	noIgnore       bool
	includeHidden  bool
	treeOnly       bool
	quietFlag      bool
	printFlag      bool
	debugFlag      bool
	osc52Flag      bool
	tokensFlag     bool
	tokenModel     string
)

var rootCmd = &cobra.Command{
	Use:   "llmclip [paths...]",
	Short: "Copy files and directory trees to the clipboard for LLM prompts",
	Long: `llmclip collects file and directory contents into a single text
payload with file headers and directory trees, ready to paste into a
large language model prompt, and places it on the system clipboard.

With no path arguments it opens an interactive fuzzy selector over the
project's files.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func run(args []string) error {
	logger := newLogger(debugFlag)
	defer logger.Sync()

	echoMode, err := resolveEchoMode(quietFlag, printFlag)
	if err != nil {
		return err
	}

	// The clipboard backend is chosen up front so a missing backend
	// aborts before any target processing.
	var sink clipboardSink
	if osc52Flag {
		sink = func(data string) error { return copyOSC52(os.Stdout, data) }
		logger.Debug("clipboard backend selected", zap.String("backend", "osc52"))
	} else {
		name, write, err := detectClipboard()
		if err != nil {
			return err
		}
		sink = write
		logger.Debug("clipboard backend selected", zap.String("backend", name))
	}

	root := resolveRoot()
	logger.Debug("resolved project root", zap.String("root", root))

	filter := newFilter(ignorePatterns, noIgnore, includeHidden, logger)

	targets := args
	if len(targets) == 0 {
		if treeOnly {
			targets = []string{"."}
		} else {
			picked, err := selectTargets(root, filter, logger)
			if err != nil {
				return err
			}
			if len(picked) == 0 {
				// Cancelled selection is a normal no-op completion.
				logger.Debug("selection cancelled")
				return nil
			}
			for _, rel := range picked {
				targets = append(targets, filepath.Join(root, filepath.FromSlash(rel)))
			}
		}
	}

	payload, fileCount := assemble(targets, root, filter, treeOnly, logger)
	logger.Debug("payload assembled",
		zap.Int("targets", len(targets)),
		zap.Int("files", fileCount),
		zap.Int("bytes", len(payload)))

	cfg := runConfig{echo: echoMode, treeOnly: treeOnly}
	if err := dispatch(payload, fileCount, cfg, sink, os.Stdout, os.Stderr); err != nil {
		return err
	}

	if tokensFlag {
		reportTokens(payload, tokenModel, os.Stderr, logger)
	}
	return nil
}

func init() {
	rootCmd.Flags().StringArrayVarP(&ignorePatterns, "ignore", "i", nil, "Glob pattern to exclude (repeatable)")
	rootCmd.Flags().BoolVarP(&noIgnore, "no-ignore", "n", false, "Do not respect .gitignore/.ignore files")
	rootCmd.Flags().BoolVarP(&includeHidden, "hidden", "H", false, "Include hidden files and directories")
	rootCmd.Flags().BoolVarP(&treeOnly, "tree-only", "t", false, "Emit directory trees only, without file contents")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Do not echo the payload to stdout (default)")
	rootCmd.Flags().BoolVarP(&printFlag, "print", "p", false, "Echo the payload to stdout")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Emit debug traces to stderr")
	rootCmd.Flags().BoolVar(&osc52Flag, "osc52", false, "Copy via an OSC 52 escape sequence instead of a clipboard command")
	rootCmd.Flags().BoolVar(&tokensFlag, "tokens", false, "Report the payload token count")
	rootCmd.Flags().StringVar(&tokenModel, "token-model", "gpt-4o", "Model used for --tokens estimation")
	rootCmd.Flags().BoolP("version", "v", false, "Print the version and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
