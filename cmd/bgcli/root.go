package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"crosswarped.com/boggle"
	"crosswarped.com/boggle/pkg/cache"
	"crosswarped.com/boggle/pkg/wordlist"
)

type options struct {
	configPath    string
	dictionary    string
	separator     string
	minWordLength int
	cacheDir      string
	cacheTTL      time.Duration
	redisAddr     string
	noBoard       bool
	verbose       bool

	profile           bool
	profileFile       string
	memoryProfileFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "bgcli [row...]",
		Short: "Find every dictionary word on a Boggle board",
		Long: `bgcli lists every word of four or more letters that can be traced on a
square Boggle board through touching tiles, diagonals included, without
using a tile twice. Enter "q" for the "Qu" tile.

Rows are read from the arguments, or prompted for when none are given.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "TOML config file (default <user config dir>/bgcli/config.toml)")
	pf.StringVar(&opts.dictionary, "dict", "", "word list file (default: the bundled list)")
	pf.StringVar(&opts.separator, "sep", wordlist.DefaultSeparator, "word separator in the word list; newlines always separate")
	pf.IntVar(&opts.minWordLength, "min-length", 0, "shortest word to report (default 4)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	f := root.Flags()
	f.StringVar(&opts.cacheDir, "cache-dir", "", "cache solved boards in this directory")
	f.DurationVar(&opts.cacheTTL, "cache-ttl", 7*24*time.Hour, "how long cached boards stay valid (0 = forever)")
	f.StringVar(&opts.redisAddr, "redis", "", "cache solved boards in the Redis server at this address")
	f.BoolVar(&opts.noBoard, "no-board", false, "do not echo the board before the results")
	f.BoolVar(&opts.profile, "profile", false, "profile the search")
	f.StringVar(&opts.profileFile, "profile-file", "cpu.pprof", "the file to write the CPU profile to")
	f.StringVar(&opts.memoryProfileFile, "memory-profile-file", "mem.pprof", "the file to write the memory profile to")

	root.AddCommand(newWordsCmd(opts))
	return root
}

// setup is what every command needs before it can search.
type setup struct {
	logger *log.Logger
	cfg    config
	board  boggle.Board
	words  []string
}

func prepare(cmd *cobra.Command, opts *options, args []string) (*setup, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	path, explicit := opts.configPath, cmd.Flags().Changed("config")
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return nil, err
	}
	cfg.applyFlags(cmd.Flags(), opts)

	rows := args
	if len(rows) == 0 {
		if rows, err = promptRows(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return nil, err
		}
	}
	board, err := boggle.ParseBoard(rows)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed board", "size", board.Size(), "board", board.DebugString())

	words, err := loadWords(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &setup{logger: logger, cfg: cfg, board: board, words: words}, nil
}

func loadWords(ctx context.Context, cfg config) ([]string, error) {
	p := newProgress(loggerFromContext(ctx))
	if cfg.Dictionary == "" {
		words := wordlist.Default()
		p.done(fmt.Sprintf("Loaded %d bundled words", len(words)))
		return words, nil
	}

	words, err := wordlist.LoadFile(ctx, cfg.Dictionary, cfg.Separator)
	if err != nil {
		return nil, fmt.Errorf("loading words: %w", err)
	}
	p.done(fmt.Sprintf("Loaded %d words from %s", len(words), cfg.Dictionary))
	return words, nil
}

// openCache picks Redis over a cache directory, and no cache when neither is set.
func openCache(ctx context.Context, cfg config) (cache.Cache, error) {
	logger := loggerFromContext(ctx)
	switch {
	case cfg.RedisAddr != "":
		logger.Debug("Using Redis cache", "addr", cfg.RedisAddr)
		return cache.NewRedisCache(ctx, cfg.RedisAddr, "bgcli:")
	case cfg.CacheDir != "":
		logger.Debug("Using file cache", "dir", cfg.CacheDir)
		return cache.NewFileCache(cfg.CacheDir)
	}
	return cache.NewNullCache(), nil
}

func runSolve(cmd *cobra.Command, opts *options, args []string) error {
	s, err := prepare(cmd, opts, args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	c, err := openCache(ctx, s.cfg)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer c.Close()

	if opts.profile {
		stop, err := startProfile(opts, s.logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	solver := boggle.CreateSolver(s.board, s.words, boggle.SolverParams{MinWordLength: s.cfg.MinWordLength})

	p := newProgress(s.logger)
	res, cached, err := boggle.SolveCached(ctx, c, solver, opts.cacheTTL)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Searched %d candidates", res.Candidates))

	out := cmd.OutOrStdout()
	if !opts.noBoard {
		printBoard(out, s.board)
	}
	printResult(out, res, p.elapsed(), cached)
	return nil
}

// startProfile starts CPU profiling and returns a func that stops it and
// writes the heap profile.
func startProfile(opts *options, logger *log.Logger) (func(), error) {
	f, err := os.Create(opts.profileFile)
	if err != nil {
		return nil, fmt.Errorf("creating profile file: %w", err)
	}
	mf, err := os.Create(opts.memoryProfileFile)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating memory profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		mf.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()
		f.Close()
		if err := pprof.WriteHeapProfile(mf); err != nil {
			logger.Error("Writing memory profile", "file", opts.memoryProfileFile, "err", err)
		}
		mf.Close()
	}, nil
}

func newWordsCmd(opts *options) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "words [row...]",
		Short: "Show how much of the dictionary a board could possibly spell",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd, opts, args)
			if err != nil {
				return err
			}

			solver := boggle.CreateSolver(s.board, s.words, boggle.SolverParams{MinWordLength: s.cfg.MinWordLength})
			candidates, prefixes, err := solver.Candidates(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printCandidates(out, s.board.Alphabet(), len(s.words), len(candidates), prefixes)
			if list {
				for _, w := range candidates {
					fmt.Fprintln(out, w)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the candidate words")
	return cmd
}
