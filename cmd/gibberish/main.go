package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/lth/gibberish/internal/gibberish"
	"github.com/lth/gibberish/internal/logger"
	"github.com/lth/gibberish/internal/options"
	"github.com/lth/gibberish/internal/producer"
	"github.com/lth/gibberish/internal/randsrc"
)

var (
	version = "1.0.0"

	encoding   string
	size       int
	eol        string
	configFile string
	count      int
	workers    int
	seed       int64
	outFile    string
	indexFile  string
	inFile     string
	toUTF8     bool
	progress   bool
	verbose    bool
	logFormat  string
	duration   time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gibberish",
		Short: "Generate buffers of random pseudo-words",
		Long: `gibberish v` + version + `
Writes random pseudo-words (letters and spaces only) divided into lines by an
end-of-line marker. Useful for fuzzing text processing code and filling test
fixtures.

Encodings: ascii, latin1, win1252. EOL markers: lf, cr, crlf, nel (latin1 only).
Settings are read from GIBBERISH_ENCODING, GIBBERISH_SIZE and GIBBERISH_EOL
(also from a .env file), then from --config, then from flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	addConfigFlags(rootCmd)
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of buffers to write; 0 writes until interrupted")
	rootCmd.Flags().IntVarP(&workers, "workers", "t", runtime.NumCPU(), "Number of worker threads")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible output (0 uses crypto/rand)")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default stdout)")
	rootCmd.Flags().StringVar(&indexFile, "index", "", "Write line spans as JSON lines to this file (not with --utf8)")
	rootCmd.Flags().BoolVar(&toUTF8, "utf8", false, "Transcode the output to UTF-8")
	rootCmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar on stderr")
	rootCmd.Flags().StringVar(&logFormat, "log-format", string(logger.FormatText), "Log format: text, json")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a file is valid gibberish for the given encoding and eol",
		RunE:  runVerify,
	}
	addConfigFlags(verifyCmd)
	verifyCmd.Flags().StringVarP(&inFile, "file", "f", "", "File to verify (required)")
	verifyCmd.MarkFlagRequired("file")

	benchCmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Run performance benchmark",
		RunE:  runBenchmark,
	}
	addConfigFlags(benchCmd)
	benchCmd.Flags().IntVarP(&workers, "workers", "t", runtime.NumCPU(), "Number of worker threads")
	benchCmd.Flags().DurationVarP(&duration, "duration", "d", 5*time.Second, "How long to run")

	rootCmd.AddCommand(verifyCmd, benchCmd)
	return rootCmd
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "ascii", "Encoding: ascii, latin1, win1252")
	cmd.Flags().IntVarP(&size, "size", "s", gibberish.DefaultSize, "Buffer size in bytes")
	cmd.Flags().StringVarP(&eol, "eol", "l", "lf", "End of line marker: lf, cr, crlf, nel")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML file with encoding, size and eol")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// resolveConfig applies env, the config file and explicitly set flags, in
// that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (gibberish.Config, error) {
	opts, err := options.FromEnv()
	if err != nil {
		return gibberish.Config{}, err
	}
	if configFile != "" {
		if opts, err = options.LoadFile(configFile, opts); err != nil {
			return gibberish.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		opts.Encoding = encoding
	}
	if flags.Changed("size") {
		opts.Size = size
	}
	if flags.Changed("eol") {
		opts.EOL = eol
	}
	return opts.Config()
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	format, err := logger.ParseFormat(logFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithVerbose(verbose),
		logger.WithAttr(slog.String("run_id", uuid.NewString())),
	), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if toUTF8 && indexFile != "" {
		return errIndexWithUTF8
	}
	log.Debug("configuration",
		slog.String("encoding", cfg.Encoding.String()),
		slog.Int("size", cfg.Size),
		slog.String("eol", cfg.EOL.String()),
		slog.Int("count", count),
		slog.Int("workers", workers),
		slog.Bool("seeded", seed != 0),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var outF, indexF *os.File
	closeFiles := func() error {
		var errs []error
		if indexF != nil {
			errs = append(errs, indexF.Close())
		}
		if outF != nil {
			errs = append(errs, outF.Close())
		}
		return errors.Join(errs...)
	}

	var out io.Writer = cmd.OutOrStdout()
	if outFile != "" {
		if outF, err = os.Create(outFile); err != nil {
			return err
		}
		out = outF
	}
	bw := bufio.NewWriter(out)
	var w io.Writer = bw
	var tw *transform.Writer
	if toUTF8 {
		tw = transform.NewWriter(bw, gibberish.Charmap(cfg.Encoding).NewDecoder())
		w = tw
	}

	var index *json.Encoder
	var ib *bufio.Writer
	if indexFile != "" {
		if indexF, err = os.Create(indexFile); err != nil {
			closeFiles()
			return err
		}
		ib = bufio.NewWriter(indexF)
		index = json.NewEncoder(ib)
	}

	var bar *progressbar.ProgressBar
	if progress {
		total := int64(-1)
		if count > 0 {
			total = int64(count) * int64(cfg.Size)
		}
		bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	p := producer.New(cfg, randsrc.New(seed), workers)

	var n int
	res, runErr := p.Run(ctx, count, func(r *gibberish.Result) error {
		if _, err := w.Write(r.Buffer); err != nil {
			return err
		}
		if index != nil {
			for _, ln := range r.Lines {
				if err := index.Encode(indexEntry{Buffer: n, LineSpan: ln}); err != nil {
					return err
				}
			}
		}
		n++
		if bar != nil {
			bar.Add(len(r.Buffer))
		}
		return nil
	})

	if bar != nil {
		bar.Finish()
	}
	if tw != nil {
		if err := tw.Close(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if err := bw.Flush(); err != nil && runErr == nil {
		runErr = err
	}
	if ib != nil {
		if err := ib.Flush(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if err := closeFiles(); err != nil && runErr == nil {
		runErr = err
	}

	if count <= 0 && errors.Is(runErr, context.Canceled) {
		log.Debug("interrupted")
		runErr = nil
	}
	if runErr != nil {
		log.Error("generation failed", logger.Err(runErr), slog.Uint64("buffers", res.Buffers))
		return runErr
	}

	log.Info("done",
		slog.Uint64("buffers", res.Buffers),
		slog.Uint64("bytes", res.Bytes),
		slog.String("elapsed", formatDuration(res.Duration)),
	)
	return nil
}

// Index offsets address the encoded buffer; after transcoding to UTF-8 they
// would not line up with the written file.
var errIndexWithUTF8 = errors.New("--index cannot be combined with --utf8")

type indexEntry struct {
	Buffer int `json:"buffer"`
	gibberish.LineSpan
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inFile)
	if err != nil {
		return err
	}

	lines, err := gibberish.Scan(cfg, data)
	if err != nil {
		return fmt.Errorf("%s: %w", inFile, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:     %s\n", inFile)
	fmt.Fprintf(out, "Encoding: %s\n", cfg.Encoding)
	fmt.Fprintf(out, "EOL:      %s\n", cfg.EOL)
	fmt.Fprintf(out, "Bytes:    %d\n", len(data))
	fmt.Fprintf(out, "Lines:    %d\n", len(lines))
	return nil
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Benchmarking %s/%s, %d byte buffers, %d workers...\n", cfg.Encoding, cfg.EOL, cfg.Size, workers)

	ctx, cancel := context.WithTimeout(cmd.Context(), duration)
	defer cancel()

	p := producer.New(cfg, randsrc.New(0), workers)
	res, err := p.Run(ctx, 0, func(*gibberish.Result) error { return nil })
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	rate := float64(res.Bytes) / res.Duration.Seconds() / (1 << 20)
	fmt.Fprintf(out, "Buffers: %d in %s\n", res.Buffers, formatDuration(res.Duration))
	fmt.Fprintf(out, "Rate:    %.1f MiB/s\n", rate)
	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
