package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"enigma-core/engine"
	"enigma-core/fault"

	"enigma/internal/cli"
	"enigma/internal/cmdutil"
	"enigma/internal/config"
	"enigma/internal/message"
	"enigma/internal/runutil"
	"enigma/internal/version"
	"enigma/internal/writers"
)

// exitFailure is the code for errors that carry no machine fault kind.
const exitFailure = 3

// RunContext executes one enigma invocation and returns its exit code.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{}
	}
	log := cmdutil.NewLogger(stderr, false, false)

	var opts cli.Options
	cmd := &cobra.Command{
		Use:           cli.Use,
		Long:          cli.Long,
		Example:       cli.Example,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Args = args
			cmdutil.SetVerbosity(log, opts.Quiet, opts.Verbose)
			if err := cli.Validate(&opts); err != nil {
				return err
			}
			if opts.Version {
				_, err := fmt.Fprintf(stdout, "enigma version %s\n", version.Version)
				return err
			}
			return run(cmd.Context(), opts, stdin, stdout, log)
		},
	}
	cli.Register(cmd.Flags(), &opts)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})
	cmd.SetArgs(argv)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	return report(err, log, stderr, cmd.UsageString())
}

// Run is RunContext without cancellation.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func run(ctx context.Context, opts cli.Options, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	eng, err := assemble(opts, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"rotors": eng.Rotors(), "positions": eng.Positions()}).Debug("machine assembled")

	if opts.Text == "" {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			log.Info("reading message from the terminal; finish with Ctrl-D")
		}
	}

	var (
		results []cmdutil.Result
		runErr  error
	)
	if opts.Lines {
		lines, err := message.Lines(stdin)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		threads, warns := runutil.ValidateThreads(true, opts.Threads, len(lines))
		for _, w := range warns {
			cmdutil.Warnf(log, "%s", w)
		}
		results, runErr = cmdutil.RunLines(ctx, eng, lines, threads)
		log.WithFields(logrus.Fields{"lines": len(lines), "threads": threads}).Debug("line mode finished")
	} else {
		_, warns := runutil.ValidateThreads(false, opts.Threads, 1)
		for _, w := range warns {
			cmdutil.Warnf(log, "%s", w)
		}
		msg := message.Normalize(opts.Text)
		if opts.Text == "" {
			if msg, err = message.Read(stdin); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
		}
		r := cmdutil.Encrypt(eng, 0, msg)
		results, runErr = []cmdutil.Result{r}, r.Err
		log.WithField("positions", r.End).Debug("final positions")
	}

	in, done := writers.StartMessageWriter(stdout, opts.Output, len(results))
	for _, r := range results {
		in <- r
	}
	close(in)
	if err := <-done; err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return runErr
}

// assemble loads the configuration and builds the machine, attributing
// failures to the file they came from.
func assemble(opts cli.Options, log logrus.FieldLogger) (*engine.Engine, error) {
	if opts.Machine != "" {
		cfg, err := config.LoadMachine(opts.Machine)
		if err != nil {
			return nil, err
		}
		log.WithField("file", opts.Machine).Debug("machine description loaded")
		eng, err := engine.Build(cfg)
		return eng, fault.WithSource(err, opts.Machine)
	}

	files, err := config.FilesFromArgs(opts.Args)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(files, log)
	if err != nil {
		return nil, err
	}
	eng, err := engine.Build(cfg)
	return eng, files.Sources(err)
}

// report renders err once and maps it to an exit code.
func report(err error, log logrus.FieldLogger, stderr io.Writer, usage string) int {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case cli.IsUsage(err):
		log.Error(err)
		_, _ = io.WriteString(stderr, usage)
		return int(fault.InsufficientParameters)
	}

	k, ok := fault.KindOf(err)
	if !ok {
		log.Error(err)
		return exitFailure
	}
	fields := logrus.Fields{"code": k.Code()}
	var fe *fault.Error
	if errors.As(err, &fe) && fe.Offset >= 0 {
		fields["offset"] = fe.Offset
	}
	log.WithFields(fields).Error(err)
	if k == fault.InsufficientParameters {
		_, _ = io.WriteString(stderr, usage)
	}
	return k.Code()
}
