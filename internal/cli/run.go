package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"

	"github.com/kbukum/gwkit/config"
	"github.com/kbukum/gwkit/logger"
	"github.com/kbukum/gwkit/observability"
	"github.com/kbukum/gwkit/version"
)

// ExitStatus is returned by commands whose result maps to a non-zero exit
// status without being a failure, such as a denied address.
type ExitStatus int

func (s ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

// app is the state shared by the commands of one invocation.
type app struct {
	ctx     context.Context
	out     io.Writer
	opts    *Options
	cfg     Config
	metrics *observability.Metrics
}

// Run parses args and executes the selected command, writing results to
// out. Help requests are written to out and return nil.
func Run(ctx context.Context, args []string, out io.Writer) error {
	a := &app{ctx: ctx, out: out}
	a.opts = newOptions(a)

	parser := flags.NewParser(a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = serviceName
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		teardown, err := a.setup()
		if err != nil {
			return err
		}
		defer teardown()
		return cmd.Execute(args)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if stderrors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(out, flagsErr.Message)
			return nil
		}
		return err
	}
	return nil
}

// setup loads configuration, applies command-line overrides and starts
// logging and telemetry. The returned func releases them.
func (a *app) setup() (func(), error) {
	var loadOpts []config.LoaderOption
	if a.opts.Config != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(a.opts.Config))
	}
	if err := config.LoadConfig(serviceName, &a.cfg, loadOpts...); err != nil {
		return nil, err
	}
	a.cfg.applyFlags(a.opts)
	a.cfg.ApplyDefaults()
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Reset()
	logger.Init(a.cfg.Logging)
	logger.RegisterDefaults(serviceName, "acl", "dialprefix", "wire")
	log := logger.Get(serviceName)

	tel, err := observability.Init(a.ctx, a.cfg.Name, version.GetShortVersion(), a.cfg.Telemetry)
	if err != nil {
		_ = logger.GetGlobalLogger().Close()
		return nil, err
	}
	metrics, err := observability.NewMetrics(observability.Meter("github.com/kbukum/gwkit"))
	if err != nil {
		log.Warn("metrics unavailable", logger.ErrorFields("setup", err))
	}
	a.metrics = metrics

	log.Debug("configuration loaded", logger.Fields(
		"environment", a.cfg.Environment,
		"telemetry", a.cfg.Telemetry.Enabled,
	))

	return func() {
		if err := tel.Shutdown(context.WithoutCancel(a.ctx)); err != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
		}
		_ = logger.GetGlobalLogger().Close()
	}, nil
}
