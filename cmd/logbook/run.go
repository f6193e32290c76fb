package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/logbook/internal/app"
	"github.com/heartmarshall/logbook/internal/config"
	"github.com/heartmarshall/logbook/internal/service/logbook"
	"github.com/heartmarshall/logbook/pkg/ctxutil"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

const usage = `usage: logbook [-config path] <command> [arguments]

commands:
  types
  type NAME
  add NAME DESC [k=v ...]
  record [-type T] [-conform] NAME DESC [k=v ...]
  set-prop ID KEY VALUE
  logs
  props [-history] ID
  migrate
  version
`

// command runs against an opened logbook and writes its result to out.
type command func(ctx context.Context, svc *logbook.Service, args []string, out io.Writer) error

var commands = map[string]command{
	"types":    cmdTypes,
	"type":     cmdType,
	"add":      cmdAdd,
	"record":   cmdRecord,
	"set-prop": cmdSetProp,
	"logs":     cmdLogs,
	"props":    cmdProps,
	"migrate":  cmdMigrate,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("logbook", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "path to the YAML config file (default $CONFIG_PATH or ./config.yaml)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "version" {
		fmt.Fprintln(stdout, app.BuildVersion())
		return exitOK
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "logbook: unknown command %q\n", name)
		fs.Usage()
		return exitUsage
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "logbook: %v\n", err)
		return exitError
	}

	logger := app.NewLogger(stderr, cfg.Log)
	ctx, _ = ctxutil.WithNewRequestID(ctx)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "open logbook", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "logbook: %v\n", err)
		return exitError
	}
	defer a.Close()

	if name == "migrate" {
		rest = append([]string{a.Driver}, rest...)
	}

	if err := cmd(ctx, a.Logbook, rest, stdout); err != nil {
		fmt.Fprintf(stderr, "logbook %s: %v\n", name, err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdTypes(_ context.Context, svc *logbook.Service, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageErr("types takes no arguments")
	}
	return writeJSON(out, svc.ListLogTypes())
}

func cmdType(_ context.Context, svc *logbook.Service, args []string, out io.Writer) error {
	if len(args) != 1 {
		return usageErr("type NAME")
	}
	attrs, ok := svc.GetLogType(args[0])
	if !ok {
		return fmt.Errorf("log type %q is not registered", args[0])
	}
	return writeJSON(out, attrs)
}

func cmdAdd(ctx context.Context, svc *logbook.Service, args []string, out io.Writer) error {
	if len(args) < 2 {
		return usageErr("add NAME DESC [k=v ...]")
	}
	props, err := parseProps(args[2:])
	if err != nil {
		return err
	}

	var id int64
	if len(props) == 0 {
		id, err = svc.AddLog(ctx, args[0], args[1])
	} else {
		id, err = svc.AddLogWithProps(ctx, args[0], args[1], props)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, id)
	return nil
}

func cmdRecord(ctx context.Context, svc *logbook.Service, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	typeName := fs.String("type", "", "log type to resolve props against")
	conformFlag := fs.Bool("conform", false, "drop props the type does not declare")
	if err := fs.Parse(args); err != nil {
		return usageErr("%v", err)
	}
	if fs.NArg() < 2 {
		return usageErr("record [-type T] [-conform] NAME DESC [k=v ...]")
	}

	props, err := parseProps(fs.Args()[2:])
	if err != nil {
		return err
	}

	input := logbook.RecordLogInput{
		Name:        fs.Arg(0),
		Description: fs.Arg(1),
		Props:       props,
		Conform:     *conformFlag,
	}
	if *typeName != "" {
		input.Type = typeName
	}

	id, err := svc.RecordLog(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, id)
	return nil
}

func cmdSetProp(ctx context.Context, svc *logbook.Service, args []string, out io.Writer) error {
	if len(args) != 3 {
		return usageErr("set-prop ID KEY VALUE")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return svc.SetProp(ctx, id, args[1], args[2])
}

func cmdLogs(ctx context.Context, svc *logbook.Service, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageErr("logs takes no arguments")
	}
	logs, err := svc.ListLogs(ctx)
	if err != nil {
		return err
	}
	return writeJSON(out, logs)
}

func cmdProps(ctx context.Context, svc *logbook.Service, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("props", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	history := fs.Bool("history", false, "show every property row, repeated keys included")
	if err := fs.Parse(args); err != nil {
		return usageErr("%v", err)
	}
	if fs.NArg() != 1 {
		return usageErr("props [-history] ID")
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	if *history {
		rows, err := svc.PropHistory(ctx, id)
		if err != nil {
			return err
		}
		return writeJSON(out, rows)
	}

	props, err := svc.PropsFor(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(out, props)
}

// cmdMigrate has nothing left to do: opening the logbook applied the
// migrations. args[0] is the driver name.
func cmdMigrate(_ context.Context, _ *logbook.Service, args []string, out io.Writer) error {
	if len(args) != 1 {
		return usageErr("migrate takes no arguments")
	}
	fmt.Fprintf(out, "%s schema is up to date\n", args[0])
	return nil
}
