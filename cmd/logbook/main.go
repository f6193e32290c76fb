// Command logbook records typed logs from the command line.
//
// Usage:
//
//	logbook [-config path] <command> [arguments]
//
// Commands:
//
//	types                                     list registered log types
//	type NAME                                 show one log type
//	add NAME DESC [k=v ...]                   record an untyped log
//	record [-type T] [-conform] NAME DESC [k=v ...]
//	                                          record a log, resolving props against T
//	set-prop ID KEY VALUE                     append a property to a log
//	logs                                      list logs
//	props [-history] ID                       show the properties of a log
//	migrate                                   apply pending schema migrations
//	version                                   print the build version
//
// Configuration is read from CONFIG_PATH (or -config) and the environment.
// Exit codes: 0 = success, 1 = error, 2 = usage error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
