// Package bootstrap runs a finite task with a uniform lifecycle.
//
// NewApp applies config defaults, validates, and initializes the logger.
// RunTask then runs OnStart hooks, executes the task under a context that
// SIGINT/SIGTERM cancel, and runs OnStop hooks within the graceful timeout,
// even when the task failed.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStop(func(ctx context.Context) error { return tp.Shutdown(ctx) })
//	err = app.RunTask(ctx, runScenarios)
package bootstrap
