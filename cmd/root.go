package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                                help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
	Token   TokenCmd   `cmd:"" help:"Issue an access token for an administrator"`
	Import  ImportCmd  `cmd:"" help:"Import brewers from the configured integrations"`
}

// developmentLogger is the logger of the command line tools and of serve --debug.
func developmentLogger() *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()

	return logger
}
