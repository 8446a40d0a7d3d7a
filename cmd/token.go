package cmd

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"droscher.com/BeerHall/configs"
	"droscher.com/BeerHall/pkg/auth"
)

type TokenCmd struct {
	ConfigFile string `default:".BeerHall.toml" help:"Path to config file" short:"c"`
	Email      string `help:"Email of the administrator" required:""`
}

func (t *TokenCmd) Run(_ *Context) error {
	logger := developmentLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(t.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	token, err := auth.NewAuthManager(conf.Auth, logger).IssueToken(t.Email, time.Now())
	if err != nil {
		logger.Error("error issuing token", zap.Error(err))

		return err
	}

	fmt.Println(token) //nolint:forbidigo // the token is the output of this command

	return nil
}
