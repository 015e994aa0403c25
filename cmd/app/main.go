package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialelections/config"
	"socialelections/internal/command"
	"socialelections/internal/log"
	"socialelections/utils/path"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	_ "socialelections/cmd/docs"
)

var (
	rootPath = path.RootPath()
	Version  string
	envPath  string
	yamlPath string
	conf     *config.Configuration
	logger   *zap.Logger
)

// 掛在 persistent flags，子命令 (ledger / roster) 也讀得到
func registerConfigFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&envPath, "env", "e", "", "Environment file, e.g. --env .env")
	fs.StringVarP(&yamlPath, "config", "c", "", "YAML config file, e.g. --config config.yaml")
}

// initConfig 在 flag 解析後才執行，server 與子命令共用同一份 conf / logger
func initConfig() {
	if envPath != "" && yamlPath != "" {
		fmt.Println("同時指定 --env 與 --config，將以 --env 優先")
	}
	var err error
	conf, err = loadConfig(rootPath, envPath, yamlPath)
	if err != nil {
		panic(err)
	}
	if Version != "" {
		conf.App.Version = Version
	}
	logger, err = log.NewLogger(conf)
	if err != nil {
		panic(fmt.Errorf("init logger failed: %w", err))
	}
}

// @title        Social Elections OR API
// @version      1.0
// @description  Works council (OR) membership ledger：成員名單、排序、unit manager 與 xlsx 名冊
// @host         localhost:3000
// @basePath     /
func main() {
	rootCmd := &cobra.Command{
		Use:          "app",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()
			app, cleanup, err := wireApp(conf, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			logger.Info("start app ...")
			if err := app.Run(); err != nil {
				return err
			}

			select {
			case <-cmd.Context().Done():
			case err := <-app.Err():
				logger.Error("http server stopped", zap.Error(err))
			}

			logger.Info("shutdown app ...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			return app.Stop(ctx)
		},
	}
	registerConfigFlags(rootCmd.PersistentFlags())
	cobra.OnInitialize(initConfig)

	command.Register(rootCmd, func() (*command.Command, func(), error) {
		return wireCommand(conf, logger)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}
