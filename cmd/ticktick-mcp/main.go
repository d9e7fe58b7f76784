package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/astralhpi/ticktick-mcp/internal/config"
	"github.com/astralhpi/ticktick-mcp/internal/environ"
	"github.com/astralhpi/ticktick-mcp/internal/logging"
)

func main() {
	logger, err := logging.New(logging.OptionsFromEnv())
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	code := run(os.Args[1:], environ.Process{}, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// run parses args, loads the configuration into env and returns the process
// exit code.
func run(args []string, env environ.Environment, logger *zap.Logger) int {
	app := kingpin.New("ticktick-mcp", "Run the TickTick MCP server, specifying the directory for the .env file.")
	dotenvDir := app.Flag("dotenv-dir", "Path to the directory containing the .env file. Defaults to '"+config.DefaultDir+"'.").
		Default(config.DefaultDir).
		String()

	if _, err := app.Parse(args); err != nil {
		logger.Error("invalid command line", zap.Error(err))
		return 1
	}

	cfg, err := config.NewLoader(env, logger).Load(config.Options{Dir: *dotenvDir})
	if err != nil {
		logger.Error("failed to load configuration", zap.Error(err))
		return 1
	}

	logger.Info("configuration ready",
		zap.String("dir", cfg.Dir),
		zap.Bool("settings_loaded", cfg.SettingsLoaded),
		zap.Object("credentials", cfg.Credentials))
	return 0
}
