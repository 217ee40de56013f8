package main

import (
	"github.com/insightgrid/insightgrid/internal/server"
	"github.com/insightgrid/insightgrid/internal/util"
	"github.com/insightgrid/insightgrid/pkg/logger"
	"github.com/insightgrid/insightgrid/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
