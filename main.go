package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"github.com/ytget/akioflix/internal/catalog"
	"github.com/ytget/akioflix/internal/config"
	"github.com/ytget/akioflix/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.akioflix"
	AppName = "Akioflix"

	WindowWidth  = 420
	WindowHeight = 760

	MetricsReportInterval = 10 * time.Second
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	settings := config.NewSettings(myApp)
	if file, err := config.LoadFile(config.DefaultFilePath); err != nil {
		logger.Warn("ignoring config file", zap.String("path", config.DefaultFilePath), zap.Error(err))
	} else {
		file.Apply(settings)
	}

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   "akioflix",
		Reporter: tally.NullStatsReporter,
	}, MetricsReportInterval)
	defer closer.Close()

	loader := catalog.NewService(
		settings.GetCatalogEndpoint(),
		catalog.WithLogger(logger),
		catalog.WithMetrics(scope),
		catalog.WithUserAgent(fmt.Sprintf("%s/%s", AppName, version)),
	)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, myApp, loader, settings, logger)

	myWindow.ShowAndRun()
}
