package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ytget/skeletonne/internal/config"
	"github.com/ytget/skeletonne/internal/export"
	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/observability"
	"github.com/ytget/skeletonne/internal/platform"
	"github.com/ytget/skeletonne/internal/state"
	"github.com/ytget/skeletonne/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.skeletonne"
	AppName = "Skeletonne"
)

func main() {
	// Logging follows skeletonne.yaml and SKELETONNE_* like the CLI
	cfg, err := config.Load(viper.New(), "")
	if err != nil {
		fmt.Printf("failed to load config, using defaults: %v\n", err)
		cfg = &config.Config{Logger: config.LoggerConfig{Level: "info", Format: "console", ServiceName: "skeletonne"}}
	}
	observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()

	logger := observability.GetLogger()
	logger.Info("Starting playground", zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	ids := layout.UUIDGenerator{}
	store := state.NewStore(
		layout.NewPolicy(ids),
		model.DefaultElements(ids.NewElementID(), ids.NewElementID(), ids.NewElementID()),
		logger.Named("state"),
	)
	exportSvc := export.NewService(platform.FallbackExportDir, logger.Named("export"))

	ui.NewRootUI(myWindow, myApp, store, exportSvc, logger.Named("ui"))

	myWindow.ShowAndRun()
}
