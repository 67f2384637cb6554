package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerunddev/termfolio/internal/archive"
	"github.com/gerunddev/termfolio/internal/config"
	"github.com/gerunddev/termfolio/internal/logger"
	"github.com/gerunddev/termfolio/internal/state"
	"github.com/gerunddev/termfolio/internal/styles"
)

// Watch re-imports the archive on a fixed interval until interrupted
func Watch(args []string) {
	cfg := mustLoadConfig()

	if v, ok := flagValue(args, "--interval"); ok {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			fail(fmt.Sprintf("Invalid interval: %q", v))
		}
		cfg.Interval = interval
	}

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fail("Error loading state: " + err.Error())
	}

	log, cleanup := openLogger(cfg)
	defer cleanup()

	log.ConfigLoaded(cfg.ArchiveDir, cfg.ContentDir, cfg.Interval)
	log.Info("watch started", "pid", os.Getpid(), "interval", cfg.Interval)

	fmt.Println(styles.TitleStyle.Render("termfolio watch"))
	fmt.Printf("%s → %s every %v\n",
		styles.DimStyle.Render(cfg.ArchiveDir),
		styles.DimStyle.Render(cfg.ContentDir),
		cfg.Interval)
	fmt.Println(styles.DimStyle.Render("Press Ctrl+C to stop"))
	fmt.Println()

	im := archive.NewImporter(cfg, st)
	im.SetLogger(log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	runImport(im, st, log)

	for {
		select {
		case <-ticker.C:
			runImport(im, st, log)

		case sig := <-sigChan:
			log.Info("watch stopping", "signal", sig.String())
			if err := st.Save(config.StateFilePath()); err != nil {
				log.StateError("save on shutdown", err)
			}
			fmt.Println()
			fmt.Println(styles.SuccessStyle.Render("✓ Watch stopped"))
			return
		}
	}
}

// runImport performs one watch tick and saves state afterwards
func runImport(im *archive.Importer, st *state.State, log *logger.Logger) {
	result, err := im.Import()
	if err != nil {
		log.Error("import failed", "error", err)
		fmt.Println(styles.ErrorStyle.Render("✗ Import failed: " + err.Error()))
		return
	}

	if err := st.Save(config.StateFilePath()); err != nil {
		log.StateError("save", err)
	}

	stamp := styles.DimStyle.Render(result.EndTime.Format(time.TimeOnly))
	switch {
	case len(result.Errors) > 0:
		fmt.Println(stamp, styles.WarningStyle.Render(result.String()))
	case len(result.Posts) > 0:
		fmt.Println(stamp, styles.SuccessStyle.Render(result.String()))
	default:
		fmt.Println(stamp, styles.DimStyle.Render("no changes"))
	}
}
