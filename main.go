package main

import (
	"context"
	"flag"
	"log"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	tnet "TacNotepad/internal/net"
	"TacNotepad/internal/settings"
	"TacNotepad/internal/state"
	"TacNotepad/internal/ui"
)

const appID = "com.github.tacnotepad"

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	share := flag.Bool("share", false, "serve a read-only mirror on the local network")
	flag.Parse()

	lggr, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("Couldn't create logger: %v", err)
	}
	defer func() { _ = lggr.Sync() }()

	conf, err := settings.LoadConfig(settings.ConfigDir(), lggr.Named("config"))
	if err != nil {
		lggr.Warnf("Using default config: %v", err)
	}

	a := app.NewWithID(appID)
	manager := settings.NewManager(a.Preferences(), conf, lggr.Named("settings"))
	notepad := state.NewNotepad(manager, conf.EraserColor)

	window := ui.New(a, notepad, conf, lggr.Named("ui"))
	if err := window.LoadAutosave(); err != nil {
		lggr.Errorf("Couldn't restore notebook: %v", err)
	}
	a.Lifecycle().SetOnStopped(func() {
		if err := window.Autosave(); err != nil {
			lggr.Errorf("Couldn't save notebook: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *share || conf.ShareEnabled {
		startMirror(ctx, notepad.Pages, conf.SharePort, window, lggr.Named("share"))
	}

	window.Run()
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func startMirror(ctx context.Context, pages *state.PageStore, port int, window *ui.App, lggr *zap.SugaredLogger) {
	mirror := tnet.NewMirror(pages, lggr)
	if err := mirror.Start(ctx, port); err != nil {
		lggr.Errorf("Mirror disabled: %v", err)
		_ = mirror.Shutdown(ctx)
		return
	}
	server, err := tnet.Advertise(port)
	if err != nil {
		lggr.Warnf("mDNS announcement failed: %v", err)
	} else {
		go func() {
			<-ctx.Done()
			_ = server.Shutdown()
		}()
	}
	link := tnet.ShareLink(port)
	lggr.Infof("Mirror available at %s", link)
	window.SetStatus("Sharing at " + link)
}
