package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/recording-qc/internal/api"
	"github.com/nguyentantai21042004/recording-qc/internal/config"
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
	"github.com/nguyentantai21042004/recording-qc/internal/media"
	"github.com/nguyentantai21042004/recording-qc/internal/pipeline"
	"github.com/nguyentantai21042004/recording-qc/internal/qc"
	"github.com/nguyentantai21042004/recording-qc/internal/report"
	"github.com/nguyentantai21042004/recording-qc/internal/slides"
	"github.com/nguyentantai21042004/recording-qc/internal/transcriber"
	"github.com/nguyentantai21042004/recording-qc/internal/watcher"
	"github.com/nguyentantai21042004/recording-qc/pkg/executor"
)

const usage = `Usage: recording-qc [command] [options]

Commands:
  serve                              Start the upload form (default)
  run -video FILE -slides FILE       Check one recording and write QC_Report.txt
  watch                              Check video/.pptx pairs dropped into paths.input

Options:
  -config FILE                       Path to config.yaml (default "config.yaml")
`

func main() {
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := fs.String("config", "config.yaml", "path to config file")
	videoPath := fs.String("video", "", "video file (run)")
	slidesPath := fs.String("slides", "", "slide deck (run)")
	outDir := fs.String("out", "", "report directory (run, default paths.output)")
	fs.Parse(args)

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, falling back to environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		os.Exit(1)
	}
	defer app.close(ctx)

	switch command {
	case "serve":
		err = app.serve(ctx)
	case "run":
		if *outDir == "" {
			*outDir = cfg.Paths.Output
		}
		err = app.runOnce(ctx, *videoPath, *slidesPath, *outDir)
	case "watch":
		err = app.watch(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "%s failed: %v", command, err)
		app.close(ctx)
		os.Exit(1)
	}
}

type app struct {
	cfg         *config.Config
	log         logger.Logger
	transcriber transcriber.Transcriber
	pipeline    pipeline.Pipeline
	closed      bool
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	exec := executor.New()

	tr, err := transcriber.New(cfg.Whisper, exec, log)
	if err != nil {
		return nil, fmt.Errorf("create transcriber: %w", err)
	}

	requester, err := qc.New(ctx, cfg.LLM, log)
	if err != nil {
		tr.Close()
		return nil, fmt.Errorf("create qc requester: %w", err)
	}

	p := pipeline.New(
		cfg.Paths.Temp,
		media.New(cfg.FFmpeg.BinaryPath, exec, log),
		tr,
		slides.New(),
		requester,
		log,
	)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Recording Quality Check")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Whisper engine: %s", cfg.Whisper.Engine)
	log.Info(ctx, "LLM provider: %s", cfg.LLM.Provider)

	return &app{cfg: cfg, log: log, transcriber: tr, pipeline: p}, nil
}

func (a *app) close(ctx context.Context) {
	if a.closed {
		return
	}
	a.closed = true
	if err := a.transcriber.Close(); err != nil {
		a.log.Warn(ctx, "Failed to close transcriber: %v", err)
	}
}

func (a *app) serve(ctx context.Context) error {
	handler := api.NewHandler(a.pipeline, a.log, a.cfg.Server.MaxUploadMB<<20, a.cfg.Paths.Temp)
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           api.NewRouter(handler, a.log, a.cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	a.log.Info(ctx, "Listening on %s", a.cfg.Server.Addr)
	a.log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		a.log.Info(ctx, "Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info(ctx, "Server stopped")
	return nil
}

func (a *app) runOnce(ctx context.Context, videoPath, slidesPath, outDir string) error {
	if videoPath == "" || slidesPath == "" {
		return pipeline.ErrMissingInput
	}

	res, err := pipeline.RunFiles(ctx, a.pipeline, videoPath, slidesPath)
	if err != nil {
		return err
	}

	return a.writeReports(ctx, outDir, res)
}

func (a *app) watch(ctx context.Context) error {
	w, err := watcher.New(a.cfg.Paths.Input, func(ctx context.Context, videoPath, slidesPath string) error {
		res, err := pipeline.RunFiles(ctx, a.pipeline, videoPath, slidesPath)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
		return a.writeReports(ctx, filepath.Join(a.cfg.Paths.Output, name), res)
	}, a.log)
	if err != nil {
		return err
	}
	defer w.Stop()

	return w.Start(ctx)
}

func (a *app) writeReports(ctx context.Context, dir string, res *pipeline.Result) error {
	txtPath, err := report.WriteText(dir, res.Report)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "Report written: %s", txtPath)

	docxPath, err := report.WriteDocx(dir, res.Report)
	if err != nil {
		a.log.Warn(ctx, "Failed to write docx report: %v", err)
		return nil
	}
	a.log.Info(ctx, "Report written: %s", docxPath)
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
	}
	if cfg.Paths.Temp != "" {
		dirs = append(dirs, cfg.Paths.Temp)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
