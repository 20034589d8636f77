package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

// Run orchestrates one quality check, strictly in order. Any failure aborts
// the run; the run directory is removed either way.
func (p *implPipeline) Run(ctx context.Context, in Input) (*Result, error) {
	if in.Video == nil || in.Slides == nil {
		return nil, ErrMissingInput
	}

	startTime := time.Now()
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting quality check: video=%s slides=%d bytes", in.VideoName, in.SlidesSize)
	p.logger.Info(ctx, "========================================")

	runDir, err := p.createRunDir(runID)
	if err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	defer p.cleanupRunDir(ctx, runDir)

	// Step 1: Extract audio
	audioPath := filepath.Join(runDir, "audio.wav")
	if err := p.converter.Convert(ctx, in.Video, filepath.Ext(in.VideoName), audioPath); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	// Step 2: Transcribe
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	// Step 3: Slide text
	slideText, err := p.extractor.Extract(in.Slides, in.SlidesSize)
	if err != nil {
		return nil, fmt.Errorf("extract slides: %w", err)
	}
	p.logger.Info(ctx, "Extracted %d characters of slide text", len(slideText))

	// Step 4: Ask the model
	report, err := p.requester.Check(ctx, transcript, slideText)
	if err != nil {
		return nil, fmt.Errorf("quality check: %w", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Quality check completed successfully!")
	p.logger.Info(ctx, "Report length: %d characters", len(report))
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return &Result{
		RunID:      runID,
		Transcript: transcript,
		SlideText:  slideText,
		Report:     report,
		Duration:   duration,
	}, nil
}
