package pipeline

import (
	"context"
	"os"
)

// createRunDir allocates a private directory for one run so concurrent runs
// never share the audio file.
func (p *implPipeline) createRunDir(runID string) (string, error) {
	return os.MkdirTemp(p.tempDir, "qc-"+runID[:8]+"-*")
}

// cleanupRunDir removes the run directory, logs warning if fails
func (p *implPipeline) cleanupRunDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup run dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up run dir: %s", dir)
	}
}
