package qc

import "fmt"

const qcPrompt = `Perform a quality check between the video transcript and the PPT content.

- Check if key concepts are covered
- Check alignment between spoken and visual content
- Check clarity of learning outcomes
- Check for code walkthroughs

Return a checklist with ✅ or ❌ and reasoning.

Transcript:
%s

Slides:
%s
`

// BuildPrompt embeds the transcript and slide text verbatim in the QC template.
func BuildPrompt(transcript, slideText string) string {
	return fmt.Sprintf(qcPrompt, transcript, slideText)
}
