package assistant

import "RotinaGolang/pkg/response"

var (
	ErrEmptyMessage         = response.NewError(400, "message is empty")
	ErrInvalidAudioFile     = response.NewError(400, "invalid audio file")
	ErrTranscriptionFailed  = response.NewError(500, "failed to transcribe audio")
	ErrAssistantUnavailable = response.NewError(503, "assistant is unavailable")
)
