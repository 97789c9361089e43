package assistant

import "RotinaGolang/internal/api/agenda"

type ChatRequest struct {
	UserID          string `json:"-"`
	Message         string `json:"message" validate:"required"`
	TZOffsetMinutes *int   `json:"tz_offset_minutes" validate:"omitempty,min=-720,max=840"`
}

// ChatResponse is shared by the chat, voice and websocket surfaces. Command
// is only set when the message resolved to an agenda operation; Transcript
// and AudioLink only for voice notes.
type ChatResponse struct {
	Reply      string                  `json:"reply"`
	Transcript string                  `json:"transcript,omitempty"`
	AudioLink  string                  `json:"audio_link,omitempty"`
	Command    *agenda.CommandResponse `json:"command,omitempty"`
}
