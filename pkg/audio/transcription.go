package audio

import (
	"context"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type ITranscriber interface {
	TranscribeAudio(ctx context.Context, filePath string) (string, error)
}

type TranscriptionService struct {
	client *openai.Client
}

func NewTranscriptionService(apiKey string) ITranscriber {
	client := openai.NewClient(apiKey)
	return &TranscriptionService{client: client}
}

func (t *TranscriptionService) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: "pt",
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
