// Package media wraps the hosted OpenAI audio and image endpoints used by the
// support agent: speech-to-text for voice questions, text-to-speech for voice
// replies, and destination travel posters.
package media

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// TTS rejects long inputs, so replies are truncated before synthesis.
const maxSpeechInput = 4000

type Service struct {
	client *openai.Client
}

func NewService(client *openai.Client) *Service {
	return &Service{client: client}
}

// Transcribe converts an audio file to text with Whisper.
func (s *Service) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return resp.Text, nil
}

// Synthesize converts text to speech and writes an mp3 to outputPath.
func (s *Service) Synthesize(ctx context.Context, text, voice, outputPath string) error {
	if voice == "" {
		voice = string(openai.VoiceNova)
	}
	if len(text) > maxSpeechInput {
		text = text[:maxSpeechInput]
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Voice: openai.SpeechVoice(voice),
		Input: text,
	})
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(resp); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// DestinationImage generates a travel poster for an Indian city and writes it
// to destination_<city>.png. It returns the customer-facing confirmation text.
func (s *Service) DestinationImage(ctx context.Context, city string) (string, error) {
	prompt := fmt.Sprintf("A beautiful vibrant travel poster showcasing %s, India as a travel destination, featuring iconic landmarks, local culture, temples, markets, and atmosphere. High quality, inspiring wanderlust, colorful Indian aesthetic.", city)

	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Model:          openai.CreateImageModelDallE3,
		Prompt:         prompt,
		Size:           openai.CreateImageSize1024x1024,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image response contained no data")
	}

	filename := ImageFilename(city)
	if err := writeBase64PNG(filename, resp.Data[0].B64JSON); err != nil {
		return "", err
	}

	return fmt.Sprintf("I've generated a beautiful travel image of %s for you! The image showcases the iconic landmarks and vibrant culture of this amazing Indian destination.", city), nil
}

// ImageFilename is where DestinationImage saves the poster for a city.
func ImageFilename(city string) string {
	return fmt.Sprintf("destination_%s.png", strings.ReplaceAll(strings.ToLower(city), " ", "_"))
}
