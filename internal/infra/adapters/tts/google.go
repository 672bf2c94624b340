package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"interview-ai-backend/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.SpeechSynthesizer = (*GoogleSynthesizer)(nil)

const googleTTSEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"

// GoogleSynthesizer turns text into MP3 clips via the Cloud Text-to-Speech
// REST API. Authentication uses an API key passed as a query parameter.
type GoogleSynthesizer struct {
	apiKey   string
	voice    string
	language string
	endpoint string
	client   *http.Client
}

func NewGoogleSynthesizer(apiKey, voice, language string, timeout time.Duration) (*GoogleSynthesizer, error) {
	if apiKey == "" {
		return nil, errors.New("tts api key empty")
	}
	if voice == "" {
		voice = "en-US-Wavenet-H"
	}
	if language == "" {
		language = "en-US"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GoogleSynthesizer{
		apiKey:   apiKey,
		voice:    voice,
		language: language,
		endpoint: googleTTSEndpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	var body synthesizeRequest
	body.Input.Text = text
	body.Voice.LanguageCode = g.language
	body.Voice.Name = g.voice
	body.AudioConfig.AudioEncoding = "MP3"

	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"?key="+g.apiKey, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("google tts http %d", resp.StatusCode)
	}

	var payload struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.AudioContent == "" {
		return nil, errors.New("google tts: empty audio content")
	}
	return base64.StdEncoding.DecodeString(payload.AudioContent)
}
