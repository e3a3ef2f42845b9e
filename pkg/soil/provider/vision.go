package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cropadvisor/entities"
)

// Vision sends a photographed soil health card to an OpenAI-compatible chat
// completions endpoint and reads the measurements back as JSON.
type Vision struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewVision(endpoint, key, model string) *Vision {
	return &Vision{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

const visionPrompt = `Read the soil test values from this soil health card.
Reply ONLY valid JSON: {"ph":6.5,"nitrogen":180,"phosphorus":22,"potassium":210,"organic_matter":1.2,"moisture":18}
Use kg/ha for N, P, K and percent for organic matter and moisture. Use null for any value not printed on the card.`

func (v *Vision) Analyze(ctx context.Context, a entities.Artifact) (entities.SoilReading, error) {
	ct := a.ContentType
	if !strings.HasPrefix(ct, "image/") {
		return entities.SoilReading{}, fmt.Errorf("%w: vision needs an image, got %q", ErrUnsupported, ct)
	}
	dataURL := "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(a.Data)

	reqBody := map[string]any{
		"model": v.model,
		"messages": []map[string]any{
			{"role": "system", "content": "You are an agronomy lab assistant. Reply ONLY valid JSON."},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": visionPrompt},
				{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
			}},
		},
		"temperature": 0,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return entities.SoilReading{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return entities.SoilReading{}, err
	}
	req.Header.Set("Authorization", "Bearer "+v.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpc.Do(req)
	if err != nil {
		return entities.SoilReading{}, fmt.Errorf("vision request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return entities.SoilReading{}, fmt.Errorf("vision request: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entities.SoilReading{}, fmt.Errorf("decode vision reply: %w", err)
	}
	if len(out.Choices) == 0 {
		return entities.SoilReading{}, fmt.Errorf("vision reply: no choices")
	}

	content := stripFence(out.Choices[0].Message.Content)
	var reading entities.SoilReading
	if err := json.Unmarshal([]byte(content), &reading); err != nil {
		return entities.SoilReading{}, fmt.Errorf("parse vision reply: %v / raw: %s", err, content)
	}
	if reading.Empty() {
		return reading, ErrNoReadings
	}
	return reading, nil
}

// stripFence drops a ```json ... ``` wrapper some models add.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
