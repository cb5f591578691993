package bill

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"grocery-tracker/domain"
	"grocery-tracker/internal/utils"
)

type (
	// TextRecognizer turns a receipt image into raw multi-line text. The
	// actual OCR runs in an external service.
	TextRecognizer interface {
		Recognize(ctx context.Context, image []byte, filename string) (string, error)
	}

	httpRecognizer struct {
		client *http.Client
	}
)

func NewHTTPRecognizer() TextRecognizer {
	return &httpRecognizer{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (r *httpRecognizer) Recognize(ctx context.Context, image []byte, filename string) (string, error) {
	serviceURL := utils.GetConfig("OCR_SERVICE_URL")
	if serviceURL == "" {
		return "", fmt.Errorf("OCR_SERVICE_URL environment variable not set")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}

	if _, err = part.Write(image); err != nil {
		return "", err
	}

	if err = writer.Close(); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", serviceURL, body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OCR service error: %s - %s", resp.Status, string(bodyBytes))
	}

	var ocrResponse struct {
		Success bool   `json:"success"`
		Text    string `json:"text"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&ocrResponse); err != nil {
		return "", err
	}

	if !ocrResponse.Success {
		return "", domain.ErrRecognizerFailed
	}

	return ocrResponse.Text, nil
}
