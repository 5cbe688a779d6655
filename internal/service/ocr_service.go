package service

import (
	"context"
	"fmt"
	"strings"

	"bizcardx/internal/models"
	"bizcardx/pkg/config"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// OCRService extracts ordered text tokens from card images using the
// Tesseract engine. One gosseract client is created per call: clients are
// not safe for concurrent use and recognition is a single-shot operation.
type OCRService struct {
	languages []string
	logger    *zap.Logger
}

func NewOCRService(cfg *config.OCRConfig, logger *zap.Logger) *OCRService {
	return &OCRService{
		languages: cfg.Languages,
		logger:    logger,
	}
}

// ReadTokens recognizes the image at imagePath and returns one token per
// text line, in reading order, with bounding boxes for the overlay. Tokens
// are sanitized to valid UTF-8; empty lines are dropped.
func (s *OCRService) ReadTokens(ctx context.Context, imagePath string) ([]models.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(s.languages) > 0 {
		if err := client.SetLanguage(s.languages...); err != nil {
			return nil, fmt.Errorf("failed to set OCR languages: %w", err)
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize text: %w", err)
	}

	tokens := make([]models.Token, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(sanitizeUTF8(b.Word))
		if text == "" {
			continue
		}
		tokens = append(tokens, models.Token{
			Text:       text,
			Confidence: b.Confidence,
			Box: models.Box{
				X0: b.Box.Min.X,
				Y0: b.Box.Min.Y,
				X1: b.Box.Max.X,
				Y1: b.Box.Max.Y,
			},
		})
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("no text recognized in image")
	}

	s.logger.Info("OCR extraction completed",
		zap.String("file", imagePath),
		zap.Int("tokens", len(tokens)),
	)
	return tokens, nil
}
