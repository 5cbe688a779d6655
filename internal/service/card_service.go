package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bizcardx/internal/classifier"
	"bizcardx/internal/dto"
	"bizcardx/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileTooLarge      = errors.New("file too large")
	ErrHolderRequired    = errors.New("card holder is required")
)

// CardStore is the persistence surface the service needs; the concrete
// implementation lives in internal/repository.
type CardStore interface {
	Insert(ctx context.Context, card *models.BusinessCard) error
	ListHolders(ctx context.Context) ([]string, error)
	SelectAll(ctx context.Context) ([]*models.BusinessCard, error)
	UpdateField(ctx context.Context, holder, column, value string) error
	Delete(ctx context.Context, holder string) error
}

// TokenReader produces ordered OCR tokens for an image file.
type TokenReader interface {
	ReadTokens(ctx context.Context, imagePath string) ([]models.Token, error)
}

type CardService struct {
	store          CardStore
	ocr            TokenReader
	uploadDir      string
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewCardService(store CardStore, ocr TokenReader, uploadDir string, maxUploadBytes int64, logger *zap.Logger) *CardService {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &CardService{
		store:          store,
		ocr:            ocr,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ScanImage saves the uploaded card image, runs OCR and classifies the
// recognized tokens. Nothing is persisted: the caller reviews the result and
// saves it through SaveCard. Each call is an independent request/response;
// the service holds no state between user actions.
func (s *CardService) ScanImage(ctx context.Context, file io.Reader, fileName string) (*dto.ScanResponse, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return nil, fmt.Errorf("%w: %s (supported: png, jpg, jpeg)", ErrUnsupportedFormat, ext)
	}

	storedName := uuid.New().String() + ext
	imagePath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	// Copy one byte past the limit so an oversized upload is detectable
	// without reading it whole.
	written, err := io.Copy(dst, io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		os.Remove(imagePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}
	if written > s.maxUploadBytes {
		os.Remove(imagePath)
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxUploadBytes)
	}

	tokens, err := s.ocr.ReadTokens(ctx, imagePath)
	if err != nil {
		os.Remove(imagePath)
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	record, labels := classifier.ClassifyLabeled(texts)

	tokenResponses := make([]dto.TokenResponse, len(tokens))
	for i, tok := range tokens {
		tokenResponses[i] = dto.TokenResponse{
			Text:       tok.Text,
			Confidence: tok.Confidence,
			Field:      labels[i],
			Box: dto.BoxResponse{
				X0: tok.Box.X0,
				Y0: tok.Box.Y0,
				X1: tok.Box.X1,
				Y1: tok.Box.Y1,
			},
		}
	}

	s.logger.Info("Card scanned",
		zap.String("file", fileName),
		zap.Int("tokens", len(tokens)),
		zap.String("card_holder", record.CardHolder),
	)

	return &dto.ScanResponse{
		Card:     recordToRequest(record),
		Tokens:   tokenResponses,
		ImageURL: "/uploads/" + storedName,
	}, nil
}

// SaveCard persists one record. A duplicate holder surfaces as
// repository.ErrCardExists; the record is discarded, not retried.
func (s *CardService) SaveCard(ctx context.Context, req *dto.CardRequest) (*dto.CardResponse, error) {
	if strings.TrimSpace(req.CardHolder) == "" {
		return nil, ErrHolderRequired
	}

	now := time.Now()
	card := &models.BusinessCard{
		ID:           uuid.New(),
		CompanyName:  req.CompanyName,
		CardHolder:   req.CardHolder,
		Designation:  req.Designation,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Website:      req.Website,
		Area:         req.Area,
		City:         req.City,
		State:        req.State,
		PinCode:      req.PinCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Insert(ctx, card); err != nil {
		return nil, err
	}

	return cardToResponse(card), nil
}

// ListCards returns every stored card for the tabular display.
func (s *CardService) ListCards(ctx context.Context) ([]*dto.CardResponse, error) {
	cards, err := s.store.SelectAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CardResponse, len(cards))
	for i, card := range cards {
		responses[i] = cardToResponse(card)
	}
	return responses, nil
}

// ListHolders returns the holder names for the edit and delete pickers.
func (s *CardService) ListHolders(ctx context.Context) ([]string, error) {
	return s.store.ListHolders(ctx)
}

// UpdateField sets one column on the card keyed by holder.
func (s *CardService) UpdateField(ctx context.Context, holder, column, value string) error {
	return s.store.UpdateField(ctx, holder, column, value)
}

// DeleteCard removes the card keyed by holder.
func (s *CardService) DeleteCard(ctx context.Context, holder string) error {
	return s.store.Delete(ctx, holder)
}

func recordToRequest(rec classifier.Record) dto.CardRequest {
	return dto.CardRequest{
		CompanyName:  rec.CompanyName,
		CardHolder:   rec.CardHolder,
		Designation:  rec.Designation,
		MobileNumber: rec.MobileNumber,
		Email:        rec.Email,
		Website:      rec.Website,
		Area:         rec.Area,
		City:         rec.City,
		State:        rec.State,
		PinCode:      rec.PinCode,
	}
}

func cardToResponse(card *models.BusinessCard) *dto.CardResponse {
	return &dto.CardResponse{
		ID:           card.ID.String(),
		CompanyName:  card.CompanyName,
		CardHolder:   card.CardHolder,
		Designation:  card.Designation,
		MobileNumber: card.MobileNumber,
		Email:        card.Email,
		Website:      card.Website,
		Area:         card.Area,
		City:         card.City,
		State:        card.State,
		PinCode:      card.PinCode,
		CreatedAt:    card.CreatedAt.Format(time.RFC3339),
	}
}
