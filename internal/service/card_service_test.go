package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"bizcardx/internal/dto"
	"bizcardx/internal/models"
	"bizcardx/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// -------- test fakes --------

type fakeCardStore struct {
	inserted  []*models.BusinessCard
	insertErr error

	holders    []string
	holdersErr error

	cards     []*models.BusinessCard
	selectErr error

	updates   [][3]string
	updateErr error

	deleted   []string
	deleteErr error
}

func (f *fakeCardStore) Insert(ctx context.Context, card *models.BusinessCard) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, card)
	return nil
}

func (f *fakeCardStore) ListHolders(ctx context.Context) ([]string, error) {
	return f.holders, f.holdersErr
}

func (f *fakeCardStore) SelectAll(ctx context.Context) ([]*models.BusinessCard, error) {
	return f.cards, f.selectErr
}

func (f *fakeCardStore) UpdateField(ctx context.Context, holder, column, value string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, [3]string{holder, column, value})
	return nil
}

func (f *fakeCardStore) Delete(ctx context.Context, holder string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, holder)
	return nil
}

type fakeTokenReader struct {
	tokens []models.Token
	err    error
	paths  []string
}

func (f *fakeTokenReader) ReadTokens(ctx context.Context, imagePath string) ([]models.Token, error) {
	f.paths = append(f.paths, imagePath)
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens, nil
}

// -------- helpers --------

func newService(t *testing.T, store *fakeCardStore, ocr *fakeTokenReader) *CardService {
	t.Helper()
	return NewCardService(store, ocr, t.TempDir(), 2<<20, zap.NewNop())
}

func sampleTokens() []models.Token {
	texts := []string{"John Doe", "Manager", "555-1234", "555-5678", "john@x.com", "www.x.com", "Acme Inc"}
	tokens := make([]models.Token, len(texts))
	for i, text := range texts {
		tokens[i] = models.Token{
			Text:       text,
			Confidence: 90,
			Box:        models.Box{X0: 0, Y0: i * 10, X1: 100, Y1: i*10 + 9},
		}
	}
	return tokens
}

// -------- tests --------

func TestScanImageClassifiesTokens(t *testing.T) {
	store := &fakeCardStore{}
	ocr := &fakeTokenReader{tokens: sampleTokens()}
	svc := newService(t, store, ocr)

	resp, err := svc.ScanImage(context.Background(), strings.NewReader("image-bytes"), "card.png")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", resp.Card.CardHolder)
	assert.Equal(t, "Manager", resp.Card.Designation)
	assert.Equal(t, "555-1234 & 555-5678", resp.Card.MobileNumber)
	assert.Equal(t, "john@x.com", resp.Card.Email)
	assert.Equal(t, "www.x.com", resp.Card.Website)
	assert.Equal(t, "Acme Inc", resp.Card.CompanyName)

	require.Len(t, resp.Tokens, 7)
	assert.Equal(t, "card_holder", resp.Tokens[0].Field)
	assert.Equal(t, "company_name", resp.Tokens[6].Field)
	assert.Equal(t, 60, resp.Tokens[6].Box.Y0)

	assert.True(t, strings.HasPrefix(resp.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.ImageURL, ".png"))

	// Nothing is persisted by a scan.
	assert.Empty(t, store.inserted)

	// The saved image was handed to the OCR engine.
	require.Len(t, ocr.paths, 1)
	_, statErr := os.Stat(ocr.paths[0])
	assert.NoError(t, statErr)
}

func TestScanImageUnsupportedFormat(t *testing.T) {
	ocr := &fakeTokenReader{tokens: sampleTokens()}
	svc := newService(t, &fakeCardStore{}, ocr)

	_, err := svc.ScanImage(context.Background(), strings.NewReader("x"), "card.gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Empty(t, ocr.paths)
}

func TestScanImageTooLarge(t *testing.T) {
	ocr := &fakeTokenReader{tokens: sampleTokens()}
	dir := t.TempDir()
	svc := NewCardService(&fakeCardStore{}, ocr, dir, 4, zap.NewNop())

	_, err := svc.ScanImage(context.Background(), strings.NewReader("more than four bytes"), "card.jpg")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// The oversized upload must not be left behind.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestScanImageOCRFailure(t *testing.T) {
	dir := t.TempDir()
	ocr := &fakeTokenReader{err: errors.New("no text recognized in image")}
	svc := NewCardService(&fakeCardStore{}, ocr, dir, 2<<20, zap.NewNop())

	_, err := svc.ScanImage(context.Background(), strings.NewReader("x"), "card.jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text recognized")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSaveCardRequiresHolder(t *testing.T) {
	svc := newService(t, &fakeCardStore{}, &fakeTokenReader{})

	_, err := svc.SaveCard(context.Background(), &dto.CardRequest{CompanyName: "Acme"})
	assert.ErrorIs(t, err, ErrHolderRequired)

	_, err = svc.SaveCard(context.Background(), &dto.CardRequest{CardHolder: "   "})
	assert.ErrorIs(t, err, ErrHolderRequired)
}

func TestSaveCardInsertsRecord(t *testing.T) {
	store := &fakeCardStore{}
	svc := newService(t, store, &fakeTokenReader{})

	req := &dto.CardRequest{
		CompanyName:  "Acme Inc",
		CardHolder:   "John Doe",
		Designation:  "Manager",
		MobileNumber: "555-1234 & 555-5678",
		Email:        "john@x.com",
		Website:      "www.x.com",
		Area:         "12 Elm St",
		City:         "East Ridge",
		State:        "TamilNadu",
		PinCode:      "600113",
	}

	resp, err := svc.SaveCard(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	card := store.inserted[0]
	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Equal(t, "John Doe", card.CardHolder)
	assert.Equal(t, "600113", card.PinCode)
	assert.False(t, card.CreatedAt.IsZero())

	assert.Equal(t, card.ID.String(), resp.ID)
	assert.Equal(t, "Acme Inc", resp.CompanyName)
}

func TestSaveCardConflict(t *testing.T) {
	store := &fakeCardStore{insertErr: repository.ErrCardExists}
	svc := newService(t, store, &fakeTokenReader{})

	_, err := svc.SaveCard(context.Background(), &dto.CardRequest{CardHolder: "John Doe"})
	assert.ErrorIs(t, err, repository.ErrCardExists)
}

func TestListCards(t *testing.T) {
	store := &fakeCardStore{
		cards: []*models.BusinessCard{
			{ID: uuid.New(), CardHolder: "John Doe", CompanyName: "Acme"},
			{ID: uuid.New(), CardHolder: "Jane Roe", CompanyName: "Globex"},
		},
	}
	svc := newService(t, store, &fakeTokenReader{})

	cards, err := svc.ListCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "John Doe", cards[0].CardHolder)
	assert.Equal(t, "Globex", cards[1].CompanyName)
}

func TestUpdateFieldDelegates(t *testing.T) {
	store := &fakeCardStore{}
	svc := newService(t, store, &fakeTokenReader{})

	require.NoError(t, svc.UpdateField(context.Background(), "John Doe", "email", "new@x.com"))
	require.Len(t, store.updates, 1)
	assert.Equal(t, [3]string{"John Doe", "email", "new@x.com"}, store.updates[0])
}

func TestUpdateFieldNotFound(t *testing.T) {
	store := &fakeCardStore{updateErr: repository.ErrCardNotFound}
	svc := newService(t, store, &fakeTokenReader{})

	err := svc.UpdateField(context.Background(), "Nobody", "email", "x")
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestDeleteCardDelegates(t *testing.T) {
	store := &fakeCardStore{}
	svc := newService(t, store, &fakeTokenReader{})

	require.NoError(t, svc.DeleteCard(context.Background(), "John Doe"))
	assert.Equal(t, []string{"John Doe"}, store.deleted)
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "clean", sanitizeUTF8("clean"))
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
	assert.Equal(t, "日本語", sanitizeUTF8("日本語"))
}
