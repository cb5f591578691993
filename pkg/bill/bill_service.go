package bill

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"grocery-tracker/domain"
	"grocery-tracker/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	// NameResolver maps a raw receipt name to a canonical grocery name. The
	// synonym dictionary is the production implementation.
	NameResolver interface {
		Resolve(rawName string) (string, bool)
	}

	BillService interface {
		ScanBill(ctx context.Context, req domain.ScanBillRequest, userID string) (domain.ScanBillResponse, error)
	}

	billService struct {
		recognizer TextRecognizer
		dictionary NameResolver
		categories []CategoryShelfLife
		s3         storage.AwsS3
	}
)

func NewBillService(recognizer TextRecognizer, dictionary NameResolver, s3 storage.AwsS3) BillService {
	return &billService{
		recognizer: recognizer,
		dictionary: dictionary,
		categories: DefaultCategories,
		s3:         s3,
	}
}

// ScanBill runs the full ingestion pipeline: store the image, recognize text,
// parse, normalize, estimate expiry. Nothing is persisted to the inventory;
// the candidates go back to the user for review and a later bulk commit. The
// stored image is removed again on every failure past the upload.
func (s *billService) ScanBill(ctx context.Context, req domain.ScanBillRequest, userID string) (domain.ScanBillResponse, error) {
	if req.BillImage == nil {
		return domain.ScanBillResponse{}, domain.ErrBillImageRequired
	}

	file, err := req.BillImage.Open()
	if err != nil {
		return domain.ScanBillResponse{}, err
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return domain.ScanBillResponse{}, err
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("bill-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.BillImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.ScanBillResponse{}, err
	}

	rawText, err := s.recognizer.Recognize(ctx, imageBytes, req.BillImage.Filename)
	if err != nil {
		_ = s.s3.DeleteFile(objectKey)
		log.Printf("OCR processing error for scan %s: %v", scanID, err)
		return domain.ScanBillResponse{}, domain.ErrRecognizerFailed
	}

	purchaseDate, ok := ExtractBillDate(rawText)
	if !ok {
		purchaseDate = time.Now().Format("2006-01-02")
	}

	items := Parse(rawText)
	candidates := BuildCandidates(items, s.dictionary, s.categories, purchaseDate, time.Now())

	if len(candidates) == 0 {
		_ = s.s3.DeleteFile(objectKey)
		return domain.ScanBillResponse{}, domain.ErrNoItemsDetected
	}

	return domain.ScanBillResponse{
		Items:    candidates,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}, nil
}

// BuildCandidates normalizes parsed items against the dictionary and assigns
// each one an estimated expiry date. Items whose name cannot be resolved are
// dropped from the candidate list.
func BuildCandidates(items []ParsedItem, dictionary NameResolver, categories []CategoryShelfLife, purchaseDate string, now time.Time) []domain.GroceryCandidate {
	candidates := make([]domain.GroceryCandidate, 0, len(items))

	for _, item := range items {
		name, ok := dictionary.Resolve(item.RawName)
		if !ok {
			log.Printf("Unresolved receipt item %q, skipping", item.RawName)
			continue
		}

		days := EstimateShelfLife(item.SourceText, categories)
		expiryDate := now.AddDate(0, 0, days).Format("2006-01-02")

		candidates = append(candidates, domain.GroceryCandidate{
			Name:           name,
			Quantity:       item.Quantity,
			Unit:           "pcs",
			Price:          item.UnitPrice,
			DateOfPurchase: purchaseDate,
			DateOfExpiry:   expiryDate,
		})
	}

	return candidates
}
