package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/apperror"
	"github.com/scheffer1/CVFast-sub000/pkg/clock"
	"github.com/scheffer1/CVFast-sub000/pkg/hashgen"
	"github.com/scheffer1/CVFast-sub000/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// UnknownIP is recorded when the requester's address cannot be determined.
const UnknownIP = "Unknown"

type shortLinkUsecase struct {
	links      domain.ShortLinkRepository
	accessLogs domain.AccessLogRepository
	curricula  domain.CurriculumRepository
	generator  hashgen.Generator
	validate   *validator.Validate
	clock      clock.Clock
	maxRetries int
}

func NewShortLinkUsecase(
	links domain.ShortLinkRepository,
	accessLogs domain.AccessLogRepository,
	curricula domain.CurriculumRepository,
	generator hashgen.Generator,
	validate *validator.Validate,
	clk clock.Clock,
	maxRetries int,
) domain.ShortLinkUsecase {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &shortLinkUsecase{
		links:      links,
		accessLogs: accessLogs,
		curricula:  curricula,
		generator:  generator,
		validate:   validate,
		clock:      clk,
		maxRetries: maxRetries,
	}
}

// Create issues an extra share link for a résumé the caller owns.
// Creating a link for a curriculum that does not exist (or is not the
// caller's) is a 404, not a validation error.
func (u *shortLinkUsecase) Create(ctx context.Context, input domain.CreateShortLinkInput) (*domain.ShortLink, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if _, err := requireOwnership(ctx, u.curricula, input.CurriculumID); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < u.maxRetries; attempt++ {
		link := &domain.ShortLink{
			ID:           uuid.New().String(),
			CurriculumID: input.CurriculumID,
			Hash:         u.generator.Generate(input.CurriculumID),
			CreatedAt:    u.clock.Now(),
		}
		lastErr = u.links.Create(ctx, link)
		if lastErr == nil {
			return link, nil
		}
		if !errors.Is(lastErr, domain.ErrDuplicateHash) {
			return nil, lastErr
		}
	}
	return nil, apperror.Internal(lastErr)
}

// Revoke disables a link the caller owns. The transition is one-way and
// idempotent: the first call reports true, repeats report false, neither
// errors. revoked_at keeps its first value.
func (u *shortLinkUsecase) Revoke(ctx context.Context, id string) (bool, error) {
	link, err := u.ownedLink(ctx, id)
	if err != nil {
		return false, err
	}
	if link.IsRevoked {
		return false, nil
	}
	return u.links.Revoke(ctx, id, u.clock.Now())
}

func (u *shortLinkUsecase) ListByCurriculum(ctx context.Context, curriculumID string) ([]domain.ShortLink, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	return u.links.ListByCurriculum(ctx, curriculumID)
}

func (u *shortLinkUsecase) Logs(ctx context.Context, shortLinkID string) ([]domain.AccessLog, error) {
	if _, err := u.ownedLink(ctx, shortLinkID); err != nil {
		return nil, err
	}
	return u.accessLogs.ListByShortLink(ctx, shortLinkID)
}

// ExportLogs renders the link's access history as an XLSX workbook for
// download.
func (u *shortLinkUsecase) ExportLogs(ctx context.Context, shortLinkID string) ([]byte, string, error) {
	link, err := u.ownedLink(ctx, shortLinkID)
	if err != nil {
		return nil, "", err
	}

	logs, err := u.accessLogs.ListByShortLink(ctx, shortLinkID)
	if err != nil {
		return nil, "", err
	}

	xl := excelize.NewFile()
	defer xl.Close()

	sheet := xl.GetSheetName(0)
	header := []string{"id", "hash", "ip", "user_agent", "accessed_at"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for i, l := range logs {
		ua := ""
		if l.UserAgent != nil {
			ua = *l.UserAgent
		}
		record := []string{
			fmt.Sprintf("%d", l.ID),
			link.Hash,
			l.IP,
			ua,
			l.AccessedAt.UTC().Format(time.RFC3339),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = xl.SetSheetRow(sheet, cellRef, &record)
	}

	var buf bytes.Buffer
	if err := xl.Write(&buf); err != nil {
		return nil, "", apperror.Internal(err)
	}

	filename := fmt.Sprintf("access-logs-%s.xlsx", link.Hash)
	return buf.Bytes(), filename, nil
}

// Resolve is the anonymous read path. Lookup, visibility check, then a
// best-effort access record. Unknown hash, revoked link and a résumé the
// caller may not see all produce the identical not-found error; the
// response must never reveal which case it was.
func (u *shortLinkUsecase) Resolve(ctx context.Context, hash string, ip string, userAgent *string) (*domain.CurriculumFull, error) {
	link, err := u.links.GetActiveByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperror.NotFound("Short link not found")
	}

	curriculum, err := u.curricula.GetByID(ctx, link.CurriculumID)
	if err != nil {
		return nil, err
	}
	if curriculum == nil {
		return nil, apperror.NotFound("Short link not found")
	}

	if !u.visible(ctx, curriculum) {
		// Disguised as not-found so the résumé's existence stays hidden.
		return nil, apperror.NotFound("Short link not found")
	}

	full, err := u.curricula.GetFull(ctx, curriculum.ID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, apperror.NotFound("Short link not found")
	}

	u.recordAccess(ctx, link.ID, ip, userAgent)

	return full, nil
}

// visible applies the share policy: active résumés resolve for anyone,
// every other status only for its owner.
func (u *shortLinkUsecase) visible(ctx context.Context, curriculum *domain.Curriculum) bool {
	if curriculum.Status == domain.StatusActive {
		return true
	}
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	return userID != "" && userID == curriculum.UserID
}

// recordAccess appends the audit row. Failures are logged and swallowed;
// access logging must never break the résumé response.
func (u *shortLinkUsecase) recordAccess(ctx context.Context, shortLinkID, ip string, userAgent *string) {
	if ip == "" {
		ip = UnknownIP
	}
	entry := &domain.AccessLog{
		ShortLinkID: shortLinkID,
		IP:          ip,
		UserAgent:   userAgent,
		AccessedAt:  u.clock.Now(),
	}
	if err := u.accessLogs.Create(ctx, entry); err != nil {
		logger.Log.Error("failed to record short link access",
			"short_link_id", shortLinkID, "error", err)
	}
}

// ownedLink resolves a link id to its row and proves the caller owns the
// résumé behind it. Missing link and foreign link both read as not-found.
func (u *shortLinkUsecase) ownedLink(ctx context.Context, id string) (*domain.ShortLink, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	link, err := u.links.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperror.NotFound("Short link not found")
	}

	curriculum, err := u.curricula.GetByID(ctx, link.CurriculumID)
	if err != nil {
		return nil, err
	}
	if curriculum == nil || curriculum.UserID != userID {
		return nil, apperror.NotFound("Short link not found")
	}
	return link, nil
}
