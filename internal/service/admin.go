package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/analytics"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/notify"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

const dateLayout = "2006-01-02"

// ReportQuery selects the admin report window and filters.
type ReportQuery struct {
	Start         string // YYYY-MM-DD, default today-30d
	End           string // YYYY-MM-DD inclusive, default today
	LowThreshold  int    // <=0 uses the configured default
	Status        string
	CustomerEmail string
}

type Report struct {
	Start              string               `json:"start"`
	End                string               `json:"end"`
	TopRevenue         []map[string]any     `json:"top_revenue"`
	TopUnits           []map[string]any     `json:"top_units"`
	LowInventory       []model.Product      `json:"low_inventory"`
	RegistrationSeries []analytics.DayCount `json:"registration_series"`
	Orders             []model.Order        `json:"orders"`
}

type Dashboard struct {
	UsersCount        int64                  `json:"users_count"`
	ProductsCount     int64                  `json:"products_count"`
	OrdersCount       int64                  `json:"orders_count"`
	PendingPosts      int64                  `json:"pending_posts"`
	ApprovedPosts     int64                  `json:"approved_posts"`
	ForumThreads      int64                  `json:"forum_threads"`
	ConsultantsCount  int64                  `json:"consultants_count"`
	ReviewsCount      int64                  `json:"reviews_count"`
	RecentUsers       []model.User           `json:"recent_users"`
	RegistrationTrend []analytics.DayCount   `json:"registration_trend"`
	OrdersByStatus    map[string]int         `json:"orders_by_status"`
	RevenueSeries     []analytics.DayRevenue `json:"revenue_series"`
	TopProducts       []map[string]any       `json:"top_products"`
}

type AdminService interface {
	Dashboard(ctx context.Context, trendDays int) (*Dashboard, error)
	Report(ctx context.Context, q ReportQuery) (*Report, error)
	SalesCSV(ctx context.Context, start, end string) ([]byte, string, error)

	ListUsers(ctx context.Context, emailSearch string) ([]model.User, error)
	SetUserActive(ctx context.Context, userID uint, active bool) error

	ModerateProduct(ctx context.Context, productID uint, action string) error
	ModerateBlogPost(ctx context.Context, postID uint, action string) error
	ModerateReview(ctx context.Context, reviewID uint, action string) error
	PendingReviews(ctx context.Context) ([]model.Review, error)
	ModerationQueue(ctx context.Context) ([]model.Product, []model.BlogPost, error)

	SetConsultantStatus(ctx context.Context, consultantID uint, status string) error
}

type adminServiceImpl struct {
	users        repository.UserRepository
	products     repository.ProductRepository
	orders       repository.OrderRepository
	reviews      repository.ReviewRepository
	blog         repository.BlogRepository
	forum        repository.ForumRepository
	consultants  repository.ConsultancyRepository
	notifier     notify.Notifier
	lowThreshold int
	logger       *zap.Logger
	now          func() time.Time
}

func NewAdminService(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	reviews repository.ReviewRepository,
	blog repository.BlogRepository,
	forum repository.ForumRepository,
	consultants repository.ConsultancyRepository,
	notifier notify.Notifier,
	lowThreshold int,
	logger *zap.Logger,
) AdminService {
	return &adminServiceImpl{
		users:        users,
		products:     products,
		orders:       orders,
		reviews:      reviews,
		blog:         blog,
		forum:        forum,
		consultants:  consultants,
		notifier:     notifier,
		lowThreshold: lowThreshold,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// parseRange turns the inclusive YYYY-MM-DD pair into [start, end) bounds,
// defaulting to the last 30 days. A malformed date is a user input error
// rejected before any query runs.
func (s *adminServiceImpl) parseRange(startStr, endStr string) (time.Time, time.Time, string, string, error) {
	today := s.now().Truncate(24 * time.Hour)
	if startStr == "" {
		startStr = today.AddDate(0, 0, -30).Format(dateLayout)
	}
	if endStr == "" {
		endStr = today.Format(dateLayout)
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, "", "", fmt.Errorf("%w: bad start date %q", ErrInvalidInput, startStr)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, "", "", fmt.Errorf("%w: bad end date %q", ErrInvalidInput, endStr)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, "", "", fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	return start, end.AddDate(0, 0, 1), startStr, endStr, nil
}

func salesRowsToMaps(rows []repository.SalesRow) []map[string]any {
	prepared := make([]map[string]any, len(rows))
	for i, r := range rows {
		prepared[i] = map[string]any{
			"product_id": r.ProductID,
			"name":       r.Name,
			"units":      r.Units,
			"revenue":    r.Revenue,
		}
	}
	return prepared
}

func (s *adminServiceImpl) Report(ctx context.Context, q ReportQuery) (*Report, error) {
	start, end, startStr, endStr, err := s.parseRange(q.Start, q.End)
	if err != nil {
		return nil, err
	}

	rows, err := s.orders.SalesByProduct(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales rows: %w", err)
	}
	prepared := salesRowsToMaps(rows)
	topRevenue := analytics.TopN(prepared, "revenue", 10)
	topUnits := analytics.TopN(prepared, "units", 10)

	threshold := q.LowThreshold
	if threshold <= 0 {
		threshold = s.lowThreshold
	}
	allProducts, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	low := analytics.LowInventory(allProducts, threshold)
	if len(low) > 50 {
		low = low[:50]
	}

	windowUsers, err := s.users.FindJoinedBetween(ctx, start, end, model.RoleUser)
	if err != nil {
		return nil, err
	}
	regSeries := analytics.CountRegistrationsByDay(windowUsers)

	orders, err := s.orders.ListForReport(ctx, repository.OrderQuery{
		Start:         start,
		End:           end,
		Status:        q.Status,
		CustomerEmail: q.CustomerEmail,
	})
	if err != nil {
		return nil, err
	}

	return &Report{
		Start:              startStr,
		End:                endStr,
		TopRevenue:         topRevenue,
		TopUnits:           topUnits,
		LowInventory:       low,
		RegistrationSeries: regSeries,
		Orders:             orders,
	}, nil
}

func (s *adminServiceImpl) Dashboard(ctx context.Context, trendDays int) (*Dashboard, error) {
	if trendDays < 1 {
		trendDays = 14
	}
	now := s.now()

	usersCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	productsCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	ordersCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingPosts, err := s.blog.CountByApproval(ctx, false)
	if err != nil {
		return nil, err
	}
	approvedPosts, err := s.blog.CountByApproval(ctx, true)
	if err != nil {
		return nil, err
	}
	forumThreads, err := s.forum.CountThreads(ctx)
	if err != nil {
		return nil, err
	}
	consultantsCount, err := s.consultants.CountApproved(ctx)
	if err != nil {
		return nil, err
	}
	reviewsCount, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, err
	}

	recentUsers, err := s.users.Search(ctx, "", 10)
	if err != nil {
		return nil, err
	}

	trendStart := now.AddDate(0, 0, -(trendDays - 1)).Truncate(24 * time.Hour)
	windowUsers, err := s.users.FindJoinedSince(ctx, trendStart, "")
	if err != nil {
		return nil, err
	}
	regTrend := analytics.RegistrationTrend(windowUsers, trendDays, now)

	byStatus, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	const revenueDays = 30
	revenueStart := now.AddDate(0, 0, -(revenueDays - 1)).Truncate(24 * time.Hour)
	recentOrders, err := s.orders.FindCreatedSince(ctx, revenueStart)
	if err != nil {
		return nil, err
	}
	revenueSeries := analytics.RevenueByDay(recentOrders, revenueDays, now)

	salesRows, err := s.orders.SalesByProduct(ctx, revenueStart, now.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	topProducts := analytics.TopN(salesRowsToMaps(salesRows), "revenue", 5)

	return &Dashboard{
		UsersCount:        usersCount,
		ProductsCount:     productsCount,
		OrdersCount:       ordersCount,
		PendingPosts:      pendingPosts,
		ApprovedPosts:     approvedPosts,
		ForumThreads:      forumThreads,
		ConsultantsCount:  consultantsCount,
		ReviewsCount:      reviewsCount,
		RecentUsers:       recentUsers,
		RegistrationTrend: regTrend,
		OrdersByStatus:    byStatus,
		RevenueSeries:     revenueSeries,
		TopProducts:       topProducts,
	}, nil
}

// SalesCSV renders the per-line-item sales export. Amounts are rounded to
// two decimals here, at the presentation boundary.
func (s *adminServiceImpl) SalesCSV(ctx context.Context, startStr, endStr string) ([]byte, string, error) {
	start, end, startStr, endStr, err := s.parseRange(startStr, endStr)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.orders.LineItems(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"order_id", "order_date", "order_status", "payment_status",
		"product_id", "product_name", "quantity", "unit_price", "line_total"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}
	for _, r := range rows {
		lineTotal := r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
		record := []string{
			strconv.FormatUint(uint64(r.OrderID), 10),
			r.OrderDate.Format("2006-01-02 15:04:05"),
			r.OrderStatus,
			r.PaymentStatus,
			strconv.FormatUint(uint64(r.ProductID), 10),
			r.ProductName,
			strconv.Itoa(r.Quantity),
			r.UnitPrice.StringFixed(2),
			lineTotal.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("sales_%s_to_%s.csv", startStr, endStr)
	return buf.Bytes(), filename, nil
}

func (s *adminServiceImpl) ListUsers(ctx context.Context, emailSearch string) ([]model.User, error) {
	return s.users.Search(ctx, emailSearch, 100)
}

func (s *adminServiceImpl) SetUserActive(ctx context.Context, userID uint, active bool) error {
	err := s.users.SetActive(ctx, userID, active)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *adminServiceImpl) ModerateProduct(ctx context.Context, productID uint, action string) error {
	var err error
	switch action {
	case "approve":
		err = s.products.SetStatus(ctx, productID, model.ProductActive)
	case "deactivate":
		err = s.products.SetStatus(ctx, productID, model.ProductInactive)
	case "delete":
		err = s.products.Delete(ctx, productID)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *adminServiceImpl) ModerateBlogPost(ctx context.Context, postID uint, action string) error {
	var err error
	switch action {
	case "approve":
		err = s.blog.SetApproved(ctx, postID, true)
	case "delete":
		err = s.blog.Delete(ctx, postID)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *adminServiceImpl) ModerateReview(ctx context.Context, reviewID uint, action string) error {
	var err error
	switch action {
	case "approve":
		err = s.reviews.SetApproved(ctx, reviewID, true)
	case "reject":
		err = s.reviews.SetApproved(ctx, reviewID, false)
	case "delete":
		err = s.reviews.Delete(ctx, reviewID)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *adminServiceImpl) PendingReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviews.ListPending(ctx, 50)
}

func (s *adminServiceImpl) ModerationQueue(ctx context.Context) ([]model.Product, []model.BlogPost, error) {
	products, err := s.products.ListByStatus(ctx, model.ProductInactive)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.blog.ListPending(ctx)
	if err != nil {
		return nil, nil, err
	}
	return products, posts, nil
}

func (s *adminServiceImpl) SetConsultantStatus(ctx context.Context, consultantID uint, status string) error {
	if status != model.ApprovalApproved && status != model.ApprovalRejected {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	consultant, err := s.consultants.FindByID(ctx, consultantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.consultants.SetApprovalStatus(ctx, consultantID, status); err != nil {
		return err
	}

	if err := s.notifier.SendConsultantStatus(ctx, consultant.ContactEmail, status); err != nil {
		s.logger.Warn("consultant status email failed",
			zap.Uint("consultant_id", consultantID),
			zap.Error(err),
		)
	}
	return nil
}
