package service

import (
	"context"
	"log/slog"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/metrics"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"golang.org/x/sync/errgroup"
)

type StockVerifier interface {
	Verify(ctx context.Context, requests []models.StockRequest) []models.StockVerdict
}

type stockVerifier struct {
	products    repository.ProductRepository
	concurrency int
}

func NewStockVerifier(products repository.ProductRepository, concurrency int) StockVerifier {
	return &stockVerifier{products: products, concurrency: max(concurrency, 1)}
}

// Verify looks every requested product up concurrently. The result has one verdict per request, in
// request order; a failed lookup produces an unavailable verdict instead of aborting the batch.
func (s *stockVerifier) Verify(ctx context.Context, requests []models.StockRequest) []models.StockVerdict {

	verdicts := make([]models.StockVerdict, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range requests {
		g.Go(func() error {
			verdicts[i] = s.check(gctx, req)
			return nil
		})
	}

	_ = g.Wait()

	short := models.Shortages(verdicts)
	if len(short) > 0 {
		metrics.StockShortfall()
		middleware.LoggerFromContext(ctx).Info("Stock verification found shortages",
			slog.Int("items", len(requests)),
			slog.Int("short", len(short)),
		)
	}

	return verdicts
}

func (s *stockVerifier) check(ctx context.Context, req models.StockRequest) models.StockVerdict {

	verdict := models.StockVerdict{
		ProductID:         req.ProductID,
		ProductName:       req.ProductName,
		RequestedQuantity: req.Quantity,
	}

	if verdict.ProductName == "" {
		verdict.ProductName = "Produto " + req.ProductID
	}

	product, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			verdict.NotFound = true
		} else if appErr, ok := errors.IsAppError(err); ok {
			verdict.Error = appErr.Message
		} else {
			verdict.Error = errors.NetworkMessage
		}

		return verdict
	}

	if product.Name != "" {
		verdict.ProductName = product.Name
	}

	verdict.AvailableStock = product.AvailableStock()
	verdict.IsAvailable = verdict.AvailableStock >= req.Quantity

	return verdict
}

// ShortfallError turns failed verdicts into the error the shopper sees. A genuine shortage or a
// missing product outranks lookup failures; when only lookups failed the result is a network error.
func ShortfallError(verdicts []models.StockVerdict) error {

	short := models.Shortages(verdicts)
	if len(short) == 0 {
		return nil
	}

	lines := make([]string, 0, len(short))
	genuine := false

	for _, v := range short {
		lines = append(lines, v.ShortageLine())
		if v.Error == "" {
			genuine = true
		}
	}

	if genuine {
		return errors.StockShortfallError(lines)
	}

	return errors.NetworkError(nil).WithDetails(lines...)
}
