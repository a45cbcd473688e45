// Package appraisal прикладной сервис перед движками оценки. Дополняет
// результаты данными региона, кэширует и считает их, а редкие номера
// отправляет в канал алертов.
package appraisal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/patrickmn/go-cache"

	"plate_appraiser/internal/domain"
	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/service/advisory"
	"plate_appraiser/internal/domain/service/plate"
	"plate_appraiser/internal/domain/service/region"
	"plate_appraiser/internal/domain/value"
	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/errcodes"
	"plate_appraiser/pkg/logx"
)

const (
	defaultCacheTTL     = 10 * time.Minute
	defaultCacheCleanup = time.Hour

	platePrefix = "plate:"
	tailPrefix  = "tail:"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type PlateEngine interface {
	Valuate(raw string) (entity.PlateValuation, error)
}

type TailEngine interface {
	Valuate(raw string) (entity.TailValuation, error)
}

type Service struct {
	plates  PlateEngine
	tails   TailEngine
	cache   *cache.Cache
	metrics *Metrics
	alerts  chan<- entity.PlateReport
}

func NewService(plates PlateEngine, tails TailEngine) *Service {
	return &Service{
		plates: plates,
		tails:  tails,
		cache:  cache.New(defaultCacheTTL, defaultCacheCleanup),
	}
}

func (s *Service) WithCache(ttl, cleanup time.Duration) *Service {
	s.cache = cache.New(ttl, cleanup)
	return s
}

func (s *Service) WithMetrics(m *Metrics) *Service {
	s.metrics = m
	return s
}

// WithAlerts задаёт канал для номеров 极品. Отправка не блокирует: при
// полном канале алерт теряется.
func (s *Service) WithAlerts(alerts chan<- entity.PlateReport) *Service {
	s.alerts = alerts
	return s
}

// FormatPlate нормализует номер для отображения.
func (s *Service) FormatPlate(raw string) string {
	return plate.Format(raw)
}

func (s *Service) ValuatePlate(ctx context.Context, raw string) (entity.PlateReport, error) {
	key := platePrefix + value.FormatPlate(raw)
	if cached, ok := s.cache.Get(key); ok {
		if report, ok := cached.(entity.PlateReport); ok {
			return report, nil
		}
	}

	v, err := s.plates.Valuate(raw)
	if err != nil {
		if errors.Is(err, value.ErrInvalidFormat) {
			s.metrics.observeRejection(EnginePlate)
			logger(ctx).Info("plate rejected",
				slog.String(logx.FieldPlate, raw),
				slog.String(logx.FieldLevel, v.Level.String()),
				logx.Error(err),
			)

			return entity.PlateReport{PlateValuation: v}, failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("plates.Valuate: %w", err),
				failure.WithCode(errcodes.InvalidPlateFormat),
				failure.WithDescription(v.Comment),
			)
		}

		logger(ctx).Error("plate valuation failed", slog.String(logx.FieldPlate, raw), logx.Error(err))

		return entity.PlateReport{}, domain.WrapError(err, errcodes.ComputationError, "plate valuation")
	}

	report := decorate(v)

	s.metrics.observePlate(v.Level.String(), v.RawValue)
	logger(ctx).Debug("plate valuated",
		slog.String(logx.FieldPlate, v.Plate),
		slog.Int64(logx.FieldValue, v.Value),
		slog.String(logx.FieldLevel, v.Level.String()),
		slog.Int(logx.FieldStars, v.Stars),
		slog.Any(logx.FieldFactors, v.Factors),
	)

	if v.Level == entity.PlateLevelSuperb {
		s.alert(ctx, report)
	}

	s.cache.SetDefault(key, report)

	return report, nil
}

// ValuateTail оценивает последние четыре цифры raw; raw может быть полным
// номером телефона.
func (s *Service) ValuateTail(ctx context.Context, raw string) (entity.TailValuation, error) {
	tail := value.ExtractTail(raw)

	key := tailPrefix + tail
	if cached, ok := s.cache.Get(key); ok {
		if v, ok := cached.(entity.TailValuation); ok {
			return v, nil
		}
	}

	v, err := s.tails.Valuate(tail)
	if err != nil {
		if errors.Is(err, value.ErrInvalidFormat) {
			s.metrics.observeRejection(EngineTail)
			logger(ctx).Info("tail rejected", slog.String(logx.FieldTailNumber, tail), logx.Error(err))

			return v, failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("tails.Valuate: %w", err),
				failure.WithCode(errcodes.InvalidTailNumber),
				failure.WithDescription("请输入至少4位数字"),
			)
		}

		logger(ctx).Error("tail valuation failed", slog.String(logx.FieldTailNumber, tail), logx.Error(err))

		return entity.TailValuation{}, domain.WrapError(err, errcodes.ComputationError, "tail valuation")
	}

	v = advisory.Annotate(v)

	s.metrics.observeTail(v.Grade.String())
	logger(ctx).Debug("tail valuated",
		slog.String(logx.FieldTailNumber, v.TailNumber),
		slog.String(logx.FieldPattern, v.Pattern.String()),
		slog.String(logx.FieldGrade, v.Grade.String()),
		slog.Int64(logx.FieldValue, v.Price),
		slog.String(logx.FieldProfile, v.Profile),
	)

	s.cache.SetDefault(key, v)

	return v, nil
}

// ParsePlate разбирает raw на провинцию и город. Неизвестный иероглиф
// провинции это invalid argument.
func (s *Service) ParsePlate(_ context.Context, raw string) (entity.PlateInfo, error) {
	info := region.Parse(raw)
	if info.Plate == "" {
		return info, failure.NewInvalidArgumentError(
			"plate is empty",
			failure.WithCode(errcodes.InvalidPlateFormat),
			failure.WithDescription("请输入有效的车牌号"),
		)
	}

	if !info.Valid {
		return info, failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown province %q", info.ProvinceCode),
			failure.WithCode(errcodes.UnknownProvince),
			failure.WithDescription("未知的省份代码"),
		)
	}

	return info, nil
}

// SearchRegions на пустой запрос отдаёт все провинции.
func (s *Service) SearchRegions(keyword string) []entity.ProvinceMatch {
	if keyword == "" {
		all := region.All()
		matches := make([]entity.ProvinceMatch, 0, len(all))
		for _, p := range all {
			matches = append(matches, entity.ProvinceMatch{Province: p})
		}
		return matches
	}

	return region.Search(keyword)
}

func (s *Service) alert(ctx context.Context, report entity.PlateReport) {
	if s.alerts == nil {
		return
	}

	select {
	case s.alerts <- report:
	default:
		logger(ctx).Warn("rare plate alert dropped", slog.String(logx.FieldPlate, report.Plate))
	}
}

func decorate(v entity.PlateValuation) entity.PlateReport {
	p := value.Plate(v.Plate)
	info := region.Parse(v.Plate)

	return entity.PlateReport{
		PlateValuation: v,
		RegionCode:     p.RegionCode(),
		Body:           p.Body(),
		ProvinceCode:   p.ProvinceCode(),
		Location:       region.LocationName(info),
	}
}
