package fallbacktmpl

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SLB-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий шаблонов fallback-расписаний
// Шаблон хранится построчно: одна строка на слот, сборка в доменную
// структуру происходит при чтении
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID собирает шаблон провайдера из строк таблицы
// Отсутствие строк - ErrTemplateNotFound: вызывающая сторона сама решает,
// считать ли это пустым шаблоном
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.FallbackTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day_offset",
		"start_hour",
		"start_minute",
		"duration_minutes",
		"status",
	).
		From("fallback_slot_templates").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("day_offset ASC, start_hour ASC, start_minute ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tmpl := &domain.FallbackTemplate{ProviderID: providerID}
	// Строки приходят отсортированными по day_offset: дни собираются подряд
	var current *domain.TemplateDay
	for rows.Next() {
		var offset int
		var slot domain.TemplateSlot
		if err := rows.Scan(&offset, &slot.Hour, &slot.Minute, &slot.DurationMinutes, &slot.Status); err != nil {
			return nil, fmt.Errorf("%w: GetByProviderID - scan slot: %v", ErrScanRow, err)
		}

		if current == nil || current.DayOffset != offset {
			tmpl.Days = append(tmpl.Days, domain.TemplateDay{DayOffset: offset})
			current = &tmpl.Days[len(tmpl.Days)-1]
		}
		current.Slots = append(current.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - rows error: %v", ErrScanRow, err)
	}

	if len(tmpl.Days) == 0 {
		return nil, ErrTemplateNotFound
	}

	return tmpl, nil
}

// ReplaceForProvider атомарно заменяет шаблон провайдера
// Ожидает активную транзакцию в контексте: delete и insert должны
// примениться вместе
func (r *Repository) ReplaceForProvider(ctx context.Context, tmpl *domain.FallbackTemplate) error {
	if err := validateTemplate(tmpl); err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("fallback_slot_templates").
		Where(squirrel.Eq{"provider_id": tmpl.ProviderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForProvider - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err = executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForProvider - execute delete: %v", ErrExecQuery, err)
	}

	if tmpl.IsEmpty() {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("fallback_slot_templates").
		Columns("provider_id", "day_offset", "start_hour", "start_minute", "duration_minutes", "status")
	for _, day := range tmpl.Days {
		for _, slot := range day.Slots {
			insertBuilder = insertBuilder.Values(
				tmpl.ProviderID,
				day.DayOffset,
				slot.Hour,
				slot.Minute,
				slot.DurationMinutes,
				slot.Status,
			)
		}
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForProvider - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err = executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForProvider - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func validateTemplate(tmpl *domain.FallbackTemplate) error {
	for _, day := range tmpl.Days {
		if day.DayOffset < domain.MinInjectionOffsetDays || day.DayOffset > domain.MaxInjectionOffsetDays {
			return fmt.Errorf("%w: day offset %d is out of range", ErrInvalidSlot, day.DayOffset)
		}
		for _, slot := range day.Slots {
			if slot.Hour < 0 || slot.Hour > 23 || slot.Minute < 0 || slot.Minute > 59 {
				return fmt.Errorf("%w: slot %02d:%02d is out of range", ErrInvalidSlot, slot.Hour, slot.Minute)
			}
			if !slot.Status.IsValid() {
				return fmt.Errorf("%w: unknown slot status %q", ErrInvalidSlot, slot.Status)
			}
		}
	}
	return nil
}
