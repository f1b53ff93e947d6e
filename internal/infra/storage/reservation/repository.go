package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SLB-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заявку вместе с её слотами
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Вызывающая сторона обязана оборачивать вызов в транзакцию: заявка и слоты
// должны появиться атомарно
func (r *Repository) Create(ctx context.Context, request *domain.ReservationRequest) (*domain.ReservationRequest, error) {
	if len(request.Slots) == 0 {
		return nil, ErrNoSlots
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_requests").
		Columns(
			"provider_id",
			"user_id",
			"source",
			"status",
			"name",
			"contact",
			"notes",
		).
		Values(
			request.ProviderID,
			request.UserID,
			request.Source,
			request.Status,
			request.Name,
			request.Contact,
			request.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	// Слоты вставляются одним запросом, позиция сохраняет порядок выбора
	slotsBuilder := psqlbuilder.Insert("reservation_request_slots").
		Columns("request_id", "position", "start_at", "end_at", "slot_date", "status")
	for i, slot := range request.Slots {
		slotsBuilder = slotsBuilder.Values(request.ID, i, slot.StartAt, slot.EndAt, slot.Date, slot.Status)
	}

	query, args, err = slotsBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build slots insert query: %v", ErrBuildQuery, err)
	}

	if _, err = executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute slots insert: %v", ErrExecQuery, err)
	}

	return request, nil
}

// GetByID получает заявку по ID вместе со слотами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"provider_id",
		"user_id",
		"source",
		"status",
		"name",
		"contact",
		"notes",
		"decided_at",
		"created_at",
		"updated_at",
	).
		From("reservation_requests").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: смена статуса не должна гоняться
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	request, err := r.scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	slots, err := r.loadSlots(ctx, executor, []int64{request.ID})
	if err != nil {
		return nil, err
	}
	request.Slots = slots[request.ID]

	return request, nil
}

// GetByProviderWithFilter получает заявки провайдера с фильтрацией
// Поддерживает фильтрацию по:
// - Статусу (Status) - опционально
// - Периоду создания (Since, Until) - опционально
func (r *Repository) GetByProviderWithFilter(ctx context.Context, filter domain.ProviderRequestsFilter) ([]*domain.ReservationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"provider_id",
		"user_id",
		"source",
		"status",
		"name",
		"contact",
		"notes",
		"decided_at",
		"created_at",
		"updated_at",
	).
		From("reservation_requests").
		Where(squirrel.Eq{"provider_id": filter.ProviderID}).
		OrderBy("created_at DESC, id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Since != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}
	if filter.Until != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"created_at": *filter.Until})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.ReservationRequest, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		request, err := r.scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
		ids = append(ids, request.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return requests, nil
	}

	slots, err := r.loadSlots(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, request := range requests {
		request.Slots = slots[request.ID]
	}

	return requests, nil
}

// UpdateStatus переводит заявку в новый статус решения оператора
// Обновляет только pending-заявки: повторное решение по уже обработанной
// заявке возвращает ErrAlreadyDecided
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, decidedAt time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_requests").
		Set("status", status).
		Set("decided_at", decidedAt).
		Set("updated_at", decidedAt).
		Where(squirrel.Eq{"id": id, "status": domain.RequestStatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "нет такой заявки" и "уже обработана"
		exists, err := r.exists(ctx, executor, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrRequestNotFound
		}
		return ErrAlreadyDecided
	}

	return nil
}

// ExpireStale переводит в expired все pending-заявки старше cutoff
// Возвращает количество обработанных заявок
func (r *Repository) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_requests").
		Set("status", domain.RequestStatusExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.RequestStatusPending}).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - execute update: %v", ErrExecQuery, err)
	}

	expired, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - get rows affected: %v", ErrExecQuery, err)
	}

	return expired, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRequest(row rowScanner) (*domain.ReservationRequest, error) {
	var request domain.ReservationRequest
	var decidedAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&request.ID,
		&request.ProviderID,
		&request.UserID,
		&request.Source,
		&request.Status,
		&request.Name,
		&request.Contact,
		&request.Notes,
		&decidedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan request: %v", ErrScanRow, err)
	}

	if decidedAt.Valid {
		request.DecidedAt = &decidedAt.Time
	}
	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return &request, nil
}

// loadSlots загружает слоты пачки заявок одним запросом
func (r *Repository) loadSlots(ctx context.Context, executor DBExecutor, requestIDs []int64) (map[int64][]domain.RequestedSlot, error) {
	query, args, err := psqlbuilder.Select(
		"request_id",
		"start_at",
		"end_at",
		"slot_date",
		"status",
	).
		From("reservation_request_slots").
		Where(squirrel.Eq{"request_id": requestIDs}).
		OrderBy("request_id ASC, position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.RequestedSlot, len(requestIDs))
	for rows.Next() {
		var requestID int64
		var slot domain.RequestedSlot
		if err := rows.Scan(&requestID, &slot.StartAt, &slot.EndAt, &slot.Date, &slot.Status); err != nil {
			return nil, fmt.Errorf("%w: loadSlots - scan slot: %v", ErrScanRow, err)
		}
		out[requestID] = append(out[requestID], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadSlots - rows error: %v", ErrScanRow, err)
	}

	return out, nil
}

func (r *Repository) exists(ctx context.Context, executor DBExecutor, id int64) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("reservation_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}
	return true, nil
}
