package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/snapshot"
)

// Service сервис чтения, отмены и выгрузки броней
type Service struct {
	repo      ReservationRepository
	registry  TableRegistry
	snapshots SnapshotStore
	txManager TransactionManager
	timeProv  TimeProvider
	logger    Logger

	occupancyWindow time.Duration
}

// NewService создает сервис броней
func NewService(
	repo ReservationRepository,
	registry TableRegistry,
	snapshots SnapshotStore,
	txManager TransactionManager,
	timeProv TimeProvider,
	logger Logger,
	occupancyWindow time.Duration,
) *Service {
	return &Service{
		repo:            repo,
		registry:        registry,
		snapshots:       snapshots,
		txManager:       txManager,
		timeProv:        timeProv,
		logger:          logger,
		occupancyWindow: occupancyWindow,
	}
}

// IsAvailable проверяет, свободен ли стол на точное время начала
func (s *Service) IsAvailable(ctx context.Context, tableID string, startTime time.Time) (bool, error) {
	if _, err := s.registry.Get(tableID); err != nil {
		return false, fmt.Errorf("%w: IsAvailable - unknown table %q", ErrTableNotFound, tableID)
	}

	taken, err := s.repo.ExistsActive(ctx, tableID, startTime)
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - check reservation: %v", ErrInternal, err)
	}
	return !taken, nil
}

// Cancel снимает бронь. Клиент может отменить только свою бронь,
// менеджер - любую. После удаления обновляется файловый снапшот.
func (s *Service) Cancel(ctx context.Context, tableID string, startTime time.Time, username string, role domain.Role) error {
	if _, err := s.registry.Get(tableID); err != nil {
		return fmt.Errorf("%w: Cancel - unknown table %q", ErrTableNotFound, tableID)
	}

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		res, err := s.repo.GetByKey(ctx, tableID, startTime)
		if err != nil {
			if errors.Is(err, storage.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - get reservation: %v", ErrInternal, err)
		}

		if !role.IsManager() && res.Username != username {
			return ErrAccessDenied
		}

		if err := s.repo.Delete(ctx, tableID, startTime); err != nil {
			if errors.Is(err, storage.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - delete reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.SyncSnapshot(ctx); err != nil {
		s.logger.Warn("reservations: Cancel - snapshot sync failed: %v", err)
	}
	return nil
}

// List возвращает брони, видимые пользователю, с применением фильтра.
// Менеджер видит все брони, клиент - только свои.
func (s *Service) List(ctx context.Context, username string, role domain.Role, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if !filter.Valid() {
		return nil, ErrInvalidFilter
	}

	list, err := s.visibleReservations(ctx, username, role)
	if err != nil {
		return nil, err
	}

	now := s.timeProv.Now()
	filtered := make([]*domain.Reservation, 0, len(list))
	for _, res := range list {
		if matchesFilter(res, filter, now) {
			filtered = append(filtered, res)
		}
	}

	sortReservations(filtered, filter.SortAscending)
	return filtered, nil
}

// ExportCSV выгружает видимые пользователю брони в CSV
func (s *Service) ExportCSV(ctx context.Context, username string, role domain.Role, filter domain.ReservationFilter) ([]byte, error) {
	list, err := s.List(ctx, username, role, filter)
	if err != nil {
		return nil, err
	}

	data, err := writeCSV(list, s.timeProv.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - %v", ErrInternal, err)
	}
	return data, nil
}

// Stats возвращает сводку дня для панели менеджера
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - load reservations: %v", ErrInternal, err)
	}

	now := s.timeProv.Now()
	stats := &domain.DashboardStats{
		TotalTables: s.registry.Count(),
	}

	for _, res := range list {
		if res.Active {
			stats.ActiveReservations++
		}
		if !sameDate(res.StartTime, now) {
			continue
		}
		if res.IsVIP() {
			stats.VIPReservationsToday++
			stats.DailyRevenue += domain.VIPReservationRevenue
		} else {
			stats.DailyRevenue += domain.StandardReservationRevenue
		}
	}
	return stats, nil
}

// SyncSnapshot перестраивает файловый снапшот состояния столов
// из текущего содержимого хранилища
func (s *Service) SyncSnapshot(ctx context.Context) error {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: SyncSnapshot - load reservations: %v", ErrInternal, err)
	}

	byTable := make(map[string][]*domain.Reservation, s.registry.Count())
	for _, res := range list {
		if !res.Active {
			continue
		}
		byTable[res.TableID] = append(byTable[res.TableID], res)
	}

	snap := make(snapshot.Snapshot, s.registry.Count())
	for _, table := range s.registry.All() {
		entry := snapshot.TableSnapshot{
			Seats:         table.Seats,
			ReservedTimes: []string{},
		}
		active := byTable[table.ID]
		if len(active) > 0 {
			// Списки из хранилища отсортированы по времени начала
			first := active[0]
			entry.IsReserved = true
			entry.ReservationTime = &first.StartTime
			entry.CustomerName = first.CustomerName
			for _, res := range active {
				entry.ReservedTimes = append(entry.ReservedTimes, res.StartTime.Format(time.RFC3339))
			}
		}
		snap[table.ID] = entry
	}

	if err := s.snapshots.Save(snap); err != nil {
		return fmt.Errorf("%w: SyncSnapshot - save: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) visibleReservations(ctx context.Context, username string, role domain.Role) ([]*domain.Reservation, error) {
	var (
		list []*domain.Reservation
		err  error
	)
	if role.IsManager() {
		list, err = s.repo.GetAll(ctx)
	} else {
		list, err = s.repo.GetByUsername(ctx, username)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: visibleReservations - load: %v", ErrInternal, err)
	}
	return list, nil
}
