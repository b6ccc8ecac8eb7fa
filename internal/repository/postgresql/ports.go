package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/port_assigner/internal/domain"
)

const TablePortAssignments = "port_assignments"

var slotColumns = []string{
	"seq",
	"rack",
	"switch_id",
	"switch",
	"switch_host",
	"port",
	"device_number",
	"floor",
	"rack_name",
	"room_name",
	"device_name",
	"model_name",
	"port_name",
	"cable_name",
	"connector_name",
	"rosette",
	"host_name",
}

type PortsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewPortsRepository(pool *pgxpool.Pool) *PortsRepository {
	return &PortsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Racks returns rack names in the order of the last written result.
func (r *PortsRepository) Racks(ctx context.Context) ([]string, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("rack").
		From(TablePortAssignments).
		GroupBy("rack").
		OrderBy("MIN(seq) ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	racks, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return racks, nil
}

func (r *PortsRepository) SlotsByRack(
	ctx context.Context,
	rack string,
	limit, offset uint64,
) ([]*domain.Slot, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TablePortAssignments).
		Where(sq.Eq{"rack": rack}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(slotColumns...).
		From(TablePortAssignments).
		Where(sq.Eq{"rack": rack}).
		OrderBy("seq ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	slots, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Slot])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return slots, total, nil
}

// DeleteSlots removes the previous result.
func (r *PortsRepository) DeleteSlots(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.Delete(TablePortAssignments).ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *PortsRepository) SaveSlots(ctx context.Context, slots ...domain.Slot) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TablePortAssignments}, slotColumns,
		pgx.CopyFromSlice(len(slots), func(i int) ([]any, error) {
			s := slots[i]
			return []any{
				s.Seq,
				s.Rack,
				s.SwitchID,
				s.Switch,
				s.SwitchHost,
				s.Port,
				s.DeviceNumber,
				s.Floor,
				s.RackName,
				s.RoomName,
				s.DeviceName,
				s.ModelName,
				s.PortName,
				s.CableName,
				s.ConnectorName,
				s.Rosette,
				s.HostName,
			}, nil
		}))
	if err != nil {
		return fmt.Errorf("failed to save slots: %w", err)
	}

	if copied != int64(len(slots)) {
		return fmt.Errorf("failed to save slots: copied %d rows, expected %d", copied, len(slots))
	}

	return nil
}
