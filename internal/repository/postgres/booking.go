package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `b.id, b.user_id, b.equipment_id, b.start_date, b.end_date, b.total_price, b.status, COALESCE(b.message, ''), b.created_at, u.name, u.email`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, equipment_id, start_date, end_date, total_price, status, message, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, b.UserID, b.EquipmentID, b.StartDate, b.EndDate, b.TotalPrice, b.Status, b.Message, time.Now()).Scan(&b.ID, &b.CreatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b JOIN users u ON u.id = b.user_id WHERE b.id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	// Plain last-write-wins update; racing transitions are resolved by
	// whichever write lands last.
	query := `UPDATE bookings SET status=$1, message=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, b.Status, b.Message, b.ID)
	return err
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32, limit int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b JOIN users u ON u.id = b.user_id WHERE b.user_id = $1 ORDER BY b.created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) ListByEquipmentIDs(ctx context.Context, equipmentIDs []int32, limit int32) ([]domain.Booking, error) {
	if len(equipmentIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings b JOIN users u ON u.id = b.user_id WHERE b.equipment_id = ANY($1) ORDER BY b.created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := r.db.QueryContext(ctx, query, pq.Array(equipmentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.UserID, &b.EquipmentID, &b.StartDate, &b.EndDate, &b.TotalPrice, &b.Status, &b.Message, &b.CreatedAt, &b.UserName, &b.UserEmail)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
