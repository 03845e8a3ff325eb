package postgres_test

import (
	"context"
	"testing"
	"time"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var bookingCols = []string{"id", "user_id", "equipment_id", "start_date", "end_date", "total_price", "status", "message", "created_at", "user_name", "user_email"}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	booking := &domain.Booking{
		UserID:      10,
		EquipmentID: 3,
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice:  300,
		Status:      domain.BookingStatusPending,
		Message:     "Need it for tilling",
	}

	created := time.Now()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(booking.UserID, booking.EquipmentID, booking.StartDate, booking.EndDate, booking.TotalPrice, booking.Status, booking.Message, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))

	err = repo.Create(ctx, booking)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), booking.ID)
	assert.Equal(t, created, booking.CreatedAt)
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)

	rows := sqlmock.NewRows(bookingCols).
		AddRow(1, 10, 3, time.Now(), time.Now(), 300.0, "pending", "Need it for tilling", time.Now(), "Ravi", "ravi@farm.com")

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN users u ON u.id = b.user_id WHERE b.id = \\$1").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	booking, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Ravi", booking.UserName)
	assert.Equal(t, "ravi@farm.com", booking.UserEmail)
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)

	mock.ExpectExec("UPDATE bookings SET status=\\$1, message=\\$2 WHERE id=\\$3").
		WithArgs(domain.BookingStatusApproved, "", int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), &domain.Booking{ID: 1, Status: domain.BookingStatusApproved})
	assert.NoError(t, err)
}

func TestBookingRepository_ListByEquipmentIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingCols).
			AddRow(1, 10, 3, time.Now(), time.Now(), 300.0, "pending", "", time.Now(), "Ravi", "ravi@farm.com").
			AddRow(2, 11, 4, time.Now(), time.Now(), 150.0, "approved", "", time.Now(), "Meera", "meera@farm.com")

		mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN users u ON u.id = b.user_id WHERE b.equipment_id = ANY\\(\\$1\\)").
			WithArgs(pq.Array([]int32{3, 4})).
			WillReturnRows(rows)

		bookings, err := repo.ListByEquipmentIDs(ctx, []int32{3, 4}, 0)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("No Equipment Means No Query", func(t *testing.T) {
		bookings, err := repo.ListByEquipmentIDs(ctx, nil, 0)
		assert.NoError(t, err)
		assert.Nil(t, bookings)
	})

	t.Run("Limit Is Applied", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingCols).
			AddRow(1, 10, 3, time.Now(), time.Now(), 300.0, "pending", "", time.Now(), "Ravi", "ravi@farm.com")

		mock.ExpectQuery("SELECT (.+) ORDER BY b.created_at DESC LIMIT 3").
			WithArgs(pq.Array([]int32{3})).
			WillReturnRows(rows)

		bookings, err := repo.ListByEquipmentIDs(ctx, []int32{3}, 3)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
	})
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)

	rows := sqlmock.NewRows(bookingCols).
		AddRow(1, 10, 3, time.Now(), time.Now(), 300.0, "pending", "", time.Now(), "Ravi", "ravi@farm.com")

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN users u ON u.id = b.user_id WHERE b.user_id = \\$1").
		WithArgs(int32(10)).
		WillReturnRows(rows)

	bookings, err := repo.ListByUser(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, int32(3), bookings[0].EquipmentID)
}
