package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `e.id, e.owner_id, u.name, e.name, e.category, COALESCE(e.description, ''), e.price_per_day, e.location, COALESCE(e.image, ''), e.is_available, e.specifications, COALESCE(e.terms, ''), e.created_at`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	specs, err := json.Marshal(eq.Specifications)
	if err != nil {
		return err
	}
	query := `INSERT INTO equipment (owner_id, name, category, description, price_per_day, location, image, is_available, specifications, terms, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, eq.OwnerID, eq.Name, eq.Category, eq.Description, eq.PricePerDay, eq.Location, eq.Image, eq.IsAvailable, specs, eq.Terms, time.Now()).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment e JOIN users u ON u.id = e.owner_id WHERE e.id = $1`
	return scanEquipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	specs, err := json.Marshal(eq.Specifications)
	if err != nil {
		return err
	}
	query := `UPDATE equipment SET name=$1, category=$2, description=$3, price_per_day=$4, location=$5, image=$6, is_available=$7, specifications=$8, terms=$9 WHERE id=$10`
	_, err = r.db.ExecContext(ctx, query, eq.Name, eq.Category, eq.Description, eq.PricePerDay, eq.Location, eq.Image, eq.IsAvailable, specs, eq.Terms, eq.ID)
	return err
}

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	// Hard delete; existing bookings keep their dangling reference.
	_, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	return err
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment e JOIN users u ON u.id = e.owner_id ORDER BY e.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEquipment(rows)
}

func (r *equipmentRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment e JOIN users u ON u.id = e.owner_id WHERE e.owner_id = $1 ORDER BY e.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEquipment(rows)
}

func (r *equipmentRepository) ListIDsByOwner(ctx context.Context, ownerID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM equipment WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *equipmentRepository) CountAvailable(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM equipment WHERE is_available = true`).Scan(&count)
	return count, err
}

func (r *equipmentRepository) ListImagePaths(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT image FROM equipment WHERE image IS NOT NULL AND image <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	var specs []byte
	err := row.Scan(&eq.ID, &eq.OwnerID, &eq.OwnerName, &eq.Name, &eq.Category, &eq.Description, &eq.PricePerDay, &eq.Location, &eq.Image, &eq.IsAvailable, &specs, &eq.Terms, &eq.CreatedAt)
	if err != nil {
		return nil, err
	}
	eq.Specifications = map[string]string{}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &eq.Specifications); err != nil {
			return nil, err
		}
	}
	return eq, nil
}

func collectEquipment(rows *sql.Rows) ([]domain.Equipment, error) {
	var items []domain.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *eq)
	}
	return items, rows.Err()
}
