package testimonial

import (
	"context"
	"database/sql"
	"sync"
)

type Repository interface {
	List(ctx context.Context) ([]Testimonial, error)
	Create(ctx context.Context, params CreateParams) (*Testimonial, error)
}

// MemoryRepository keeps testimonials in a slice; they are seeded once and
// read-only afterward.
type MemoryRepository struct {
	mu           sync.RWMutex
	testimonials []Testimonial
	nextID       uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Testimonial, len(r.testimonials))
	copy(out, r.testimonials)
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, params CreateParams) (*Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := Testimonial{
		ID:              r.nextID,
		CustomerName:    params.CustomerName,
		Location:        params.Location,
		Rating:          params.Rating,
		Comment:         params.Comment,
		ProfileImageURL: params.ProfileImageURL,
	}
	r.nextID++
	r.testimonials = append(r.testimonials, t)
	return &t, nil
}

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context) ([]Testimonial, error) {
	query := `
	SELECT id, customer_name, location, rating, comment, profile_image_url
	FROM testimonials
	ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Testimonial
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.CustomerName, &t.Location, &t.Rating, &t.Comment, &t.ProfileImageURL); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, params CreateParams) (*Testimonial, error) {
	query := `
	INSERT INTO testimonials (customer_name, location, rating, comment, profile_image_url)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, customer_name, location, rating, comment, profile_image_url
	`

	var t Testimonial
	err := r.db.QueryRowContext(ctx, query,
		params.CustomerName, params.Location, params.Rating, params.Comment, params.ProfileImageURL,
	).Scan(&t.ID, &t.CustomerName, &t.Location, &t.Rating, &t.Comment, &t.ProfileImageURL)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
