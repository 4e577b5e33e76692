package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/skyharvest/pkg/db"
	"github.com/umputun/skyharvest/pkg/domain"
)

// PictureRepository handles picture-of-the-day database operations
type PictureRepository struct {
	db executor
}

// NewPictureRepository creates a new picture repository
func NewPictureRepository(db executor) *PictureRepository {
	return &PictureRepository{db: db}
}

// AddPicture inserts a picture keyed by its date. Returns false if a picture for the date
// already exists, in which case nothing is changed.
func (r *PictureRepository) AddPicture(ctx context.Context, pic *domain.Picture) (bool, error) {
	if pic.Date.IsZero() {
		return false, fmt.Errorf("add picture: empty date")
	}

	dbPic := &db.Picture{
		Date:        pic.Date.Format(domain.DateLayout),
		Title:       pic.Title,
		Explanation: pic.Explanation,
		URL:         pic.URL,
		MediaType:   string(pic.MediaType),
		Copyright:   pic.Copyright,
	}
	if dbPic.Copyright == "" {
		dbPic.Copyright = domain.DefaultCopyright
	}

	query := `
		INSERT INTO pictures (date, title, explanation, url, media_type, copyright)
		VALUES (:date, :title, :explanation, :url, :media_type, :copyright)
		ON CONFLICT(date) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, dbPic)
	if err != nil {
		return false, fmt.Errorf("insert picture: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("get insert id: %w", err)
	}
	pic.ID = id
	pic.Copyright = dbPic.Copyright
	return true, nil
}

// LastPictureDate returns the latest stored picture date, zero time if there are no pictures
func (r *PictureRepository) LastPictureDate(ctx context.Context) (time.Time, error) {
	var lastDate string
	if err := r.db.GetContext(ctx, &lastDate, "SELECT COALESCE(MAX(date), '') FROM pictures"); err != nil {
		return time.Time{}, fmt.Errorf("get last picture date: %w", err)
	}
	return parseStoredDate(lastDate)
}

// GetPicture retrieves a picture by its date
func (r *PictureRepository) GetPicture(ctx context.Context, date string) (*domain.Picture, error) {
	var dbPic db.Picture
	if err := r.db.GetContext(ctx, &dbPic, "SELECT * FROM pictures WHERE date = ?", date); err != nil {
		return nil, fmt.Errorf("get picture: %w", err)
	}
	return r.toDomainPicture(&dbPic)
}

// ListPictures returns all stored pictures ordered by date
func (r *PictureRepository) ListPictures(ctx context.Context) ([]domain.Picture, error) {
	var dbPics []db.Picture
	if err := r.db.SelectContext(ctx, &dbPics, "SELECT * FROM pictures ORDER BY date"); err != nil {
		return nil, fmt.Errorf("list pictures: %w", err)
	}

	res := make([]domain.Picture, 0, len(dbPics))
	for i := range dbPics {
		pic, err := r.toDomainPicture(&dbPics[i])
		if err != nil {
			return nil, err
		}
		res = append(res, *pic)
	}
	return res, nil
}

// CountPictures returns total number of stored pictures
func (r *PictureRepository) CountPictures(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM pictures"); err != nil {
		return 0, fmt.Errorf("count pictures: %w", err)
	}
	return count, nil
}

func (r *PictureRepository) toDomainPicture(dbPic *db.Picture) (*domain.Picture, error) {
	date, err := parseStoredDate(dbPic.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Picture{
		ID:          dbPic.ID,
		Date:        date,
		Title:       dbPic.Title,
		Explanation: dbPic.Explanation,
		URL:         dbPic.URL,
		MediaType:   domain.MediaType(dbPic.MediaType),
		Copyright:   dbPic.Copyright,
		CreatedAt:   dbPic.CreatedAt,
	}, nil
}
