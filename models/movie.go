package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

// Movie is the sole entity: one stored movie with its rating, review
// and last computed ranking.
type Movie struct {
	tableName struct{} `pg:"movie"`

	MovieID     int64     `pg:"movie_id,pk"`
	Title       string    `pg:"title,notnull,unique"`
	Year        int       `pg:"year,notnull,use_zero"`
	Description string    `pg:"description,notnull"`
	Rating      *float64  `pg:"rating"`  // nullable, set by edit
	Ranking     *int      `pg:"ranking"` // nullable, cache of last list computation
	Review      *string   `pg:"review"`  // nullable, set by edit
	ImgURL      string    `pg:"img_url,notnull"`
	CreatedAt   time.Time `pg:"created_at,default:now()"`
	UpdatedAt   time.Time `pg:"updated_at,default:now()"`
}

// GetMovieList returns every movie in ranking-computation order:
// rating ascending with unrated movies first, movie_id as a
// deterministic tie-break.
func GetMovieList(ctx context.Context, db *pg.DB) ([]*Movie, error) {
	var movies []*Movie

	err := db.Model(&movies).
		Context(ctx).
		OrderExpr("rating ASC NULLS FIRST, movie_id ASC").
		Select()

	if err != nil {
		return nil, errors.Wrap(err, "failed to get movie list")
	}

	return movies, nil
}

func GetMovieByID(ctx context.Context, db *pg.DB, id int64) (*Movie, error) {
	var movie Movie

	err := db.Model(&movie).
		Context(ctx).
		Where("movie_id = ?", id).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get movie")
	}

	return &movie, nil
}

// InsertMovie persists a freshly populated movie. A duplicate title
// violates the unique index and comes back as a wrapped store error.
func InsertMovie(ctx context.Context, db *pg.DB, m *Movie) error {
	_, err := db.Model(m).
		Context(ctx).
		Returning("movie_id").
		Insert()

	if err != nil {
		return errors.Wrap(err, "failed to insert movie")
	}

	return nil
}

// UpdateMovieRatingAndReview persists exactly the two user-editable
// columns.
func UpdateMovieRatingAndReview(ctx context.Context, db *pg.DB, m *Movie) error {
	m.UpdatedAt = time.Now()

	_, err := db.Model(m).
		Context(ctx).
		WherePK().
		Column("rating", "review", "updated_at").
		Update()

	if err != nil {
		return errors.Wrap(err, "failed to update movie rating")
	}

	return nil
}

// UpdateMovieRankings persists the rankings computed by
// AssignRankings. One transaction per list read; concurrent list reads
// may still interleave with each other.
func UpdateMovieRankings(ctx context.Context, db *pg.DB, movies []*Movie) error {
	if len(movies) == 0 {
		return nil
	}

	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		for _, m := range movies {
			_, err := tx.Model(m).
				Context(ctx).
				WherePK().
				Column("ranking").
				Update()
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to update movie rankings")
	}

	return nil
}

// DeleteMovie removes the movie and reports whether it existed.
func DeleteMovie(ctx context.Context, db *pg.DB, id int64) (bool, error) {
	res, err := db.Model((*Movie)(nil)).
		Context(ctx).
		Where("movie_id = ?", id).
		Delete()

	if err != nil {
		return false, errors.Wrap(err, "failed to delete movie")
	}

	return res.RowsAffected() > 0, nil
}
