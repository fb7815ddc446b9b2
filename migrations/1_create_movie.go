package migrations

import (
	"github.com/go-pg/migrations/v8"
)

func CreateMovieTable(col *migrations.Collection) {
	col.MustRegisterTx(func(db migrations.DB) error {
		_, err := db.Exec(`
			CREATE TABLE movie (
				movie_id    bigserial PRIMARY KEY,
				title       varchar(50) NOT NULL UNIQUE,
				year        integer NOT NULL,
				description varchar(500) NOT NULL,
				rating      double precision,
				ranking     integer,
				review      varchar(250),
				img_url     varchar(250) NOT NULL,
				created_at  timestamptz NOT NULL DEFAULT now(),
				updated_at  timestamptz NOT NULL DEFAULT now()
			)
		`)
		return err
	}, func(db migrations.DB) error {
		_, err := db.Exec(`DROP TABLE movie`)
		return err
	})
}
