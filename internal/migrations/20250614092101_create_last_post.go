package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateLastPost, downCreateLastPost)
}

func upCreateLastPost(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE last_post (
		id INT PRIMARY KEY,
		menu_date DATE NOT NULL,
		image_ref TEXT NOT NULL,
		posted_at TIMESTAMPTZ NOT NULL
	);
	`)
	return err
}

func downCreateLastPost(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE last_post;
	`)
	return err
}
