package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS color (
	id INTEGER PRIMARY KEY,
	r  INTEGER NOT NULL,
	g  INTEGER NOT NULL,
	b  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS theme (
	id                  INTEGER PRIMARY KEY,
	name                TEXT NOT NULL UNIQUE,
	background_color    INTEGER NOT NULL REFERENCES color(id),
	non_clickable_color INTEGER NOT NULL REFERENCES color(id),
	clickable_color     INTEGER NOT NULL REFERENCES color(id),
	text_color          INTEGER NOT NULL REFERENCES color(id),
	hovered_color       INTEGER NOT NULL REFERENCES color(id),
	interface_color     INTEGER NOT NULL REFERENCES color(id)
);`

// palette order: background, non clickable, clickable, text, hovered, interface.
var defaultThemes = []struct {
	name    string
	palette [6][3]int
}{
	{
		name: "basic",
		palette: [6][3]int{
			{255, 255, 255},
			{190, 190, 190},
			{120, 120, 120},
			{40, 40, 40},
			{90, 140, 220},
			{220, 220, 220},
		},
	},
	{
		name: "pale pink",
		palette: [6][3]int{
			{255, 236, 240},
			{240, 196, 206},
			{214, 130, 152},
			{110, 48, 66},
			{236, 104, 140},
			{250, 214, 222},
		},
	},
}

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init - creates the theme tables and seeds the default themes into an empty database.
func (that *Storage) Init(ctx context.Context) error {
	if _, err := that.Connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("can't create tables: %w", err)
	}

	var count int
	if err := that.Connection.QueryRowContext(ctx, `SELECT COUNT(*) FROM theme`).Scan(&count); err != nil {
		return fmt.Errorf("can't count themes: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := that.seed(ctx); err != nil {
		return fmt.Errorf("can't seed themes: %w", err)
	}

	return nil
}

func (that *Storage) seed(ctx context.Context) error {
	tx, err := that.Connection.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, theme := range defaultThemes {
		var colorIDs [6]int64
		for i, rgb := range theme.palette {
			res, err := tx.ExecContext(ctx, `INSERT INTO color (r, g, b) VALUES (?, ?, ?)`, rgb[0], rgb[1], rgb[2])
			if err != nil {
				return err
			}

			if colorIDs[i], err = res.LastInsertId(); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO theme (
				name, background_color, non_clickable_color, clickable_color,
				text_color, hovered_color, interface_color
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			theme.name, colorIDs[0], colorIDs[1], colorIDs[2], colorIDs[3], colorIDs[4], colorIDs[5],
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
