package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
)

const themeQuery = `
SELECT t.id, t.name,
	bg.r, bg.g, bg.b,
	nc.r, nc.g, nc.b,
	cl.r, cl.g, cl.b,
	tx.r, tx.g, tx.b,
	hv.r, hv.g, hv.b,
	it.r, it.g, it.b
FROM theme t
JOIN color bg ON bg.id = t.background_color
JOIN color nc ON nc.id = t.non_clickable_color
JOIN color cl ON cl.id = t.clickable_color
JOIN color tx ON tx.id = t.text_color
JOIN color hv ON hv.id = t.hovered_color
JOIN color it ON it.id = t.interface_color`

type ThemeRepository interface {
	List(ctx context.Context) ([]*entity.Theme, error)
	GetByName(ctx context.Context, name string) (*entity.Theme, error)
}

type themeRepository struct {
	conn *sql.DB
}

func NewThemeRepository(conn *sql.DB) ThemeRepository {
	return &themeRepository{
		conn: conn,
	}
}

func (that *themeRepository) List(ctx context.Context) ([]*entity.Theme, error) {
	rows, err := that.conn.QueryContext(ctx, themeQuery+` ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("can't list themes: %w", err)
	}
	defer rows.Close()

	var themes []*entity.Theme
	for rows.Next() {
		theme, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("can't scan theme: %w", err)
		}

		themes = append(themes, theme)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list themes: %w", err)
	}

	return themes, nil
}

func (that *themeRepository) GetByName(ctx context.Context, name string) (*entity.Theme, error) {
	row := that.conn.QueryRowContext(ctx, themeQuery+` WHERE t.name = ?`, name)

	theme, err := scanTheme(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrThemeNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("can't find theme: %w", err)
	}

	return theme, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTheme(row scanner) (*entity.Theme, error) {
	var theme entity.Theme

	dest := []any{&theme.ID, &theme.Name}
	for _, color := range []*entity.Color{
		&theme.BackgroundColor,
		&theme.NonClickableColor,
		&theme.ClickableColor,
		&theme.TextColor,
		&theme.HoveredColor,
		&theme.InterfaceColor,
	} {
		dest = append(dest, &color.R, &color.G, &color.B)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	return &theme, nil
}
