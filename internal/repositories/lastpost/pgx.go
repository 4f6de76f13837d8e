package lastpost

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nberlot/menu-du-jour-bot/internal/domain"
	"github.com/nberlot/menu-du-jour-bot/internal/repositories"
	"github.com/nberlot/menu-du-jour-bot/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

// markerID pins the single marker row; Set always upserts against it.
const markerID = 1

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("LastPostRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Get returns the current last-posted marker
func (p *Pgx) Get(ctx context.Context) (*domain.LastPost, error) {
	query, args, err := repositories.SqBuilder.
		Select("menu_date", "image_ref", "posted_at").
		From("last_post").
		Where(sq.Eq{"id": markerID}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var menuDate time.Time
	var marker domain.LastPost
	err = p.pg.QueryRow(ctx, query, args...).Scan(&menuDate, &marker.ImageRef, &marker.PostedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	marker.Date = domain.DateOf(menuDate)
	return &marker, nil
}

// Set overwrites the marker
func (p *Pgx) Set(ctx context.Context, marker domain.LastPost) error {
	query, args, err := repositories.SqBuilder.
		Insert("last_post").
		Columns("id", "menu_date", "image_ref", "posted_at").
		Values(markerID, marker.Date.Time(time.UTC), marker.ImageRef, marker.PostedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET menu_date = EXCLUDED.menu_date, image_ref = EXCLUDED.image_ref, posted_at = EXCLUDED.posted_at").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}
