package postgres

import (
	"database/sql"
	"errors"
	"math/rand"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog/log"

	"github.com/filebox/filebox/internal/sharestore"
)

type Provider struct {
	db *sql.DB
	sg *snowflake.Node
}

type Config struct {
	DbURL string `mapstructure:"db_url"`
}

func New(cfg *Config) sharestore.ShareStore {
	db := NewDb(cfg.DbURL)
	sg, err := snowflake.NewNode(int64(rand.Intn(1023)))
	if err != nil {
		log.Fatal().Err(err).Str("c", "postgres").Msg("failed to create snowflake node")
	}
	log.Info().Str("c", "postgres").Msg("initialized postgres as sharestore")

	return &Provider{db, sg}
}

func (pp *Provider) Name() string {
	return "postgres"
}

func (pp *Provider) Create(share *sharestore.Share) (*sharestore.Share, error) {
	share.Id = pp.sg.Generate().Base32()

	err := pp.db.QueryRow(`
		INSERT INTO shares (id, path, password, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;
	`, share.Id, share.Path, share.Password, share.ExpiresAt).Scan(&share.CreatedAt)
	if err != nil {
		return nil, err
	}
	return share, nil
}

func (pp *Provider) Get(id string) (*sharestore.Share, error) {
	share := new(sharestore.Share)
	err := pp.db.QueryRow(`
		SELECT id, path, password, created_at, expires_at
		FROM shares
		WHERE id = $1;
	`, id).Scan(&share.Id, &share.Path, &share.Password, &share.CreatedAt, &share.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sharestore.ErrNotExist
		}
		return nil, err
	}
	return share, nil
}

func (pp *Provider) List() ([]*sharestore.Share, error) {
	rows, err := pp.db.Query(`
		SELECT id, path, password, created_at, expires_at
		FROM shares
		ORDER BY created_at;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shares := make([]*sharestore.Share, 0)
	for rows.Next() {
		share := new(sharestore.Share)
		err = rows.Scan(&share.Id, &share.Path, &share.Password, &share.CreatedAt, &share.ExpiresAt)
		if err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, rows.Err()
}

func (pp *Provider) Delete(id string) error {
	res, err := pp.db.Exec(`DELETE FROM shares WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sharestore.ErrNotExist
	}
	return nil
}

func (pp *Provider) Prune(now time.Time) (int, error) {
	res, err := pp.db.Exec(`
		DELETE FROM shares
		WHERE expires_at != 0 AND expires_at <= $1;
	`, now.Unix())
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int(affected), err
}

func (pp *Provider) Close() error {
	return pp.db.Close()
}
