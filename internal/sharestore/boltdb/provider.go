package boltdb

import (
	"math/rand"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"

	"github.com/filebox/filebox/internal/sharestore"
)

var bucket = []byte("shares")

type Provider struct {
	db *bbolt.DB
	sg *snowflake.Node
}

type Config struct {
	DbPath string `mapstructure:"db_path"`
}

func New(cfg *Config) sharestore.ShareStore {
	db, err := bbolt.Open(cfg.DbPath, 0666, nil)
	if err != nil {
		log.Fatal().Str("c", "boltdb").Err(err).Msg("failed to open db")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		log.Fatal().Str("c", "boltdb").Err(err).Msg("failed to init db")
	}
	sg, err := snowflake.NewNode(int64(rand.Intn(1023)))
	if err != nil {
		log.Fatal().Str("c", "boltdb").Err(err).Msg("failed to create snowflake node")
	}
	log.Info().Str("c", "boltdb").Str("path", cfg.DbPath).Msg("initialized boltdb as sharestore")

	return &Provider{db, sg}
}

func (bp *Provider) Name() string {
	return "boltdb"
}

func (bp *Provider) Create(share *sharestore.Share) (*sharestore.Share, error) {
	share.Id = bp.sg.Generate().Base32()
	share.CreatedAt = time.Now()

	data, err := serializeShare(share)
	if err != nil {
		return nil, err
	}
	err = bp.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(share.Id), data)
	})
	if err != nil {
		return nil, err
	}
	return share, nil
}

func (bp *Provider) Get(id string) (*sharestore.Share, error) {
	var share *sharestore.Share
	err := bp.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(id))
		if data == nil {
			return sharestore.ErrNotExist
		}
		var err error
		share, err = deserializeShare(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return share, nil
}

func (bp *Provider) List() ([]*sharestore.Share, error) {
	shares := make([]*sharestore.Share, 0)
	err := bp.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, data []byte) error {
			share, err := deserializeShare(data)
			if err != nil {
				return err
			}
			shares = append(shares, share)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return shares, nil
}

func (bp *Provider) Delete(id string) error {
	return bp.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b.Get([]byte(id)) == nil {
			return sharestore.ErrNotExist
		}
		return b.Delete([]byte(id))
	})
}

func (bp *Provider) Prune(now time.Time) (int, error) {
	pruned := 0
	err := bp.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		c := b.Cursor()
		for k, data := c.First(); k != nil; k, data = c.Next() {
			share, err := deserializeShare(data)
			if err != nil {
				return err
			}
			if share.Expired(now) {
				if err := c.Delete(); err != nil {
					return err
				}
				pruned++
			}
		}
		return nil
	})
	return pruned, err
}

func (bp *Provider) Close() error {
	return bp.db.Close()
}
