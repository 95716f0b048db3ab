// Package sharestore persists share links: short IDs resolving to paths in
// the served tree, optionally password protected and expiring.
package sharestore

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/filebox/filebox/pkg/ns"
)

// Share is a published link to a path inside the served tree.
type Share struct {
	Id        string        `json:"id"`
	Path      string        `json:"path" validate:"required,regex=^/"`
	Password  ns.NullString `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
	// ExpiresAt is a unix timestamp in seconds; zero means the share
	// never expires.
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// Expired reports whether the share is past its expiry at the given time.
func (s *Share) Expired(now time.Time) bool {
	return s.ExpiresAt != 0 && now.Unix() >= s.ExpiresAt
}

type ShareStore interface {
	Name() string
	Create(share *Share) (*Share, error)
	Get(id string) (*Share, error)
	List() ([]*Share, error)
	Delete(id string) error
	Prune(now time.Time) (int, error)
	Close() error
}

var store ShareStore

func Load(s ShareStore) {
	store = s
}

// Enabled reports whether a share provider was configured.
func Enabled() bool {
	return store != nil
}

func Name() string {
	return store.Name()
}

func Create(share *Share) (*Share, error) {
	log.Debug().Str("c", "sharestore").Str("path", share.Path).Msg("CREATE")
	return store.Create(share)
}

func Get(id string) (*Share, error) {
	log.Debug().Str("c", "sharestore").Str("id", id).Msg("GET")
	return store.Get(id)
}

func List() ([]*Share, error) {
	log.Debug().Str("c", "sharestore").Msg("LIST")
	return store.List()
}

func Delete(id string) error {
	log.Debug().Str("c", "sharestore").Str("id", id).Msg("DELETE")
	return store.Delete(id)
}

func Prune(now time.Time) (int, error) {
	log.Debug().Str("c", "sharestore").Time("now", now).Msg("PRUNE")
	return store.Prune(now)
}

func Close() error {
	if store == nil {
		return nil
	}
	return store.Close()
}
