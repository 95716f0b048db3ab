package sharestore

import (
	"errors"
	"os"
)

var (
	ErrNotExist = os.ErrNotExist
	ErrExpired  = errors.New("share link expired")
)
