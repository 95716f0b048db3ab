package boltdb

import (
	"bytes"
	"encoding/gob"

	"github.com/filebox/filebox/internal/sharestore"
)

func serializeShare(share *sharestore.Share) ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(share); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func deserializeShare(data []byte) (*sharestore.Share, error) {
	share := new(sharestore.Share)
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(share); err != nil {
		return nil, err
	}
	return share, nil
}
