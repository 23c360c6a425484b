package session

import (
	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

// BoltStorage persists session state in a single-bucket bolt database.
type BoltStorage struct {
	db *bolt.DB
}

var (
	bucket = []byte("session-bucket")
)

func NewBoltStorage(path string) (BoltStorage, error) {
	db, err := bolt.Open(path, 0660, nil)

	if err != nil {
		return BoltStorage{}, errors.Wrapf(err, "opening session bolt storage %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)

		return err
	})
	if err != nil {
		return BoltStorage{}, errors.Wrap(err, "creating session bolt bucket")
	}

	return BoltStorage{db}, nil

}

func (b BoltStorage) Put(key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), value)
	})

	if err != nil {
		err = errors.Wrapf(err, "writing %s to session storage", key)
	}

	return err
}

func (b BoltStorage) Get(key string) ([]byte, error) {
	var value []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}

		return nil
	})

	if err != nil {
		err = errors.Wrapf(err, "reading %s from session storage", key)
	}

	return value, err
}

func (b BoltStorage) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})

	if err != nil {
		err = errors.Wrapf(err, "deleting %s from session storage", key)
	}

	return err
}

func (b BoltStorage) Close() error {
	return b.db.Close()
}
