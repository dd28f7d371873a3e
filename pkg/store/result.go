package store

import (
	bolt "go.etcd.io/bbolt"
)

const bucketResult = "result"

func init() {
	initDB["initialize result table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketResult))
		return err
	}
}

func (s *dbStore) GetResult(code string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		v := b.Get([]byte(code))
		if v == nil {
			return ErrNoResult
		}
		data = append([]byte(nil), v...)
		return nil
	})
	return data, err
}

func (s *dbStore) PutResult(code string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		return b.Put([]byte(code), data)
	})
}

func (s *dbStore) DelResult(code string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		return b.Delete([]byte(code))
	})
}
