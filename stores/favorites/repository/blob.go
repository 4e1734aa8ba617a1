package repository

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/log"
	"github.com/algogallery/goapi/domain/favorites"
)

type blobRepo struct {
	path string
}

// NewBlobRepo persists the favorites map as a single JSON document at path.
func NewBlobRepo(path string) favorites.Repo {
	return &blobRepo{path: path}
}

func (r *blobRepo) Load(c bCtx.Ctx) (favorites.Map, error) {
	b, err := ioutil.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.WithFields(log.Fields{
				"path": r.path,
				"err":  err,
			}).Warn("failed to read favorites blob, starting empty")
		}
		return favorites.Map{}, nil
	}

	m := favorites.Map{}
	if err := json.Unmarshal(b, &m); err != nil {
		// a corrupt blob must not take favorites down
		c.WithFields(log.Fields{
			"path": r.path,
			"err":  err,
		}).Warn("corrupt favorites blob, starting empty")
		return favorites.Map{}, nil
	}
	return m, nil
}

func (r *blobRepo) Save(c bCtx.Ctx, m favorites.Map) error {
	b, err := json.Marshal(m)
	if err != nil {
		c.WithField("err", err).Error("failed to marshal favorites")
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.WithFields(log.Fields{
			"dir": dir,
			"err": err,
		}).Error("failed to create favorites dir")
		return err
	}

	// write-then-rename so a crash mid-write never corrupts the blob
	tmp, err := ioutil.TempFile(dir, ".favorites-*")
	if err != nil {
		c.WithField("err", err).Error("failed to create temp file")
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		c.WithField("err", err).Error("failed to write favorites")
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		c.WithFields(log.Fields{
			"path": r.path,
			"err":  err,
		}).Error("failed to replace favorites blob")
		return err
	}
	return nil
}
