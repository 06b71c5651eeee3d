package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// FileStorage хранит сериализованную корзину в одном JSON-файле,
// по аналогии с единственным ключом в локальном хранилище браузера.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load читает сохранённую корзину. Отсутствие файла означает пустую корзину.
func (s *FileStorage) Load() ([]Line, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return lines, nil
}

// Save атомарно перезаписывает корзину через временный файл и rename.
func (s *FileStorage) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".cart-*")
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
