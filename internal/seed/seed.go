// Package seed reads the course, student and grade documents a Store starts from.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hmans/gradebook/internal/config"
	"github.com/hmans/gradebook/internal/store"
)

var (
	// ErrUnsupportedFormat is returned for seed files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported seed file format")
	ErrNotAList          = errors.New("seed document is not a list")
	ErrNullRecord        = errors.New("null record")
)

// studentDoc accepts both the canonical lastName key and the lastnamme spelling
// used by older data files.
type studentDoc struct {
	ID        int     `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	LastName  *string `json:"lastName" yaml:"lastName"`
	Lastnamme *string `json:"lastnamme" yaml:"lastnamme"`
	CourseID  int     `json:"courseId" yaml:"courseId"`
}

func (d studentDoc) student() *store.Student {
	s := &store.Student{ID: d.ID, Name: d.Name, CourseID: d.CourseID}
	switch {
	case d.LastName != nil:
		s.LastName = *d.LastName
	case d.Lastnamme != nil:
		s.LastName = *d.Lastnamme
	}
	return s
}

// Load reads the three documents named by paths. Every file must exist and hold a
// list of records.
func Load(paths config.DataConfig) (store.Seed, error) {
	var s store.Seed
	var err error

	if s.Courses, err = decodeList[store.Course](paths.Courses); err != nil {
		return store.Seed{}, err
	}

	students, err := decodeList[studentDoc](paths.Students)
	if err != nil {
		return store.Seed{}, err
	}
	s.Students = make([]*store.Student, 0, len(students))
	for _, d := range students {
		s.Students = append(s.Students, d.student())
	}

	if s.Grades, err = decodeList[store.Grade](paths.Grades); err != nil {
		return store.Seed{}, err
	}
	return s, nil
}

// decodeList decodes a JSON or YAML list of records from path. The result is
// never nil and holds no nil entries.
func decodeList[T any](path string) ([]*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var list *[]*T
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	if list == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAList)
	}
	for i, rec := range *list {
		if rec == nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, i, ErrNullRecord)
		}
	}
	if *list == nil {
		return []*T{}, nil
	}
	return *list, nil
}
