// Package seed loads catalog fixtures from YAML into the database.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/dotflik/dotflik/internal/models"
	"github.com/dotflik/dotflik/internal/repository"
	"github.com/dotflik/dotflik/pkg/logger"
)

// Catalog is the fixture file layout.
type Catalog struct {
	Genres []Genre `yaml:"genres"`
	Stars  []Star  `yaml:"stars"`
	Movies []Movie `yaml:"movies"`
}

type Genre struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type Star struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	BirthYear *int    `yaml:"birth_year"`
	Headshot  *string `yaml:"headshot"`
}

// Movie references its genres and stars by id.
type Movie struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Year      int      `yaml:"year"`
	Director  string   `yaml:"director"`
	BannerURL *string  `yaml:"banner_url"`
	Genres    []int    `yaml:"genres"`
	Stars     []string `yaml:"stars"`
}

// Result counts the rows written.
type Result struct {
	Genres int
	Stars  int
	Movies int
}

// Parse decodes a fixture and checks that every reference resolves.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseFile reads and parses the fixture at path.
func ParseFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

func (c *Catalog) check() error {
	genres := make(map[int]bool, len(c.Genres))
	for _, g := range c.Genres {
		if g.Name == "" {
			return fmt.Errorf("genre %d has no name", g.ID)
		}
		genres[g.ID] = true
	}
	stars := make(map[string]bool, len(c.Stars))
	for _, s := range c.Stars {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("star %q needs an id and a name", s.ID)
		}
		stars[s.ID] = true
	}
	for _, m := range c.Movies {
		if m.ID == "" || m.Title == "" {
			return fmt.Errorf("movie %q needs an id and a title", m.ID)
		}
		for _, g := range m.Genres {
			if !genres[g] {
				return fmt.Errorf("movie %s references unknown genre %d", m.ID, g)
			}
		}
		for _, s := range m.Stars {
			if !stars[s] {
				return fmt.Errorf("movie %s references unknown star %s", m.ID, s)
			}
		}
	}
	return nil
}

// Loader upserts catalogs in a single transaction.
type Loader struct {
	tx     repository.TxManager
	genres *repository.GormRepository[models.Genre]
	stars  repository.StarRepository
	movies repository.MovieRepository
}

// NewLoader creates a loader writing through db.
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{
		tx:     repository.NewTxManager(db),
		genres: repository.NewGormRepository[models.Genre](db),
		stars:  repository.NewStarRepository(db),
		movies: repository.NewMovieRepository(db),
	}
}

// Load writes c. Either every row lands or none does.
func (l *Loader) Load(ctx context.Context, c *Catalog) (Result, error) {
	var res Result

	genreByID := make(map[int]models.Genre, len(c.Genres))
	starByID := make(map[string]models.Star, len(c.Stars))

	err := l.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, g := range c.Genres {
			genre := models.Genre{ID: g.ID, Name: g.Name}
			if err := l.genres.Save(ctx, &genre); err != nil {
				return fmt.Errorf("genre %d: %w", g.ID, err)
			}
			genreByID[g.ID] = genre
			res.Genres++
		}

		for _, s := range c.Stars {
			star := models.Star{ID: s.ID, Name: s.Name, BirthYear: s.BirthYear, Headshot: s.Headshot}
			if err := l.stars.Save(ctx, &star); err != nil {
				return fmt.Errorf("star %s: %w", s.ID, err)
			}
			starByID[s.ID] = star
			res.Stars++
		}

		for _, m := range c.Movies {
			movie := models.Movie{
				ID:        m.ID,
				Title:     m.Title,
				Year:      m.Year,
				Director:  m.Director,
				BannerURL: m.BannerURL,
			}
			for _, id := range m.Genres {
				movie.Genres = append(movie.Genres, genreByID[id])
			}
			for _, id := range m.Stars {
				movie.Stars = append(movie.Stars, starByID[id])
			}
			if err := l.movies.Save(ctx, &movie); err != nil {
				return fmt.Errorf("movie %s: %w", m.ID, err)
			}
			res.Movies++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info("Seeded %d genres, %d stars, %d movies", res.Genres, res.Stars, res.Movies)
	return res, nil
}
