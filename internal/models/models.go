// Package models contains the data models for the Dotflik catalog.
package models

// Movie represents a catalog movie with its genres and stars.
type Movie struct {
	ID        string  `db:"id" json:"id" gorm:"primaryKey;size:10"`
	Title     string  `db:"title" json:"title" gorm:"size:100;not null;index"`
	Year      int     `db:"year" json:"year" gorm:"not null;index"`
	Director  string  `db:"director" json:"director" gorm:"size:100;not null"`
	BannerURL *string `db:"banner_url" json:"banner_url,omitempty" gorm:"column:banner_url;size:255"`

	// Relations (filled by preloads)
	Genres []Genre `db:"-" json:"genres,omitempty" gorm:"many2many:genres_in_movies"`
	Stars  []Star  `db:"-" json:"stars,omitempty" gorm:"many2many:stars_in_movies"`
}

// Genre represents a movie genre
type Genre struct {
	ID   int    `db:"id" json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `db:"name" json:"name" gorm:"size:32;not null;uniqueIndex"`
}

// Star represents an actor or actress
type Star struct {
	ID        string  `db:"id" json:"id" gorm:"primaryKey;size:10"`
	Name      string  `db:"name" json:"name" gorm:"size:100;not null"`
	BirthYear *int    `db:"birth_year" json:"birth_year,omitempty"`
	Headshot  *string `db:"headshot" json:"headshot,omitempty" gorm:"size:255"`

	// Relations (filled by preloads)
	Movies []Movie `db:"-" json:"movies,omitempty" gorm:"many2many:stars_in_movies"`
}

// TableName pins the table names used by the migrations.
func (Movie) TableName() string { return "movies" }

// TableName pins the table names used by the migrations.
func (Genre) TableName() string { return "genres" }

// TableName pins the table names used by the migrations.
func (Star) TableName() string { return "stars" }
