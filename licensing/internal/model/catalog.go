package model

import (
	"time"
)

type Book struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Pages       int       `json:"pages" db:"pages"`
	Author      string    `json:"author" db:"author"`
	YearLaunch  int       `json:"year_launch" db:"year_launch"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type BookRequest struct {
	Title       string `json:"title" validate:"required"`
	Pages       int    `json:"pages" validate:"required,gt=0"`
	Author      string `json:"author" validate:"required"`
	YearLaunch  int    `json:"year_launch" validate:"required,gt=0"`
	Description string `json:"description"`
}

const BooksReference = "books"

type File struct {
	ID             int       `json:"id" db:"id"`
	ReferenceTable string    `json:"reference_table" db:"reference_table"`
	ReferenceID    int       `json:"reference_id" db:"reference_id"`
	Name           string    `json:"name" db:"name"`
	FilePath       string    `json:"file_path" db:"file_path"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type Upload struct {
	ReferenceTable string
	ReferenceID    int
	Filename       string
	ContentType    string
	Size           int64
}
