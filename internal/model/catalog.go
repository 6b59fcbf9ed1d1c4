package model

type CreateBook struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	ISBN13       *string `json:"isbn13" validate:"omitempty,len=13"`
	PublishYear  *int    `json:"publishYear"`
	Pages        *int    `json:"pages" validate:"omitempty,gt=0"`
	CoverURL     *string `json:"coverUrl"`
	LanguageCode *string `json:"languageCode"`
	PublisherID  *int64  `json:"publisherId"`
	AuthorIDs    []int64 `json:"authorIds"`
	CategoryIDs  []int64 `json:"categoryIds"`
}

type CreateAuthor struct {
	Name      string  `json:"name" validate:"required"`
	Biography *string `json:"biography"`
	BirthDate *Date   `json:"birthDate"`
	DeathDate *Date   `json:"deathDate"`
}

type CreatePublisher struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	FoundedYear *int    `json:"foundedYear"`
	Website     *string `json:"website"`
}

type CreateCategory struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parentId"`
}

type CreateBookItem struct {
	BookID       int64   `json:"bookId" validate:"required"`
	Barcode      string  `json:"barcode" validate:"required"`
	LocationCode *string `json:"locationCode"`
}

// BookFilter carries the free-text search, range filters and sort keys the
// listing and export endpoints accept.
type BookFilter struct {
	Query       string `query:"q"`
	CategoryID  int64  `query:"category_id"`
	AuthorID    int64  `query:"author_id"`
	PublisherID int64  `query:"publisher_id"`
	Language    string `query:"language"`
	CreatedFrom string `query:"created_from"`
	CreatedTo   string `query:"created_to"`
	Sort        string `query:"sort"`
	Page        int    `query:"page"`
	Size        int    `query:"size"`
}

type CategoryFilter struct {
	Query       string `query:"q"`
	ParentID    *int64 `query:"parent_id"`
	MinBooks    int    `query:"min_books"`
	EmptyOnly   bool   `query:"empty_only"`
	HasChildren *bool  `query:"has_children"`
	Sort        string `query:"sort"`
}

type PublisherFilter struct {
	Query           string `query:"q"`
	FoundedYearFrom int    `query:"founded_year_from"`
	FoundedYearTo   int    `query:"founded_year_to"`
	MinBooks        int    `query:"min_books"`
	EmptyOnly       bool   `query:"empty_only"`
	HasWebsite      *bool  `query:"has_website"`
	CreatedFrom     string `query:"created_from"`
	CreatedTo       string `query:"created_to"`
	Sort            string `query:"sort"`
}

// CategoryInfo is a category with rolled-up counts and parent name.
type CategoryInfo struct {
	Category
	ParentName    *string `json:"parentName,omitempty" db:"parent_name"`
	BooksCount    int     `json:"booksCount" db:"books_count"`
	ChildrenCount int     `json:"childrenCount" db:"children_count"`
}

type PublisherInfo struct {
	Publisher
	BooksCount int `json:"booksCount" db:"books_count"`
}

type AuthorInfo struct {
	Author
	BooksCount int `json:"booksCount" db:"books_count"`
}

type CategoryNode struct {
	CategoryInfo
	Children []*CategoryNode `json:"children"`
}
