package books

// Book is the sole catalog entity. The isbn is the primary key and is
// immutable once the book has been created.
type Book struct {
	ISBN      string `json:"isbn" example:"0691161518"`
	AmazonURL string `json:"amazon_url" example:"http://a.co/eobPtX2"`
	Author    string `json:"author" example:"Matthew Lane"`
	Language  string `json:"language" example:"english"`
	Pages     int    `json:"pages" example:"264"`
	Publisher string `json:"publisher" example:"Princeton University Press"`
	Title     string `json:"title" example:"Power-Up"`
	Year      int    `json:"year" example:"2017"`
}

// CreateBookRequest is the POST /books request body.
//
// Pointer fields let the validator report a missing field rather than
// silently accepting the zero value.
type CreateBookRequest struct {
	ISBN      *string `json:"isbn" validate:"required"`
	AmazonURL *string `json:"amazon_url" validate:"required"`
	Author    *string `json:"author" validate:"required"`
	Language  *string `json:"language" validate:"required"`
	Pages     *int    `json:"pages" validate:"required,gt=0"`
	Publisher *string `json:"publisher" validate:"required"`
	Title     *string `json:"title" validate:"required"`
	Year      *int    `json:"year" validate:"required"`
}

// Book converts a validated create request into a Book.
func (req *CreateBookRequest) Book() Book {
	return Book{
		ISBN:      *req.ISBN,
		AmazonURL: *req.AmazonURL,
		Author:    *req.Author,
		Language:  *req.Language,
		Pages:     *req.Pages,
		Publisher: *req.Publisher,
		Title:     *req.Title,
		Year:      *req.Year,
	}
}

// UpdateBookRequest is the PUT /books/{isbn} request body.
//
// The isbn is taken from the URL path. A body isbn is tolerated only when it
// matches the path (identity is immutable) - the handler enforces this before
// validating the rest of the payload.
type UpdateBookRequest struct {
	ISBN      *string `json:"isbn"`
	AmazonURL *string `json:"amazon_url" validate:"required"`
	Author    *string `json:"author" validate:"required"`
	Language  *string `json:"language" validate:"required"`
	Pages     *int    `json:"pages" validate:"required,gt=0"`
	Publisher *string `json:"publisher" validate:"required"`
	Title     *string `json:"title" validate:"required"`
	Year      *int    `json:"year" validate:"required"`
}

// Book converts a validated update request into a Book keyed by the path isbn.
func (req *UpdateBookRequest) Book(isbn string) Book {
	return Book{
		ISBN:      isbn,
		AmazonURL: *req.AmazonURL,
		Author:    *req.Author,
		Language:  *req.Language,
		Pages:     *req.Pages,
		Publisher: *req.Publisher,
		Title:     *req.Title,
		Year:      *req.Year,
	}
}
