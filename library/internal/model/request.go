package model

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"`
	User      Identity `json:"user"`
}

type RentalRequest struct {
	BookID int64 `json:"book_id" validate:"required,gt=0"`
}

type CreateNamedRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateNamedRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

type DeleteByIDRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type BookRequest struct {
	ISBN             int64  `json:"isbn" validate:"required,gt=0"`
	Title            string `json:"title" validate:"required"`
	AuthorID         int64  `json:"author_id" validate:"required,gt=0"`
	PublisherID      int64  `json:"publisher_id" validate:"required,gt=0"`
	PublicationYear  int    `json:"publication_year" validate:"required"`
	PublicationMonth int    `json:"publication_month" validate:"required,min=1,max=12"`
}

func (r BookRequest) Book() Book {
	return Book{
		ISBN:             r.ISBN,
		Title:            r.Title,
		AuthorID:         r.AuthorID,
		PublisherID:      r.PublisherID,
		PublicationYear:  r.PublicationYear,
		PublicationMonth: r.PublicationMonth,
		Status:           StatusActive,
	}
}

type DeleteBookRequest struct {
	ISBN int64 `json:"isbn" validate:"required,gt=0"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
