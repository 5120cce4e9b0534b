package categories

// CategoryRequest is the body of POST and PUT /categories.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,min=2,max=100"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
