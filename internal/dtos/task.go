package dtos

type TaskCreateRequestDTO struct {
	Title string `json:"title"`
}
