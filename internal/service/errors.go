package service

import "errors"

var (
	// ErrInvalidInput is returned when a request is well-formed JSON but its values are unusable.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSlugTaken is returned when an article slug collides with another article.
	ErrSlugTaken = errors.New("slug taken")
	// ErrNameTaken is returned when an email template name is already used.
	ErrNameTaken = errors.New("name taken")
)
