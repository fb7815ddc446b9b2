package movies

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// TitleForm collects the title to search the provider for.
type TitleForm struct {
	Title  string
	Errors map[string]string
}

func bindTitleForm(c *gin.Context) *TitleForm {
	return &TitleForm{
		Title:  strings.TrimSpace(c.PostForm("title")),
		Errors: map[string]string{},
	}
}

func (s *TitleForm) Validate() bool {
	if s.Title == "" {
		s.Errors["title"] = "Title is required"
	}
	return len(s.Errors) == 0
}

// RatingForm collects the user's rating and review for one movie. The
// rating field stays a string until Validate parses it.
type RatingForm struct {
	Rating string
	Review string
	Errors map[string]string

	rating float64
}

func bindRatingForm(c *gin.Context) *RatingForm {
	return &RatingForm{
		Rating: strings.TrimSpace(c.PostForm("rating")),
		Review: strings.TrimSpace(c.PostForm("review")),
		Errors: map[string]string{},
	}
}

func (s *RatingForm) Validate() bool {
	if s.Rating == "" {
		s.Errors["rating"] = "Rating is required"
	}
	if s.Review == "" {
		s.Errors["review"] = "Review is required"
	}
	if s.Rating != "" {
		r, err := strconv.ParseFloat(s.Rating, 64)
		if err != nil {
			s.Errors["rating"] = "Rating must be a number"
		} else {
			s.rating = r
		}
	}
	return len(s.Errors) == 0
}

// RatingValue is only meaningful after a successful Validate.
func (s *RatingForm) RatingValue() float64 {
	return s.rating
}
