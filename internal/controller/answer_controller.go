package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mysite/sbb/internal/dto"
	"github.com/mysite/sbb/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// Create godoc
// @Summary Answer a question
// @Description Post an answer to the question and go back to its detail page
// @Tags answers
// @Accept x-www-form-urlencoded
// @Param id path int true "Question ID"
// @Param content formData string true "Answer content"
// @Success 302 "Redirect to /question/detail/{id}"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answer/create/{id} [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return
	}

	content := ctx.PostForm("content")

	answer, err := c.answerService.Create(uint(id), content)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("questionID", id).Msg("Failed to create answer")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create answer"})
		return
	}

	log.Info().Uint("answerID", answer.ID).Uint64("questionID", id).Msg("Answer created")
	ctx.Redirect(http.StatusFound, fmt.Sprintf("/question/detail/%d", id))
}
