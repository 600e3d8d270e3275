package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"event-calendar-webhook/pkg/response"
)

// Submit godoc
// @Summary     Turn event text into calendar artifacts
// @Description Extracts one event from free text with an LLM, returns a pre-filled Google Calendar link and a public .ics download URL, and appends a log row.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       text  query string    false "Free-text event description"
// @Param       email query string    false "Submitter email"
// @Param       body  body  submitReq false "Submission (POST only)"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /webhook [GET]
// @Router      /webhook [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, req.toSubmission(time.Now()))
	if err != nil {
		response.InternalError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newSubmitResp(output))
}
