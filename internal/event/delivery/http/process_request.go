package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// processSubmitReq reads text and email from the query string (GET) or from a
// JSON or form body (POST). Missing values stay empty.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	if c.Request.Method == http.MethodPost && c.Request.ContentLength != 0 {
		var err error
		if c.ContentType() == binding.MIMEJSON {
			err = c.ShouldBindJSON(&req)
		} else {
			err = c.ShouldBindWith(&req, binding.Form)
		}
		if err != nil {
			return req, err
		}
	}

	return req, req.validate()
}
