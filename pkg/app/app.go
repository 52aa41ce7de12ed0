// Package app provides the HTTP response wrapper shared by all handlers.
package app

import (
	"net/http"

	"github.com/haierkeys/light-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// ToResponse writes a code object to the client, JSON or plain text
// depending on the code.
func (r *Response) ToResponse(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	if codeObj.IsText() {
		r.Ctx.String(codeObj.StatusCode(), codeObj.Text())
		return
	}
	r.Ctx.JSON(codeObj.StatusCode(), codeObj.Body())
}

// ToList writes a raw JSON array with status 200. The list endpoint
// returns the bare array, not an envelope.
func (r *Response) ToList(list any) {
	r.Ctx.Set("status_code", http.StatusOK)
	r.Ctx.JSON(http.StatusOK, list)
}

// GetRequestIP gets the request IP.
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

func GetAccessHost(c *gin.Context) string {
	accessProto := ""
	if proto := c.Request.Header.Get("X-Forwarded-Proto"); proto == "" {
		accessProto = "http" + "://"
	} else {
		accessProto = proto + "://"
	}
	return accessProto + c.Request.Host
}
