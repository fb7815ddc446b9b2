package web

import (
	"github.com/gin-gonic/gin"
)

// CSRFKey is where the session middleware stores the per-request CSRF
// token for templates to embed into forms.
const CSRFKey = "csrf"

// Context is the root template context every view is rendered with.
type Context struct {
	Data any
	CSRF string
	c    *gin.Context
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		CSRF: c.GetString(CSRFKey),
		c:    c,
	}
}

func (s *Context) WithData(data any) *Context {
	s.Data = data
	return s
}

func (s *Context) GetGinContext() *gin.Context {
	return s.c
}
