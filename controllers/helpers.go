// Package controllers provides the HTTP handlers for the magazine site.
// File: controllers/helpers.go
package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"mapao-magazine/logger"
)

// Flash is a one-time status message shown on the next rendered page.
type Flash struct {
	Category string // "success" | "error"
	Message  string
}

// SetFlash queues a flash message for the next render. Category and message
// travel together as one session string so the cookie store needs no
// custom type registration.
func SetFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(category + "|" + message)
	if err := session.Save(); err != nil {
		logger.Error.Printf("SetFlash: failed to save session: %v", err)
	}
}

// TakeFlashes drains the queued flash messages, consuming them.
func TakeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			logger.Error.Printf("TakeFlashes: failed to save session: %v", err)
		}
	}

	var flashes []Flash
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(s, "|")
		if !found {
			flashes = append(flashes, Flash{Category: "success", Message: s})
			continue
		}
		flashes = append(flashes, Flash{Category: category, Message: message})
	}
	return flashes
}

// withFlashes merges the drained flash messages into template data.
func withFlashes(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = TakeFlashes(c)
	return data
}

// paramID parses the numeric :id (or similar) path parameter.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
