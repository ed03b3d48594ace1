// Package controllers file: controllers/contact_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mapao-magazine/logger"
	"mapao-magazine/services"
)

// ContactController handles the contact form and newsletter signups.
type ContactController struct {
	Mail services.MailServiceInterface
}

// NewContactController initializes a new instance of ContactController.
func NewContactController(mail services.MailServiceInterface) *ContactController {
	return &ContactController{Mail: mail}
}

// ShowContactForm renders the contact page.
func (cc *ContactController) ShowContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", withFlashes(c, gin.H{}))
}

// SubmitContactForm validates the submission and sends the message pair to
// the club and the sender. Name, email, and message are required; the
// subject defaults to "General Inquiry".
func (cc *ContactController) SubmitContactForm(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	subject := c.PostForm("subject")
	message := c.PostForm("message")

	if name == "" || email == "" || message == "" {
		SetFlash(c, "error", "Please fill in all required fields.")
		c.HTML(http.StatusOK, "contact.html", withFlashes(c, gin.H{}))
		return
	}
	if subject == "" {
		subject = "General Inquiry"
	}

	if cc.Mail.Enabled() {
		if err := cc.Mail.SendContactEmails(name, email, subject, message); err != nil {
			logger.Error.Printf("SubmitContactForm: email sending failed: %v", err)
			SetFlash(c, "error", "Sorry, there was an error sending your message. Please try again later.")
			c.Redirect(http.StatusFound, "/contact")
			return
		}
	} else {
		logger.Info.Printf("SubmitContactForm: email disabled, submission from %s <%s>: %s", name, email, message)
	}

	SetFlash(c, "success", "Thank you for your message! We'll get back to you soon.")
	c.Redirect(http.StatusFound, "/contact")
}

// Subscribe signs an address up for the newsletter. The subscriber always
// sees a success flash once a non-empty address is given; a failed welcome
// email only softens the wording.
func (cc *ContactController) Subscribe(c *gin.Context) {
	email := c.PostForm("email")

	switch {
	case email == "":
		SetFlash(c, "error", "Please provide a valid email address.")
	case !cc.Mail.Enabled():
		logger.Info.Printf("Subscribe: email disabled, subscription from %s", email)
		SetFlash(c, "success", "Thank you for subscribing!")
	default:
		if err := cc.Mail.SendWelcomeEmail(email); err != nil {
			logger.Error.Printf("Subscribe: welcome email failed: %v", err)
			SetFlash(c, "success", "Thank you for subscribing! (Email confirmation may be delayed)")
		} else {
			SetFlash(c, "success", "Thank you for subscribing! Check your email for confirmation.")
		}
	}

	// send the reader back to the page they came from
	if strings.Contains(c.Request.Referer(), "mapao") {
		c.Redirect(http.StatusFound, "/mapao")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
