package controllers

import (
	"errors"
	"net/http"
	"strings"

	"ClinicRecords/models"
	"ClinicRecords/role"
	"ClinicRecords/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Auth(router *gin.Engine) {
	router.POST("/login", h.Login)
}

/*
* Bind the credentials and resolve the role to an account collection
* Authenticate; a wrong email and a wrong password get the same answer
* Issue a session token
 */
func (h *Handler) Login(c *gin.Context) {
	var req models.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error logging in", err))
		return
	}
	if strings.TrimSpace(req.Role) == "" {
		fail(c, "Error logging in", &services.MissingFieldsError{Fields: []string{"role"}})
		return
	}
	r, ok := role.Parse(req.Role)
	if !ok {
		fail(c, "Error logging in", &services.InvalidFieldError{Field: "role", Reason: "must be patient or doctor"})
		return
	}

	err := h.accounts.Authenticate(c, r, req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, MessageResponse("Invalid email or password"))
		return
	}
	if err != nil {
		fail(c, "Error logging in", err)
		return
	}

	token, err := h.tokens.Issue(req.Email, string(r))
	if err != nil {
		failWith(c, http.StatusInternalServerError, "Error logging in", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "role": r, "token": token})
}
