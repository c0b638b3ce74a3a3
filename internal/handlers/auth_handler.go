package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"idcard/internal/auth"
	"idcard/internal/models"
	"idcard/internal/store"
)

// invalidCredentialsMsg is deliberately the same for an unknown prno and a
// wrong password, so a caller cannot probe which one failed.
const invalidCredentialsMsg = "Invalid employee number or password"

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Prno       string `json:"prno" binding:"required"`
	MobileNo   string `json:"mobileNo" binding:"required"`
	DOB        string `json:"dob" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Department string `json:"department" binding:"required"`
	Role       string `json:"role"`
	Email      string `json:"email"`
}

// RegisterEmployee creates a new directory record and issues a session token
// for it. A duplicate prno is a client error, not a server failure.
func (h *Handler) RegisterEmployee(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": err.Error()})
		return
	}

	dob, err := parseDOB(req.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": err.Error()})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("RegisterEmployee: hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	employee := &models.Employee{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		Prno:       req.Prno,
		Email:      req.Email,
		MobileNo:   req.MobileNo,
		DOB:        dob,
		Password:   hashedPassword,
		Department: req.Department,
		Role:       req.Role,
		Photo:      models.DefaultPhotoURL,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.Store.Create(c.Request.Context(), employee); err != nil {
		if errors.Is(err, store.ErrDuplicatePrno) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": "User already exists!"})
			return
		}
		log.Printf("RegisterEmployee: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	token, err := h.Tokens.Issue(employee.Prno)
	if err != nil {
		log.Printf("RegisterEmployee: token issue failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok", "data": "User created successfully!", "token": token})
}

// Login authenticates an employee by prno and password and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Prno     string `json:"prno" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": "Invalid request"})
		return
	}

	employee, err := h.Store.FindByPrno(c.Request.Context(), req.Prno)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": invalidCredentialsMsg})
			return
		}
		log.Printf("Login: lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	if !auth.CheckPassword(req.Password, employee.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": invalidCredentialsMsg})
		return
	}

	token, err := h.Tokens.Issue(employee.Prno)
	if err != nil {
		log.Printf("Login: token issue failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": "Sign in successful!", "token": token})
}
