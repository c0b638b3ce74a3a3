package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"idcard/internal/middleware"
	"idcard/internal/storage"
	"idcard/internal/store"
)

var dobPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var (
	errDOBFormat = errors.New("Invalid date format for dob! Please use YYYY-MM-DD.")
	errDOBValue  = errors.New("Invalid date value for dob!")
)

// parseDOB validates a date-of-birth string. A string that does not match
// YYYY-MM-DD is a format error; one that matches but names an impossible
// calendar date (2024-02-30) is a value error.
func parseDOB(s string) (time.Time, error) {
	if !dobPattern.MatchString(s) {
		return time.Time{}, errDOBFormat
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errDOBValue
	}
	return t, nil
}

type updateIDCardRequest struct {
	Name       string `json:"name" form:"name"`
	Email      string `json:"email" form:"email"`
	Phone      string `json:"phone" form:"phone"`
	Department string `json:"department" form:"department"`
	DOB        string `json:"dob" form:"dob"`
	Address    string `json:"address" form:"address"`
	Role       string `json:"role" form:"role"`
	Photo      string `json:"photo" form:"photo"`
}

// UpdateIDCard partially updates the authenticated employee's own record.
// The acting prno comes from the verified token, never from the request
// body. Non-empty supplied fields overwrite the stored values; empty or
// absent fields leave them unchanged. An uploaded photo file always takes
// precedence over a client-supplied photo path string.
func (h *Handler) UpdateIDCard(c *gin.Context) {
	prno := c.GetString(middleware.PrnoKey)

	employee, err := h.Store.FindByPrno(c.Request.Context(), prno)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "data": "User not found!"})
			return
		}
		log.Printf("UpdateIDCard: lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	var req updateIDCardRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": "Invalid request body"})
		return
	}

	if req.DOB != "" {
		dob, err := parseDOB(req.DOB)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": err.Error()})
			return
		}
		employee.DOB = dob
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Email != "" {
		employee.Email = req.Email
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Department != "" {
		employee.Department = req.Department
	}
	if req.Address != "" {
		employee.Address = req.Address
	}
	if req.Role != "" {
		employee.Role = req.Role
	}

	// FormFile fails on non-multipart bodies; that just means no upload.
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		path, err := h.Photos.Save(file)
		if err != nil {
			if errors.Is(err, storage.ErrTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "data": err.Error()})
				return
			}
			log.Printf("UpdateIDCard: photo save failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
			return
		}
		employee.Photo = path
	} else if req.Photo != "" {
		employee.Photo = req.Photo
	}

	if err := h.Store.Update(c.Request.Context(), employee); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "data": "User not found!"})
			return
		}
		log.Printf("UpdateIDCard: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": "User updated successfully!"})
}
