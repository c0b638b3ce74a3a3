package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"idcard/internal/models"
	"idcard/internal/store"
)

// GetProfile serves the public restricted projection of one employee,
// looked up by personnel number.
func (h *Handler) GetProfile(c *gin.Context) {
	empNumber := c.Param("empNumber")

	employee, err := h.Store.FindByPrno(c.Request.Context(), empNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "data": "User not found!"})
			return
		}
		log.Printf("GetProfile: lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": employee.Profile()})
}

// GetEmployee serves the broader public projection including contact fields
// and the photo reference.
func (h *Handler) GetEmployee(c *gin.Context) {
	prno := c.Param("prno")

	employee, err := h.Store.FindByPrno(c.Request.Context(), prno)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "data": "User not found!"})
			return
		}
		log.Printf("GetEmployee: lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": employee.Card()})
}

// SearchEmployees filters the directory by name (case-insensitive
// substring), prno (exact) and department (exact). Filters are ANDed; with
// no filters every record's summary is returned.
func (h *Handler) SearchEmployees(c *gin.Context) {
	filter := store.Filter{
		Name:       c.Query("name"),
		Prno:       c.Query("prno"),
		Department: c.Query("department"),
	}

	results, err := h.Store.Search(c.Request.Context(), filter)
	if err != nil {
		log.Printf("SearchEmployees: search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "data": "An error occurred. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": results})
}

// ListEmployees dumps the whole directory. Records are projected explicitly
// so the password hash never reaches the wire.
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.Store.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("ListEmployees: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user details"})
		return
	}

	entries := make([]models.DirectoryEntry, 0, len(employees))
	for i := range employees {
		entries = append(entries, employees[i].Directory())
	}
	c.JSON(http.StatusOK, entries)
}
