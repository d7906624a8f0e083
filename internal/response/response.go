package response

import (
	"math"

	"github.com/gin-gonic/gin"
)

// Pagination is the page block attached to list responses.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
}

// NewPagination computes the page block from a total row count.
func NewPagination(page, limit int, totalItems int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	}
}

// Success writes {"status":"success","data":...}.
func Success(c *gin.Context, httpCode int, data interface{}) {
	c.JSON(httpCode, gin.H{
		"status": "success",
		"data":   data,
	})
}

// SuccessWithMessage writes the success envelope with a message field.
func SuccessWithMessage(c *gin.Context, httpCode int, data interface{}, message string) {
	c.JSON(httpCode, gin.H{
		"status":  "success",
		"data":    data,
		"message": message,
	})
}

// SuccessList writes the success envelope with a pagination block.
func SuccessList(c *gin.Context, httpCode int, data interface{}, pagination Pagination) {
	c.JSON(httpCode, gin.H{
		"status":     "success",
		"data":       data,
		"pagination": pagination,
	})
}
