package response

import (
	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		// ceil(total/limit)
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, pagination *Pagination) {
	c.JSON(status, Envelope{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

func SuccessMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	env := Envelope{
		Success: false,
		Message: message,
	}
	if details != nil {
		if s, ok := details.(string); ok {
			env.Error = s
		}
	}
	c.JSON(status, env)
}
