package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	expensedomain "github.com/fessit/financesuite/internal/expense/domain"
)

func (s *Server) CreateExpense(c *gin.Context) {
	var req expensedomain.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.expenseSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListExpenses(c *gin.Context) {
	var query struct {
		Status            string `form:"status"`
		ProjectCostCenter string `form:"project_cost_center"`
		FromDate          string `form:"from_date"`
		ToDate            string `form:"to_date"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.expenseSvc.List(c.Request.Context(), expensedomain.ListExpenseRequest{
		Status:            query.Status,
		ProjectCostCenter: query.ProjectCostCenter,
		FromDate:          query.FromDate,
		ToDate:            query.ToDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetExpenseByID(c *gin.Context) {
	resp, err := s.expenseSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateExpense(c *gin.Context) {
	var req expensedomain.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.expenseSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteExpense(c *gin.Context) {
	if err := s.expenseSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) SubmitExpense(c *gin.Context) {
	var req expensedomain.SubmitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.expenseSvc.Submit(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ReviewExpense(c *gin.Context) {
	var req expensedomain.ReviewExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.expenseSvc.Review(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ReimburseExpense(c *gin.Context) {
	resp, err := s.expenseSvc.Reimburse(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetExpenseSummary(c *gin.Context) {
	resp, err := s.expenseSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetExpenseProjectStats(c *gin.Context) {
	resp, err := s.expenseSvc.ProjectStats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetExpenseCategoryStats(c *gin.Context) {
	resp, err := s.expenseSvc.CategoryStats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UploadExpenseReceipt stores a receipt file and returns the stored name.
// The client attaches the returned receipt_file to an expense item.
func (s *Server) UploadExpenseReceipt(c *gin.Context) {
	file, err := c.FormFile("receipt")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := os.MkdirAll(s.cfg.ReceiptDir, 0o755); err != nil {
		AbortWithError(c, err)
		return
	}

	stored := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.ReceiptDir, stored)); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"receipt_file":      stored,
		"original_filename": file.Filename,
	}})
}

func (s *Server) GetExpenseReceipt(c *gin.Context) {
	name := c.Param("name")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		AbortWithError(c, invalidRequestError())
		return
	}

	path := filepath.Join(s.cfg.ReceiptDir, name)
	if _, err := os.Stat(path); err != nil {
		AbortWithError(c, expensedomain.ErrNotFound)
		return
	}

	c.File(path)
}

func isExpenseValidationError(err error) bool {
	switch err {
	case expensedomain.ErrInvalidTitle,
		expensedomain.ErrInvalidCostCenter,
		expensedomain.ErrInvalidItems,
		expensedomain.ErrInvalidAmount,
		expensedomain.ErrInvalidReason,
		expensedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
