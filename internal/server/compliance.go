package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	compliancedomain "github.com/fessit/financesuite/internal/compliance/domain"
)

func (s *Server) CreateGSTReturn(c *gin.Context) {
	var req compliancedomain.CreateGSTReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.complianceSvc.CreateGSTReturn(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListGSTReturns(c *gin.Context) {
	var query struct {
		ReturnType string `form:"return_type"`
		Status     string `form:"status"`
		Period     string `form:"period"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.complianceSvc.ListGSTReturns(c.Request.Context(), compliancedomain.ListGSTReturnRequest{
		ReturnType: query.ReturnType,
		Status:     query.Status,
		Period:     query.Period,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) FileGSTReturn(c *gin.Context) {
	resp, err := s.complianceSvc.FileGSTReturn(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetGSTSummary(c *gin.Context) {
	resp, err := s.complianceSvc.GSTSummary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateTDSRecord(c *gin.Context) {
	var req compliancedomain.CreateTDSRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.complianceSvc.CreateTDSRecord(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListTDSRecords(c *gin.Context) {
	var query struct {
		Section   string `form:"section"`
		Deposited string `form:"deposited"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	deposited, err := parseOptionalBool(query.Deposited)
	if err != nil {
		AbortWithError(c, newValidationError("deposited", "invalid_deposited", "invalid deposited"))
		return
	}

	resp, err := s.complianceSvc.ListTDSRecords(c.Request.Context(), compliancedomain.ListTDSRecordRequest{
		Section:   query.Section,
		Deposited: deposited,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DepositTDS(c *gin.Context) {
	resp, err := s.complianceSvc.DepositTDS(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTDSSummary(c *gin.Context) {
	resp, err := s.complianceSvc.TDSSummary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isComplianceValidationError(err error) bool {
	switch err {
	case compliancedomain.ErrInvalidReturnType,
		compliancedomain.ErrInvalidPeriod,
		compliancedomain.ErrInvalidDueDate,
		compliancedomain.ErrInvalidDeductee,
		compliancedomain.ErrInvalidPAN,
		compliancedomain.ErrInvalidSection,
		compliancedomain.ErrInvalidAmount,
		compliancedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
