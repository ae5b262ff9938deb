package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	organisationdomain "github.com/fessit/financesuite/internal/organisation/domain"
)

func (s *Server) CreateOrganisation(c *gin.Context) {
	var req organisationdomain.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.organisationSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOrganisations(c *gin.Context) {
	resp, err := s.organisationSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrganisationByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.organisationSvc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrganisationByID(c *gin.Context) {
	resp, err := s.organisationSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateOrganisation(c *gin.Context) {
	var req organisationdomain.UpdateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.organisationSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteOrganisation(c *gin.Context) {
	if err := s.organisationSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isOrganisationValidationError(err error) bool {
	switch err {
	case organisationdomain.ErrInvalidName,
		organisationdomain.ErrInvalidCompany,
		organisationdomain.ErrInvalidGSTIN,
		organisationdomain.ErrInvalidAddress,
		organisationdomain.ErrInvalidCountry,
		organisationdomain.ErrInvalidPhone,
		organisationdomain.ErrInvalidEmail,
		organisationdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
