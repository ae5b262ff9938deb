package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fessit/financesuite/internal/reference"
)

func (s *Server) ListCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": reference.Countries()})
}

func (s *Server) GetCountryByCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	country, ok := reference.CountryByCode(code)
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": country})
}
