package controllers

import (
	"strconv"

	"biztrack/response"
	"biztrack/services"

	"github.com/gin-gonic/gin"
)

type CountryController struct {
	countries *services.CountryService
}

func NewCountryController(countries *services.CountryService) *CountryController {
	return &CountryController{countries: countries}
}

// GetCountries trả về danh sách quốc gia, hỗ trợ fuzzy search qua ?search=
func (ctl *CountryController) GetCountries(c *gin.Context) {
	countries, err := ctl.countries.GetCountries(c.Request.Context())
	if err != nil {
		response.ServerError(c, "Failed to fetch countries")
		return
	}

	if search := c.Query("search"); search != "" {
		limit := 10
		if limitParam := c.Query("limit"); limitParam != "" {
			if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 && parsed <= 50 {
				limit = parsed
			}
		}
		countries = services.SearchCountries(countries, search, limit)
	}

	response.Success(c, countries)
}
