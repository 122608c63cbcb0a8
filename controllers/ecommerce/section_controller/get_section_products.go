package section_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// GetSectionProducts godoc
// @Summary Get the products of a section
// @Description Curated products when the section has an active mapping, keyword fallback otherwise. Capped at the section's maxProducts.
// @Tags Storefront - Sections
// @Produce json
// @Param id path string true "Section ID" example(hero)
// @Success 200 {object} models.ApiResponse{data=models.SectionProductsResponse}
// @Router /store/sections/{id}/products [get]
func GetSectionProducts(c *gin.Context) {
	id := c.Param("id")

	section, ok := models.FindSection(id)
	if !ok {
		// Unknown sections still render, with the generic fallback.
		section = models.WebsiteSection{ID: id, Name: id, DisplayName: id, Type: "custom"}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, mapped := sections.ProductsForSection(ctx, id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section products fetched successfully", models.SectionProductsResponse{
		Section:  section,
		Products: services.ApplySectionCap(products, section),
		Mapped:   mapped,
	}))
}
