package collection_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetSectionMappings godoc
// @Summary Get section mappings
// @Description The persisted mappings, or one default mapping per section when none are saved
// @Tags Admin - Sections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.CollectionMapping}
// @Router /admin/sections/mappings [get]
func GetSectionMappings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	mappings, err := mapper.Mappings(ctx)
	if err != nil {
		respondMappingError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section mappings fetched successfully", mappings))
}

// SaveSectionMappings godoc
// @Summary Replace all section mappings
// @Tags Admin - Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mappings body []models.CollectionMapping true "Mappings"
// @Success 200 {object} models.ApiResponse{data=[]models.CollectionMapping}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/sections/mappings [put]
func SaveSectionMappings(c *gin.Context) {
	var mappings []models.CollectionMapping
	if err := c.ShouldBindJSON(&mappings); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := mapper.SaveMappings(ctx, mappings); err != nil {
		respondMappingError(c, "save", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section mappings saved", mappings))
}

// UpdateSectionMapping godoc
// @Summary Update one section's mapping
// @Description Partial update; absent fields keep their value
// @Tags Admin - Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Param body body models.UpdateMappingRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.CollectionMapping}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/sections/{id}/mapping [patch]
func UpdateSectionMapping(c *gin.Context) {
	var req models.UpdateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	mapping, err := mapper.UpdateMapping(ctx, c.Param("id"), req)
	if err != nil {
		respondMappingError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section mapping updated", mapping))
}
