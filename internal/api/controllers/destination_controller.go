package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListFeatured godoc
// @Summary List featured destinations
// @Description Fetch the curated set of featured destinations
// @Tags Destinations
// @Produce json
// @Param limit query int false "Maximum number of destinations"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/featured [get]
func (d *DestinationController) ListFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	destinations, err := d.destinationService.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Featured destinations fetched successfully")
}

// Inspire godoc
// @Summary Suggest destinations matching a free-text mood
// @Description Semantic search over destinations using the prompt's embedding
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.InspireRequest true "Inspiration prompt"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/inspire [post]
func (d *DestinationController) Inspire(c *gin.Context) {
	var req request_models.InspireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	suggestions, err := d.destinationService.Inspire(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Destinations suggested successfully")
}
