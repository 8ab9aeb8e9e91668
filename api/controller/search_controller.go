package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/domain"
)

type SearchController struct {
	SearchUsecase domain.SearchUsecase
}

// Search handles GET /api/search-games?q=<text>[&sort=popularity|rating].
// The response list arrives ranked by popularity; the rating order is a
// re-sort of the same merge result, no second upstream round trip.
func (sc *SearchController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Query parameter is required"})
		return
	}

	sortField := c.DefaultQuery("sort", domain.SortFieldPopularity)
	if sortField != domain.SortFieldPopularity && sortField != domain.SortFieldRating {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "sort must be popularity or rating"})
		return
	}

	games, err := sc.SearchUsecase.Search(c.Request.Context(), query, nil)
	if err != nil {
		c.JSON(domain.StatusOf(err), domain.ErrorResponse{Error: "Failed to search games"})
		return
	}

	if games == nil {
		games = []domain.Game{}
	}
	if sortField == domain.SortFieldRating {
		domain.SortGames(games, domain.SortOrder{Sort: domain.SortFieldRating, Order: domain.SortOrderDesc})
	}

	c.JSON(http.StatusOK, domain.SearchResponse{Games: games})
}
