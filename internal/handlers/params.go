package handlers

import (
	"strconv"

	"nursery_manager/internal/repository"

	"github.com/gin-gonic/gin"
)

// pageFromQuery reads skip and limit; bad values fall back to the defaults.
func pageFromQuery(c *gin.Context) repository.Page {
	return pageWithDefaultLimit(c, repository.DefaultLimit)
}

func pageWithDefaultLimit(c *gin.Context, defaultLimit int) repository.Page {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		limit = defaultLimit
	}
	return repository.Page{Skip: skip, Limit: limit}.Normalize()
}
