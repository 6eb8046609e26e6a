package handlers

import (
	"net/http"

	response "repairtrack/internal/adapter/http/dto/response"
	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TimelineHandler exposes the merged, filterable request history.

type TimelineHandler struct {
	usecase usecase.ITimelineUseCase
}

func NewTimelineHandler(uc usecase.ITimelineUseCase) *TimelineHandler {
	return &TimelineHandler{usecase: uc}
}

func timelineQueryFrom(c *gin.Context) usecase.TimelineQuery {
	return usecase.TimelineQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     entities.SortOrder(c.Query("sort")),
	}
}

func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	requestID := c.Param("request_id")

	t, err := h.usecase.Build(c.Request.Context(), requestID, timelineQueryFrom(c))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeline(requestID, t))
}

func (h *TimelineHandler) ExportTimeline(c *gin.Context) {
	requestID := c.Param("request_id")

	export, err := h.usecase.Export(c.Request.Context(), requestID, timelineQueryFrom(c))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, export)
}
