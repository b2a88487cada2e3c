package items

import (
	"errors"
	"net/http"
	"strconv"

	"eventdeck/internal/api"
	"eventdeck/internal/database"
	"eventdeck/internal/model"
	"eventdeck/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createItem = store.CreateItem
	listItems  = store.ListItems
	updateItem = store.UpdateItem
	deleteItem = store.DeleteItem
)

func toResponse(it model.Item) api.ItemResponse {
	return api.ItemResponse{
		ID:        it.ID,
		Data:      it.Data,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

// @Summary     Create an item
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       request body api.ItemRequest true "item payload"
// @Success     201 {object} api.ItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items [post]
func CreateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		it, err := createItem(c.Request().Context(), db, &model.Item{Data: req.Data})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create item"})
		}
		return c.JSON(http.StatusCreated, toResponse(*it))
	}
}

// @Summary     List items
// @Tags        items
// @Produce     json
// @Success     200 {array} api.ItemResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items [get]
func ListItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		its, err := listItems(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list items"})
		}
		out := make([]api.ItemResponse, 0, len(its))
		for _, it := range its {
			out = append(out, toResponse(it))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Update an item
// @Tags        items
// @Accept      json
// @Param       id      path int             true "item ID"
// @Param       request body api.ItemRequest true "item payload"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items/{id} [put]
func UpdateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		var req api.ItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateItem(c.Request().Context(), db, &model.Item{ID: id, Data: req.Data}); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "item not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update item"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete an item
// @Tags        items
// @Param       id path int true "item ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items/{id} [delete]
func DeleteItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}
		if err := deleteItem(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "item not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete item"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
