package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agroplan/internal/domain/planning"
	"agroplan/internal/shared/constants"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/utils"
)

// respondError renders plot conflicts with the legacy body the planning
// forms read; everything else goes through the standard envelope.
func respondError(c *gin.Context, err error) {
	var conflict *planning.PlotConflictError
	if errors.As(err, &conflict) {
		utils.PlotConflictResponse(c, utils.PlotConflictBody{
			Plots:     conflict.PlotIDs(),
			PlotNames: conflict.PlotNames(),
		})
		return
	}
	if errors.Is(err, planning.ErrPlotConflict) {
		utils.PlotConflictResponse(c, utils.PlotConflictBody{Plots: []uint{}, PlotNames: []string{}})
		return
	}
	utils.ErrorResponseWithError(c, err)
}

// bindJSON binds the body and turns binding failures into a validation error.
func bindJSON(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return apperrors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}

func queryUintOrZero(c *gin.Context, key string) (uint, error) {
	v, err := utils.QueryUint(c, key)
	if err != nil || v == nil {
		return 0, err
	}
	return *v, nil
}
