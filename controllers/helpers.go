package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/utils"
)

// respondOutcome menerjemahkan Outcome core ke respon HTTP. Di dalam manager
// prekondisi gagal tetap no-op tanpa error; layer HTTP yang memberi kode status.
func respondOutcome(c *gin.Context, outcome pos.Outcome, message string, data interface{}) {
	if outcome.Applied {
		utils.RespondJSON(c, http.StatusOK, message, data)
		return
	}

	switch outcome.Reason {
	case pos.ReasonNoActor:
		utils.RespondError(c, http.StatusUnauthorized, errors.New(outcome.Reason))
	case pos.ReasonOrderNotFound, pos.ReasonItemNotFound, pos.ReasonTableNotFound,
		pos.ReasonMenuNotFound, pos.ReasonCategoryNotFound:
		utils.RespondError(c, http.StatusNotFound, errors.New(outcome.Reason))
	default:
		utils.RespondError(c, http.StatusConflict, errors.New(outcome.Reason))
	}
}
