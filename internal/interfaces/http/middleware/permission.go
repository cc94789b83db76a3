package middleware

import (
	"github.com/gin-gonic/gin"

	"soapbox/internal/domain/permission"
	"soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

// RequireBoardManager gates admin surfaces behind the board-manage
// capability. It assumes the identity middleware already ran.
func RequireBoardManager(permissions permission.Service) gin.HandlerFunc {
	log := logger.NewLogger().With("component", "permission_middleware")

	return func(c *gin.Context) {
		actor := ActorFromContext(c)

		allowed, err := permissions.CanManageBoards(c.Request.Context(), actor)
		if err != nil {
			log.Errorw("failed to check manage permission", "user_id", actor.ID, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to check permissions"))
			c.Abort()
			return
		}
		if !allowed {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
