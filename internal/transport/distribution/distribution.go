package distribution

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	distsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/distribution"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/httpx"
)

func Register(rg *gin.RouterGroup, engine *distsvc.Service) {
	rg.GET("/order/:orderId", listByOrder(engine))
	rg.POST("/:id/respond", respond(engine))
}

func listByOrder(engine *distsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		dists, err := engine.History(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		if dists == nil {
			dists = []domaindist.Distribution{}
		}
		c.JSON(http.StatusOK, dists)
	}
}

type respondReq struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
}

func respond(engine *distsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req respondReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		action := distsvc.Action(req.Action)
		switch action {
		case distsvc.ActionAccept, distsvc.ActionReject, distsvc.ActionTimeout:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "action must be accept, reject or timeout"})
			return
		}

		caller := httpx.Caller(c)
		res, err := engine.Respond(c.Request.Context(), id, caller.ID, action, req.Reason)
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error(), "result": res})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
