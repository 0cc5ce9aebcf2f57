package agent

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	agentsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/agent"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/httpx"
)

func Register(rg *gin.RouterGroup, svc *agentsvc.Service) {
	rg.POST("/", registerAgent(svc))
	rg.GET("/", listAgents(svc))
	rg.GET("/:id", getAgent(svc))
	rg.PATCH("/:id/status", setStatus(svc))
	rg.POST("/:id/suspend", suspendAgent(svc))
	rg.POST("/:id/unsuspend", unsuspendAgent(svc))
	rg.PATCH("/:id/rating", setRating(svc))
}

type registerReq struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Skills         []string `json:"skills"`
	Level          int      `json:"level"`
	CommissionRate float64  `json:"commission_rate"`
}

func registerAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		a, err := svc.Register(c.Request.Context(), agentsvc.RegisterInput{
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Skills:         req.Skills,
			Level:          req.Level,
			CommissionRate: req.CommissionRate,
		})
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

func listAgents(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainagent.ListFilters

		if v := c.Query("status"); v != "" {
			s := domainagent.Status(v)
			filters.Status = &s
		}
		if v := c.Query("active"); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				filters.Active = &b
			}
		}
		if v := c.Query("suspended"); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				filters.Suspended = &b
			}
		}
		if v := c.Query("skill"); v != "" {
			filters.Skill = &v
		}

		agents, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		if agents == nil {
			agents = []domainagent.Agent{}
		}
		c.JSON(http.StatusOK, agents)
	}
}

func getAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		a, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

type setStatusReq struct {
	Status domainagent.Status `json:"status" binding:"required"`
}

func setStatus(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req setStatusReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.SetStatus(c.Request.Context(), id, req.Status, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type suspendReq struct {
	Reason string     `json:"reason"`
	Until  *time.Time `json:"until"`
}

func suspendAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req suspendReq
		_ = c.ShouldBindJSON(&req) // body is optional

		if err := svc.Suspend(c.Request.Context(), id, req.Reason, req.Until, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func unsuspendAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Unsuspend(c.Request.Context(), id, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type setRatingReq struct {
	Rating float64 `json:"rating"`
}

func setRating(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req setRatingReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.SetRating(c.Request.Context(), id, req.Rating, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
