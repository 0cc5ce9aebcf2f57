package order

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/order"
	distsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/distribution"
	ordersvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/order"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/httpx"
)

func Register(rg *gin.RouterGroup, svc *ordersvc.Service, engine *distsvc.Service) {
	rg.POST("/", createOrder(svc))
	rg.GET("/", listOrders(svc))
	rg.GET("/:id", getOrder(svc))
	rg.POST("/:id/distribute", distributeOrder(engine))
	rg.POST("/:id/redistribute", redistributeOrder(engine))
	rg.POST("/:id/assign", assignOrder(engine))
	rg.POST("/:id/start", startProcessing(svc))
	rg.POST("/:id/complete", completeOrder(svc))
	rg.POST("/:id/rate", rateOrder(svc))
	rg.POST("/:id/cancel", cancelOrder(svc))
}

type createOrderReq struct {
	RequesterName   string     `json:"requester_name" binding:"required"`
	RequesterEmail  string     `json:"requester_email"`
	RequesterPhone  string     `json:"requester_phone"`
	Category        string     `json:"category" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Requirements    string     `json:"requirements"`
	Price           float64    `json:"price" binding:"required"`
	Deadline        *time.Time `json:"deadline"`
	Priority        int        `json:"priority"`
	Strategy        string     `json:"strategy"`
	MaxAttempts     int        `json:"max_attempts"`
	ResponseTimeout int        `json:"response_timeout"`
	AutoDistribute  *bool      `json:"auto_distribute"`
}

func createOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		caller := httpx.Caller(c)
		in := ordersvc.CreateInput{
			RequesterName:   req.RequesterName,
			RequesterEmail:  req.RequesterEmail,
			RequesterPhone:  req.RequesterPhone,
			Category:        req.Category,
			Description:     req.Description,
			Requirements:    req.Requirements,
			Price:           req.Price,
			Deadline:        req.Deadline,
			Priority:        req.Priority,
			Strategy:        req.Strategy,
			MaxAttempts:     req.MaxAttempts,
			ResponseTimeout: req.ResponseTimeout,
			AutoDistribute:  req.AutoDistribute,
		}
		if caller.ID != uuid.Nil {
			id := caller.ID
			in.RequesterID = &id
		}

		o, res, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": o, "distribution": res})
	}
}

func listOrders(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainorder.ListFilters

		if v := c.Query("status"); v != "" {
			s := domainorder.Status(v)
			filters.Status = &s
		}
		if v := c.Query("category"); v != "" {
			filters.Category = &v
		}
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filters.Limit = n
			}
		}
		if v := c.Query("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filters.Offset = n
			}
		}

		orders, err := svc.List(c.Request.Context(), filters, httpx.Caller(c))
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		if orders == nil {
			orders = []domainorder.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		o, err := svc.GetByID(c.Request.Context(), id, httpx.Caller(c))
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func distributeOrder(engine *distsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		res, err := engine.Start(c.Request.Context(), id)
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error(), "result": res})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func redistributeOrder(engine *distsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		res, err := engine.Redistribute(c.Request.Context(), id, httpx.Caller(c))
		if err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error(), "result": res})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

type assignOrderReq struct {
	AgentID uuid.UUID `json:"agent_id" binding:"required"`
}

func assignOrder(engine *distsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req assignOrderReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := engine.AssignManual(c.Request.Context(), id, req.AgentID, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func startProcessing(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.StartProcessing(c.Request.Context(), id, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func completeOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Complete(c.Request.Context(), id, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type rateOrderReq struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

func rateOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req rateOrderReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Rate(c.Request.Context(), id, req.Rating, req.Review, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type cancelOrderReq struct {
	Reason string `json:"reason"`
}

func cancelOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req cancelOrderReq
		_ = c.ShouldBindJSON(&req) // body is optional

		if err := svc.Cancel(c.Request.Context(), id, req.Reason, httpx.Caller(c)); err != nil {
			c.JSON(httpx.StatusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
