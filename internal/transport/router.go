package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/event"
	portbus "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/bus"
	agentsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/agent"
	distsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/distribution"
	ordersvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/order"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/httpx"

	agenthandler "github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/agent"
	disthandler "github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/distribution"
	orderhandler "github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/order"
	wshandler "github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/ws"
)

// NewRouter assembles the gin engine and bridges the event bus into the
// websocket hub: one bus subscription per topic, fanned out to connected
// clients filtered by their subscribed topics.
func NewRouter(
	ctx context.Context,
	orderSvc *ordersvc.Service,
	agentSvc *agentsvc.Service,
	engine *distsvc.Service,
	bus portbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(httpx.CallerIdentity())

	api := r.Group("/api")

	orderhandler.Register(api.Group("/orders"), orderSvc, engine)
	agenthandler.Register(api.Group("/agents"), agentSvc)
	disthandler.Register(api.Group("/distributions"), engine)

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	for _, topic := range []event.Topic{
		event.TopicDistribution,
		event.TopicAdmin,
		event.TopicOrders,
	} {
		t := topic
		if _, err := bus.Subscribe(ctx, t, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe topic to WS hub", "topic", t, "error", err)
		}
	}

	return r
}
