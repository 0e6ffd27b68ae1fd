package handlers

import (
	"context"
	"net/http"
	"time"

	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const streamHeartbeat = 25 * time.Second

// subscribeFunc opens a store-backed subscription bound to ctx and calls
// push with every payload to send. Calls to push never block.
type subscribeFunc func(ctx context.Context, push func(interface{})) (func(), error)

// streamEvents serves a server-sent event stream until the client goes away.
// Payloads that pile up behind a slow client are dropped in favour of the
// latest one.
func streamEvents(c *gin.Context, event string, subscribe subscribeFunc) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	updates := make(chan interface{}, 1)
	push := func(v interface{}) {
		select {
		case updates <- v:
			return
		default:
		}
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- v:
		default:
		}
	}

	unsubscribe, err := subscribe(ctx, push)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()
	logger.Debug("stream opened", zap.String("event", event))

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("stream closed", zap.String("event", event))
			return
		case v := <-updates:
			c.SSEvent(event, v)
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		}
	}
}
