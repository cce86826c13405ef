package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmstock/pkg/events"
)

// WatchCtrl streams broker events to the client as server-sent events. It is
// the explicit replacement for the mobile app's push-snapshot listeners: one
// subscription per connection, unsubscribed when the client goes away.
type WatchCtrl struct {
	broker *events.Broker
}

func New(broker *events.Broker) *WatchCtrl { return &WatchCtrl{broker: broker} }

func (h *WatchCtrl) Watch(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch, cancel := h.broker.Subscribe(16)
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			// suppress other users' events
			if ev.UserID != "" && ev.UserID != uid {
				continue
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", ev.Topic, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
