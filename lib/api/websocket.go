package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade already replied with an error status
		logger().Warn(fmt.Sprintf("couldn't make websocket: %s", err))
		return
	}
	a.addClient(ws)
	defer a.removeClient(ws)

	done := make(chan struct{})
	defer close(done)
	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		logger().Debug("websocket message received", "msg", string(msg))
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	a.wsClients[ws] = true
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsMutex.Lock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMutex.Unlock()

	err := ws.Close()
	if err != nil {
		logger().Debug("could not close websocket", "err", err)
	}
}

// websocketWriter owns all writes to ws: one snapshot right away, then one
// per PushInterval until the reader goes away.
func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	pingTicker := time.NewTicker(a.PushInterval)
	defer pingTicker.Stop()

	timeout := 10 * time.Second
	for {
		packet, err := json.Marshal(a.Stats.Snapshot())
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			logger().Warn("could not set write deadline", "err", err)
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-pingTicker.C:
		}
	}
}
