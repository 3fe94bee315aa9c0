package mux

import (
	"hearts-client/pkg/feed"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := feed.NewClient(r.RemoteAddr)
		m.hub.ClientConnected(client)

		readDone := make(chan bool)
		go func() {
			defer close(readDone)
			webSocketReadLoop(conn)
		}()

		webSocketWriteLoop(conn, client, readDone)
		m.hub.ClientDisconnected(client)
		_ = conn.Close()
	}
}

func webSocketWriteLoop(conn *websocket.Conn, client *feed.Client, readDone chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readDone:
			return
		case e, ok := <-client.SendChan():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed closed"))
				return
			}

			logrus.WithField("client", client.String()).WithField("event", e.ID).Trace("sending event to client")
			if err := conn.WriteJSON(e); err != nil {
				logrus.WithError(err).WithField("client", client.String()).Error("could not write event")
				return
			}
		}
	}
}

// the feed is one-way. Reading keeps the pong handler running and notices the close frame
func webSocketReadLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Error("could not read message")
			}

			return
		}
	}
}
