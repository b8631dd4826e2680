package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/websocket"

	"github.com/robotalks/mp3.go/pkg/l1"
	"github.com/robotalks/mp3.go/pkg/l1/comm"
)

// Connector implements l1.Connector over a websocket endpoint.
type Connector struct {
	URL string
}

// NewConnector creates a Connector from a ws/wss URL.
func NewConnector(endpointURL string) (*Connector, error) {
	parsed, err := url.Parse(endpointURL)
	if err != nil {
		return nil, err
	}
	switch parsed.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %q", parsed.Scheme)
	}
	return &Connector{URL: endpointURL}, nil
}

// Discover implements Connector.
// The endpoint reports registered controllers over plain HTTP at the
// same path.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	req, err := http.NewRequest(http.MethodGet, httpURL(c.URL), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discover error: %s", resp.Status)
	}
	var res []l1.ControllerInfo
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return res, nil
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	ws, err := websocket.Dial(c.URL, "", httpURL(c.URL))
	if err != nil {
		return nil, err
	}
	conn := &ControllerConn{WS: ws}
	conn.Init(New(ws))
	return conn, nil
}

// ControllerConn implements ControllerConn over websocket.
type ControllerConn struct {
	comm.ControllerConn
	WS *websocket.Conn
}

func httpURL(endpointURL string) string {
	parsed, err := url.Parse(endpointURL)
	if err != nil {
		return endpointURL
	}
	switch parsed.Scheme {
	case "ws":
		parsed.Scheme = "http"
	case "wss":
		parsed.Scheme = "https"
	}
	return parsed.String()
}
