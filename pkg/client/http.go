package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hearts-client/pkg/wire"
	"io"
	"net/http"
)

// do sends the request and unwraps the response envelope
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.strategy.PlayerName(), c.opts.Password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	gameResp, err := wire.DecodeGameResponse(data)
	if err != nil {
		return nil, err
	}

	if gameResp.HasError {
		return nil, GameError{Fault: gameResp.Fault}
	}

	return gameResp.Payload()
}

func (c *Client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}

	req.SetBasicAuth(c.strategy.PlayerName(), c.opts.Password)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	return resp.Body.Close()
}

func (c *Client) getGameStatus(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/gamestatus", nil)
}

func (c *Client) join(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/join", nil)
	return err
}

func (c *Client) postPassCards(ctx context.Context, cards []wire.Card) error {
	_, err := c.do(ctx, http.MethodPost, "/passcards", cards)
	return err
}

func (c *Client) postPlayCard(ctx context.Context, card wire.Card) error {
	_, err := c.do(ctx, http.MethodPost, "/playcard", card)
	return err
}
