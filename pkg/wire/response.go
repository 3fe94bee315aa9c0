package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GameResponse is the envelope around every server response
type GameResponse struct {
	HasError bool            `json:"hasError"`
	Fault    string          `json:"fault,omitempty"`
	Data     json.RawMessage `json:"data"`
}

// DecodeGameResponse parses the envelope
func DecodeGameResponse(data []byte) (*GameResponse, error) {
	var resp GameResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("could not parse game response: %w", err)
	}

	return &resp, nil
}

// Payload returns the data of the response. The server may send the
// payload as a JSON document or as a string holding one
func (g *GameResponse) Payload() ([]byte, error) {
	raw := bytes.TrimSpace(g.Data)
	if len(raw) == 0 || raw[0] != '"' {
		return raw, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("could not parse response data: %w", err)
	}

	return []byte(s), nil
}

// NewGameResponse wraps data in a successful envelope
func NewGameResponse(data interface{}) (*GameResponse, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &GameResponse{Data: b}, nil
}

// NewFaultResponse returns an error envelope
func NewFaultResponse(fault string) *GameResponse {
	return &GameResponse{HasError: true, Fault: fault, Data: json.RawMessage(`""`)}
}
