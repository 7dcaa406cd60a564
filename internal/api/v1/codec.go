package apiv1

import (
	"encoding/json"
	"fmt"
)

// JSONCodec is a connect.Codec for the plain Go messages of this package.
// It is registered as "json", replacing connect's protojson codec which only accepts proto messages.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%T) > %w", message, err)
	}
	return data, nil
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	// An empty body is an empty message.
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal(%T) > %w", message, err)
	}
	return nil
}
