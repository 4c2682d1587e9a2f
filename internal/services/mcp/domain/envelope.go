package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/svgl/svgl-mcp/internal/services/mcp/svgl"
)

// ErrorEnvelope is the JSON body returned for a classified catalog failure.
type ErrorEnvelope struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode *int   `json:"statusCode,omitempty"`
	Endpoint   string `json:"endpoint"`
}

// NewErrorEnvelope captures a classified failure for serialization.
func NewErrorEnvelope(err *svgl.APIError) ErrorEnvelope {
	return ErrorEnvelope{
		Error:      err.Kind(),
		Message:    err.Message,
		StatusCode: err.StatusCode,
		Endpoint:   err.Endpoint,
	}
}

// SuccessResult wraps data as one pretty-printed JSON text item.
func SuccessResult(data any) (*mcp.CallToolResult, error) {
	return textResult(data)
}

// ErrorResult wraps a classified failure as one pretty-printed JSON text item.
// The result is not flagged as a tool error; the envelope itself carries the
// failure.
func ErrorResult(err *svgl.APIError) (*mcp.CallToolResult, error) {
	return textResult(NewErrorEnvelope(err))
}

func textResult(value any) (*mcp.CallToolResult, error) {
	data, err := marshalIndent(value)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

// marshalIndent pretty-prints value with two-space indentation. HTML
// characters are kept literal so SVG markup and upstream strings read as sent.
func marshalIndent(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// envelopeResult shapes a handler outcome. Classified failures become error
// envelopes; any other error is returned to the SDK unchanged.
func envelopeResult(data any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		if apiErr, ok := svgl.AsAPIError(err); ok {
			result, encodeErr := ErrorResult(apiErr)
			return result, nil, encodeErr
		}
		return nil, nil, err
	}
	result, err := SuccessResult(data)
	return result, nil, err
}
