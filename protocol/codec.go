package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// ReadResponse reads a single JSON transcript record from the reader.
// The JSON must be terminated by a newline.
func ReadResponse(r *bufio.Reader) (*Response, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}
	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return &resp, nil
}

// WriteResponse encodes and writes a transcript record to the writer.
func WriteResponse(w io.Writer, resp *Response) error {
	bytes, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}
	bytes = append(bytes, '\n')
	_, err = w.Write(bytes)
	return err
}
