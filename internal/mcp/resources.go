package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) today(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	snap, err := h.ds.Snapshot(ctx, time.Now().In(h.ds.Location()))
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, snap)
}

func (h *handlers) weeklySleep(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	week, err := h.ds.WeeklySleep(ctx, time.Now().In(h.ds.Location()))
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, week)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
