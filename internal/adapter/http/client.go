package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"evacplanner/internal/app/ports"
	"evacplanner/internal/domain/grid"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	hazardPath      = "/api/hazard"
	hazardClearPath = "/api/hazard/clear"
	pathPath        = "/api/path"
	healthPath      = "/health"

	defaultTimeout = 10 * time.Second
)

var (
	_ ports.HazardAPI     = (*Client)(nil)
	_ ports.PathAPI       = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Doer is the subset of the hertz client the adapter needs.
type Doer interface {
	DoTimeout(ctx context.Context, req *protocol.Request, resp *protocol.Response, timeout time.Duration) error
}

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	SessionCookie string
}

type Client struct {
	doer    Doer
	baseURL string
	timeout time.Duration
	cookie  string
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc, err := client.NewClient(
		client.WithDialTimeout(timeout),
		client.WithClientReadTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("build hertz client: %w", err)
	}
	return NewClientWithDoer(cfg, hc), nil
}

func NewClientWithDoer(cfg Config, doer Doer) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		doer:    doer,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout: timeout,
		cookie:  strings.TrimSpace(cfg.SessionCookie),
	}
}

func (c *Client) AddHazard(ctx context.Context, buildingID int, h grid.Hazard) error {
	return c.expectOK(ctx, consts.MethodPost, hazardPath, addHazardRequest{
		BuildingID: buildingID,
		X:          h.Pos.X,
		Y:          h.Pos.Y,
		Type:       string(h.Type),
		Intensity:  h.Intensity,
	})
}

func (c *Client) RemoveHazard(ctx context.Context, buildingID int, pos grid.Point) error {
	return c.expectOK(ctx, consts.MethodDelete, hazardPath, removeHazardRequest{
		BuildingID: buildingID,
		X:          pos.X,
		Y:          pos.Y,
	})
}

func (c *Client) ClearHazards(ctx context.Context, buildingID int) error {
	return c.expectOK(ctx, consts.MethodPost, hazardClearPath, clearHazardsRequest{BuildingID: buildingID})
}

func (c *Client) ComputePath(ctx context.Context, req ports.PathRequest) (ports.PathResult, error) {
	status, body, err := c.send(ctx, consts.MethodPost, pathPath, pathRequest{
		BuildingID: req.BuildingID,
		StartX:     req.Start.X,
		StartY:     req.Start.Y,
		EndX:       req.End.X,
		EndY:       req.End.Y,
		Name:       req.Name,
	})
	if err != nil {
		return ports.PathResult{}, err
	}
	if !isSuccessStatus(status) {
		return ports.PathResult{}, statusError(status, body)
	}
	return decodePathResponse(body)
}

func (c *Client) Health(ctx context.Context) (ports.HealthStatus, error) {
	status, body, err := c.send(ctx, consts.MethodGet, healthPath, nil)
	if err != nil {
		return ports.HealthStatus{}, err
	}
	if !isSuccessStatus(status) {
		return ports.HealthStatus{}, statusError(status, body)
	}
	var out ports.HealthStatus
	if err := json.Unmarshal(body, &out); err != nil {
		return ports.HealthStatus{}, fmt.Errorf("%w: health: %v", ports.ErrMalformedResponse, err)
	}
	return out, nil
}

func decodePathResponse(body []byte) (ports.PathResult, error) {
	var resp pathResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ports.PathResult{}, fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err)
	}
	if resp.Success == nil {
		return ports.PathResult{}, fmt.Errorf("%w: missing success", ports.ErrMalformedResponse)
	}
	if !*resp.Success {
		return ports.PathResult{}, &ports.RejectedError{Message: strings.TrimSpace(resp.Error)}
	}
	if resp.Path == nil || resp.Steps == nil || resp.Cost == nil {
		return ports.PathResult{}, fmt.Errorf("%w: success without path, steps or cost", ports.ErrMalformedResponse)
	}
	path, err := grid.PathFromPairs(resp.Path)
	if err != nil {
		return ports.PathResult{}, fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err)
	}
	return ports.PathResult{
		Path:   path,
		Steps:  *resp.Steps,
		Cost:   *resp.Cost,
		PathID: resp.PathID,
	}, nil
}

func (c *Client) expectOK(ctx context.Context, method, path string, payload any) error {
	status, body, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if !isSuccessStatus(status) {
		return statusError(status, body)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set("Accept", consts.MIMEApplicationJSON)
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		req.Header.SetContentTypeBytes([]byte(consts.MIMEApplicationJSON))
		req.SetBody(b)
	}

	if err := c.doer.DoTimeout(ctx, req, resp, c.timeout); err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %v", ports.ErrTransport, method, path, err)
	}
	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

func statusError(status int, body []byte) error {
	out := &ports.StatusError{Status: status}
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		out.Message = strings.TrimSpace(parsed.Error)
		if out.Message == "" {
			out.Message = strings.TrimSpace(parsed.Message)
		}
	}
	return out
}
