package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for SameDiff resources.
	uriScheme = "samediff://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.sdk.AddResource(&mcp.Resource{
		URI:         uriScheme + "reports",
		Name:        "reports",
		Description: "Stored comparison reports, newest first",
		MIMEType:    "application/json",
	}, s.handleReportsResource)

	s.sdk.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report",
		Description: "A stored comparison report with its full similarity data",
		MIMEType:    "application/json",
	}, s.handleReportResource)

	s.sdk.AddResource(&mcp.Resource{
		URI:         uriScheme + "samples",
		Name:        "samples",
		Description: "Preset sample texts available for comparison",
		MIMEType:    "application/json",
	}, s.handleSamplesResource)
}

// handleReportsResource returns a summary of every stored report.
func (s *Server) handleReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Comparison.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	type reportInfo struct {
		ID        string              `json:"id"`
		Status    domain.ReportStatus `json:"status"`
		Origin    domain.ReportOrigin `json:"origin"`
		Names     []string            `json:"names"`
		CreatedAt time.Time           `json:"created_at"`
	}

	infos := make([]reportInfo, len(records))
	for i := range records {
		infos[i] = reportInfo{
			ID:        records[i].ID,
			Status:    records[i].Status,
			Origin:    records[i].Origin,
			Names:     records[i].Names,
			CreatedAt: records[i].CreatedAt,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleReportResource returns a single report record.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractReportID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Comparison.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	return jsonResult(req.Params.URI, record)
}

// handleSamplesResource returns the sample catalog.
func (s *Server) handleSamplesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Samples == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	samples, err := s.ports.Samples.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing samples: %w", err)
	}
	return jsonResult(req.Params.URI, samples)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractReportID extracts the report ID from a URI like samediff://reports/{reportId}.
func extractReportID(uri string) string {
	const prefix = uriScheme + "reports/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
