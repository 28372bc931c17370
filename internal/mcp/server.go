package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("healthdash", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("healthdash reads the device's health records on demand and derives daily totals, heart rate zones, sleep summaries and exercise details. Dates are YYYY-MM-DD in the user's time zone and default to today."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetDashboard, Handler: h.getDashboard},
		server.ServerTool{Tool: toolGetDailyTotals, Handler: h.getDailyTotals},
		server.ServerTool{Tool: toolGetStepIntervals, Handler: h.getStepIntervals},
		server.ServerTool{Tool: toolGetStepHistory, Handler: h.getStepHistory},
		server.ServerTool{Tool: toolGetHeartRateZones, Handler: h.getHeartRateZones},
		server.ServerTool{Tool: toolGetSleepSummary, Handler: h.getSleepSummary},
		server.ServerTool{Tool: toolGetWeeklySleep, Handler: h.getWeeklySleep},
		server.ServerTool{Tool: toolGetExercises, Handler: h.getExercises},
		server.ServerTool{Tool: toolGetExerciseDetail, Handler: h.getExerciseDetail},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resToday, Handler: h.today},
		server.ServerResource{Resource: resWeeklySleep, Handler: h.weeklySleep},
	)

	return s
}

// NewHTTPHandler wraps an MCP server in the streamable HTTP transport so it
// can be mounted on the dashboard router.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s, server.WithStateLess(true))
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resToday = mcp.NewResource(
	"healthdash://today",
	"Today",
	mcp.WithResourceDescription("Today's dashboard snapshot: calories, steps, distance, sleep, heart rate, SpO2 and VO2 max"),
	mcp.WithMIMEType("application/json"),
)

var resWeeklySleep = mcp.NewResource(
	"healthdash://weekly_sleep",
	"Weekly Sleep",
	mcp.WithResourceDescription("Sleep hours for the seven days ending today, with bedtime and wake time consistency"),
	mcp.WithMIMEType("application/json"),
)
