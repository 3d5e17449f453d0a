package server

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"
)

// logRequests gives every incoming request a ULID call ID, stores a logger
// carrying it in the context and logs the outcome with its duration.
func (s *Server) logRequests(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		lc := s.log.With().
			Str("call_id", ulid.Make().String()).
			Str("method", method)
		if p, ok := req.GetParams().(*mcp.CallToolParamsRaw); ok && p != nil {
			lc = lc.Str("tool", p.Name)
		}
		log := lc.Logger()
		ctx = log.WithContext(ctx)

		start := time.Now()
		res, err := next(ctx, method, req)
		elapsed := time.Since(start)

		if r, ok := res.(*mcp.CallToolResult); ok && err == nil && r.IsError {
			log.Warn().Dur("duration", elapsed).Msg("tool returned an error")
			return res, err
		}
		if err != nil {
			log.Warn().Err(err).Dur("duration", elapsed).Msg("request failed")
			return res, err
		}
		log.Debug().Dur("duration", elapsed).Msg("request handled")
		return res, err
	}
}
