package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Closer Country API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the closer-country guessing game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHealthz)

	// POST /api/game/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/game/start")
	postStart.SetSummary("Start a game")
	postStart.SetDescription("Begins a fresh run. Pass an existing Bearer token to keep your high score; omit it to get a new identity.")
	postStart.AddRespStructure(StartResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postStart)

	// GET /api/game/round
	getRound, _ := r.NewOperationContext(http.MethodGet, "/api/game/round")
	getRound.SetSummary("Next round")
	getRound.SetDescription("Returns the base country and two candidates for the next round. Requires Bearer token.")
	getRound.AddRespStructure(RoundResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getRound.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getRound)

	// POST /api/game/guess
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/game/guess")
	postGuess.SetSummary("Submit a guess")
	postGuess.SetDescription("Judges which candidate lies closer to the base country. Distances are computed server-side. Requires Bearer token.")
	postGuess.AddReqStructure(GuessRequest{})
	postGuess.AddRespStructure(GuessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postGuess)

	// GET /api/game/over
	getOver, _ := r.NewOperationContext(http.MethodGet, "/api/game/over")
	getOver.SetSummary("Game-over map data")
	getOver.SetDescription("Returns a GeoJSON FeatureCollection for the losing round: country shapes, centroid markers, and distance lines. Requires Bearer token.")
	getOver.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("application/geo+json"))
	getOver.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getOver)

	// POST /api/game/nickname
	postNickname, _ := r.NewOperationContext(http.MethodPost, "/api/game/nickname")
	postNickname.SetSummary("Submit nickname")
	postNickname.SetDescription("Records the final score on the leaderboard under a nickname. Requires Bearer token and a finished game.")
	postNickname.AddReqStructure(NicknameRequest{})
	postNickname.AddRespStructure(NicknameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postNickname.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postNickname.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(postNickname)

	// GET /api/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getLeaderboard.SetSummary("Leaderboard")
	getLeaderboard.SetDescription("Returns the top scores, highest first.")
	getLeaderboard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getLeaderboard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/leaderboard/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of leaderboard updates. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws/play
	getWSPlay, _ := r.NewOperationContext(http.MethodGet, "/ws/play")
	getWSPlay.SetSummary("WebSocket play channel")
	getWSPlay.SetDescription("Upgrades to a WebSocket carrying the round/guess protocol. Pass token as query parameter.")
	getWSPlay.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSPlay)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
