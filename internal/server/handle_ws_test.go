package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/playgeo/closercountry/internal/atlas"
	"github.com/playgeo/closercountry/internal/quiz"
)

func TestHandleWSPlay(t *testing.T) {
	cat, err := atlas.Load([]byte(testCountries))
	if err != nil {
		t.Fatalf("loading test catalog: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := NewSessions()
	token := sessions.Create(quiz.NewSession(0, ""))

	r := chi.NewRouter()
	addRoutes(r, logger, Options{
		Engine:          quiz.NewEngine(cat, 3, 1),
		Sessions:        sessions,
		Store:           NewMemoryStore(),
		LeaderboardSize: 5,
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + srv.URL[len("http"):] + "/ws/play?token=" + token

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	// Guessing before a round is an error, but keeps the connection open.
	if err := wsjson.Write(ctx, conn, wsCommand{Action: "guess", BaseCountry: "Alpha", ChosenCountry: "Bravo", OtherCountry: "Charlie"}); err != nil {
		t.Fatalf("write guess: %v", err)
	}
	var errReply wsError
	if err := wsjson.Read(ctx, conn, &errReply); err != nil {
		t.Fatalf("read error reply: %v", err)
	}
	if errReply.Type != "error" {
		t.Fatalf("expected error reply, got %+v", errReply)
	}

	// A round request returns a playable triple.
	if err := wsjson.Write(ctx, conn, wsCommand{Action: "round"}); err != nil {
		t.Fatalf("write round: %v", err)
	}
	var roundReply wsRound
	if err := wsjson.Read(ctx, conn, &roundReply); err != nil {
		t.Fatalf("read round reply: %v", err)
	}
	if roundReply.Type != "round" {
		t.Fatalf("expected round reply, got type %q", roundReply.Type)
	}
	round := roundReply.Round
	if round.BaseCountry.Name == "" || round.Target1.Name == "" || round.Target2.Name == "" {
		t.Fatalf("incomplete round: %+v", round)
	}

	// Pick the closer candidate and score a point.
	closer, farther := rankTargets(t, cat, round)
	if err := wsjson.Write(ctx, conn, wsCommand{
		Action:        "guess",
		BaseCountry:   round.BaseCountry.Name,
		ChosenCountry: closer,
		OtherCountry:  farther,
	}); err != nil {
		t.Fatalf("write guess: %v", err)
	}
	var resultReply wsResult
	if err := wsjson.Read(ctx, conn, &resultReply); err != nil {
		t.Fatalf("read result reply: %v", err)
	}
	if resultReply.Type != "result" {
		t.Fatalf("expected result reply, got type %q", resultReply.Type)
	}
	if !resultReply.Result.Correct || resultReply.Result.Score != 1 {
		t.Fatalf("expected a winning guess with score 1, got %+v", resultReply.Result)
	}

	conn.Close(websocket.StatusNormalClosure, "done")
}

func TestHandleWSPlayRejectsBadToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handleWSPlay(logger, nil, NewSessions(), NewMemoryStore(), NewBroker())

	req := httptest.NewRequest(http.MethodGet, "/ws/play?token=nope", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
