package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"gameapi/internal/game"
)

func timePtr(t time.Time) *time.Time { return &t }

// TestGame is a fixture with a full media row.
var TestGame = game.Game{
	ID:                 1,
	Title:              "Starfall Odyssey",
	Description:        "An open-world space adventure.",
	Developer:          "Moonrise Labs",
	ReleaseDate:        timePtr(time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)),
	Category:           "RPG",
	Rating:             8.7,
	DownloadLink:       "https://downloads.example.com/games/1",
	SystemRequirements: "8 GB RAM, 4 GHz CPU",
	MediaFile: &game.MediaFile{
		GameID:          1,
		Banner:          "https://cdn.example.com/games/1/banner.jpg",
		Icon:            "https://cdn.example.com/games/1/icon.png",
		FirstMediaFile:  "https://cdn.example.com/games/1/shot1.jpg",
		SecondMediaFile: "https://cdn.example.com/games/1/shot2.jpg",
	},
}

// TestGameNoMedia is a fixture without a media row and without a release
// date.
var TestGameNoMedia = game.Game{
	ID:          2,
	Title:       "Vault Siege",
	Description: "A co-op heist roguelike.",
	Developer:   "Ironclad Interactive",
	Category:    "Action",
	Rating:      6.2,
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// RecordResponse captures a recorded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes a recorder into a RecordResponse.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
