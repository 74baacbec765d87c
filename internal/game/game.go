package game

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a game is not found.
var ErrNotFound = errors.New("game not found")

// Game represents a game entity together with its optional media record.
type Game struct {
	ID                 int        `json:"id"`
	Title              string     `json:"title" validate:"required,max=200"`
	Description        string     `json:"description" validate:"max=2000"`
	Developer          string     `json:"developer" validate:"max=100"`
	ReleaseDate        *time.Time `json:"releaseDate"`
	Category           string     `json:"category" validate:"required,max=50"`
	Rating             float64    `json:"rating" validate:"gte=0,lte=10"`
	DownloadLink       string     `json:"downloadLink" validate:"max=500"`
	SystemRequirements string     `json:"systemRequirements" validate:"max=1000"`

	// MediaFile is nil when no media row exists for the game. A non-nil
	// value with empty-string fields means the row exists but is unset.
	MediaFile *MediaFile `json:"mediaFile,omitempty"`
}

// MediaFile holds the image references for a game. It shares the game's
// identity: exactly one row per game, removed with the game.
type MediaFile struct {
	GameID          int    `json:"-"`
	Banner          string `json:"banner" validate:"max=500"`
	Icon            string `json:"icon" validate:"max=500"`
	FirstMediaFile  string `json:"firstMediaFile" validate:"max=500"`
	SecondMediaFile string `json:"secondMediaFile" validate:"max=500"`
	ThirdMediaFile  string `json:"thirdMediaFile" validate:"max=500"`
	FourthMediaFile string `json:"fourthMediaFile" validate:"max=500"`
}

// Summary is the projection used by every listing endpoint.
type Summary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Banner      string `json:"banner"`
}

// ToSummary projects a game into its listing shape. The banner is always
// an empty string when the game has no media row, never null.
func (g Game) ToSummary() Summary {
	banner := ""
	if g.MediaFile != nil {
		banner = g.MediaFile.Banner
	}
	return Summary{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Banner:      banner,
	}
}
