package game_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gameapi/internal/game"
	"gameapi/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newHandlerWithMock(t *testing.T) (*game.HTTPHandler, *game.MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := game.NewMockRepository(ctrl)
	return game.NewHTTPHandler(game.NewService(repo)), repo
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().List(gomock.Any(), 1, 12).Return([]game.Game{testutil.TestGame}, nil)
		repo.EXPECT().TotalCount(gomock.Any()).Return(1, nil)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/api/games"))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, float64(1), resp.Body["totalCount"])
		assert.Equal(t, float64(1), resp.Body["totalPages"])
		assert.Equal(t, false, resp.Body["hasNextPage"])
	})

	t.Run("invalid paging params are clamped", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().List(gomock.Any(), 1, 12).Return([]game.Game{}, nil)
		repo.EXPECT().TotalCount(gomock.Any()).Return(0, nil)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/api/games?page=0&pageSize=500"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().List(gomock.Any(), 1, 12).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/api/games"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	t.Run("success with media", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(testutil.TestGame, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/api/games/1")
		r.SetPathValue("id", "1")
		handler.GetByID(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body, "mediaFile")
	})

	t.Run("success without media omits mediaFile", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 2).Return(testutil.TestGameNoMedia, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/api/games/2")
		r.SetPathValue("id", "2")
		handler.GetByID(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.NotContains(t, resp.Body, "mediaFile")
	})

	t.Run("not found", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 99).Return(game.Game{}, game.ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/api/games/99")
		r.SetPathValue("id", "99")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-integer id", func(t *testing.T) {
		handler, _ := newHandlerWithMock(t)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/api/games/abc")
		r.SetPathValue("id", "abc")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_ListByCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().ListByCategory(gomock.Any(), "RPG", 2, 12).Return([]game.Game{testutil.TestGame}, nil)
		repo.EXPECT().CountByCategory(gomock.Any(), "RPG").Return(15, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/api/games/category/RPG?page=2")
		r.SetPathValue("category", "RPG")
		handler.ListByCategory(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, float64(15), resp.Body["totalCount"])
		assert.Equal(t, float64(2), resp.Body["page"])
	})

	t.Run("blank category", func(t *testing.T) {
		handler, _ := newHandlerWithMock(t)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/api/games/category/%20")
		r.SetPathValue("category", " ")
		handler.ListByCategory(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().SearchByTitle(gomock.Any(), "zelda", 1, 12).Return([]game.Game{}, nil)
		repo.EXPECT().CountBySearch(gomock.Any(), "zelda").Return(0, nil)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/api/games/search?query=zelda"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing query", func(t *testing.T) {
		handler, _ := newHandlerWithMock(t)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/api/games/search"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Shelves(t *testing.T) {
	t.Run("top rated default count", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().TopRated(gomock.Any(), 10).Return([]game.Game{testutil.TestGame}, nil)

		w := httptest.NewRecorder()
		handler.TopRated(w, testutil.NewRequest(http.MethodGet, "/api/games/top-rated"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("recent clamps oversized count", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().Recent(gomock.Any(), 10).Return([]game.Game{}, nil)

		w := httptest.NewRecorder()
		handler.Recent(w, testutil.NewRequest(http.MethodGet, "/api/games/recent?count=999"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("recent honors valid count", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().Recent(gomock.Any(), 5).Return([]game.Game{}, nil)

		w := httptest.NewRecorder()
		handler.Recent(w, testutil.NewRequest(http.MethodGet, "/api/games/recent?count=5"))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHTTPHandler_Categories(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().Categories(gomock.Any()).Return([]string{"Action", "RPG"}, nil)

		w := httptest.NewRecorder()
		handler.Categories(w, testutil.NewRequest(http.MethodGet, "/api/games/categories"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty catalog returns empty array", func(t *testing.T) {
		handler, repo := newHandlerWithMock(t)
		repo.EXPECT().Categories(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.Categories(w, testutil.NewRequest(http.MethodGet, "/api/games/categories"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
