// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/novera/internal/config"
	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/service"
	"github.com/MKhiriev/novera/internal/service/mocks"
	"github.com/MKhiriev/novera/internal/store"
	"github.com/MKhiriev/novera/internal/validators"
	"github.com/MKhiriev/novera/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "good-token"

var alice = models.User{UserID: 1, Username: "alice", Email: "alice@example.com", HashedPassword: "digest"}

type serviceMocks struct {
	auth    *mocks.MockAuthService
	novels  *mocks.MockNovelService
	status  *mocks.MockStatusService
	appInfo *mocks.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:    mocks.NewMockAuthService(ctrl),
		novels:  mocks.NewMockNovelService(ctrl),
		status:  mocks.NewMockStatusService(ctrl),
		appInfo: mocks.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		NovelService:   m.novels,
		StatusService:  m.status,
		AppInfoService: m.appInfo,
	}
	return NewHandler(services, config.Server{}, logger.Nop()).Init(), m
}

// authenticate makes the next protected request resolve to user.
func (m serviceMocks) authenticate(user models.User) {
	m.auth.EXPECT().ResolveActiveUser(gomock.Any(), testToken).Return(user, nil)
}

func do(t *testing.T, router http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Detail
}

// ---- register / login / me ----

func TestRegister(t *testing.T) {
	t.Run("success hides the password digest", func(t *testing.T) {
		router, m := newTestRouter(t)
		input := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret"}
		m.auth.EXPECT().RegisterUser(gomock.Any(), input).Return(alice, nil)

		rec := do(t, router, http.MethodPost, "/register", `{"username":"alice","email":"alice@example.com","password":"secret"}`, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"username":"alice","email":"alice@example.com"}`, rec.Body.String())
	})

	t.Run("duplicate username", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

		rec := do(t, router, http.MethodPost, "/register", `{"username":"alice","email":"a@b.c","password":"x"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username already registered", detailOf(t, rec))
	})

	t.Run("duplicate email", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, fmt.Errorf("wrapped: %w", store.ErrEmailAlreadyExists))

		rec := do(t, router, http.MethodPost, "/register", `{"username":"bob","email":"a@b.c","password":"x"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email already registered", detailOf(t, rec))
	})

	t.Run("broken json", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodPost, "/register", `{"username":`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid JSON was passed", detailOf(t, rec))
	})
}

func TestLogin(t *testing.T) {
	t.Run("form credentials", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "alice", Password: "secret"}).Return(alice, nil)
		m.auth.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{SignedString: "signed"}, nil)

		form := url.Values{"username": {"alice"}, "password": {"secret"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access_token":"signed","token_type":"bearer"}`, rec.Body.String())
		assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
	})

	t.Run("json credentials", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "alice", Password: "secret"}).Return(alice, nil)
		m.auth.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{SignedString: "signed"}, nil)

		rec := do(t, router, http.MethodPost, "/login", `{"username":"alice","password":"secret"}`, false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

		rec := do(t, router, http.MethodPost, "/login", `{"username":"alice","password":"nope"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Incorrect username or password", detailOf(t, rec))
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodGet, "/users/me", "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Not authenticated", detailOf(t, rec))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().ResolveActiveUser(gomock.Any(), testToken).Return(models.User{}, service.ErrTokenIsExpired)

		rec := do(t, router, http.MethodGet, "/users/me", "", true)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token is expired", detailOf(t, rec))
	})

	t.Run("resolved user reaches the handler", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)

		rec := do(t, router, http.MethodGet, "/users/me", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"username":"alice","email":"alice@example.com"}`, rec.Body.String())
	})
}

// ---- novels ----

func TestListNovels(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.novels.EXPECT().ListNovels(gomock.Any(), uint64(0), uint64(100)).Return([]models.Novel{}, nil)

		rec := do(t, router, http.MethodGet, "/novels", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("trailing slash and explicit window", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.novels.EXPECT().ListNovels(gomock.Any(), uint64(5), uint64(10)).Return([]models.Novel{}, nil)

		rec := do(t, router, http.MethodGet, "/novels/?skip=5&limit=10", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad skip", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodGet, "/novels?skip=-1", "", false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetNovel(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.novels.EXPECT().GetNovel(gomock.Any(), int64(7)).Return(models.Novel{ID: 7, Title: "Dune", Chapters: []models.Chapter{}}, nil)

		rec := do(t, router, http.MethodGet, "/novels/7", "", false)

		require.Equal(t, http.StatusOK, rec.Code)
		var novel models.Novel
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &novel))
		assert.Equal(t, "Dune", novel.Title)
	})

	t.Run("missing", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.novels.EXPECT().GetNovel(gomock.Any(), int64(7)).Return(models.Novel{}, store.ErrNovelNotFound)

		rec := do(t, router, http.MethodGet, "/novels/7", "", false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Novel not found", detailOf(t, rec))
	})

	t.Run("non numeric id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := do(t, router, http.MethodGet, "/novels/abc", "", false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid novel id", detailOf(t, rec))
	})
}

func TestCreateNovel_UsesAuthenticatedUser(t *testing.T) {
	router, m := newTestRouter(t)
	m.authenticate(alice)
	m.novels.EXPECT().CreateNovel(gomock.Any(), models.NovelInput{Title: "Dune"}, alice).
		Return(models.Novel{ID: 3, Title: "Dune", Status: "Ongoing", OwnerID: alice.UserID, Chapters: []models.Chapter{}}, nil)

	rec := do(t, router, http.MethodPost, "/novels", `{"title":"Dune"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"title":"Dune","description":null,"author":null,"genre":null,"status":"Ongoing","rating":0,"owner_id":1,"chapters":[]}`, rec.Body.String())
}

func TestCreateNovel_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/novels", `{"title":"Dune"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateNovel_NotOwner(t *testing.T) {
	router, m := newTestRouter(t)
	m.authenticate(alice)
	m.novels.EXPECT().UpdateNovel(gomock.Any(), int64(9), gomock.Any(), alice).Return(models.Novel{}, service.ErrNotNovelOwner)

	rec := do(t, router, http.MethodPut, "/novels/9", `{"title":"Mine now"}`, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not authorized", detailOf(t, rec))
}

func TestDeleteNovel(t *testing.T) {
	t.Run("returns prior state", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		prior := models.Novel{ID: 9, Title: "Dune", OwnerID: 1, Chapters: []models.Chapter{{ID: 1, NovelID: 9, ChapterNumber: 1}}}
		m.novels.EXPECT().DeleteNovel(gomock.Any(), int64(9), alice).Return(prior, nil)

		rec := do(t, router, http.MethodDelete, "/novels/9", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		var novel models.Novel
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &novel))
		assert.Len(t, novel.Chapters, 1)
	})

	t.Run("missing", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		m.novels.EXPECT().DeleteNovel(gomock.Any(), int64(9), alice).Return(models.Novel{}, store.ErrNovelNotFound)

		rec := do(t, router, http.MethodDelete, "/novels/9", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ---- chapters ----

func TestChapters(t *testing.T) {
	t.Run("list is public", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.novels.EXPECT().ListChapters(gomock.Any(), int64(2)).Return([]models.Chapter{}, nil)

		rec := do(t, router, http.MethodGet, "/novels/2/chapters", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("create", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		m.novels.EXPECT().CreateChapter(gomock.Any(), int64(2), gomock.Any(), alice).DoAndReturn(
			func(_ any, _ int64, input models.ChapterInput, _ models.User) (models.Chapter, error) {
				require.NotNil(t, input.ChapterNumber)
				assert.Equal(t, 3, *input.ChapterNumber)
				return models.Chapter{ID: 1, Title: input.Title, ChapterNumber: 3, NovelID: 2}, nil
			},
		)

		rec := do(t, router, http.MethodPost, "/novels/2/chapters", `{"title":"Three","content":"...","chapter_number":3}`, true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create on a stranger's novel", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		m.novels.EXPECT().CreateChapter(gomock.Any(), int64(2), gomock.Any(), alice).Return(models.Chapter{}, service.ErrNotNovelOwner)

		rec := do(t, router, http.MethodPost, "/novels/2/chapters", `{"title":"x","chapter_number":1}`, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

// ---- status ----

func TestStatusRoutes(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		m.status.EXPECT().SetStatus(gomock.Any(), alice.UserID, int64(4), models.Reading).
			Return(models.UserNovelStatus{ID: 1, UserID: 1, NovelID: 4, Status: models.Reading}, nil)

		rec := do(t, router, http.MethodPost, "/novels/4/status", `{"status":"reading"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"user_id":1,"novel_id":4,"status":"reading"}`, rec.Body.String())
	})

	t.Run("unknown label", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		m.status.EXPECT().SetStatus(gomock.Any(), alice.UserID, int64(4), models.ReadingStatus("skimming")).
			Return(models.UserNovelStatus{}, fmt.Errorf("%w: %q", validators.ErrInvalidStatus, "skimming"))

		rec := do(t, router, http.MethodPost, "/novels/4/status", `{"status":"skimming"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid status", detailOf(t, rec))
	})

	t.Run("get missing", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		m.status.EXPECT().GetStatus(gomock.Any(), alice.UserID, int64(4)).Return(models.UserNovelStatus{}, store.ErrStatusNotFound)

		rec := do(t, router, http.MethodGet, "/novels/4/status", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.authenticate(alice)
		m.status.EXPECT().ListStatuses(gomock.Any(), alice.UserID).Return([]models.NovelStatusEntry{{NovelID: 4, Status: models.Liked}}, nil)

		rec := do(t, router, http.MethodGet, "/user/novels/status", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"novel_id":4,"status":"liked"}]`, rec.Body.String())
	})
}

// ---- misc ----

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := do(t, router, http.MethodGet, "/api/version", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestCheckHTTPMethod_UnknownMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/novels"},
		{http.MethodDelete, "/register"},
		{http.MethodGet, "/login"},
		{http.MethodPatch, "/novels/1"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := do(t, router, tc.method, tc.path, "", false)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{AppInfoService: mocks.NewMockAppInfoService(ctrl)}
	router := NewHandler(services, config.Server{CORSAllowedOrigins: []string{"http://localhost:3000"}}, logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodOptions, "/novels", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
