package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// talking to the server at address. A bare "host:port" is treated as http.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login posts the credentials as a form, the way OAuth2 password clients do.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var token models.TokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": req.Username,
			"password": req.Password,
		}).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", req.Username).Msg("logged in")

	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.authed(ctx, "me", &user, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/users/me")
	}); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) ListNovels(ctx context.Context, offset, limit uint64) ([]models.Novel, error) {
	var novels []models.Novel
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"skip":  strconv.FormatUint(offset, 10),
			"limit": strconv.FormatUint(limit, 10),
		}).
		SetResult(&novels).
		Get("/novels")
	if err != nil {
		return nil, fmt.Errorf("list novels request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return novels, nil
}

func (h *httpServerAdapter) GetNovel(ctx context.Context, novelID int64) (models.Novel, error) {
	var novel models.Novel
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&novel).
		Get(novelPath(novelID))
	if err != nil {
		return models.Novel{}, fmt.Errorf("get novel request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Novel{}, err
	}

	return novel, nil
}

func (h *httpServerAdapter) CreateNovel(ctx context.Context, input models.NovelInput) (models.Novel, error) {
	var novel models.Novel
	if err := h.authed(ctx, "create novel", &novel, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(input).Post("/novels")
	}); err != nil {
		return models.Novel{}, err
	}
	return novel, nil
}

func (h *httpServerAdapter) UpdateNovel(ctx context.Context, novelID int64, input models.NovelInput) (models.Novel, error) {
	var novel models.Novel
	if err := h.authed(ctx, "update novel", &novel, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(input).Put(novelPath(novelID))
	}); err != nil {
		return models.Novel{}, err
	}
	return novel, nil
}

func (h *httpServerAdapter) DeleteNovel(ctx context.Context, novelID int64) (models.Novel, error) {
	var novel models.Novel
	if err := h.authed(ctx, "delete novel", &novel, func(r *resty.Request) (*resty.Response, error) {
		return r.Delete(novelPath(novelID))
	}); err != nil {
		return models.Novel{}, err
	}
	return novel, nil
}

func (h *httpServerAdapter) ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	var chapters []models.Chapter
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&chapters).
		Get(novelPath(novelID) + "/chapters")
	if err != nil {
		return nil, fmt.Errorf("list chapters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return chapters, nil
}

func (h *httpServerAdapter) CreateChapter(ctx context.Context, novelID int64, input models.ChapterInput) (models.Chapter, error) {
	var chapter models.Chapter
	if err := h.authed(ctx, "create chapter", &chapter, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(input).Post(novelPath(novelID) + "/chapters")
	}); err != nil {
		return models.Chapter{}, err
	}
	return chapter, nil
}

func (h *httpServerAdapter) SetStatus(ctx context.Context, novelID int64, status models.ReadingStatus) (models.UserNovelStatus, error) {
	var record models.UserNovelStatus
	if err := h.authed(ctx, "set status", &record, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(models.StatusInput{Status: status}).Post(novelPath(novelID) + "/status")
	}); err != nil {
		return models.UserNovelStatus{}, err
	}
	return record, nil
}

func (h *httpServerAdapter) GetStatus(ctx context.Context, novelID int64) (models.UserNovelStatus, error) {
	var record models.UserNovelStatus
	if err := h.authed(ctx, "get status", &record, func(r *resty.Request) (*resty.Response, error) {
		return r.Get(novelPath(novelID) + "/status")
	}); err != nil {
		return models.UserNovelStatus{}, err
	}
	return record, nil
}

func (h *httpServerAdapter) ListStatuses(ctx context.Context) ([]models.NovelStatusEntry, error) {
	var entries []models.NovelStatusEntry
	if err := h.authed(ctx, "list statuses", &entries, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/user/novels/status")
	}); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// authed sends an authenticated request built by send and decodes a
// successful body into result.
func (h *httpServerAdapter) authed(ctx context.Context, op string, result any, send func(*resty.Request) (*resty.Response, error)) error {
	token := h.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	resp, err := send(h.client.WithToken(token).SetContext(ctx).SetResult(result))
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}

func novelPath(novelID int64) string {
	return "/novels/" + strconv.FormatInt(novelID, 10)
}
