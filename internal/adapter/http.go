// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

type httpUsersAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPUsersAdapter constructs the REST implementation of [UsersAdapter].
// It normalises and validates cfg.HTTPAddress and applies cfg.RequestTimeout
// to every request.
func NewHTTPUsersAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UsersAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpUsersAdapter{client: client, logger: logger}, nil
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

func (h *httpUsersAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpUsersAdapter) Token() string {
	return h.token
}

// Register POSTs to /auth/register. It does not log in.
func (h *httpUsersAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login POSTs to /auth/login and keeps the returned token. The token is
// read from the JSON body; the Authorization response header is used when
// the body carries none.
func (h *httpUsersAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&loginResp).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResp.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		loginResp.Token = token
	}

	h.SetToken(loginResp.Token)
	h.logger.Debug().Int64("id", loginResp.UserID).Msg("logged in")

	return loginResp, nil
}

func (h *httpUsersAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUsersAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("get current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUsersAdapter) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	var users []models.User

	req := h.authedRequest(ctx).SetResult(&users)
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(page.Limit, 10))
	}
	if page.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(page.Offset, 10))
	}

	resp, err := req.Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpUsersAdapter) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update)

	var (
		resp *resty.Response
		err  error
	)
	if userID == 0 {
		resp, err = req.Put("/users")
	} else {
		resp, err = req.SetPathParam("id", strconv.FormatInt(userID, 10)).Put("/users/{id}")
	}
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpUsersAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Delete("/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request bound to ctx carrying the stored bearer
// token, if any.
func (h *httpUsersAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
