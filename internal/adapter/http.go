package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/users. On success the token from the response body is stored
// via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/users")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/users/login. On success the token from the response body is
// stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/users/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// SubmitContact implements [ServerAdapter].
func (h *httpServerAdapter) SubmitContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var created models.Contact

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(contact).
		SetResult(&created).
		Post("/api/contacts")
	if err != nil {
		return models.Contact{}, fmt.Errorf("submit contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	return created, nil
}

// ListContacts implements [ServerAdapter].
func (h *httpServerAdapter) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact

	resp, err := h.authedRequest(ctx).
		SetResult(&contacts).
		Get("/api/contacts")
	if err != nil {
		return nil, fmt.Errorf("list contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return contacts, nil
}

// DeleteContact implements [ServerAdapter].
func (h *httpServerAdapter) DeleteContact(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/contacts/%d", id))
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListProjects implements [ServerAdapter].
func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&projects).
		Get("/api/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return projects, nil
}

// CreateProject implements [ServerAdapter].
func (h *httpServerAdapter) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var created models.Project

	resp, err := h.authedRequest(ctx).
		SetBody(project).
		SetResult(&created).
		Post("/api/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return created, nil
}

// UpdateProject implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error) {
	var updated models.Project

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/projects/%d", id))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// DeleteProject implements [ServerAdapter].
func (h *httpServerAdapter) DeleteProject(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/projects/%d", id))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListQualifications implements [ServerAdapter].
func (h *httpServerAdapter) ListQualifications(ctx context.Context) ([]models.Qualification, error) {
	var qualifications []models.Qualification

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&qualifications).
		Get("/api/qualifications")
	if err != nil {
		return nil, fmt.Errorf("list qualifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return qualifications, nil
}

// CreateQualification implements [ServerAdapter].
func (h *httpServerAdapter) CreateQualification(ctx context.Context, qualification models.Qualification) (models.Qualification, error) {
	var created models.Qualification

	resp, err := h.authedRequest(ctx).
		SetBody(qualification).
		SetResult(&created).
		Post("/api/qualifications")
	if err != nil {
		return models.Qualification{}, fmt.Errorf("create qualification request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Qualification{}, err
	}

	return created, nil
}

// UpdateQualification implements [ServerAdapter].
func (h *httpServerAdapter) UpdateQualification(ctx context.Context, id int64, update models.QualificationUpdate) (models.Qualification, error) {
	var updated models.Qualification

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/qualifications/%d", id))
	if err != nil {
		return models.Qualification{}, fmt.Errorf("update qualification request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Qualification{}, err
	}

	return updated, nil
}

// DeleteQualification implements [ServerAdapter].
func (h *httpServerAdapter) DeleteQualification(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/qualifications/%d", id))
	if err != nil {
		return fmt.Errorf("delete qualification request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest prepares a request carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.token)
}
