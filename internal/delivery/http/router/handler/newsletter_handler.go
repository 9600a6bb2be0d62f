package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsletterHandler holds dependencies for newsletter handlers.
type NewsletterHandler struct {
	uc usecase.NewsletterUsecase
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe joins the newsletter. Re-subscribing an inactive address
// reactivates it.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), &usecase.SubscribeInput{Email: req.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscriber, "Subscribed to newsletter")
}

// Unsubscribe soft-deactivates a subscription.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Unsubscribed from newsletter")
}

// AdminListSubscribers returns the back-office subscriber page.
func (h *NewsletterHandler) AdminListSubscribers(c echo.Context) error {
	output, err := h.uc.ListSubscribers(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"subscribers": output.Subscribers,
		"pagination":  newPageView(output.Pagination),
	}, "Subscribers retrieved successfully")
}

type sendCampaignRequest struct {
	Subject string            `json:"subject" validate:"required,max=200"`
	HTML    string            `json:"html"`
	Text    string            `json:"text"`
	Values  map[string]string `json:"values"`
}

// AdminSendCampaign delivers a campaign to every active subscriber and
// reports the tally.
func (h *NewsletterHandler) AdminSendCampaign(c echo.Context) error {
	var req sendCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SendCampaign(c.Request().Context(), &usecase.SendCampaignInput{
		Subject: req.Subject,
		HTML:    req.HTML,
		Text:    req.Text,
		Values:  req.Values,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Campaign dispatched")
}
