package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	regressor "github.com/aouyang1/go-regressor"
	"github.com/aouyang1/go-regressor/service"
	"github.com/gin-gonic/gin"
)

// Plotter renders an html page of the model fit
type Plotter interface {
	PlotFit(w io.Writer) error
}

type ModelResponse struct {
	ModelInfo regressor.Model           `json:"model_info"`
	Training  regressor.TrainingSummary `json:"training"`
}

type Handler struct {
	svc     *service.Service
	summary regressor.TrainingSummary
	plotter Plotter
	logger  *slog.Logger
}

func NewHandler(svc *service.Service, summary regressor.TrainingSummary, plotter Plotter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:     svc,
		summary: summary,
		plotter: plotter,
		logger:  logger,
	}
}

// Predict handles POST /predict with a {"X_test": [...]} body
func (h *Handler) Predict(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, h.logger, &service.Error{
			Kind: service.KindInternalFault,
			Msg:  "unable to read request body",
			Err:  err,
		})
		return
	}

	res, err := h.svc.PredictJSON(body)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Status())
}

// Model handles GET /model returning the served model and its training scores
func (h *Handler) Model(c *gin.Context) {
	c.JSON(http.StatusOK, ModelResponse{
		ModelInfo: h.svc.Model(),
		Training:  h.summary,
	})
}

// Plot handles GET /plot rendering the training fit as an html page
func (h *Handler) Plot(c *gin.Context) {
	if h.plotter == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "plot unavailable"})
		return
	}
	var buf bytes.Buffer
	if err := h.plotter.PlotFit(&buf); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
