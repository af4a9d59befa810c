package http

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/config"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/in"
	"github.com/suchimauz/court-booking-engine/internal/utils"
)

type BookingValidatorController struct {
	useCase in.BookingValidatorUseCase
	cfg     *config.Config
}

func NewBookingValidatorController(useCase in.BookingValidatorUseCase, cfg *config.Config) *BookingValidatorController {
	return &BookingValidatorController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *BookingValidatorController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.POST("/bookings/validate", c.validateBooking)
		api.GET("/orgs/:orgId/courts/:courtId/slots", c.getDaySlots)
	}
}

type ValidateBookingRequest struct {
	OrgID   uuid.UUID `json:"orgId" binding:"required"`
	CourtID uuid.UUID `json:"courtId" binding:"required"`
	Start   string    `json:"start" binding:"required"`
	End     string    `json:"end" binding:"required"`
	// Необязательные поля, нулевой uuid означает отсутствие
	CoachID          uuid.UUID `json:"coachId"`
	ExcludeBookingID uuid.UUID `json:"excludeBookingId"`
}

func (c *BookingValidatorController) validateBooking(ctx *gin.Context) {
	var req ValidateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := utils.ParseDate(req.Start)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
		return
	}

	end, err := utils.ParseDate(req.End)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
		return
	}

	result, debugInfo, err := c.useCase.ValidateBooking(ctx.Request.Context(), in.ValidateBookingRequest{
		OrgID:            req.OrgID,
		CourtID:          req.CourtID,
		Interval:         domain.TimeInterval{Start: start, End: end},
		CoachID:          req.CoachID,
		ExcludeBookingID: req.ExcludeBookingID,
	})
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// Вердикт всегда отдается с кодом 200, отказ не транспортная ошибка
	if result.Valid {
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"debug":   debugInfo,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   false,
		"error":     strings.Join(result.Errors, "; "),
		"errorCode": "VALIDATION_FAILED",
		"errors":    result.Errors,
		"debug":     debugInfo,
	})
}

func (c *BookingValidatorController) getDaySlots(ctx *gin.Context) {
	orgID, err := uuid.Parse(ctx.Param("orgId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid org ID format"})
		return
	}

	courtID, err := uuid.Parse(ctx.Param("courtId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court ID format"})
		return
	}

	date, err := utils.ParseDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	intervalMinutes := 0
	if intervalParam := ctx.Query("interval"); intervalParam != "" {
		intervalMinutes, err = strconv.Atoi(intervalParam)
		if err != nil || intervalMinutes < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interval format"})
			return
		}
	}

	slots, err := c.useCase.GetDaySlots(ctx.Request.Context(), orgID, courtID, date, intervalMinutes)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"courtId": courtID,
		"date":    date.Format("2006-01-02"),
		"slots":   slots,
	})
}

func (c *BookingValidatorController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
