package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vivaleve/internal/application/usecase"
	"vivaleve/internal/domain"
	"vivaleve/internal/infrastructure/celebrate"
	"vivaleve/internal/infrastructure/security"
	"vivaleve/internal/metrics"
)

type Handler struct {
	session *usecase.Session
	tokens  *security.TokenManager
	events  *celebrate.Queue
	log     *zap.Logger
}

func NewHandler(session *usecase.Session, tokens *security.TokenManager, events *celebrate.Queue, log *zap.Logger) *Handler {
	return &Handler{session: session, tokens: tokens, events: events, log: log}
}

// reply maps domain rejections to HTTP statuses and records the
// operation outcome. Rejections are user-visible, never fatal.
func (h *Handler) reply(c *gin.Context, op string, err error) bool {
	if err == nil {
		metrics.OpCount.WithLabelValues(op, "ok").Inc()
		return true
	}

	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrChallengeActive),
		errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUnknownItem),
		errors.Is(err, domain.ErrUnknownSection),
		errors.Is(err, domain.ErrLogIndex):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrExcessiveGoal):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		h.log.Error("operation_failed", zap.String("op", op), zap.Error(err))
		metrics.OpCount.WithLabelValues(op, "error").Inc()
		c.JSON(status, gin.H{"error": "internal server error"})
		return false
	}

	metrics.OpCount.WithLabelValues(op, "rejected").Inc()
	c.JSON(status, gin.H{"error": err.Error()})
	return false
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.reply(c, "register", h.session.Register(c.Request.Context(), req.Name, req.Email, req.Password)) {
		return
	}

	token, err := h.tokens.Generate(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"access_token": token})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.reply(c, "login", h.session.Login(c.Request.Context(), req.Email, req.Password)) {
		return
	}

	token, err := h.tokens.Generate(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (h *Handler) Logout(c *gin.Context) {
	if !h.reply(c, "logout", h.session.Logout(c.Request.Context())) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) State(c *gin.Context) {
	state, err := h.session.State()
	if !h.reply(c, "state", err) {
		return
	}
	c.JSON(http.StatusOK, state)
}

// Events drains pending celebration effects for the UI to play.
func (h *Handler) Events(c *gin.Context) {
	events := h.events.Drain()
	if events == nil {
		events = []celebrate.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type awardXPReq struct {
	Amount int `json:"amount" binding:"min=0"`
}

func (h *Handler) AwardXP(c *gin.Context) {
	var req awardXPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.reply(c, "award_xp", h.session.AwardXP(c.Request.Context(), req.Amount)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CompleteSection(c *gin.Context) {
	if !h.reply(c, "complete_section", h.session.CompleteSection(c.Request.Context(), c.Param("id"))) {
		return
	}
	c.Status(http.StatusNoContent)
}

type setWaterReq struct {
	Current int  `json:"current" binding:"min=0"`
	Goal    *int `json:"goal" binding:"omitempty,min=1"`
}

func (h *Handler) SetWater(c *gin.Context) {
	var req setWaterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.reply(c, "set_water", h.session.SetWater(c.Request.Context(), req.Current, req.Goal)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddCup(c *gin.Context) {
	if !h.reply(c, "add_cup", h.session.AddCup(c.Request.Context())) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveCup(c *gin.Context) {
	if !h.reply(c, "remove_cup", h.session.RemoveCup(c.Request.Context())) {
		return
	}
	c.Status(http.StatusNoContent)
}

type startChallengeReq struct {
	StartWeight float64 `json:"startWeight" binding:"required,gt=0"`
	TargetLoss  float64 `json:"targetLoss" binding:"required,gt=0"`
}

func (h *Handler) StartChallenge(c *gin.Context) {
	var req startChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Business cap checked at the boundary: losing more than 10kg in
	// 60 days harms health.
	if req.TargetLoss > usecase.MaxTargetLoss {
		h.reply(c, "start_challenge", domain.ErrExcessiveGoal)
		return
	}
	if !h.reply(c, "start_challenge", h.session.StartChallenge(c.Request.Context(), req.StartWeight, req.TargetLoss)) {
		return
	}
	c.Status(http.StatusNoContent)
}

type logWeightReq struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
}

func (h *Handler) LogWeight(c *gin.Context) {
	var req logWeightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.reply(c, "log_weight", h.session.LogWeight(c.Request.Context(), req.Weight, req.Date)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteLog(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	if !h.reply(c, "delete_log", h.session.DeleteLog(c.Request.Context(), index)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ResetChallenge(c *gin.Context) {
	if !h.reply(c, "reset_challenge", h.session.ResetChallenge(c.Request.Context())) {
		return
	}
	c.Status(http.StatusNoContent)
}

type itemReq struct {
	ItemID string `json:"itemId" binding:"required"`
}

func (h *Handler) BuyItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.reply(c, "buy_item", h.session.BuyItem(c.Request.Context(), req.ItemID)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) EquipItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.reply(c, "equip_item", h.session.EquipItem(c.Request.Context(), req.ItemID)) {
		return
	}
	c.Status(http.StatusNoContent)
}

type profileReq struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar" binding:"required"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.reply(c, "update_profile", h.session.UpdateProfile(c.Request.Context(), req.Name, req.Avatar)) {
		return
	}
	c.Status(http.StatusNoContent)
}

type onboardingReq struct {
	Weight     float64 `json:"weight" binding:"required,gt=0"`
	Height     float64 `json:"height" binding:"required,gt=0"`
	Age        int     `json:"age" binding:"required,gt=0"`
	Gender     string  `json:"gender" binding:"required,oneof=male female"`
	Goal       string  `json:"goal" binding:"required,oneof=lose tone maintain"`
	Frequency  string  `json:"frequency"`
	Commitment string  `json:"commitment"`
}

func (h *Handler) CompleteOnboarding(c *gin.Context) {
	var req onboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := usecase.OnboardingAnswers{
		Weight:     req.Weight,
		Height:     req.Height,
		Age:        req.Age,
		Gender:     req.Gender,
		Goal:       req.Goal,
		Frequency:  req.Frequency,
		Commitment: req.Commitment,
	}
	if !h.reply(c, "complete_onboarding", h.session.CompleteOnboarding(c.Request.Context(), answers)) {
		return
	}

	bmr := usecase.ComputeBMR(req.Weight, req.Height, req.Age, req.Gender)
	tdee := usecase.ComputeTDEE(bmr, usecase.ActivityFactorFromFrequency(req.Frequency))
	c.JSON(http.StatusOK, gin.H{"plan": usecase.PlanFor(tdee, req.Goal)})
}

type statsReq struct {
	Weight   float64 `json:"weight" binding:"required,gt=0"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Age      int     `json:"age" binding:"required,gt=0"`
	Gender   string  `json:"gender" binding:"required,oneof=male female"`
	Activity float64 `json:"activity" binding:"required,gt=0"`
}

// UpdateStats is the standalone calculator: it returns the BMR/TDEE
// results and stores them on the document.
func (h *Handler) UpdateStats(c *gin.Context) {
	var req statsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmr := usecase.ComputeBMR(req.Weight, req.Height, req.Age, req.Gender)
	tdee := usecase.ComputeTDEE(bmr, req.Activity)
	stats := domain.Stats{
		Weight:        req.Weight,
		Height:        req.Height,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.Activity,
		BMR:           roundInt(bmr),
		TDEE:          roundInt(tdee),
	}
	if !h.reply(c, "update_stats", h.session.UpdateStats(c.Request.Context(), stats)) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmr":                stats.BMR,
		"tdee":               stats.TDEE,
		"healthyCalories":    roundInt(tdee - 500),
		"aggressiveCalories": usecase.AggressiveCalories(tdee),
		"waterGoalCups":      usecase.WaterGoalCups(req.Weight),
	})
}

func (h *Handler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":   domain.ShopItems,
		"avatars": domain.Avatars,
	})
}

func (h *Handler) Content(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": domain.ContentSections})
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
