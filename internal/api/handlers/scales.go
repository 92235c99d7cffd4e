package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Conceptual-Machines/magda-scales/internal/config"
	"github.com/Conceptual-Machines/magda-scales/internal/logger"
	"github.com/Conceptual-Machines/magda-scales/internal/metrics"
	"github.com/Conceptual-Machines/magda-scales/internal/scales"
	"github.com/Conceptual-Machines/magda-scales/internal/theory"
	"github.com/gin-gonic/gin"
)

type ScalesHandler struct {
	cfg           *config.Config
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewScalesHandler(cfg *config.Config, cw *metrics.Client) *ScalesHandler {
	return &ScalesHandler{
		cfg:           cfg,
		cloudwatch:    cw,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

type ScaleTypeSummary struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

type LettersResponse struct {
	Key      string            `json:"key"`
	Type     string            `json:"type"`
	Extra    int               `json:"extra"`
	Tones    []string          `json:"tones"`
	Letters  []string          `json:"letters"`
	Tonality string            `json:"tonality,omitempty"`
	Modes    []scales.ModeRoot `json:"modes,omitempty"`
}

type ShiftedResponse struct {
	Key     string   `json:"key"`
	Type    string   `json:"type"`
	Shift   int      `json:"shift"`
	Extra   int      `json:"extra"`
	Letters []string `json:"letters"`
}

type ChordsResponse struct {
	Key    string     `json:"key"`
	Type   string     `json:"type"`
	Shifts []int      `json:"shifts"`
	Extra  int        `json:"extra"`
	Chords [][]string `json:"chords"`
}

type ClassifyResponse struct {
	Input   string `json:"input"`
	Flat    bool   `json:"flat"`
	Sharp   bool   `json:"sharp"`
	Natural bool   `json:"natural"`
}

type RespellResponse struct {
	Input  string `json:"input"`
	Sharp  bool   `json:"sharp"`
	Letter string `json:"letter"`
}

// selection is the caller-owned key/scale state carried in the query string
type selection struct {
	key       string
	scaleType scales.ScaleType
	extra     int
	ascii     bool
}

// ListTypes returns every scale type in catalog order
func (h *ScalesHandler) ListTypes(c *gin.Context) {
	names := scales.TypeNames()
	types := make([]ScaleTypeSummary, 0, len(names))
	for _, name := range names {
		t, _ := scales.TypeByName(name)
		aliases := t.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		types = append(types, ScaleTypeSummary{Name: t.Name, Aliases: aliases})
	}
	c.JSON(http.StatusOK, gin.H{"types": types})
}

// GetType returns a single scale type, resolving aliases
func (h *ScalesHandler) GetType(c *gin.Context) {
	t, ok := h.lookupType(c, c.Param("type"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.renderType(t, h.useASCII(c)))
}

// GetMode returns the scale type obtained by starting :type at degree :token
func (h *ScalesHandler) GetMode(c *gin.Context) {
	t, ok := h.lookupType(c, c.Param("type"))
	if !ok {
		return
	}

	token := c.Param("token")
	modal, ok := scales.ModalScaleOf(t, token)
	if !ok {
		h.cloudwatch.RecordLookupFailure("mode")
		c.JSON(http.StatusNotFound, gin.H{"error": "no mode of " + t.Name + " starts on " + token})
		return
	}
	c.JSON(http.StatusOK, h.renderType(modal, h.useASCII(c)))
}

// Chromatic returns the 12-step chromatic spelling. Without ?sharp the mixed
// display spelling is returned.
func (h *ScalesHandler) Chromatic(c *gin.Context) {
	var letters []string
	if raw, ok := c.GetQuery("sharp"); ok {
		preferSharp, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sharp must be a boolean"})
			return
		}
		letters = theory.ChromaticScale(preferSharp)
	} else {
		letters = theory.ChromaticLetters()
	}
	c.JSON(http.StatusOK, gin.H{"letters": render(letters, h.useASCII(c))})
}

// Letters spells the selected scale
func (h *ScalesHandler) Letters(c *gin.Context) {
	sel, ok := h.readSelection(c)
	if !ok {
		return
	}

	start := time.Now()
	letters, err := scales.ScaleLetters(sel.key, sel.scaleType.Name, sel.extra)
	if err != nil {
		h.engineError(c, err, computation("letters", sel, nil), start)
		return
	}
	tonality, _ := scales.TonalityLetter(sel.key, sel.scaleType.Name)
	modes, _ := scales.ModeRoots(sel.key, sel.scaleType.Name)
	h.record(c, computation("letters", sel, nil, letters), start)

	for i := range modes {
		modes[i].Start = renderOne(modes[i].Start, sel.ascii)
		modes[i].Letter = renderOne(modes[i].Letter, sel.ascii)
	}

	tones, _ := scales.Tones(sel.scaleType.Name, sel.extra)
	c.JSON(http.StatusOK, LettersResponse{
		Key:      renderOne(sel.key, sel.ascii),
		Type:     sel.scaleType.Name,
		Extra:    sel.extra,
		Tones:    render(tones, sel.ascii),
		Letters:  render(letters, sel.ascii),
		Tonality: renderOne(tonality, sel.ascii),
		Modes:    modes,
	})
}

// Shifted rotates the selected scale by ?shift degrees (default: thirds)
func (h *ScalesHandler) Shifted(c *gin.Context) {
	sel, ok := h.readSelection(c)
	if !ok {
		return
	}

	shift := defaultShift
	if raw := c.Query("shift"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.cloudwatch.RecordLookupFailure("shift")
			c.JSON(http.StatusBadRequest, gin.H{"error": "shift must be an integer"})
			return
		}
		shift = v
	}

	start := time.Now()
	letters, err := scales.ShiftedLetters(sel.key, sel.scaleType.Name, shift, sel.extra)
	if err != nil {
		h.engineError(c, err, computation("shifted", sel, []int{shift}), start)
		return
	}
	h.record(c, computation("shifted", sel, []int{shift}, letters), start)

	c.JSON(http.StatusOK, ShiftedResponse{
		Key:     renderOne(sel.key, sel.ascii),
		Type:    sel.scaleType.Name,
		Shift:   shift,
		Extra:   sel.extra,
		Letters: render(letters, sel.ascii),
	})
}

// Chords stacks shifted sequences, ?shifts=0,2,4 by default
func (h *ScalesHandler) Chords(c *gin.Context) {
	sel, ok := h.readSelection(c)
	if !ok {
		return
	}

	shifts, err := parseShifts(c.Query("shifts"))
	if err != nil {
		h.cloudwatch.RecordLookupFailure("shift")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	chords, err := scales.ChordsFromShifts(sel.key, sel.scaleType.Name, shifts, sel.extra)
	if err != nil {
		h.engineError(c, err, computation("chords", sel, shifts), start)
		return
	}
	h.record(c, computation("chords", sel, shifts, chords...), start)

	for i := range chords {
		chords[i] = render(chords[i], sel.ascii)
	}
	c.JSON(http.StatusOK, ChordsResponse{
		Key:    renderOne(sel.key, sel.ascii),
		Type:   sel.scaleType.Name,
		Shifts: shifts,
		Extra:  sel.extra,
		Chords: chords,
	})
}

// Classify reports the accidental class of ?s (a letter or degree token)
func (h *ScalesHandler) Classify(c *gin.Context) {
	s, ok := c.GetQuery("s")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter s"})
		return
	}
	c.JSON(http.StatusOK, ClassifyResponse{
		Input:   s,
		Flat:    theory.IsFlat(s),
		Sharp:   theory.IsSharp(s),
		Natural: theory.IsNatural(s),
	})
}

// Respell returns the enharmonic spelling of ?letter, as sharp when ?sharp is true
func (h *ScalesHandler) Respell(c *gin.Context) {
	input, ok := c.GetQuery("letter")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter letter"})
		return
	}

	preferSharp := false
	if raw, ok := c.GetQuery("sharp"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sharp must be a boolean"})
			return
		}
		preferSharp = v
	}

	letter, ok := theory.Respell(input, preferSharp)
	if !ok {
		h.cloudwatch.RecordLookupFailure("letter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown letter: " + input})
		return
	}
	c.JSON(http.StatusOK, RespellResponse{
		Input:  input,
		Sharp:  preferSharp,
		Letter: renderOne(letter, h.useASCII(c)),
	})
}

// readSelection reads key, type, extra and style from the query string, falling
// back to configured defaults. It writes the error response itself.
func (h *ScalesHandler) readSelection(c *gin.Context) (selection, bool) {
	rawKey := c.DefaultQuery("key", h.cfg.DefaultKey)
	key, ok := theory.NormalizeLetter(rawKey)
	if ok {
		_, ok = theory.StepOf(key)
	}
	if !ok {
		fields := logger.WithContext(c)
		fields["key"] = rawKey
		logger.Warn("Unknown key letter", fields)
		h.cloudwatch.RecordLookupFailure("key")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown key: " + rawKey})
		return selection{}, false
	}

	t, ok := h.lookupType(c, c.DefaultQuery("type", h.cfg.DefaultScaleType))
	if !ok {
		return selection{}, false
	}

	extra := h.cfg.DefaultExtra
	if raw := c.Query("extra"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > maxExtra {
			c.JSON(http.StatusBadRequest, gin.H{"error": "extra must be an integer between 0 and " + strconv.Itoa(maxExtra)})
			return selection{}, false
		}
		extra = v
	}

	return selection{key: key, scaleType: t, extra: extra, ascii: h.useASCII(c)}, true
}

func (h *ScalesHandler) lookupType(c *gin.Context, name string) (scales.ScaleType, bool) {
	t, ok := scales.Lookup(name)
	if !ok {
		h.cloudwatch.RecordLookupFailure("scale_type")
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown scale type: " + name})
		return scales.ScaleType{}, false
	}
	return t, true
}

// engineError records comp as failed and writes the error response
func (h *ScalesHandler) engineError(c *gin.Context, err error, comp metrics.Computation, start time.Time) {
	comp.Success = false
	h.record(c, comp, start)

	if errors.Is(err, scales.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Scale computation failed", err, logger.WithContext(c))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *ScalesHandler) record(c *gin.Context, comp metrics.Computation, start time.Time) {
	h.sentryMetrics.RecordComputation(c.Request.Context(), comp, time.Since(start))
	h.cloudwatch.RecordComputation(comp.Operation, comp.ScaleType, comp.Letters)
	if !comp.Success {
		h.cloudwatch.RecordLookupFailure("degree")
	}
}

// computation describes an engine call over sel. It succeeds when at least one
// letter was produced and none is the blank unresolved sentinel.
func computation(op string, sel selection, shifts []int, results ...[]string) metrics.Computation {
	comp := metrics.Computation{
		Operation: op,
		Key:       sel.key,
		ScaleType: sel.scaleType.Name,
		Shifts:    shifts,
	}
	blank := false
	for _, letters := range results {
		comp.Letters += len(letters)
		blank = blank || slices.Contains(letters, "")
	}
	comp.Success = comp.Letters > 0 && !blank
	return comp
}

func (h *ScalesHandler) useASCII(c *gin.Context) bool {
	switch c.Query("style") {
	case config.LetterStyleASCII:
		return true
	case config.LetterStyleUnicode:
		return false
	default:
		return h.cfg.UseASCII()
	}
}

func (h *ScalesHandler) renderType(t scales.ScaleType, ascii bool) scales.ScaleType {
	if !ascii {
		return t
	}
	t.Tones = render(t.Tones, true)
	t.Tonality = theory.ASCII(t.Tonality)
	for i := range t.Modes {
		t.Modes[i].Start = theory.ASCII(t.Modes[i].Start)
	}
	return t
}

func parseShifts(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return append([]int(nil), scales.TriadShifts...), nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) > maxShifts {
		return nil, errors.New("too many shifts")
	}
	shifts := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New("shifts must be a comma-separated list of integers")
		}
		shifts = append(shifts, v)
	}
	return shifts, nil
}

func render(values []string, ascii bool) []string {
	if !ascii {
		return values
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = theory.ASCII(v)
	}
	return out
}

func renderOne(value string, ascii bool) string {
	if !ascii {
		return value
	}
	return theory.ASCII(value)
}
