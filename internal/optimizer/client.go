package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/reconcile"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	optimizePath   = "/api/v1/optimize/squad"
	defaultRetries = 3
	baseDelay      = 200 * time.Millisecond
	maxDelay       = 5 * time.Second
)

type Request struct {
	Season         string
	Budget         domain.Price
	Horizon        int
	CurrentSquad   []int
	FreeTransfers  int
	ExcludePlayers []int
	LockPlayers    []int
}

// Ranked - один вариант состава из ответа оптимизатора
type Ranked struct {
	Candidate  reconcile.Candidate
	TotalCost  domain.Price
	TotalScore float64
}

type Response struct {
	Candidates []Ranked
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	logger     *zap.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

type Option func(*Client)

func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retries:    defaultRetries,
		logger:     zap.NewNop(),
		sleep:      sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Backoff - baseDelay * 2^attempt, не больше maxDelay
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		return baseDelay
	}
	if attempt > 16 {
		return maxDelay
	}
	d := baseDelay * time.Duration(1<<attempt)
	if d > maxDelay {
		return maxDelay
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryableError - сбой транспорта или 5xx, запрос можно повторить
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// Optimize отправляет запрос и повторяет его при временных сбоях.
// Итоговая ошибка оборачивает domain.ErrOptimizerUnavailable.
func (c *Client) Optimize(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(toWireRequest(req))
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			delay := Backoff(attempt - 1)
			c.logger.Info("retrying optimizer request", zap.Int("attempt", attempt), zap.Duration("delay", delay))
			if err := c.sleep(ctx, delay); err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrOptimizerUnavailable, err)
			}
		}

		resp, err := c.doOptimize(ctx, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var retryable *retryableError
		if !errors.As(err, &retryable) || ctx.Err() != nil {
			break
		}
		c.logger.Warn("optimizer request failed", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrOptimizerUnavailable, lastErr)
}

func (c *Client) doOptimize(ctx context.Context, body []byte) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+optimizePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &retryableError{err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &retryableError{err: err}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &retryableError{err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data wireResponse
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decode optimizer response: %w", err)
	}
	return data.toResponse()
}

type wireRequest struct {
	Season         string  `json:"season"`
	Budget         float64 `json:"budget"`
	HorizonGW      int     `json:"horizon_gw"`
	CurrentSquad   []int   `json:"current_squad,omitempty"`
	FreeTransfers  int     `json:"free_transfers"`
	ExcludePlayers []int   `json:"exclude_players"`
	LockPlayers    []int   `json:"lock_players"`
}

func toWireRequest(r Request) wireRequest {
	horizon := r.Horizon
	if horizon < 1 {
		horizon = 1
	}
	w := wireRequest{
		Season:         r.Season,
		Budget:         r.Budget.Float64(),
		HorizonGW:      horizon,
		CurrentSquad:   r.CurrentSquad,
		FreeTransfers:  r.FreeTransfers,
		ExcludePlayers: r.ExcludePlayers,
		LockPlayers:    r.LockPlayers,
	}
	if w.ExcludePlayers == nil {
		w.ExcludePlayers = []int{}
	}
	if w.LockPlayers == nil {
		w.LockPlayers = []int{}
	}
	return w
}

type wirePlayer struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Position string          `json:"position"`
	Team     string          `json:"team"`
	Price    decimal.Decimal `json:"price"`
	Score    float64         `json:"score"`
}

type wireOption struct {
	Formation  string          `json:"formation"`
	StartingXI []wirePlayer    `json:"starting_xi"`
	Bench      []wirePlayer    `json:"bench"`
	PlayerIDs  []int           `json:"player_ids"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	TotalScore float64         `json:"total_score"`
}

type wireResponse struct {
	Options []wireOption `json:"options"`
}

func (w wireResponse) toResponse() (*Response, error) {
	resp := &Response{Candidates: make([]Ranked, 0, len(w.Options))}
	for i, opt := range w.Options {
		candidate, err := opt.candidate()
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i, err)
		}
		totalCost, err := domain.PriceFromDecimal(opt.TotalCost)
		if err != nil {
			return nil, fmt.Errorf("option %d total_cost: %w", i, err)
		}
		resp.Candidates = append(resp.Candidates, Ranked{
			Candidate:  candidate,
			TotalCost:  totalCost,
			TotalScore: opt.TotalScore,
		})
	}
	return resp, nil
}

// candidate выбирает вариант: полные записи, если они есть, иначе идентификаторы
func (o wireOption) candidate() (reconcile.Candidate, error) {
	if len(o.StartingXI) == 0 {
		if len(o.PlayerIDs) == 0 {
			return nil, errors.New("option has neither players nor player_ids")
		}
		return reconcile.IdentifierRoster{Formation: o.Formation, IDs: o.PlayerIDs}, nil
	}

	players := make([]domain.Player, 0, len(o.StartingXI)+len(o.Bench))
	for _, wp := range append(append([]wirePlayer{}, o.StartingXI...), o.Bench...) {
		pos, ok := domain.ParsePosition(wp.Position)
		if !ok {
			return nil, fmt.Errorf("player %d: unknown position %q", wp.ID, wp.Position)
		}
		price, err := domain.PriceFromDecimal(wp.Price)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", wp.ID, err)
		}
		players = append(players, domain.Player{
			ID:       wp.ID,
			Name:     wp.Name,
			Position: pos,
			Team:     wp.Team,
			Price:    price,
			Extra:    map[string]any{"score": wp.Score},
		})
	}
	return reconcile.FullRoster{Formation: o.Formation, Players: players}, nil
}
