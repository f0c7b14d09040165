// Package viewer — клиент публичной ленты одобренных материалов.
//
// Один View соответствует одному экрану списка: держит фильтры, текущее
// состояние и не более одного осмысленного запроса в полёте. Новый запрос
// отменяет предыдущий, а ответ применяется только если его поколение ещё
// актуально.
package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"studyshare/internal/logger"

	"go.uber.org/zap"
)

const contentPath = "/api/content"

// Filters — ключи таксономии. Пустое значение не ограничивает выборку.
type Filters struct {
	Department string
	Branch     string
	Year       string
	Subject    string
	Topic      string
	Type       string
}

func (f Filters) query() url.Values {
	q := url.Values{}
	q.Set("status", "approved")
	for _, kv := range [...]struct{ k, v string }{
		{"department", f.Department},
		{"branch", f.Branch},
		{"year", f.Year},
		{"subject", f.Subject},
		{"topic", f.Topic},
		{"type", f.Type},
	} {
		if v := strings.TrimSpace(kv.v); v != "" {
			q.Set(kv.k, v)
		}
	}
	return q
}

// State отдаётся экрану как есть.
type State struct {
	Content []Item
	Loading bool
	Err     string
}

type Option func(*View)

func WithHTTPClient(c *http.Client) Option {
	return func(v *View) { v.client = c }
}

// WithClock подменяет источник текущего времени (используется для заглушки автора).
func WithClock(now func() time.Time) Option {
	return func(v *View) { v.now = now }
}

// OnChange вызывается после каждого применённого изменения состояния.
func OnChange(fn func(State)) Option {
	return func(v *View) { v.onChange = fn }
}

type View struct {
	baseURL  string
	client   *http.Client
	now      func() time.Time
	onChange func(State)

	mu      sync.Mutex
	filters Filters
	state   State
	gen     uint64
	cancel  context.CancelFunc
	hidden  bool
	closed  bool
}

func New(baseURL string, opts ...Option) *View {
	v := &View{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// State возвращает копию текущего состояния.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

func (v *View) Filters() Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

// SetFilters меняет фильтры и перезапрашивает список.
func (v *View) SetFilters(ctx context.Context, f Filters) error {
	v.mu.Lock()
	v.filters = f
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// VisibilityChanged перезапрашивает список только при переходе hidden -> visible.
func (v *View) VisibilityChanged(ctx context.Context, visible bool) error {
	v.mu.Lock()
	wasHidden := v.hidden
	v.hidden = !visible
	v.mu.Unlock()

	if visible && wasHidden {
		return v.Refresh(ctx)
	}
	return nil
}

func (v *View) Focused(ctx context.Context) error {
	return v.Refresh(ctx)
}

// Refresh отменяет предыдущий запрос и загружает список заново. Блокирует до
// ответа. Отменённый или устаревший запрос возвращает nil и не трогает состояние.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	v.gen++
	gen := v.gen
	v.cancel = cancel
	filters := v.filters
	v.state.Loading = true
	v.notifyLocked()
	v.mu.Unlock()

	defer cancel()

	items, err := v.fetch(ctx, filters)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen || v.closed {
		logger.Log.Debug("устаревший ответ ленты отброшен", zap.Uint64("gen", gen))
		return nil
	}
	v.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			v.state.Loading = false
			v.notifyLocked()
			return nil
		}
		logger.Log.Warn("ошибка загрузки ленты", zap.Error(err))
		v.state.Err = err.Error()
		v.state.Loading = false
		v.notifyLocked()
		return err
	}

	v.state = State{Content: items}
	v.notifyLocked()
	return nil
}

// Close отменяет запрос в полёте и снимает Loading. Дальнейшие Refresh ничего не делают.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	if v.state.Loading {
		v.state.Loading = false
		v.notifyLocked()
	}
}

func (v *View) fetch(ctx context.Context, f Filters) ([]Item, error) {
	q := f.query()
	q.Set("_t", strconv.FormatInt(v.now().UnixMilli(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+contentPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && body.Error != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body.Error)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode: %w", decodeErr)
	}
	if !body.Success {
		if body.Error != "" {
			return nil, errors.New(body.Error)
		}
		return nil, errors.New("request failed")
	}

	now := v.now()
	items := make([]Item, 0, len(body.Data))
	for _, r := range body.Data {
		items = append(items, r.normalize(now))
	}
	return items, nil
}

// notifyLocked вызывается под v.mu. Подписчик не должен звать методы View.
func (v *View) notifyLocked() {
	if v.onChange != nil {
		v.onChange(v.snapshot())
	}
}

func (v *View) snapshot() State {
	s := v.state
	if s.Content != nil {
		s.Content = append([]Item(nil), s.Content...)
	}
	return s
}
